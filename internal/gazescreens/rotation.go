package gazescreens

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat3 is column-major; column i of a screen rotation is the screen's
// local axis i (width, height, outward normal) in global coordinates.
type Mat3 = mgl64.Mat3

// Rotation about the local width axis. Positive pitch tips the top of the screen towards the eye.
func rotPitch(a Real) Mat3 {
	s, c := math.Sincos(a)
	// rows: [1 0 0] [0 c -s] [0 s c]
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// Rotation about the height axis. Positive yaw turns the screen clockwise seen from above.
func rotYaw(a Real) Mat3 {
	s, c := math.Sincos(a)
	// rows: [c 0 -s] [0 1 0] [s 0 c]
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Compose rotation from angles (radians): pitch first, then yaw.
func rotFromAngles(pitch, yaw Real) Mat3 {
	return rotYaw(yaw).Mul3(rotPitch(pitch))
}
