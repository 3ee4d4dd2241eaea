package gazescreens

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Vec3 is a point or direction in the global frame: x lateral, y up, z depth.
type Vec3 = mgl64.Vec3

// AngleBetween returns the unsigned angle (radians) between p and q.
func AngleBetween(p, q Vec3) (Real, error) {
	lp, lq := p.Len(), q.Len()
	if lp == 0 || lq == 0 || !isFinite(lp) || !isFinite(lq) {
		return 0, errors.Wrapf(ErrDegenerate, "angle between %v and %v", p, q)
	}
	// Numeric clamp: near-parallel vectors can round just outside [-1,1].
	cosine := mgl64.Clamp(p.Dot(q)/lp/lq, -1, 1)
	return math.Acos(cosine), nil
}

// ToSpherical returns the azimuth theta (from +z towards +x) and
// elevation phi (above the x-z plane towards +y) of p.
func ToSpherical(p Vec3) (theta, phi Real) {
	x, y, z := p[0], p[1], p[2]
	theta = math.Atan2(x, z)
	phi = math.Atan2(y, math.Sqrt(x*x+z*z))
	return
}

// FromSpherical is the unit direction with the given spherical angles,
// the inverse of ToSpherical.
func FromSpherical(theta, phi Real) Vec3 {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return Vec3{cosP * sinT, sinP, cosP * cosT}
}
