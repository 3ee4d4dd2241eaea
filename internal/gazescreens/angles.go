package gazescreens

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// AngleBetweenPixels returns the visual angle in degrees, seen from the
// eye, between pixel p1 on s1 and pixel p2 on s2.
func AngleBetweenPixels(s1 *Screen, p1 Pixel, s2 *Screen, p2 Pixel) (Real, error) {
	a, err := AngleBetween(s1.ToGlobal(p1), s2.ToGlobal(p2))
	if err != nil {
		return 0, errors.Wrap(err, "pixel angle")
	}
	return mgl64.RadToDeg(a), nil
}
