package gazescreens

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ScreenHit is where a ray from the eye lands on a screen.
type ScreenHit struct {
	Point Vec3  // global coordinates
	Pixel Pixel // screen coordinates
	Dist  Real  // distance from the eye
}

// FindIntersect casts ray from the eye at the screen. ok is false when the
// ray misses the finite surface; that is an expected outcome, not an error.
// The error is reserved for zero-length or non-finite rays.
func (s *Screen) FindIntersect(ray Vec3) (hit ScreenHit, ok bool, err error) {
	if !isFiniteVec(ray) || ray.Len() == 0 {
		return ScreenHit{}, false, errors.Wrapf(ErrDegenerate, "ray %v", ray)
	}
	return s.geom.intersect(s, ray)
}

// inRange accepts v in [0,max] up to edgeEps and snaps it into the range.
func inRange(v, max Real) (Real, bool) {
	if v < -edgeEps || v > max+edgeEps {
		return 0, false
	}
	return mgl64.Clamp(v, 0, max), true
}

func (flatGeometry) intersect(s *Screen, ray Vec3) (ScreenHit, bool, error) {
	den := ray.Dot(s.normal)
	if den == 0 {
		return ScreenHit{}, false, nil // parallel to the screen plane
	}
	t := s.shift.Dot(s.normal) / den
	if !isFinite(t) || t < 0 {
		return ScreenHit{}, false, nil // plane is behind the eye
	}

	// relative to the screen center
	P := ray.Mul(t).Sub(s.shift)
	x, okX := inRange(s.rotation.Col(0).Dot(P)+s.width/2, s.width)
	y, okY := inRange(s.rotation.Col(1).Dot(P)+s.height/2, s.height)
	if !okX || !okY {
		return ScreenHit{}, false, nil
	}
	point := P.Add(s.shift)
	return ScreenHit{Point: point, Pixel: Pixel{x, y}, Dist: point.Len()}, true, nil
}

func (g curvedGeometry) intersect(s *Screen, ray Vec3) (ScreenHit, bool, error) {
	rxa := ray.Cross(g.axis)
	rr := rxa.Dot(rxa)
	if rr == 0 {
		return ScreenHit{}, false, nil // parallel to the cylinder axis
	}
	br := g.base.Dot(rxa)
	disc := g.radius*g.radius*rr - br*br
	if disc < 0 {
		return ScreenHit{}, false, nil // passes beside the cylinder
	}
	t := (rxa.Dot(g.base.Cross(g.axis)) + math.Sqrt(disc)) / rr
	if !isFinite(t) || t < 0 {
		return ScreenHit{}, false, nil
	}

	point := ray.Mul(t)
	y, ok := inRange(g.axis.Dot(point.Sub(g.base)), s.height)
	if !ok {
		return ScreenHit{}, false, nil
	}

	// Angle around the axis between the hit and the screen's center line at that height.
	center := g.base.Add(s.rotation.Col(1).Mul(y))
	q := s.ToGlobal(Pixel{s.width / 2, y})
	theta, err := AngleBetween(point.Sub(center), q.Sub(center))
	if err != nil {
		return ScreenHit{}, false, err
	}
	if theta > g.thetaMax+edgeEps {
		return ScreenHit{}, false, nil
	}
	side := sgn(point.Sub(q).Dot(s.rotation.Col(0)))
	x := mgl64.Clamp(s.width/2+side*theta*g.radius, 0, s.width)
	return ScreenHit{Point: point, Pixel: Pixel{x, y}, Dist: point.Len()}, true, nil
}
