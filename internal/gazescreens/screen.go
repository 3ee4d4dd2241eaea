package gazescreens

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Pixel is a position on a screen surface measured from its bottom-left
// corner: X along the width, Y along the height.
type Pixel struct {
	X Real `json:"x"`
	Y Real `json:"y"`
}

// geometry is the shape-specific part of a screen, fixed at construction.
type geometry interface {
	// local maps an offset from the screen center (in pixels) to local screen coordinates.
	local(dx, dy Real) Vec3
	intersect(s *Screen, ray Vec3) (ScreenHit, bool, error)
}

// flatGeometry is a plane through Screen.shift with normal Screen.normal.
type flatGeometry struct{}

// curvedGeometry is a strip of a circular cylinder whose axis runs along
// the screen height. base is the axis point level with the screen bottom.
type curvedGeometry struct {
	radius   Real
	base     Vec3
	axis     Vec3
	thetaMax Real // half of the angular sweep of the screen width
}

// Screen is a rigid flat or cylindrically curved display surface placed
// around the eye. All fields are derived once by NewScreen and never change.
type Screen struct {
	name     string
	width    Real
	height   Real
	shift    Vec3 // screen center in global coordinates
	rotation Mat3 // local->global rotation
	normal   Vec3 // outward axis; exact at the center of a curved screen
	geom     geometry
}

// NewFlatScreen builds a planar screen.
func NewFlatScreen(width, height, pitch, yaw Real, shift Vec3) (*Screen, error) {
	return NewScreen(width, height, pitch, yaw, shift, nil)
}

// NewCurvedScreen builds a screen bent around a cylinder of the given radius.
func NewCurvedScreen(width, height, pitch, yaw Real, shift Vec3, radius Real) (*Screen, error) {
	return NewScreen(width, height, pitch, yaw, shift, &radius)
}

// NewScreen validates the parameters and derives the screen geometry.
// pitch and yaw are in degrees; a nil radius means a flat screen.
func NewScreen(width, height, pitch, yaw Real, shift Vec3, radius *Real) (*Screen, error) {
	if !isFinite(width) || width <= 0 {
		return nil, errors.Wrapf(ErrConfig, "screen width must be > 0, got %g", width)
	}
	if !isFinite(height) || height <= 0 {
		return nil, errors.Wrapf(ErrConfig, "screen height must be > 0, got %g", height)
	}
	if !isFinite(pitch) || !isFinite(yaw) {
		return nil, errors.Wrapf(ErrConfig, "screen pitch/yaw must be finite, got %g/%g", pitch, yaw)
	}
	if !isFiniteVec(shift) {
		return nil, errors.Wrapf(ErrConfig, "screen shift must be finite, got %v", shift)
	}

	R := rotFromAngles(mgl64.DegToRad(pitch), mgl64.DegToRad(yaw))
	s := &Screen{
		width:    width,
		height:   height,
		shift:    shift,
		rotation: R,
		normal:   R.Col(2),
		geom:     flatGeometry{},
	}
	if radius == nil {
		DebugLog("Created flat screen %gx%g pitch=%g yaw=%g shift=%v", width, height, pitch, yaw, shift)
		return s, nil
	}

	r := *radius
	if !isFinite(r) || r <= 0 {
		return nil, errors.Wrapf(ErrConfig, "screen radius must be > 0, got %g", r)
	}
	if width/(2*r) >= math.Pi {
		return nil, errors.Wrapf(ErrConfig, "screen width %g must sweep less than a full circle of radius %g", width, r)
	}
	// The curved mapping only needs the radius, so the edge points can be
	// computed before base/axis/thetaMax are known.
	s.geom = curvedGeometry{radius: r}
	p := s.ToGlobal(Pixel{width / 2, 0})
	base := p.Add(s.normal.Mul(r))
	q := s.ToGlobal(Pixel{width, 0})
	thetaMax, err := AngleBetween(p.Sub(base), q.Sub(base))
	if err != nil {
		return nil, errors.Wrap(ErrConfig, err.Error())
	}
	if !(thetaMax > 0 && thetaMax < math.Pi) {
		return nil, errors.Wrapf(ErrConfig, "screen width %g on radius %g gives angular half-sweep %g", width, r, thetaMax)
	}
	s.geom = curvedGeometry{
		radius:   r,
		base:     base,
		axis:     R.Col(1),
		thetaMax: thetaMax,
	}
	DebugLog("Created curved screen %gx%g pitch=%g yaw=%g shift=%v radius=%g thetaMax=%.6f", width, height, pitch, yaw, shift, r, thetaMax)
	return s, nil
}

// ToGlobal maps pixel coordinates to a point in the global frame. Pixels
// outside the screen extrapolate the same surface.
func (s *Screen) ToGlobal(p Pixel) Vec3 {
	dx := p.X - s.width/2
	dy := p.Y - s.height/2
	return s.rotation.Mul3x1(s.geom.local(dx, dy)).Add(s.shift)
}

func (flatGeometry) local(dx, dy Real) Vec3 {
	return Vec3{dx, dy, 0}
}

// Horizontal pixel distance from the center is arc length along the circumference.
func (g curvedGeometry) local(dx, dy Real) Vec3 {
	sin, cos := math.Sincos(dx / g.radius)
	return Vec3{g.radius * sin, dy, g.radius * (1 - cos)}
}

// WithName returns a copy of the screen carrying a display name.
func (s *Screen) WithName(name string) *Screen {
	c := *s
	c.name = name
	return &c
}

func (s *Screen) Name() string { return s.name }
func (s *Screen) Width() Real { return s.width }
func (s *Screen) Height() Real { return s.height }
func (s *Screen) Shift() Vec3 { return s.shift }
func (s *Screen) Rotation() Mat3 { return s.rotation }
func (s *Screen) Normal() Vec3 { return s.normal }
func (s *Screen) Center() Pixel { return Pixel{s.width / 2, s.height / 2} }

// Curved reports whether the screen is a cylinder strip.
func (s *Screen) Curved() bool {
	_, ok := s.geom.(curvedGeometry)
	return ok
}

// Radius returns the curvature radius and true for curved screens.
func (s *Screen) Radius() (Real, bool) {
	if g, ok := s.geom.(curvedGeometry); ok {
		return g.radius, true
	}
	return 0, false
}

// ThetaMax returns half the angular sweep of a curved screen.
func (s *Screen) ThetaMax() (Real, bool) {
	if g, ok := s.geom.(curvedGeometry); ok {
		return g.thetaMax, true
	}
	return 0, false
}
