package gazescreens

import (
	"context"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// AngleOffset is an angular displacement in degrees: Theta is azimuth
// (towards +x), Phi is elevation (towards +y).
type AngleOffset struct {
	Theta Real `json:"theta"`
	Phi   Real `json:"phi"`
}

// Target is the resolved screen and pixel for a requested viewing direction.
type Target struct {
	Screen *Screen
	Index  int // position of Screen in the candidate list
	ScreenHit
}

type candidate struct {
	idx int
	hit ScreenHit
}

// TargetRay returns the unit ray pointing offset degrees away from the
// direction of the fixation pixel.
func TargetRay(fixPixel Pixel, fixScreen *Screen, offset AngleOffset) (Vec3, error) {
	fix := fixScreen.ToGlobal(fixPixel)
	if !isFiniteVec(fix) || fix.Len() == 0 {
		return Vec3{}, errors.Wrapf(ErrDegenerate, "fixation point %v", fix)
	}
	theta, phi := ToSpherical(fix)
	theta += mgl64.DegToRad(offset.Theta)
	phi += mgl64.DegToRad(offset.Phi)
	return FromSpherical(theta, phi), nil
}

// Locate finds the screen and pixel where a point offset degrees away from
// the fixation should be shown. When several screens are hit the one
// nearest to the eye wins; on an exact tie the earlier screen wins.
func Locate(fixPixel Pixel, fixScreen *Screen, screens []*Screen, offset AngleOffset) (Target, error) {
	ray, err := TargetRay(fixPixel, fixScreen, offset)
	if err != nil {
		return Target{}, err
	}
	cands := make([]candidate, 0, len(screens))
	for i, s := range screens {
		hit, ok, err := s.FindIntersect(ray)
		if err != nil {
			return Target{}, errors.Wrapf(err, "screen #%d", i)
		}
		if ok {
			cands = append(cands, candidate{idx: i, hit: hit})
		}
	}
	return nearestTarget(screens, cands, ray)
}

// LocateParallel is Locate with the candidate screens evaluated
// concurrently by up to workers goroutines (<=0 means one per CPU).
func LocateParallel(ctx context.Context, fixPixel Pixel, fixScreen *Screen, screens []*Screen, offset AngleOffset, workers int) (Target, error) {
	ray, err := TargetRay(fixPixel, fixScreen, offset)
	if err != nil {
		return Target{}, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	DebugLogOnce("Evaluating screens with up to %d workers", workers)

	hits := make([]ScreenHit, len(screens))
	oks := make([]bool, len(screens))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range screens {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hit, ok, err := s.FindIntersect(ray)
			if err != nil {
				return errors.Wrapf(err, "screen #%d", i)
			}
			hits[i], oks[i] = hit, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Target{}, err
	}

	// Reduce in input order so ties resolve exactly like Locate.
	cands := make([]candidate, 0, len(screens))
	for i := range screens {
		if oks[i] {
			cands = append(cands, candidate{idx: i, hit: hits[i]})
		}
	}
	return nearestTarget(screens, cands, ray)
}

func nearestTarget(screens []*Screen, cands []candidate, ray Vec3) (Target, error) {
	if len(cands) == 0 {
		DebugLog("No screen hit by ray %v", ray)
		return Target{}, errors.Wrapf(ErrNoIntersection, "ray %v", ray)
	}
	// MinBy keeps the first of equal minima.
	best := lo.MinBy(cands, func(a, b candidate) bool { return a.hit.Dist < b.hit.Dist })
	DebugLog("Ray %v: %d hit(s), nearest screen #%d at %.6f", ray, len(cands), best.idx, best.hit.Dist)
	return Target{Screen: screens[best.idx], Index: best.idx, ScreenHit: best.hit}, nil
}

// Scene is an ordered set of named screens.
type Scene struct {
	Screens []*Screen
	byName  map[string]int
}

func NewScene() *Scene {
	return &Scene{byName: make(map[string]int)}
}

// AddScreen appends s; names must be unique within the scene.
func (sc *Scene) AddScreen(s *Screen) error {
	if _, dup := sc.byName[s.Name()]; dup {
		return errors.Wrapf(ErrConfig, "duplicate screen name %q", s.Name())
	}
	sc.byName[s.Name()] = len(sc.Screens)
	sc.Screens = append(sc.Screens, s)
	return nil
}

// ByName returns the named screen.
func (sc *Scene) ByName(name string) (*Screen, bool) {
	i, ok := sc.byName[name]
	if !ok {
		return nil, false
	}
	return sc.Screens[i], true
}

// Locate resolves a query against all screens of the scene.
func (sc *Scene) Locate(ctx context.Context, q QueryCfg, workers int) (Target, error) {
	fix, ok := sc.ByName(q.Screen)
	if !ok {
		return Target{}, errors.Wrapf(ErrConfig, "unknown fixation screen %q", q.Screen)
	}
	if Parallel {
		return LocateParallel(ctx, q.Pixel, fix, sc.Screens, q.Offset, workers)
	}
	return Locate(q.Pixel, fix, sc.Screens, q.Offset)
}

// Angle returns the visual angle in degrees between the two referenced pixels.
func (sc *Scene) Angle(a AngleCfg) (Real, error) {
	from, ok := sc.ByName(a.From.Screen)
	if !ok {
		return 0, errors.Wrapf(ErrConfig, "unknown screen %q", a.From.Screen)
	}
	to, ok := sc.ByName(a.To.Screen)
	if !ok {
		return 0, errors.Wrapf(ErrConfig, "unknown screen %q", a.To.Screen)
	}
	return AngleBetweenPixels(from, a.From.Pixel, to, a.To.Pixel)
}
