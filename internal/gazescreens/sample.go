package gazescreens

import (
	"github.com/pkg/errors"
)

// linspace returns n evenly spaced values over [0,max], both ends included.
func linspace(max Real, n int) []Real {
	out := make([]Real, n)
	for i := range out {
		out[i] = max * Real(i) / Real(n-1)
	}
	out[n-1] = max
	return out
}

// SampleGrid maps an nx×ny regular grid of pixels spanning the whole
// screen to global points, x-major: point (i,j) is at index i*ny+j.
func (s *Screen) SampleGrid(nx, ny int) ([]Vec3, error) {
	if nx < 2 || ny < 2 {
		return nil, errors.Wrapf(ErrConfig, "sample grid must be at least 2x2, got %dx%d", nx, ny)
	}
	xs, ys := linspace(s.width, nx), linspace(s.height, ny)
	out := make([]Vec3, 0, nx*ny)
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, s.ToGlobal(Pixel{x, y}))
		}
	}
	return out, nil
}
