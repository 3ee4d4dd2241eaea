package gazescreens

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
)

func toV3(v Vec3) v3.Vec { return v3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// Triangles tessellates the screen surface into cells×cells quads, two
// triangles each, wound so the face normal points along Screen.Normal.
func (s *Screen) Triangles(cells int) ([]*sdf.Triangle3, error) {
	grid, err := s.SampleGrid(cells+1, cells+1)
	if err != nil {
		return nil, err
	}
	n := cells + 1
	at := func(i, j int) v3.Vec { return toV3(grid[i*n+j]) }
	mesh := make([]*sdf.Triangle3, 0, 2*cells*cells)
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			a, b, c, d := at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)
			mesh = append(mesh, &sdf.Triangle3{a, b, c}, &sdf.Triangle3{a, c, d})
		}
	}
	return mesh, nil
}

// SaveSTL writes all screens as one STL mesh.
func SaveSTL(path string, screens []*Screen, cells int) error {
	var mesh []*sdf.Triangle3
	for i, s := range screens {
		tris, err := s.Triangles(cells)
		if err != nil {
			return errors.Wrapf(err, "screen #%d", i)
		}
		mesh = append(mesh, tris...)
	}
	if err := render.SaveSTL(path, mesh); err != nil {
		return errors.Wrapf(err, "save STL %s", path)
	}
	DebugLog("Saved %d triangles to %s", len(mesh), path)
	return nil
}
