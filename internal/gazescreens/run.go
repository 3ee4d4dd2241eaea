package gazescreens

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Run loads a JSON config (or a .zy scene script), resolves every query
// and prints one line per query to stdout.
func Run(cfgPath string) error {
	var (
		cfg *Config
		err error
	)
	if filepath.Ext(cfgPath) == ".zy" {
		cfg, err = loadScript(cfgPath)
	} else {
		cfg, err = loadConfig(cfgPath)
	}
	if err != nil {
		return err
	}
	return runConfig(context.Background(), cfg, os.Stdout)
}

type queryResult struct {
	target Target
	err    error
}

func runConfig(ctx context.Context, cfg *Config, w io.Writer) error {
	scene, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	queries, err := cfg.AllQueries()
	if err != nil {
		return err
	}
	angles, err := cfg.AllAngles()
	if err != nil {
		return err
	}

	start := time.Now()
	results := make([]queryResult, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, q := range queries {
		g.Go(func() error {
			t, err := scene.Locate(gctx, q, cfg.Workers)
			// a query that lands nowhere is reported, not fatal
			if err != nil && !errors.Is(err, ErrNoIntersection) {
				return errors.Wrapf(err, "query #%d", i)
			}
			results[i] = queryResult{target: t, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	DebugLog("Resolved %d queries in %s", len(queries), time.Since(start))

	for i, q := range queries {
		r := results[i]
		prefix := fmt.Sprintf("query #%d %s (%g, %g) %+g/%+g deg", i, q.Screen, q.Pixel.X, q.Pixel.Y, q.Offset.Theta, q.Offset.Phi)
		if r.err != nil {
			fmt.Fprintf(w, "%s -> none: %v\n", prefix, r.err)
			continue
		}
		p := r.target.Point
		fmt.Fprintf(w, "%s -> %s pixel=(%.4f, %.4f) point=(%.4f, %.4f, %.4f)\n",
			prefix, r.target.Screen.Name(), r.target.Pixel.X, r.target.Pixel.Y, p[0], p[1], p[2])
	}

	for i, a := range angles {
		v, err := scene.Angle(a)
		if err != nil {
			return errors.Wrapf(err, "angle #%d", i)
		}
		fmt.Fprintf(w, "angle #%d %s (%g, %g) to %s (%g, %g) -> %.4f deg\n",
			i, a.From.Screen, a.From.Pixel.X, a.From.Pixel.Y, a.To.Screen, a.To.Pixel.X, a.To.Pixel.Y, v)
	}

	if cfg.STLOut != "" {
		if err := SaveSTL(cfg.STLOut, scene.Screens, cfg.STLCells); err != nil {
			return err
		}
		fmt.Fprintf(w, "saved %d screens to %s\n", len(scene.Screens), cfg.STLOut)
	}
	return nil
}
