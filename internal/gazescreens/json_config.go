package gazescreens

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

type ScreenCfg struct {
	Name   string `json:"name"`
	Width  Real   `json:"width"`
	Height Real   `json:"height"`
	Pitch  Real   `json:"pitch"` // degrees
	Yaw    Real   `json:"yaw"`   // degrees
	Shift  Vec3   `json:"shift"`
	// Radius of curvature; absent means flat.
	Radius *Real `json:"radius,omitempty"`
}

// QueryCfg asks where to show a point Offset degrees away from the
// fixation Pixel on the screen named Screen.
type QueryCfg struct {
	Screen string      `json:"screen"`
	Pixel  Pixel       `json:"pixel"`
	Offset AngleOffset `json:"offset"`
}

// PixelRef is a pixel on the screen named Screen.
type PixelRef struct {
	Screen string `json:"screen"`
	Pixel  Pixel  `json:"pixel"`
}

// AngleCfg asks for the visual angle between two pixels.
type AngleCfg struct {
	From PixelRef `json:"from"`
	To   PixelRef `json:"to"`
}

type Config struct {
	Screens []ScreenCfg `json:"screens"`
	Queries []QueryCfg  `json:"queries,omitempty"`
	Angles  []AngleCfg  `json:"angles,omitempty"`
	// Shell-like query lines, see ParseQueryLine and ParseAngleLine.
	QueryLines []string `json:"queryLines,omitempty"`
	Workers    int      `json:"workers,omitempty"`
	STLOut     string   `json:"stlOut,omitempty"`
	STLCells   int      `json:"stlCells,omitempty"`
}

// Build validates and constructs the runtime screen.
func (sc ScreenCfg) Build() (*Screen, error) {
	s, err := NewScreen(sc.Width, sc.Height, sc.Pitch, sc.Yaw, sc.Shift, sc.Radius)
	if err != nil {
		return nil, errors.Wrapf(err, "screen %q", sc.Name)
	}
	return s.WithName(sc.Name), nil
}

// BuildScene constructs every configured screen; any invalid screen fails the whole scene.
func (cfg *Config) BuildScene() (*Scene, error) {
	scene := NewScene()
	for _, sc := range cfg.Screens {
		s, err := sc.Build()
		if err != nil {
			return nil, err
		}
		if err := scene.AddScreen(s); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

// AllQueries returns the structured queries followed by the parsed query lines.
func (cfg *Config) AllQueries() ([]QueryCfg, error) {
	out := append([]QueryCfg(nil), cfg.Queries...)
	for i, line := range cfg.QueryLines {
		q, ok, err := ParseQueryLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "query line %d", i+1)
		}
		if ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// AllAngles returns the structured angle queries followed by the parsed angle lines.
func (cfg *Config) AllAngles() ([]AngleCfg, error) {
	out := append([]AngleCfg(nil), cfg.Angles...)
	for i, line := range cfg.QueryLines {
		a, ok, err := ParseAngleLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "query line %d", i+1)
		}
		if ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// applyDefaults fills unset values and validates what cannot be defaulted.
func (cfg *Config) applyDefaults() error {
	if len(cfg.Screens) == 0 {
		return errors.Wrap(ErrConfig, "config has no screens")
	}
	for i := range cfg.Screens {
		if cfg.Screens[i].Name == "" {
			cfg.Screens[i].Name = fmt.Sprintf("screen%d", i)
		}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.STLCells <= 0 {
		cfg.STLCells = STLCells
	}
	if cfg.STLOut == "" && STL {
		cfg.STLOut = STLOut
	}
	return nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	DebugLog("Loaded config from %s: %d screens, %d queries, %d angles, %d query lines, workers=%d", path, len(cfg.Screens), len(cfg.Queries), len(cfg.Angles), len(cfg.QueryLines), cfg.Workers)
	return &cfg, nil
}
