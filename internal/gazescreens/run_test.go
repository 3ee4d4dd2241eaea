package gazescreens

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const demoConfig = `{
  "screens": [
    {"name": "front", "width": 3, "height": 2, "shift": [0, 0, -2.5]},
    {"name": "left", "width": 1, "height": 3, "yaw": -50, "shift": [-2, 0, -1]},
    {"name": "right", "width": 3, "height": 1, "pitch": 10, "yaw": 45, "shift": [2, 0.5, -1.5], "radius": 4}
  ],
  "queries": [
    {"screen": "left", "pixel": {"x": 0.5, "y": 0.5}, "offset": {"theta": -85, "phi": 40}}
  ],
  "queryLines": ["locate left 0.5 0.5 -55 10", "locate left 0.5 0.5 180 0"],
  "workers": 2
}`

func TestRunConfig(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "config.json", demoConfig))
	if err != nil {
		t.Fatal(err)
	}
	for _, parallel := range []bool{false, true} {
		Parallel = parallel
		var out bytes.Buffer
		err := runConfig(context.Background(), cfg, &out)
		Parallel = false
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines:\n%s", len(lines), out.String())
		}
		if !strings.Contains(lines[0], "-> right pixel=(0.1609, 0.7303)") {
			t.Fatalf("line 0: %s", lines[0])
		}
		if !strings.Contains(lines[1], "-> front pixel=(1.1293, 0.3654)") {
			t.Fatalf("line 1: %s", lines[1])
		}
		if !strings.Contains(lines[2], "-> none: ") {
			t.Fatalf("line 2: %s", lines[2])
		}
	}
}

func TestRunConfig_STL(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "config.json", demoConfig))
	if err != nil {
		t.Fatal(err)
	}
	cfg.STLOut = filepath.Join(t.TempDir(), "out.stl")
	cfg.STLCells = 4
	var out bytes.Buffer
	if err := runConfig(context.Background(), cfg, &out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.STLOut); err != nil {
		t.Fatalf("STL not written: %v", err)
	}
	if !strings.Contains(out.String(), "saved 3 screens") {
		t.Fatalf("output: %s", out.String())
	}
}

func TestRunConfig_UnknownScreen(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "config.json", `{
		"screens": [{"name": "front", "width": 3, "height": 2, "shift": [0, 0, -2.5]}],
		"queryLines": ["locate back 1 1 0 0"]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := runConfig(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown fixation screen")
	}
}

func TestRunScript(t *testing.T) {
	path := writeFile(t, "demo.zy", `
(screen "front" :width 3 :height 2 :shift (vec3 0 0 -2.5))
(locate "front" 1.5 1 0 0)
`)
	if err := Run(path); err != nil {
		t.Fatal(err)
	}
	if err := Run(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestRunConfig_Angles(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "config.json", `{
		"screens": [
			{"name": "front", "width": 3, "height": 2, "shift": [0, 0, -2.5]},
			{"name": "left", "width": 1, "height": 3, "yaw": -50, "shift": [-2, 0, -1]}
		],
		"angles": [{"from": {"screen": "front", "pixel": {"x": 1.5, "y": 1}}, "to": {"screen": "front", "pixel": {"x": 1.5, "y": 1}}}],
		"queryLines": ["angle front 1.5 1 left 0.5 1.5"]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runConfig(context.Background(), cfg, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasSuffix(lines[0], "-> 0.0000 deg") {
		t.Fatalf("line 0: %s", lines[0])
	}
	// centers at (0,0,-2.5) and (-2,0,-1): acos(1/sqrt(5))
	if !strings.HasSuffix(lines[1], "-> 63.4349 deg") {
		t.Fatalf("line 1: %s", lines[1])
	}

	cfg.QueryLines = []string{"angle front 0 0 back 0 0"}
	if err := runConfig(context.Background(), cfg, &bytes.Buffer{}); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig for unknown screen, got %v", err)
	}
}
