package gazescreens

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseQueryLine(t *testing.T) {
	q, ok, err := ParseQueryLine(`locate "left monitor" 0.5 0.5 -85 40`)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	want := QueryCfg{Screen: "left monitor", Pixel: Pixel{0.5, 0.5}, Offset: AngleOffset{-85, 40}}
	if q != want {
		t.Fatalf("got %+v want %+v", q, want)
	}

	for _, line := range []string{"", "   ", "# just a comment"} {
		if _, ok, err := ParseQueryLine(line); ok || err != nil {
			t.Fatalf("%q: ok=%v err=%v", line, ok, err)
		}
	}
}

func TestParseQueryLine_Errors(t *testing.T) {
	for _, line := range []string{
		`aim front 1 1 0 0`,
		`locate front 1 1 0`,
		`locate front 1 one 0 0`,
		`locate "front 1 1 0 0`,
	} {
		if _, ok, err := ParseQueryLine(line); ok || !errors.Is(err, ErrConfig) {
			t.Fatalf("%q: expected ErrConfig, got ok=%v err=%v", line, ok, err)
		}
	}
}

func TestParseAngleLine(t *testing.T) {
	a, ok, err := ParseAngleLine(`angle front 1.5 1 "left monitor" 0.5 1.5`)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	want := AngleCfg{
		From: PixelRef{Screen: "front", Pixel: Pixel{1.5, 1}},
		To:   PixelRef{Screen: "left monitor", Pixel: Pixel{0.5, 1.5}},
	}
	if a != want {
		t.Fatalf("got %+v want %+v", a, want)
	}

	for _, line := range []string{"", "# comment", "locate front 1 1 0 0"} {
		if _, ok, err := ParseAngleLine(line); ok || err != nil {
			t.Fatalf("%q: ok=%v err=%v", line, ok, err)
		}
	}
	if _, ok, err := ParseQueryLine(`angle front 0 0 left 0 0`); ok || err != nil {
		t.Fatalf("locate parser took an angle line: ok=%v err=%v", ok, err)
	}
}

func TestParseAngleLine_Errors(t *testing.T) {
	for _, line := range []string{
		`angle front 1 1 left 0`,
		`angle front 1 x left 0 0`,
		`angle front 1 1 left 0 y`,
		`measure front 1 1 left 0 0`,
	} {
		if _, ok, err := ParseAngleLine(line); ok || !errors.Is(err, ErrConfig) {
			t.Fatalf("%q: expected ErrConfig, got ok=%v err=%v", line, ok, err)
		}
	}
}
