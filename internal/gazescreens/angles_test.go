package gazescreens

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

func deg(rad Real) Real { return mgl64.RadToDeg(rad) }

func TestPointsOnFlatScreen(t *testing.T) {
	s := mustFlat(t, 2, 1, 0, 0, Vec3{0, 0, -3})
	out, err := AngleBetweenPixels(s, Pixel{0, 0.5}, s, Pixel{1, 0.5})
	if err != nil || !nearly(out, deg(math.Atan(1.0/3)), 1e-9) {
		t.Fatalf("got %.12g (%v)", out, err)
	}
	out, _ = AngleBetweenPixels(s, Pixel{1, 0.5}, s, Pixel{1, 1})
	if !nearly(out, deg(math.Atan(1.0/6)), 1e-9) {
		t.Fatalf("got %.12g", out)
	}
}

func TestPointsOnPitchedFlatScreen(t *testing.T) {
	s := mustFlat(t, 2, 1, 30, 0, Vec3{0, 0, -3})
	out, _ := AngleBetweenPixels(s, Pixel{0, 0.5}, s, Pixel{1, 0.5})
	if !nearly(out, deg(math.Atan(1.0/3)), 1e-9) {
		t.Fatalf("got %.12g", out)
	}
	out, _ = AngleBetweenPixels(s, Pixel{1, 0.5}, s, Pixel{1, 1})
	want := math.Atan(math.Cos(math.Pi/6) / (6 - math.Sin(math.Pi/6)))
	if !nearly(out, deg(want), 1e-9) {
		t.Fatalf("got %.12g want %.12g", out, deg(want))
	}
}

func TestPointsOnTwoFlatScreens(t *testing.T) {
	s1 := mustFlat(t, 2, 1, 0, 0, Vec3{0, 0, -3})
	s2 := mustFlat(t, 3, 1, 0, 90, Vec3{2, 0, 0})
	center := Pixel{1, 0.5}

	cases := []struct {
		p    Pixel
		want Real
	}{
		{Pixel{1.5, 0.5}, 90},
		{Pixel{0, 0.5}, deg(math.Atan(4.0 / 3))},
		{Pixel{3, 0.5}, 90 + deg(math.Atan(3.0/4))},
	}
	for _, c := range cases {
		out, err := AngleBetweenPixels(s1, center, s2, c.p)
		if err != nil || !nearly(out, c.want, 1e-9) {
			t.Fatalf("pixel %+v: got %.12g want %.12g (%v)", c.p, out, c.want, err)
		}
	}
}

func TestAngleBetweenPixels_AtEye(t *testing.T) {
	s := mustFlat(t, 2, 2, 0, 0, Vec3{})
	if _, err := AngleBetweenPixels(s, s.Center(), s, Pixel{0, 0}); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
}
