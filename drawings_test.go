package main

import (
	"image/color"
	"testing"
)

func TestWorldToScreenMapsCorners(t *testing.T) {
	cases := []struct {
		p      Point
		sx, sy float64
	}{
		{Point{MinX, MinY}, 0, 0},
		{Point{MaxX, MaxY}, 400, 400},
		{Point{0, 0}, 200, 200},
	}
	for _, tc := range cases {
		sx, sy := worldToScreen(tc.p, 400, 400)
		if !closeTo(sx, tc.sx) || !closeTo(sy, tc.sy) {
			t.Errorf("worldToScreen(%+v) = (%g, %g), want (%g, %g)", tc.p, sx, sy, tc.sx, tc.sy)
		}
	}
}

func TestStateColorsCoverEveryState(t *testing.T) {
	var cell Cell
	states := []func(){
		func() {},
		func() { cell.ContractDisease() },
		func() { cell.Immunize() },
	}
	seen := map[color.RGBA]bool{}
	for _, transition := range states {
		transition()
		c, ok := stateColors[cell.Color()]
		if !ok {
			t.Fatalf("no palette entry for color %q", cell.Color())
		}
		seen[c] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct state colors, got %d", len(seen))
	}
}

func TestDrawToImagePaintsCells(t *testing.T) {
	m := &Model{Population: []Cell{{Location: Point{0, 0}, Sickness: Infected}}}
	img := m.DrawToImage(200, 3)

	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 200 {
		t.Fatalf("canvas = %dx%d, want 200x200", bounds.Dx(), bounds.Dy())
	}
	// cell sits at the arena center, so its circle covers the canvas center
	if got := img.At(100, 100); got != stateColors["red"] {
		t.Fatalf("center pixel = %v, want %v", got, stateColors["red"])
	}
	if got := img.At(0, 0); got != (color.RGBA{A: 255}) {
		t.Fatalf("corner pixel = %v, want black", got)
	}
}

func TestHistoryRecord(t *testing.T) {
	m := &Model{Population: []Cell{
		{Sickness: Vulnerable},
		{Sickness: Infected},
		{Sickness: Infected},
		{Sickness: Immune},
	}, Time: 7}

	h := &History{}
	h.Record(m)

	if len(h.Times) != 1 || h.Times[0] != 7 {
		t.Fatalf("times = %v, want [7]", h.Times)
	}
	if h.Vulnerable[0] != 1 || h.Infected[0] != 2 || h.Immune[0] != 1 {
		t.Fatalf("recorded %g/%g/%g, want 1/2/1", h.Vulnerable[0], h.Infected[0], h.Immune[0])
	}
}
