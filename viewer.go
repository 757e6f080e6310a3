package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Viewer animates a running model in a window. Each frame advances the
// simulation one tick until no infected cells remain.
type Viewer struct {
	model   *Model
	history *History
	done    bool
}

func NewViewer(m *Model, h *History) *Viewer {
	return &Viewer{model: m, history: h}
}

// Update runs one simulation tick per frame.
func (v *Viewer) Update() error {
	if v.done {
		return nil
	}
	if v.model.IsComplete() {
		v.done = true
		return nil
	}
	v.model.Tick()
	if v.history != nil {
		v.history.Record(v.model)
	}
	return nil
}

// Draw paints every cell as a filled circle colored by disease state, plus a
// small status line.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for i := range v.model.Population {
		cell := &v.model.Population[i]
		cx, cy := worldToScreen(cell.Location, ScreenWidth, ScreenHeight)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), 4, stateColors[cell.Color()], true)
	}

	vulnerable, infected, immune := countStates(v.model)
	status := fmt.Sprintf("Tick: %d | Vulnerable: %d | Infected: %d | Immune: %d",
		v.model.Time, vulnerable, infected, immune)
	text.Draw(screen, status, basicfont.Face7x13, 10, 20, color.White)

	if v.done {
		text.Draw(screen, "Simulation complete", basicfont.Face7x13, 10, 40, color.White)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
