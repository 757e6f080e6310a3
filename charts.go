package main

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// History records per-tick state counts for the infection curve.
type History struct {
	Times      []float64
	Vulnerable []float64
	Infected   []float64
	Immune     []float64
}

// Record appends the model's current counts.
func (h *History) Record(m *Model) {
	vulnerable, infected, immune := countStates(m)
	h.Times = append(h.Times, float64(m.Time))
	h.Vulnerable = append(h.Vulnerable, float64(vulnerable))
	h.Infected = append(h.Infected, float64(infected))
	h.Immune = append(h.Immune, float64(immune))
}

// SaveChart renders the recorded infection curve to a PNG file, one series
// per disease state.
func (h *History) SaveChart(filename string) error {
	if len(h.Times) < 2 {
		return fmt.Errorf("not enough data points to render a chart")
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis:  chart.XAxis{Name: "Tick"},
		YAxis:  chart.YAxis{Name: "Cells"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Vulnerable",
				XValues: h.Times,
				YValues: h.Vulnerable,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 150, G: 150, B: 150, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Infected",
				XValues: h.Times,
				YValues: h.Infected,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Immune",
				XValues: h.Times,
				YValues: h.Immune,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
