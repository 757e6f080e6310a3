package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	frameWidth       = 400 // exported frames are square
	framePointRadius = 3.0
	gifDelay         = 5 // GIF frame delay, 1/100 s
	videoFPS         = 30
	gifFilename      = "contagion.gif"
	videoFilename    = "contagion.avi"
	chartFilename    = "contagion_curve.png"
)

func main() {
	cells := flag.Int("cells", DefaultCellCount, "population size")
	speed := flag.Float64("speed", DefaultCellSpeed, "cell movement per tick")
	startInfected := flag.Int("infected", DefaultStartInfected, "cells infected at start")
	startImmune := flag.Int("immune", DefaultStartImmune, "cells immune at start")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	headless := flag.Bool("headless", false, "run without a window and export gif/avi/chart")
	maxTicks := flag.Int("maxticks", 10000, "tick limit for headless runs")
	frameFrequency := flag.Int("framefreq", 2, "capture every n-th tick in headless runs")
	flag.Parse()

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	model, err := NewModel(*cells, *speed, *startInfected, *startImmune, rng)
	if err != nil {
		log.Fatal(err)
	}

	history := &History{}
	history.Record(model)

	if *headless {
		runHeadless(model, history, *maxTicks, *frameFrequency)
		return
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Contagion")
	if err := ebiten.RunGame(NewViewer(model, history)); err != nil {
		log.Fatal(err)
	}
	if err := history.SaveChart(chartFilename); err != nil {
		fmt.Println("failed to save chart:", err)
	} else {
		fmt.Println("Chart saved to:", chartFilename)
	}
}

// runHeadless ticks the model until it completes (or the tick limit is hit),
// printing one stats line per tick and exporting the captured frames.
func runHeadless(model *Model, history *History, maxTicks, frameFrequency int) {
	fmt.Println("Tick, Vulnerable, Infected, Immune")
	printStats(model)

	frames := []image.Image{model.DrawToImage(frameWidth, framePointRadius)}

	for tick := 1; tick <= maxTicks && !model.IsComplete(); tick++ {
		model.Tick()
		history.Record(model)
		printStats(model)
		if tick%frameFrequency == 0 {
			frames = append(frames, model.DrawToImage(frameWidth, framePointRadius))
		}
	}

	if err := SaveGIF(gifFilename, frames, gifDelay); err != nil {
		fmt.Println("failed to save gif:", err)
	} else {
		fmt.Println("GIF saved to:", gifFilename)
	}
	if err := SaveVideo(videoFilename, frames, videoFPS); err != nil {
		fmt.Println("failed to save video:", err)
	} else {
		fmt.Println("Video saved to:", videoFilename)
	}
	if err := history.SaveChart(chartFilename); err != nil {
		fmt.Println("failed to save chart:", err)
	} else {
		fmt.Println("Chart saved to:", chartFilename)
	}
}
