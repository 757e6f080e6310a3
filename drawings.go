package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"os"

	"github.com/crazy3lf/colorconv"
	"github.com/icza/mjpeg"
)

// Display colors per state, resolved once through colorconv so the live
// viewer, the GIF and the video all share the same palette.
var stateColors = map[string]color.RGBA{
	"red":  hsvColor(0, 1, 1),
	"blue": hsvColor(220, 1, 1),
	"gray": hsvColor(0, 0, 0.6),
}

func hsvColor(h, s, v float64) color.RGBA {
	r, g, b, _ := colorconv.HSVToRGB(h, s, v)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// worldToScreen maps an arena location to pixel coordinates on a
// width x height canvas.
func worldToScreen(p Point, width, height int) (float64, float64) {
	sx := (p.X - MinX) / BoundsWidth * float64(width)
	sy := (p.Y - MinY) / BoundsHeight * float64(height)
	return sx, sy
}

// DrawToImage renders one snapshot of the model: a black square canvas with
// one filled circle per cell, colored by disease state.
func (m *Model) DrawToImage(canvasWidth int, pointRadius float64) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasWidth))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	if pointRadius <= 0 {
		pointRadius = 2.0
	}
	for i := range m.Population {
		cell := &m.Population[i]
		cx, cy := worldToScreen(cell.Location, canvasWidth, canvasWidth)
		fillCircle(img, cx, cy, pointRadius, stateColors[cell.Color()])
	}
	return img
}

func fillCircle(img *image.RGBA, cx, cy, r float64, col color.RGBA) {
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			if x < 0 || y < 0 || x >= img.Bounds().Dx() || y >= img.Bounds().Dy() {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// SaveGIF writes the captured frames as an animated GIF. delay is the time
// between frames in hundredths of a second (ex. 5 = 0.05s).
func SaveGIF(filename string, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	outGIF := &gif.GIF{}
	for _, img := range frames {
		bounds := img.Bounds()
		// GIF needs paletted images
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.Draw(paletted, bounds, img, bounds.Min, draw.Src)

		outGIF.Image = append(outGIF.Image, paletted)
		outGIF.Delay = append(outGIF.Delay, delay)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return gif.EncodeAll(f, outGIF)
}

// SaveVideo writes the captured frames as an MJPEG-encoded AVI.
func SaveVideo(filename string, frames []image.Image, fps int32) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	bounds := frames[0].Bounds()
	writer, err := mjpeg.New(filename, int32(bounds.Dx()), int32(bounds.Dy()), fps)
	if err != nil {
		return err
	}

	for _, img := range frames {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, nil); err != nil {
			writer.Close()
			return err
		}
		if err := writer.AddFrame(buf.Bytes()); err != nil {
			writer.Close()
			return err
		}
	}
	return writer.Close()
}
