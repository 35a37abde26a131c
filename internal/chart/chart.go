// Package chart draws the converted-area pie chart used on screen and in exports.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/format"
)

// ErrNothingToDraw means no line item has a positive converted area.
var ErrNothingToDraw = errors.New("chart: nothing to draw")

// minLabelShare is the smallest slice share that still gets a percentage label.
const minLabelShare = 0.05

// Palette cycles across slices in breakdown order.
var Palette = []color.RGBA{
	{0x22, 0xd3, 0xee, 0xff},
	{0x34, 0xd3, 0x99, 0xff},
	{0xfa, 0xcc, 0x15, 0xff},
	{0xf8, 0x71, 0x71, 0xff},
	{0xa7, 0x8b, 0xfa, 0xff},
	{0xe8, 0x79, 0xf9, 0xff},
}

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	labelInk   = color.RGBA{0x0f, 0x17, 0x2a, 0xff}
	legendInk  = color.RGBA{0x33, 0x41, 0x55, 0xff}
)

// Options controls the output size. Width and Height are logical pixels and
// Scale multiplies them for the final raster.
type Options struct {
	Width  int
	Height int
	Scale  int
}

// DefaultOptions matches the export size: 600x400 at 2x.
func DefaultOptions() Options {
	return Options{Width: 600, Height: 400, Scale: 2}
}

// Slice is one wedge of the pie.
type Slice struct {
	Label string
	Value float64
	Share float64
	Color color.RGBA
}

// Slices converts the breakdown into wedges. Items with a non-positive converted
// area are skipped since they cannot be drawn; colors follow the original item index.
func Slices(result estimate.Result) []Slice {
	total := 0.0
	for _, item := range result.Breakdown {
		if item.ConvertedArea > 0 {
			total += item.ConvertedArea
		}
	}
	if total <= 0 {
		return nil
	}

	slices := make([]Slice, 0, len(result.Breakdown))
	for i, item := range result.Breakdown {
		if item.ConvertedArea <= 0 {
			continue
		}
		slices = append(slices, Slice{
			Label: item.Name,
			Value: item.ConvertedArea,
			Share: item.ConvertedArea / total,
			Color: Palette[i%len(Palette)],
		})
	}
	return slices
}

// RenderPNG draws the chart and encodes it as PNG.
func RenderPNG(result estimate.Result, opts Options) ([]byte, error) {
	img, err := Render(result, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode chart png: %w", err)
	}
	return buf.Bytes(), nil
}

// Render draws the chart on a white canvas.
func Render(result estimate.Result, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("chart: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	slices := Slices(result)
	if len(slices) == 0 {
		return nil, ErrNothingToDraw
	}

	w, h := opts.Width*opts.Scale, opts.Height*opts.Scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	margin := 16 * opts.Scale
	radius := h/2 - margin
	if radius > w/3 {
		radius = w / 3
	}
	cx, cy := margin+radius, h/2

	drawPie(img, cx, cy, radius, slices)
	drawPercentLabels(img, cx, cy, radius, slices)
	drawLegend(img, cx+radius+2*margin, margin, opts.Scale, slices)

	return img, nil
}

// drawPie fills wedges clockwise from 12 o'clock.
func drawPie(img *image.RGBA, cx, cy, radius int, slices []Slice) {
	bounds := make([]float64, len(slices))
	acc := 0.0
	for i, s := range slices {
		acc += s.Share
		bounds[i] = acc * 2 * math.Pi
	}

	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			theta := math.Atan2(float64(dy), float64(dx)) + math.Pi/2
			if theta < 0 {
				theta += 2 * math.Pi
			}
			idx := len(slices) - 1
			for i, b := range bounds {
				if theta < b {
					idx = i
					break
				}
			}
			img.SetRGBA(x, y, slices[idx].Color)
		}
	}
}

func drawPercentLabels(img *image.RGBA, cx, cy, radius int, slices []Slice) {
	start := 0.0
	for _, s := range slices {
		sweep := s.Share * 2 * math.Pi
		mid := start + sweep/2
		start += sweep

		if s.Share < minLabelShare {
			continue
		}

		text := fmt.Sprintf("%d%%", int(math.Round(s.Share*100)))
		lx := cx + int(0.6*float64(radius)*math.Sin(mid))
		ly := cy - int(0.6*float64(radius)*math.Cos(mid))
		drawText(img, lx-textWidth(text)/2, ly+5, text, labelInk, inconsolata.Bold8x16)
	}
}

func drawLegend(img *image.RGBA, x, y, scale int, slices []Slice) {
	box := 8 * scale
	row := 14 * scale
	for i, s := range slices {
		top := y + i*row
		draw.Draw(img, image.Rect(x, top, x+box, top+box), image.NewUniform(s.Color), image.Point{}, draw.Src)

		text := fmt.Sprintf("%s (%s m2)", format.ASCII(s.Label), format.Area(s.Value))
		drawText(img, x+box+6*scale, top+box/2+5, text, legendInk, inconsolata.Regular8x16)
	}
}

func drawText(img *image.RGBA, x, y int, text string, ink color.RGBA, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func textWidth(text string) int {
	return font.MeasureString(inconsolata.Bold8x16, text).Round()
}
