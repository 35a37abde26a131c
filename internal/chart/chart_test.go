package chart

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/Simplici0/housecost/internal/estimate"
)

func TestSlices_SharesSumToOne(t *testing.T) {
	cfg := estimate.ExampleConfiguration()
	cfg.HasBasement = true
	slices := Slices(estimate.Compute(cfg))

	if len(slices) != 5 {
		t.Fatalf("expected 5 slices, got %d", len(slices))
	}
	sum := 0.0
	for _, s := range slices {
		sum += s.Share
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("shares sum to %v", sum)
	}
	if slices[1].Label != "Tầng hầm" || slices[1].Color != Palette[1] {
		t.Fatalf("unexpected basement slice: %+v", slices[1])
	}
}

func TestSlices_SkipsNonPositiveAreasButKeepsColors(t *testing.T) {
	cfg := estimate.ExampleConfiguration()
	cfg.FoundationCoefficient = 0

	slices := Slices(estimate.Compute(cfg))

	if len(slices) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(slices))
	}
	if slices[0].Color != Palette[1] {
		t.Fatalf("first floor should keep its item color")
	}
}

func TestRenderPNG_DecodesAtScaledSize(t *testing.T) {
	data, err := RenderPNG(estimate.Compute(estimate.ExampleConfiguration()), DefaultOptions())
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != 800 {
		t.Fatalf("bounds = %v, want 1200x800", b)
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
		t.Fatalf("corner pixel is not white background")
	}
}

func TestRender_FirstSliceStartsAtTop(t *testing.T) {
	opts := DefaultOptions()
	img, err := Render(estimate.Compute(estimate.ExampleConfiguration()), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	h := opts.Height * opts.Scale
	margin := 16 * opts.Scale
	radius := h/2 - margin
	cx, cy := margin+radius, h/2

	// Just right of 12 o'clock, inside the rim, belongs to the foundation wedge.
	got := img.RGBAAt(cx+4, cy-radius+8)
	if got != Palette[0] {
		t.Fatalf("pixel near top = %v, want %v", got, Palette[0])
	}
}

func TestRender_NothingToDraw(t *testing.T) {
	cfg := estimate.DefaultConfiguration()
	cfg.Width = 0

	_, err := RenderPNG(estimate.Compute(cfg), DefaultOptions())
	if !errors.Is(err, ErrNothingToDraw) {
		t.Fatalf("err = %v, want ErrNothingToDraw", err)
	}
}

func TestRender_InvalidSize(t *testing.T) {
	_, err := Render(estimate.Compute(estimate.ExampleConfiguration()), Options{})
	if err == nil {
		t.Fatalf("expected error for zero size")
	}
}
