package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestOutline(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{255, 255, 255, 255})
	boxes := []image.Rectangle{
		image.Rect(0, 0, 10, 20),
		image.Rect(10, 0, 20, 20),
		{}, // skipped
	}

	result, err := Outline(img, boxes, "#000000", false)
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if result.Width != 20 || result.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 20x20", result.Width, result.Height)
	}

	out := decodeResult(t, result)

	// Left edge of the second box is stroked
	if r, _, _, _ := out.At(10, 10).RGBA(); r>>8 > 5 {
		t.Errorf("pixel (10,10) should be on the outline, got red=%d", r>>8)
	}
	// Interior stays white
	if r, _, _, _ := out.At(5, 10).RGBA(); r>>8 != 255 {
		t.Errorf("pixel (5,10) should be untouched, got red=%d", r>>8)
	}
}

func TestOutline_WithLabels(t *testing.T) {
	img := createInMemoryImage(60, 40, color.RGBA{0, 128, 0, 255})
	boxes := []image.Rectangle{image.Rect(0, 0, 30, 40), image.Rect(30, 0, 60, 40)}

	result, err := Outline(img, boxes, "", true)
	if err != nil {
		t.Fatalf("Outline with labels failed: %v", err)
	}
	if result.Width != 60 || result.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 60x40", result.Width, result.Height)
	}
}
