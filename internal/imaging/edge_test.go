package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createEdgeTestImage creates a white image with a black square in the middle
func createEdgeTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x >= width/4 && x < 3*width/4 && y >= height/4 && y < 3*height/4 {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

func TestEdgeMap(t *testing.T) {
	img := createEdgeTestImage(100, 100)

	result, err := EdgeMap(img, 1, 1)
	if err != nil {
		t.Fatalf("EdgeMap failed: %v", err)
	}

	if result.Width != 100 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.EdgePixels == 0 {
		t.Error("expected edge pixels around the square")
	}

	edges := decodeResult(t, &result.EncodedImage)

	// Just outside the square's left side is white next to black
	if r, _, _, _ := edges.At(24, 50).RGBA(); r>>8 != 255 {
		t.Errorf("pixel (24,50) should be an edge, got %d", r>>8)
	}
	// Deep inside the square and far outside it nothing changes
	for _, p := range []image.Point{{50, 50}, {5, 5}} {
		if r, _, _, _ := edges.At(p.X, p.Y).RGBA(); r != 0 {
			t.Errorf("pixel %v should not be an edge, got %d", p, r>>8)
		}
	}
}

func TestEdgeMap_FlatImageHasNoEdges(t *testing.T) {
	img := createInMemoryImage(40, 30, color.RGBA{200, 50, 10, 255})

	result, err := EdgeMap(img, 1, 1)
	if err != nil {
		t.Fatalf("EdgeMap failed: %v", err)
	}
	if result.EdgePixels != 0 {
		t.Errorf("flat image: got %d edge pixels, want 0", result.EdgePixels)
	}
}

func TestEdgeMap_DefaultsApplied(t *testing.T) {
	img := createEdgeTestImage(40, 40)

	result, err := EdgeMap(img, 0, 0)
	if err != nil {
		t.Fatalf("EdgeMap with zero params failed: %v", err)
	}
	if result.EdgePixels == 0 {
		t.Error("defaults should still detect the square")
	}
}
