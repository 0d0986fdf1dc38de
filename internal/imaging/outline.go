package imaging

import (
	"image"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
)

// defaultOutlineColor is opaque black.
var defaultOutlineColor = color.NRGBA{A: 255}

// Outline strokes each rectangle of boxes onto a copy of img.
//
// Rectangles use image conventions (Max exclusive); the stroke runs along
// the outermost pixels inside each rectangle. With showLabels every box is
// marked with its index in boxes at its center. An empty or invalid
// colorHex selects black.
func Outline(img image.Image, boxes []image.Rectangle, colorHex string, showLabels bool) (*EncodedImage, error) {
	lineColor, err := ParseHexColor(colorHex)
	if err != nil {
		lineColor = defaultOutlineColor
	}

	dc := gg.NewContextForImage(img)
	dc.SetLineWidth(1)

	for _, r := range boxes {
		if r.Empty() {
			continue
		}
		dc.SetColor(lineColor)
		dc.DrawRectangle(float64(r.Min.X)+0.5, float64(r.Min.Y)+0.5,
			float64(r.Dx()-1), float64(r.Dy()-1))
		dc.Stroke()
	}

	if showLabels {
		for i, r := range boxes {
			if r.Empty() {
				continue
			}
			cx := float64(r.Min.X+r.Max.X) / 2
			cy := float64(r.Min.Y+r.Max.Y) / 2
			drawLabel(dc, strconv.Itoa(i), cx, cy, 0.5, 0.5)
		}
	}

	return Encode(dc.Image(), "png", 1)
}
