package imaging

import (
	"image"
	"image/color"
	"math"
)

// CoverageResult reports how much of an image is background.
type CoverageResult struct {
	TotalPixels       int     `json:"total_pixels"`
	BackgroundPixels  int     `json:"background_pixels"`
	CoveredPixels     int     `json:"covered_pixels"`
	BackgroundPercent float64 `json:"background_percent"` // 0-100, one decimal
	CoveredPercent    float64 `json:"covered_percent"`    // 0-100, one decimal
}

// Coverage counts the pixels of img equal to background.
//
// An empty image reports zero pixels and zero percentages.
func Coverage(img image.Image, background color.Color) *CoverageResult {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	bg := color.NRGBAModel.Convert(background).(color.NRGBA)

	n := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA) == bg {
				n++
			}
		}
	}

	result := &CoverageResult{
		TotalPixels:      total,
		BackgroundPixels: n,
		CoveredPixels:    total - n,
	}
	if total > 0 {
		result.BackgroundPercent = percent(n, total)
		result.CoveredPercent = percent(total-n, total)
	}
	return result
}

func percent(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}
