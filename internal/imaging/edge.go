package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// EdgeResult is a binary boundary map: white pixels mark region borders.
type EdgeResult struct {
	EncodedImage

	// EdgePixels is the number of white pixels in the map.
	EdgePixels int `json:"edge_pixels"`
}

// EdgeMap highlights the borders between flat colour areas.
//
// The image is convolved with bild's edge kernel of the given radius and
// then thresholded: a pixel is an edge when its response is at least
// threshold (0-255). Flat fills respond with zero, so any threshold above
// zero isolates the boundaries between regions and against the background.
// The canvas border is extended outward, so it does not count as an edge.
func EdgeMap(img image.Image, radius float64, threshold uint8) (*EdgeResult, error) {
	if radius <= 0 {
		radius = 1
	}
	if threshold == 0 {
		threshold = 1
	}

	edges := segment.Threshold(effect.EdgeDetection(img, radius), threshold)

	count := 0
	for _, v := range edges.Pix {
		if v == 0xff {
			count++
		}
	}

	enc, err := Encode(edges, "png", 1)
	if err != nil {
		return nil, err
	}
	return &EdgeResult{EncodedImage: *enc, EdgePixels: count}, nil
}
