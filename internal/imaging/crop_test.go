package imaging

import (
	"image/color"
	"testing"
)

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		scale          float64
		wantW, wantH   int
	}{
		{"quadrant", 0, 0, 50, 50, 1, 50, 50},
		{"full image", 0, 0, 100, 100, 1, 100, 100},
		{"scale up", 0, 0, 50, 50, 2, 100, 100},
		{"scale down", 0, 0, 100, 100, 0.5, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Crop(img, tt.x1, tt.y1, tt.x2, tt.y2, tt.scale)
			if err != nil {
				t.Fatalf("Crop failed: %v", err)
			}
			if result.Width != tt.wantW || result.Height != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", result.Width, result.Height, tt.wantW, tt.wantH)
			}
			if result.MimeType != "image/png" {
				t.Errorf("MimeType: got %s, want image/png", result.MimeType)
			}
		})
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 negative", -1, 0, 50, 50},
		{"y1 negative", 0, -1, 50, 50},
		{"x2 too large", 0, 0, 101, 50},
		{"y2 too large", 0, 0, 50, 101},
		{"x1 >= x2", 50, 0, 50, 50},
		{"y1 > y2", 0, 60, 50, 50},
		{"zero area", 50, 50, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.x1, tt.y1, tt.x2, tt.y2, 1.0); err == nil {
				t.Error("Crop should fail")
			}
		})
	}
}

func TestCropNamed(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		area         string
		wantW, wantH int
		wantHex      string // color at the crop's center
	}{
		{"top-left", 50, 50, "#FF0000"},
		{"top-right", 50, 50, "#00FF00"},
		{"bottom-left", 50, 50, "#0000FF"},
		{"bottom-right", 50, 50, "#FFFFFF"},
		{"top-half", 100, 50, ""},
		{"bottom-half", 100, 50, ""},
		{"left-half", 50, 100, ""},
		{"right-half", 50, 100, ""},
		{"center", 50, 50, ""},
	}

	for _, tt := range tests {
		t.Run(tt.area, func(t *testing.T) {
			result, err := CropNamed(img, tt.area, 1.0)
			if err != nil {
				t.Fatalf("CropNamed(%s) failed: %v", tt.area, err)
			}
			if result.Width != tt.wantW || result.Height != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					result.Width, result.Height, tt.wantW, tt.wantH)
			}
			if tt.wantHex == "" {
				return
			}
			cropped := decodeResult(t, result)
			got := DescribeColor(cropped.At(result.Width/2, result.Height/2)).Hex
			if got != tt.wantHex {
				t.Errorf("color in %s: got %s, want %s", tt.area, got, tt.wantHex)
			}
		})
	}
}

func TestCropNamed_UnknownArea(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	for _, area := range []string{"invalid", "TOP-LEFT", "", "center-left"} {
		if _, err := CropNamed(img, area, 1.0); err == nil {
			t.Errorf("CropNamed should fail for area %q", area)
		}
	}
}

func TestCropNamed_OddDimensions(t *testing.T) {
	img := createInMemoryImage(101, 101, color.RGBA{255, 0, 0, 255})

	result, err := CropNamed(img, "top-left", 2.0)
	if err != nil {
		t.Fatalf("CropNamed failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
}
