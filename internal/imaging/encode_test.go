package imaging

import (
	"encoding/base64"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestEncode_Formats(t *testing.T) {
	img := createInMemoryImage(12, 8, color.RGBA{10, 20, 30, 255})

	tests := []struct {
		format   string
		wantMime string
	}{
		{"", "image/png"},
		{"png", "image/png"},
		{"BMP", "image/bmp"},
		{"jpg", "image/jpeg"},
		{"gif", "image/gif"},
		{"tiff", "image/tiff"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			result, err := Encode(img, tt.format, 1)
			if err != nil {
				t.Fatalf("Encode(%q) failed: %v", tt.format, err)
			}
			if result.MimeType != tt.wantMime {
				t.Errorf("MimeType: got %s, want %s", result.MimeType, tt.wantMime)
			}
			if _, err := base64.StdEncoding.DecodeString(result.ImageBase64); err != nil {
				t.Errorf("failed to decode base64: %v", err)
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	img := createInMemoryImage(4, 4, color.Black)
	if _, err := Encode(img, "webp", 1); err == nil {
		t.Error("Encode should reject unknown formats")
	}
}

func TestScale_NearestNeighbourKeepsBorders(t *testing.T) {
	img := createPatternImage(4, 4)

	scaled := Scale(img, 3)

	if b := scaled.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("scaled size: got %dx%d, want 12x12", b.Dx(), b.Dy())
	}
	// The last red column before green must stay pure red
	r, g, b, _ := scaled.At(5, 0).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("pixel (5,0): got (%d,%d,%d), want pure red", r>>8, g>>8, b>>8)
	}
	r, g, _, _ = scaled.At(6, 0).RGBA()
	if r != 0 || g>>8 != 255 {
		t.Errorf("pixel (6,0): got (%d,%d), want pure green", r>>8, g>>8)
	}
}

func TestScale_IdentityAndInvalid(t *testing.T) {
	img := createInMemoryImage(5, 5, color.Black)
	for _, f := range []float64{1, 0, -2, 0.01} {
		if got := Scale(img, f); got != img {
			t.Errorf("Scale(%v) should return the input unchanged", f)
		}
	}
}

func TestSave(t *testing.T) {
	img := createPatternImage(10, 6)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			result, err := Save(img, path, 2)
			if err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if result.Width != 20 || result.Height != 12 {
				t.Errorf("saved size: got %dx%d, want 20x12", result.Width, result.Height)
			}
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("saved file missing: %v", err)
			}
			back, err := imaging.Open(path)
			if err != nil {
				t.Fatalf("failed to reopen %s: %v", name, err)
			}
			if b := back.Bounds(); b.Dx() != 20 || b.Dy() != 12 {
				t.Errorf("reopened size: got %dx%d, want 20x12", b.Dx(), b.Dy())
			}
		})
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	img := createInMemoryImage(4, 4, color.Black)
	if _, err := Save(img, filepath.Join(t.TempDir(), "out.webp"), 1); err == nil {
		t.Error("Save should reject unsupported extensions")
	}
}
