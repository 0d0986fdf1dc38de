package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// EncodedImage is an image serialized for transport in a JSON result.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

var formats = map[string]struct {
	format imaging.Format
	mime   string
}{
	"png":  {imaging.PNG, "image/png"},
	"bmp":  {imaging.BMP, "image/bmp"},
	"jpeg": {imaging.JPEG, "image/jpeg"},
	"jpg":  {imaging.JPEG, "image/jpeg"},
	"gif":  {imaging.GIF, "image/gif"},
	"tif":  {imaging.TIFF, "image/tiff"},
	"tiff": {imaging.TIFF, "image/tiff"},
}

// Scale resizes img by factor with nearest-neighbour sampling, which keeps
// region borders sharp. A factor of 1 (or anything not positive) returns img
// unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1.0 || factor <= 0 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 || h < 1 {
		return img
	}
	return imaging.Resize(img, w, h, imaging.NearestNeighbor)
}

// Encode scales img and encodes it in the named format ("png" when empty).
func Encode(img image.Image, format string, scale float64) (*EncodedImage, error) {
	if format == "" {
		format = "png"
	}
	f, ok := formats[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	out := Scale(img, scale)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, f.format); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    f.mime,
	}, nil
}

// SaveResult describes a written image file.
type SaveResult struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// Save scales img and writes it to path. The format follows the file
// extension (png, bmp, jpg, gif, tif).
func Save(img image.Image, path string, scale float64) (*SaveResult, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if _, ok := formats[ext]; !ok {
		return nil, fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}

	out := Scale(img, scale)
	if err := imaging.Save(out, path); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	return &SaveResult{
		Path:   path,
		Width:  out.Bounds().Dx(),
		Height: out.Bounds().Dy(),
		Format: ext,
	}, nil
}
