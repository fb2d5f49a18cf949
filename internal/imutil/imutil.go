// Package imutil loads and scales floor-plan images for walktrace.
package imutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imutil: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imutil: empty data")
)

// Load loads an image from the given file path, auto-detecting the
// format. Supported formats: PNG, JPEG.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imutil: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return DecodePNG(f)
	case ".jpg", ".jpeg":
		return DecodeJPEG(f)
	default:
		return Decode(f)
	}
}

// DecodePNG decodes a PNG image from a reader.
func DecodePNG(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imutil: decode png: %w", err)
	}
	return img, nil
}

// DecodeJPEG decodes a JPEG image from a reader.
func DecodeJPEG(r io.Reader) (image.Image, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imutil: decode jpeg: %w", err)
	}
	return img, nil
}

// Decode decodes an image from a reader, detecting the format from the
// content. Unknown formats are reported as ErrUnsupportedFormat.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("imutil: decode: %w", err)
	}
	switch format {
	case "png", "jpeg":
		return img, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// DecodeBytes decodes an image from a byte slice.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}
