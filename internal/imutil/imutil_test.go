package imutil

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// pngBytes encodes a small test image as PNG.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoad_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.png")
	if err := os.WriteFile(path, pngBytes(t, 8, 6), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 8x6", b)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}

func TestDecodeBytes(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrEmptyData},
		{"garbage", []byte("not an image at all"), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeBytes() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("valid png", func(t *testing.T) {
		img, err := DecodeBytes(pngBytes(t, 4, 4))
		if err != nil {
			t.Fatalf("DecodeBytes: %v", err)
		}
		if img.Bounds().Dx() != 4 {
			t.Errorf("bounds = %v", img.Bounds())
		}
	})
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))

	tests := []struct {
		name string
		w, h int
	}{
		{"downscale", 50, 50},
		{"upscale", 150, 120},
		{"identity", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := Scale(src, tt.w, tt.h)
			if b := dst.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("bounds = %v, want %dx%d", b, tt.w, tt.h)
			}
		})
	}
}

func TestScale_Degenerate(t *testing.T) {
	dst := Scale(nil, -5, 10)
	if b := dst.Bounds(); b.Dx() != 0 {
		t.Errorf("degenerate scale bounds = %v, want empty", b)
	}
}
