package export

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func testCanvas() *renderer.Canvas {
	c := renderer.NewCanvas(4, 2)
	c.Set(0, 0, core.NewColor(1, 0, 0))
	c.Set(3, 1, core.NewColor(0, 0, 1))
	return c
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"png", "png", false},
		{".PNG", "png", false},
		{"jpeg", "jpeg", false},
		{".ppm", "ppm", false},
		{"webp", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil || got != tt.expected {
				t.Errorf("NormalizeFormat(%q) = %q, %v; want %q", tt.input, got, err, tt.expected)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	if ct := ContentType("png"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
	if ct := ContentType("ppm"); ct != "image/x-portable-pixmap" {
		t.Errorf("Expected image/x-portable-pixmap, got %s", ct)
	}
	if ct := ContentType("webp"); ct != "application/octet-stream" {
		t.Errorf("Expected application/octet-stream, got %s", ct)
	}
}

func TestEncode_PPM(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testCanvas(), "ppm"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "P3\n4 2\n255\n") {
		t.Errorf("Unexpected PPM header %q", buf.String())
	}
}

func TestEncode_PNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testCanvas(), "png"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, err := imaging.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("Expected red top-left pixel, got %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestEncodeImage_RejectsPPM(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeImage(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1)), "ppm")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"nested/render.png", "render.jpg", "render.ppm"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, testCanvas()); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Expected file to exist: %v", err)
			}
			if info.Size() == 0 {
				t.Error("Expected a non-empty file")
			}
		})
	}

	if err := Save(filepath.Join(dir, "render.webp"), testCanvas()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		maxSize        uint
		expectedWidth  int
		expectedHeight int
	}{
		{"landscape", 200, 100, 50, 50, 25},
		{"portrait", 100, 200, 50, 25, 50},
		{"already small", 20, 10, 50, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
			thumb := Thumbnail(img, tt.maxSize)
			if thumb.Bounds().Dx() != tt.expectedWidth || thumb.Bounds().Dy() != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, thumb.Bounds().Dx(), thumb.Bounds().Dy())
			}
		})
	}
}
