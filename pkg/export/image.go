// Package export writes rendered canvases to disk or object storage.
package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for formats that cannot be encoded
var ErrUnsupportedFormat = errors.New("unsupported image format")

// FormatPPM is the plain-text format written by the canvas itself
const FormatPPM = "ppm"

var imagingFormats = map[string]imaging.Format{
	"png":  imaging.PNG,
	"jpg":  imaging.JPEG,
	"jpeg": imaging.JPEG,
	"gif":  imaging.GIF,
	"bmp":  imaging.BMP,
	"tif":  imaging.TIFF,
	"tiff": imaging.TIFF,
}

var contentTypes = map[string]string{
	FormatPPM: "image/x-portable-pixmap",
	"png":     "image/png",
	"jpg":     "image/jpeg",
	"jpeg":    "image/jpeg",
	"gif":     "image/gif",
	"bmp":     "image/bmp",
	"tif":     "image/tiff",
	"tiff":    "image/tiff",
}

// NormalizeFormat lower-cases a format name or file extension and checks
// that it can be encoded
func NormalizeFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return f, nil
}

// ContentType returns the MIME type for a format, or application/octet-stream
func ContentType(format string) string {
	f, err := NormalizeFormat(format)
	if err != nil {
		return "application/octet-stream"
	}
	return contentTypes[f]
}

// Encode writes the canvas to w in the given format
func Encode(w io.Writer, canvas *renderer.Canvas, format string) error {
	f, err := NormalizeFormat(format)
	if err != nil {
		return err
	}
	if f == FormatPPM {
		return canvas.WritePPM(w)
	}
	return EncodeImage(w, canvas.Image(), f)
}

// EncodeImage writes an already converted image. PPM is not available here.
func EncodeImage(w io.Writer, img image.Image, format string) error {
	f, err := NormalizeFormat(format)
	if err != nil {
		return err
	}
	imgFormat, ok := imagingFormats[f]
	if !ok {
		return fmt.Errorf("%w: %q for images", ErrUnsupportedFormat, format)
	}
	if err := imaging.Encode(w, img, imgFormat); err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return nil
}

// Save writes the canvas to path, choosing the format from the extension.
// Missing parent directories are created.
func Save(path string, canvas *renderer.Canvas) error {
	f, err := NormalizeFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if f != FormatPPM {
		return SaveImage(path, canvas.Image())
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := canvas.WritePPM(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// SaveImage writes img to path, choosing the format from the extension
func SaveImage(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Thumbnail scales img down to fit within maxSize x maxSize, keeping its
// aspect ratio. Images that already fit are returned unchanged.
func Thumbnail(img image.Image, maxSize uint) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img, resize.Bilinear)
}
