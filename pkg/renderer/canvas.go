package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ppmLineLimit is the longest line a plain PPM file may contain
const ppmLineLimit = 70

// Canvas is a grid of unclamped colors, row-major with (0, 0) at the top left
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Set writes a pixel. Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, color core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = color
}

// At reads a pixel. Coordinates outside the canvas read as black.
func (c *Canvas) At(x, y int) core.Color {
	if !c.inBounds(x, y) {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePPM writes the canvas as a plain-text (P3) PPM image with components
// clamped and scaled to 0-255. No line is longer than 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	line := make([]byte, 0, ppmLineLimit)
	for y := 0; y < c.height; y++ {
		line = line[:0]
		for x := 0; x < c.width; x++ {
			r, g, b := c.At(x, y).Bytes()
			for _, component := range [3]uint8{r, g, b} {
				token := strconv.Itoa(int(component))
				if len(line) > 0 && len(line)+1+len(token) > ppmLineLimit {
					line = append(line, '\n')
					if _, err := bw.Write(line); err != nil {
						return fmt.Errorf("writing PPM row %d: %w", y, err)
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, token...)
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("writing PPM row %d: %w", y, err)
		}
	}

	return bw.Flush()
}

// Image converts the canvas to an 8-bit RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, c.At(x, y).ToRGBA())
		}
	}
	return img
}
