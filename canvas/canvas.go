package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Mode is the channel layout of a Buffer. Its value is the number of
// components stored per pixel.
type Mode int

const (
	RGB  Mode = 3
	RGBA Mode = 4
)

func (m Mode) String() string {
	switch m {
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

var (
	ErrInvalidDimension = errors.New("width and height must be positive")
	ErrInvalidMode      = errors.New("unsupported channel mode")
)

// Color is a non-premultiplied 8-bit color. RGB buffers ignore A.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the zero Color.
var Transparent = Color{}

// Opaque returns a fully opaque color.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Buffer is a row-major grid of color samples. The sample at (x, y)
// starts at Pix[y*Stride + x*Channels()].
type Buffer struct {
	Pix    []uint8
	Stride int
	width  int
	height int
	mode   Mode
}

var _ image.Image = (*Buffer)(nil)

// New allocates a width x height buffer with every pixel set to background.
func New(width, height int, mode Mode, background Color) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("could not create %dx%d canvas: %w", width, height, ErrInvalidDimension)
	}
	if mode != RGB && mode != RGBA {
		return nil, fmt.Errorf("could not create canvas: %w: %s", ErrInvalidMode, mode)
	}

	b := &Buffer{
		Pix:    make([]uint8, width*height*int(mode)),
		Stride: width * int(mode),
		width:  width,
		height: height,
		mode:   mode,
	}
	b.Fill(background)
	return b, nil
}

func (b *Buffer) Width() int    { return b.width }
func (b *Buffer) Height() int   { return b.height }
func (b *Buffer) Mode() Mode    { return b.mode }
func (b *Buffer) Channels() int { return int(b.mode) }

// Row returns the packed samples of row y. The slice aliases the buffer.
func (b *Buffer) Row(y int) []uint8 {
	return b.Pix[y*b.Stride : (y+1)*b.Stride]
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	px := c.components(b.mode)
	for i := 0; i < len(b.Pix); i += len(px) {
		copy(b.Pix[i:], px)
	}
}

// SetPixel writes c at (x, y). Writes outside the buffer are dropped.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	copy(b.Pix[y*b.Stride+x*int(b.mode):], c.components(b.mode))
}

// Pixel returns the color at (x, y). RGB samples report A as 0xFF and
// coordinates outside the buffer report Transparent.
func (b *Buffer) Pixel(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := y*b.Stride + x*int(b.mode)
	c := Color{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 0xFF}
	if b.mode == RGBA {
		c.A = b.Pix[i+3]
	}
	return c
}

func (b *Buffer) ColorModel() color.Model { return color.NRGBAModel }

func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

func (b *Buffer) At(x, y int) color.Color { return b.Pixel(x, y) }

// Set lets the buffer act as a draw.Image destination.
func (b *Buffer) Set(x, y int, c color.Color) {
	if cc, ok := c.(Color); ok {
		b.SetPixel(x, y, cc)
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.SetPixel(x, y, Color{R: n.R, G: n.G, B: n.B, A: n.A})
}

func (c Color) components(m Mode) []uint8 {
	if m == RGB {
		return []uint8{c.R, c.G, c.B}
	}
	return []uint8{c.R, c.G, c.B, c.A}
}
