// Package pngenc writes pixel buffers as PNG files: an 8-bit truecolor
// image with one zlib-compressed IDAT block and no ancillary blocks.
package pngenc

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	colorTypeRGB  = 2
	colorTypeRGBA = 6
)

var (
	ErrEmptyBuffer         = errors.New("buffer has zero area")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	ErrTooLarge            = errors.New("dimensions exceed png limits")
)

// Source is a finished pixel buffer. Row returns the packed samples of a
// row, Channels components per pixel in R, G, B[, A] order.
type Source interface {
	Width() int
	Height() int
	Channels() int
	Row(y int) []uint8
}

type CompressionLevel int

// The zero value is BestCompression.
const (
	BestCompression    CompressionLevel = 0
	DefaultCompression CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	NoCompression      CompressionLevel = -3
)

func (l CompressionLevel) zlib() int {
	switch l {
	case DefaultCompression:
		return zlib.DefaultCompression
	case BestSpeed:
		return zlib.BestSpeed
	case NoCompression:
		return zlib.NoCompression
	}
	return zlib.BestCompression
}

// EncoderBuffer holds the scratch state of one encode so it can be reused.
type EncoderBuffer struct {
	raw   bytes.Buffer
	idat  bytes.Buffer
	zw    *zlib.Writer
	level int
}

// BufferPool hands out EncoderBuffers to an Encoder.
type BufferPool interface {
	Get() *EncoderBuffer
	Put(*EncoderBuffer)
}

type Encoder struct {
	CompressionLevel CompressionLevel
	BufferPool       BufferPool
}

// Encode returns src as a complete PNG file using maximum compression.
func Encode(src Source) ([]byte, error) {
	var out bytes.Buffer
	if err := (&Encoder{}).Encode(&out, src); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Encode writes src to w as a PNG file. Nothing is written when src is
// rejected.
func (e *Encoder) Encode(w io.Writer, src Source) error {
	width, height := src.Width(), src.Height()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("could not encode %dx%d image: %w", width, height, ErrEmptyBuffer)
	}
	if width > math.MaxInt32 || height > math.MaxInt32 {
		return fmt.Errorf("could not encode %dx%d image: %w", width, height, ErrTooLarge)
	}

	var colorType uint8
	switch src.Channels() {
	case 3:
		colorType = colorTypeRGB
	case 4:
		colorType = colorTypeRGBA
	default:
		return fmt.Errorf("could not encode image: %w: %d", ErrUnsupportedChannels, src.Channels())
	}

	var eb *EncoderBuffer
	if e.BufferPool != nil {
		eb = e.BufferPool.Get()
	}
	if eb == nil {
		eb = &EncoderBuffer{}
	}
	if e.BufferPool != nil {
		defer e.BufferPool.Put(eb)
	}

	eb.raw.Reset()
	stride := width * src.Channels()
	for y := range height {
		row := src.Row(y)
		if len(row) != stride {
			return fmt.Errorf("could not encode row %d: got %d samples, want %d", y, len(row), stride)
		}
		eb.raw.WriteByte(0) // filter type none
		eb.raw.Write(row)
	}

	if err := eb.compress(e.CompressionLevel.zlib()); err != nil {
		return fmt.Errorf("could not compress image data: %w", err)
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = colorType
	// compression, filter and interlace methods stay 0

	if _, err := w.Write(signature[:]); err != nil {
		return fmt.Errorf("could not write signature: %w", err)
	}
	for _, blk := range []struct {
		tag  string
		data []byte
	}{
		{"IHDR", ihdr[:]},
		{"IDAT", eb.idat.Bytes()},
		{"IEND", nil},
	} {
		if err := writeBlock(w, blk.tag, blk.data); err != nil {
			return fmt.Errorf("could not write %s block: %w", blk.tag, err)
		}
	}
	return nil
}

func (eb *EncoderBuffer) compress(level int) error {
	eb.idat.Reset()
	if eb.zw == nil || eb.level != level {
		zw, err := zlib.NewWriterLevel(&eb.idat, level)
		if err != nil {
			return err
		}
		eb.zw, eb.level = zw, level
	} else {
		eb.zw.Reset(&eb.idat)
	}

	if _, err := eb.zw.Write(eb.raw.Bytes()); err != nil {
		return err
	}
	return eb.zw.Close()
}

// writeBlock frames data as length | tag | data | crc.
func writeBlock(w io.Writer, tag string, data []byte) error {
	if len(tag) != 4 {
		return fmt.Errorf("invalid block tag %q", tag)
	}
	if uint64(len(data)) > math.MaxInt32 {
		return fmt.Errorf("payload of %d bytes is too long", len(data))
	}

	var head [8]byte
	binary.BigEndian.PutUint32(head[:4], uint32(len(data)))
	copy(head[4:], tag)
	if _, err := w.Write(head[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], Checksum(head[4:], data))
	_, err := w.Write(tail[:])
	return err
}
