package pngenc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrBadSignature = errors.New("not a png file")
	ErrTruncated    = errors.New("truncated png stream")
	ErrChecksum     = errors.New("block checksum mismatch")
)

// Block is one length-prefixed, checksummed segment of a PNG file.
type Block struct {
	Tag  string
	Data []byte
	CRC  uint32
}

// Valid reports whether CRC matches the tag and payload.
func (b Block) Valid() bool {
	return b.CRC == Checksum([]byte(b.Tag), b.Data)
}

// ReadBlocks splits a PNG file into its blocks and checks each checksum.
// It stops after IEND; pixel data is left compressed.
func ReadBlocks(data []byte) ([]Block, error) {
	if !bytes.HasPrefix(data, signature[:]) {
		return nil, ErrBadSignature
	}

	var blocks []Block
	off := len(signature)
	for {
		if len(data)-off < 12 {
			return blocks, fmt.Errorf("block %d at offset %d: %w", len(blocks), off, ErrTruncated)
		}
		n := binary.BigEndian.Uint32(data[off:])
		tag := string(data[off+4 : off+8])
		if uint64(n) > uint64(len(data)-off-12) {
			return blocks, fmt.Errorf("%s block at offset %d declares %d bytes: %w", tag, off, n, ErrTruncated)
		}

		payload := data[off+8 : off+8+int(n)]
		blk := Block{
			Tag:  tag,
			Data: payload,
			CRC:  binary.BigEndian.Uint32(data[off+8+int(n):]),
		}
		if !blk.Valid() {
			return blocks, fmt.Errorf("%s block at offset %d: %w", tag, off, ErrChecksum)
		}
		blocks = append(blocks, blk)
		off += 12 + int(n)

		if tag == "IEND" {
			return blocks, nil
		}
	}
}

// Header is the decoded IHDR payload.
type Header struct {
	Width, Height     int
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// Channels returns the samples per pixel for the truecolor types this
// package writes, or 0.
func (h Header) Channels() int {
	switch h.ColorType {
	case colorTypeRGB:
		return 3
	case colorTypeRGBA:
		return 4
	}
	return 0
}

func ParseHeader(b Block) (Header, error) {
	if b.Tag != "IHDR" {
		return Header{}, fmt.Errorf("expected IHDR block, got %s", b.Tag)
	}
	if len(b.Data) != 13 {
		return Header{}, fmt.Errorf("IHDR payload has %d bytes, want 13", len(b.Data))
	}
	return Header{
		Width:             int(binary.BigEndian.Uint32(b.Data[0:4])),
		Height:            int(binary.BigEndian.Uint32(b.Data[4:8])),
		BitDepth:          b.Data[8],
		ColorType:         b.Data[9],
		CompressionMethod: b.Data[10],
		FilterMethod:      b.Data[11],
		InterlaceMethod:   b.Data[12],
	}, nil
}
