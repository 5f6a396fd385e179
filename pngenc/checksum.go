package pngenc

import (
	"bytes"
	"compress/zlib"
	"hash/crc32"
)

// CRC32 is the IEEE CRC-32 (reflected polynomial 0xEDB88320) of b.
func CRC32(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

// Checksum is the block CRC: CRC-32 over the tag followed by the payload.
func Checksum(tag, payload []byte) uint32 {
	return crc32.Update(crc32.ChecksumIEEE(tag), crc32.IEEETable, payload)
}

// Deflate returns b as a zlib stream compressed at level.
func Deflate(b []byte, level CompressionLevel) ([]byte, error) {
	var out bytes.Buffer
	zw, err := zlib.NewWriterLevel(&out, level.zlib())
	if err != nil {
		return nil, err
	}
	if _, err = zw.Write(b); err != nil {
		return nil, err
	}
	if err = zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
