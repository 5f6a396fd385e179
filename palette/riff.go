package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
A PAL file is a RIFF form of type "PAL " holding one or more "data"
chunks, each a LOGPALETTE:

typedef struct tagLOGPALETTE {
  WORD         palVersion;     // 0x0300
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1]; // peRed, peGreen, peBlue, peFlags
} LOGPALETTE;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

var palVersion = [2]byte{0x00, 0x03}

// ReadPAL reads every palette chunk of a RIFF PAL stream, in file order,
// and returns their entries as one palette.
func ReadPAL(r io.Reader) (color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %q", string(formType[:]))
	}

	return readChunks(rd, nil)
}

func readChunks(r *riff.Reader, pal color.Palette) (color.Palette, error) {
	for {
		id, size, data, err := r.Next()
		if errors.Is(err, io.EOF) {
			return pal, nil
		} else if err != nil {
			return pal, fmt.Errorf("could not read chunk after %d colors: %w", len(pal), err)
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return pal, fmt.Errorf("could not read list: %w", err)
			} else if listType != palType {
				return pal, fmt.Errorf("unsupported list type: %q", string(listType[:]))
			}
			if pal, err = readChunks(list, pal); err != nil {
				return pal, err
			}
		case dataType:
			if pal, err = readEntries(data, pal); err != nil {
				return pal, err
			}
		default:
			return pal, fmt.Errorf("unsupported chunk type: %q", string(id[:]))
		}
	}
}

func readEntries(r io.Reader, pal color.Palette) (color.Palette, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return pal, fmt.Errorf("could not read palette header: %w", err)
	}
	if [2]byte(head[:2]) != palVersion {
		return pal, fmt.Errorf("unsupported palette version: %#04x", binary.LittleEndian.Uint16(head[:2]))
	}

	count := int(binary.LittleEndian.Uint16(head[2:]))
	entries := make([]byte, 4*count)
	if _, err := io.ReadFull(r, entries); err != nil {
		return pal, fmt.Errorf("could not read %d palette entries: %w", count, err)
	}
	for i := 0; i < len(entries); i += 4 {
		pal = append(pal, color.NRGBA{R: entries[i], G: entries[i+1], B: entries[i+2], A: 0xFF})
	}
	return pal, nil
}

// WritePAL writes pal as a RIFF PAL stream with a single data chunk.
// Alpha is not representable and is dropped.
func WritePAL(w io.Writer, pal color.Palette) error {
	if len(pal) > 0xFFFF {
		return fmt.Errorf("palette has %d colors, at most 65535 fit", len(pal))
	}

	chunk := make([]byte, 0, 4+4*len(pal))
	chunk = append(chunk, palVersion[:]...)
	chunk = binary.LittleEndian.AppendUint16(chunk, uint16(len(pal)))
	for _, c := range pal {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		chunk = append(chunk, n.R, n.G, n.B, 0)
	}

	out := make([]byte, 0, 20+len(chunk))
	out = append(out, riffType[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(4+8+len(chunk)))
	out = append(out, palType[:]...)
	out = append(out, dataType[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(chunk)))
	out = append(out, chunk...)

	if n, err := w.Write(out); err != nil {
		return fmt.Errorf("could not write palette: %w", err)
	} else if n != len(out) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(out))
	}
	return nil
}
