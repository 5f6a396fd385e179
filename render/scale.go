package render

import (
	"fmt"

	"iconsynth/canvas"

	"golang.org/x/image/draw"
)

// upscale enlarges buf by an integer factor. Nearest neighbour keeps the
// hard pixel edges of the icons.
func upscale(buf *canvas.Buffer, factor int) (*canvas.Buffer, error) {
	dst, err := canvas.New(buf.Width()*factor, buf.Height()*factor, buf.Mode(), canvas.Transparent)
	if err != nil {
		return nil, fmt.Errorf("could not scale by %d: %w", factor, err)
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), buf, buf.Bounds(), draw.Src, nil)
	return dst, nil
}
