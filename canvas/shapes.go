package canvas

import (
	"image"
	"slices"
)

// Predicate reports whether the pixel at (x, y) belongs to a region.
type Predicate func(x, y int) bool

// FillWhere paints every pixel for which in returns true.
func (b *Buffer) FillWhere(in Predicate, c Color) {
	for y := range b.height {
		for x := range b.width {
			if in(x, y) {
				b.SetPixel(x, y, c)
			}
		}
	}
}

// Disk returns the closed disk predicate (x-cx)^2 + (y-cy)^2 <= r^2.
func Disk(cx, cy, r int) Predicate {
	return func(x, y int) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	}
}

// DrawCircle fills the closed disk of radius r centered on (cx, cy).
func (b *Buffer) DrawCircle(cx, cy, r int, c Color) {
	b.FillWhere(Disk(cx, cy, r), c)
}

// FillRect fills the half-open span [x0, x1) x [y0, y1).
func (b *Buffer) FillRect(x0, y0, x1, y1 int, c Color) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.SetPixel(x, y, c)
		}
	}
}

// DrawLine rasterizes the segment between two points with Bresenham's
// algorithm. Both endpoints are plotted. The segment is always walked from
// the lesser endpoint so both directions plot the same pixels.
func (b *Buffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	if x0 > x1 || (x0 == x1 && y0 > y1) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx, dy := abs(x1-x0), abs(y1-y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	for {
		b.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0++
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokePolygon draws every edge of the closed polygon, including the
// edge from the last vertex back to the first.
func (b *Buffer) StrokePolygon(vertices []image.Point, c Color) {
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		b.DrawLine(p.X, p.Y, q.X, q.Y, c)
	}
}

// FillPolygon fills a closed polygon using the even-odd rule. Each
// scanline collects the truncated x intersections of edges spanning it
// (half-open in y), sorts them and fills [x0, x1), [x2, x3), ...
// Degenerate and self-intersecting input is not rejected.
func (b *Buffer) FillPolygon(vertices []image.Point, c Color) {
	n := len(vertices)
	xs := make([]int, 0, n)
	for y := range b.height {
		xs = xs[:0]
		for i, p := range vertices {
			q := vertices[(i+1)%n]
			if (p.Y <= y && y < q.Y) || (q.Y <= y && y < p.Y) {
				t := float64(y-p.Y) / float64(q.Y-p.Y)
				xs = append(xs, int(float64(p.X)+t*float64(q.X-p.X)))
			}
		}
		slices.Sort(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			b.FillRect(xs[k], y, xs[k+1], y+1, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
