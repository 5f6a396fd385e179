package icons

import (
	"image"
	"math"

	"iconsynth/canvas"
	"iconsynth/palette"
)

const (
	webSize   = 100
	webAxes   = 6
	webRadius = 36
	webRings  = 4
)

// Share of webRadius reached on each axis by the sample data polygon.
var webData = [webAxes]float64{0.75, 0.6, 0.8, 0.55, 0.7, 0.65}

// axisPoint returns the point at distance r along axis i, axis 0 pointing up.
func axisPoint(cx, cy int, r float64, i int) image.Point {
	a := -math.Pi/2 + float64(i)*2*math.Pi/webAxes
	return image.Point{
		X: int(math.RoundToEven(float64(cx) + r*math.Cos(a))),
		Y: int(math.RoundToEven(float64(cy) + r*math.Sin(a))),
	}
}

// drawWeb renders the radar chart: hexagonal rings, axes, a filled data
// polygon with an outline, a dot per axis tip and a hub.
func drawWeb(b *canvas.Buffer, t palette.Theme) {
	cx, cy := b.Width()/2, b.Height()/2

	for ring := 1; ring <= webRings; ring++ {
		r := math.RoundToEven(float64(ring) / webRings * webRadius)
		c := t.Ring
		if ring == webRings {
			c = t.OuterRing
		}
		ringPts := make([]image.Point, webAxes)
		for i := range ringPts {
			ringPts[i] = axisPoint(cx, cy, r, i)
		}
		b.StrokePolygon(ringPts, c)
	}

	for i := range webAxes {
		tip := axisPoint(cx, cy, webRadius, i)
		b.DrawLine(cx, cy, tip.X, tip.Y, t.Axis)
	}

	data := make([]image.Point, webAxes)
	for i, v := range webData {
		data[i] = axisPoint(cx, cy, v*webRadius, i)
	}
	b.FillPolygon(data, t.DataFill)
	b.StrokePolygon(data, t.DataStroke)

	for i, c := range t.Accents() {
		b.DrawCircle(data[i].X, data[i].Y, 3, c)
	}
	b.DrawCircle(cx, cy, 2, t.Hub)
}
