package icons

import (
	"math"

	"iconsynth/canvas"
	"iconsynth/palette"
)

var shine = canvas.Color{R: 255, G: 255, B: 255, A: 200}

// within reports whether (x, y) lies in the half-open box [x0, x1) x [y0, y1).
func within(x, y, x0, y0, x1, y1 int) bool {
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

// span fills row y from floor-truncated cx-w to cx+w inclusive.
func span(b *canvas.Buffer, y int, cx, w float64, c canvas.Color) {
	b.FillRect(int(cx-w), y, int(cx+w)+1, y+1, c)
}

// Two lobes over a downward triangle.
func drawHeart(b *canvas.Buffer, t palette.Theme) {
	b.DrawCircle(10, 10, 6, t.Heart)
	b.DrawCircle(22, 10, 6, t.Heart)
	b.FillWhere(func(x, y int) bool {
		return y >= 12 && y < 28 && abs(x-16) <= 28-y
	}, t.Heart)
}

// A sole and three toes.
func drawSteps(b *canvas.Buffer, t palette.Theme) {
	b.FillWhere(func(x, y int) bool {
		if !within(x, y, 8, 10, 20, 24) {
			return false
		}
		dx, dy := float64(x-14), float64(y-17)
		return dx*dx/20+dy*dy/40 <= 1
	}, t.Steps)
	b.DrawCircle(11, 7, 2, t.Steps)
	b.DrawCircle(16, 5, 2, t.Steps)
	b.DrawCircle(21, 6, 2, t.Steps)
}

// Flame widening to y=18 then closing quickly, with a hollow core.
func drawCalories(b *canvas.Buffer, t palette.Theme) {
	b.FillWhere(func(x, y int) bool {
		if !within(x, y, 8, 6, 24, 26) {
			return false
		}
		w := float64(26-y) * 1.5
		if y < 18 {
			w = float64(y-6) * 0.8
		}
		return math.Abs(float64(x-16)) <= w
	}, t.Calories)
	b.DrawCircle(16, 21, 2, canvas.Transparent)
}

// Map pin: a ring over a tapering point.
func drawDistance(b *canvas.Buffer, t palette.Theme) {
	b.DrawCircle(16, 12, 8, t.Distance)
	for y := 16; y < 28; y++ {
		span(b, y, 16, float64(28-y)/1.5, t.Distance)
	}
	b.DrawCircle(16, 12, 3, canvas.Transparent)
}

// Lightning bolt from two slanted bars.
func drawStress(b *canvas.Buffer, t palette.Theme) {
	for y := 4; y < 16; y++ {
		shift := (y - 4) / 2
		b.FillRect(14-shift, y, 22-shift, y+1, t.Stress)
	}
	for y := 14; y < 28; y++ {
		shift := y - 14
		b.FillRect(18-shift, y, 24-shift, y+1, t.Stress)
	}
}

// Blood drop: a cone above a half disk, with a translucent highlight.
func drawSpO2(b *canvas.Buffer, t palette.Theme) {
	for y := 6; y < 26; y++ {
		var w float64
		switch {
		case y < 16:
			w = float64(y-6) / 10 * 8
		case y <= 24:
			w = math.Sqrt(float64(64 - (y-16)*(y-16)))
		}
		span(b, y, 16, w, t.SpO2)
	}
	b.FillRect(10, 16, 12, 20, shine)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
