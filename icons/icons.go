// Package icons holds the recipes for the watch face icon set. Each recipe
// draws onto a fresh canvas using the colors of a palette.Theme.
package icons

import (
	"errors"
	"fmt"
	"slices"

	"iconsynth/canvas"
	"iconsynth/palette"
)

var ErrUnknownIcon = errors.New("unknown icon")

// Recipe describes the canvas an icon needs and how to draw it.
type Recipe struct {
	Name       string
	Width      int
	Height     int
	Mode       canvas.Mode
	Background func(palette.Theme) canvas.Color
	Draw       func(*canvas.Buffer, palette.Theme)
}

const metricSize = 32

var recipes = map[string]Recipe{
	"heart":  metric("heart", drawHeart),
	"steps":  metric("steps", drawSteps),
	"cal":    metric("cal", drawCalories),
	"dist":   metric("dist", drawDistance),
	"stress": metric("stress", drawStress),
	"spo2":   metric("spo2", drawSpO2),
	"web": {
		Name:       "web",
		Width:      webSize,
		Height:     webSize,
		Mode:       canvas.RGB,
		Background: func(t palette.Theme) canvas.Color { return t.Background },
		Draw:       drawWeb,
	},
}

func metric(name string, draw func(*canvas.Buffer, palette.Theme)) Recipe {
	return Recipe{
		Name:       name,
		Width:      metricSize,
		Height:     metricSize,
		Mode:       canvas.RGBA,
		Background: func(palette.Theme) canvas.Color { return canvas.Transparent },
		Draw:       draw,
	}
}

// Names returns every icon name in sorted order.
func Names() []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func Lookup(name string) (Recipe, bool) {
	r, ok := recipes[name]
	return r, ok
}

// Render draws the named icon with theme and returns the finished buffer.
func Render(name string, theme palette.Theme) (*canvas.Buffer, error) {
	r, ok := recipes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	return r.Render(theme)
}

func (r Recipe) Render(theme palette.Theme) (*canvas.Buffer, error) {
	buf, err := canvas.New(r.Width, r.Height, r.Mode, r.Background(theme))
	if err != nil {
		return nil, fmt.Errorf("could not create canvas for %q: %w", r.Name, err)
	}
	r.Draw(buf, theme)
	return buf, nil
}
