// Package palette defines the color themes icons are drawn with and reads
// and writes them as RIFF PAL files.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"

	"iconsynth/canvas"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Theme holds one accent per metric icon plus the colors of the radar
// icon. Palette order is the field order below.
type Theme struct {
	Name string

	Heart    canvas.Color
	Steps    canvas.Color
	Calories canvas.Color
	Distance canvas.Color
	Stress   canvas.Color
	SpO2     canvas.Color

	Background canvas.Color
	Ring       canvas.Color
	OuterRing  canvas.Color
	Axis       canvas.Color
	DataFill   canvas.Color
	DataStroke canvas.Color
	Hub        canvas.Color
}

const accentCount = 6

var builtin = map[string]Theme{
	"health": {
		Name:       "health",
		Heart:      canvas.Opaque(255, 71, 87),
		Steps:      canvas.Opaque(255, 165, 2),
		Calories:   canvas.Opaque(255, 99, 72),
		Distance:   canvas.Opaque(46, 213, 115),
		Stress:     canvas.Opaque(236, 204, 104),
		SpO2:       canvas.Opaque(83, 82, 237),
		Background: canvas.Opaque(8, 11, 20),
		Ring:       canvas.Opaque(26, 29, 58),
		OuterRing:  canvas.Opaque(56, 56, 112),
		Axis:       canvas.Opaque(37, 40, 80),
		DataFill:   canvas.Opaque(8, 32, 48),
		DataStroke: canvas.Opaque(0, 212, 255),
		Hub:        canvas.Opaque(48, 188, 213),
	},
}

// Themes lists the built-in theme names.
func Themes() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Accents returns the metric colors in radar axis order.
func (t Theme) Accents() []canvas.Color {
	return []canvas.Color{t.Heart, t.Steps, t.Calories, t.Distance, t.Stress, t.SpO2}
}

func (t *Theme) slots() []*canvas.Color {
	return []*canvas.Color{
		&t.Heart, &t.Steps, &t.Calories, &t.Distance, &t.Stress, &t.SpO2,
		&t.Background, &t.Ring, &t.OuterRing, &t.Axis, &t.DataFill, &t.DataStroke, &t.Hub,
	}
}

// Palette flattens the theme in field order.
func (t Theme) Palette() color.Palette {
	slots := t.slots()
	pal := make(color.Palette, len(slots))
	for i, c := range slots {
		pal[i] = *c
	}
	return pal
}

// Override returns a copy of t with its leading colors replaced by pal.
// At least the six accents are required; radar colors are replaced only
// as far as pal reaches.
func (t Theme) Override(name string, pal color.Palette) (Theme, error) {
	if len(pal) < accentCount {
		return Theme{}, fmt.Errorf("palette has %d colors, need at least %d", len(pal), accentCount)
	}

	t.Name = name
	for i, slot := range t.slots() {
		if i >= len(pal) {
			break
		}
		n := color.NRGBAModel.Convert(pal[i]).(color.NRGBA)
		*slot = canvas.Color{R: n.R, G: n.G, B: n.B, A: n.A}
	}
	return t, nil
}

// LoadTheme resolves a built-in theme name, or else reads a PAL file that
// overrides the default theme.
func LoadTheme(nameOrPath string) (Theme, error) {
	if t, ok := builtin[nameOrPath]; ok {
		return t, nil
	}

	f, err := os.Open(nameOrPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, nameOrPath)
		}
		return Theme{}, fmt.Errorf("could not open palette file %q: %w", nameOrPath, err)
	}
	defer f.Close()

	pal, err := ReadPAL(f)
	if err != nil {
		return Theme{}, fmt.Errorf("could not read palette file %q: %w", nameOrPath, err)
	}
	return builtin["health"].Override(nameOrPath, pal)
}
