package palette

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"iconsynth/canvas"
)

func TestPALRoundTrip(t *testing.T) {
	theme, err := LoadTheme("health")
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePAL(&buf, theme.Palette()); err != nil {
		t.Fatalf("WritePAL: %v", err)
	}
	if got := buf.Bytes()[:4]; string(got) != "RIFF" {
		t.Fatalf("stream starts with %q", got)
	}

	pal, err := ReadPAL(&buf)
	if err != nil {
		t.Fatalf("ReadPAL: %v", err)
	}
	want := theme.Palette()
	if len(pal) != len(want) {
		t.Fatalf("read %d colors, want %d", len(pal), len(want))
	}
	for i := range want {
		w := color.NRGBAModel.Convert(want[i])
		if pal[i] != w {
			t.Errorf("color %d = %v, want %v", i, pal[i], w)
		}
	}
}

func TestReadPALRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"wrong form", []byte("RIFF\x04\x00\x00\x00WEBP")},
		{"bad version", []byte("RIFF\x10\x00\x00\x00PAL data\x04\x00\x00\x00\x01\x00\x00\x00")},
		{"short entries", []byte("RIFF\x10\x00\x00\x00PAL data\x04\x00\x00\x00\x00\x03\x02\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPAL(bytes.NewReader(tt.data)); err == nil {
				t.Error("ReadPAL accepted malformed input")
			}
		})
	}
}

func TestOverride(t *testing.T) {
	base := builtin["health"]

	if _, err := base.Override("short", color.Palette{color.Black}); err == nil {
		t.Error("Override accepted a palette without all accents")
	}

	accents := color.Palette{
		color.NRGBA{R: 1, G: 1, B: 1, A: 255}, color.NRGBA{R: 2, G: 2, B: 2, A: 255}, color.NRGBA{R: 3, G: 3, B: 3, A: 255},
		color.NRGBA{R: 4, G: 4, B: 4, A: 255}, color.NRGBA{R: 5, G: 5, B: 5, A: 255}, color.NRGBA{R: 6, G: 6, B: 6, A: 255},
	}
	got, err := base.Override("mono", accents)
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if got.Name != "mono" {
		t.Errorf("Name = %q", got.Name)
	}
	for i, c := range got.Accents() {
		if want := canvas.Opaque(uint8(i+1), uint8(i+1), uint8(i+1)); c != want {
			t.Errorf("accent %d = %v, want %v", i, c, want)
		}
	}
	if got.Background != base.Background || got.Hub != base.Hub {
		t.Error("radar colors changed without palette entries for them")
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	pal := builtin["health"].Palette()
	pal[0] = color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	pal[len(pal)-1] = color.NRGBA{R: 40, G: 50, B: 60, A: 255}

	var buf bytes.Buffer
	if err := WritePAL(&buf, pal); err != nil {
		t.Fatalf("WritePAL: %v", err)
	}
	path := filepath.Join(t.TempDir(), "custom.pal")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.Heart != canvas.Opaque(10, 20, 30) {
		t.Errorf("Heart = %v", theme.Heart)
	}
	if theme.Hub != canvas.Opaque(40, 50, 60) {
		t.Errorf("Hub = %v", theme.Hub)
	}
	if theme.Steps != builtin["health"].Steps {
		t.Errorf("Steps = %v", theme.Steps)
	}
}

func TestLoadThemeUnknown(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "missing.pal"))
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("error = %v, want %v", err, ErrUnknownTheme)
	}
}

func TestThemes(t *testing.T) {
	names := Themes()
	if len(names) == 0 || names[0] != "health" {
		t.Errorf("Themes() = %v", names)
	}
}
