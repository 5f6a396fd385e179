package render

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"iconsynth/canvas"
	"iconsynth/icons"
	"iconsynth/parallel"
	"iconsynth/pngenc"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func validated(t *testing.T, cmd CLICmd) *CLICmd {
	t.Helper()
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return &cmd
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	cmd := validated(t, CLICmd{Out: dir, Theme: "health", Format: "png", Scale: 1})
	if !slices.Equal(cmd.Icons, icons.Names()) {
		t.Errorf("Icons = %v, want every icon", cmd.Icons)
	}
	if cmd.theme.Name != "health" {
		t.Errorf("theme = %q", cmd.theme.Name)
	}

	tests := []struct {
		name string
		cmd  CLICmd
	}{
		{"unknown icon", CLICmd{Out: dir, Theme: "health", Format: "png", Scale: 1, Icons: []string{"moon"}}},
		{"zero scale", CLICmd{Out: dir, Theme: "health", Format: "png", Scale: 0}},
		{"huge scale", CLICmd{Out: dir, Theme: "health", Format: "png", Scale: maxScale + 1}},
		{"unknown theme", CLICmd{Out: dir, Theme: filepath.Join(dir, "none.pal"), Format: "png", Scale: 1}},
	}
	for _, tt := range tests {
		if err := tt.cmd.Validate(nil); err == nil {
			t.Errorf("%s: Validate accepted the command", tt.name)
		}
	}
}

func TestRunWritesIcons(t *testing.T) {
	dir := t.TempDir()
	cmd := validated(t, CLICmd{Out: filepath.Join(dir, "assets"), Theme: "health", Format: "png", Scale: 1})

	if err := cmd.Run(parallel.Start(4)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range icons.Names() {
		data, err := os.ReadFile(filepath.Join(dir, "assets", name+".png"))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}

		want, err := icons.Render(name, cmd.theme)
		if err != nil {
			t.Fatal(err)
		}
		encoded, err := pngenc.Encode(want)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, encoded) {
			t.Errorf("%s.png differs from a direct encode", name)
		}
	}

	entries, err := os.ReadDir(filepath.Join(dir, "assets"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(icons.Names()) {
		t.Errorf("found %d files, want %d (temporary files left behind?)", len(entries), len(icons.Names()))
	}
}

func TestRunRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	cmd := validated(t, CLICmd{Out: dir, Theme: "health", Format: "png", Scale: 1, Icons: []string{"heart"}})

	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := cmd.Run(parallel.Start(1)); !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("second Run error = %v, want %v", err, ErrDestinationExists)
	}

	cmd.Overwrite = true
	if err := cmd.Run(parallel.Start(1)); err != nil {
		t.Fatalf("Run with overwrite: %v", err)
	}
}

func TestRunReportsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	cmd := validated(t, CLICmd{Out: dir, Theme: "health", Format: "png", Scale: 1, Icons: []string{"heart", "cal", "web"}})
	for _, name := range []string{"heart", "web"} {
		if err := os.WriteFile(filepath.Join(dir, name+".png"), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	err := cmd.Run(parallel.Start(3))
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("error = %v, want %v", err, ErrDestinationExists)
	}
	if n := len(errors.Unwrap(err).(interface{ Unwrap() []error }).Unwrap()); n != 2 {
		t.Errorf("got %d icon errors, want 2", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "cal.png")); err != nil {
		t.Errorf("cal.png was not written alongside the failures: %v", err)
	}
}

func TestRunFormatsAndScale(t *testing.T) {
	for _, format := range []string{"png", "bmp", "tiff"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			cmd := validated(t, CLICmd{Out: dir, Theme: "health", Format: format, Scale: 3, Icons: []string{"dist", "web"}})

			if err := cmd.Run(parallel.Start(2)); err != nil {
				t.Fatalf("Run: %v", err)
			}

			for name, size := range map[string]int{"dist": 96, "web": 300} {
				f, err := os.Open(filepath.Join(dir, name+"."+format))
				if err != nil {
					t.Fatal(err)
				}
				conf, got, err := image.DecodeConfig(f)
				f.Close()
				if err != nil {
					t.Fatalf("DecodeConfig %s: %v", name, err)
				}
				if got != format || conf.Width != size || conf.Height != size {
					t.Errorf("%s: got %s %dx%d, want %s %dx%d", name, got, conf.Width, conf.Height, format, size, size)
				}
			}
		})
	}
}

func TestUpscale(t *testing.T) {
	src, err := canvas.New(3, 2, canvas.RGBA, canvas.Transparent)
	if err != nil {
		t.Fatal(err)
	}
	src.SetPixel(1, 0, canvas.Opaque(255, 99, 72))
	src.SetPixel(2, 1, canvas.Color{R: 255, G: 255, B: 255, A: 200})

	dst, err := upscale(src, 2)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	if dst.Width() != 6 || dst.Height() != 4 || dst.Mode() != canvas.RGBA {
		t.Fatalf("got %dx%d %s", dst.Width(), dst.Height(), dst.Mode())
	}
	for y := range 4 {
		for x := range 6 {
			if got, want := dst.Pixel(x, y), src.Pixel(x/2, y/2); got != want {
				t.Errorf("Pixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
