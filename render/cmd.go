// Package render implements the command that draws the icon set and
// writes it to disk.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"iconsynth/icons"
	"iconsynth/palette"
	"iconsynth/parallel"
	"iconsynth/pngenc"

	"github.com/alecthomas/kong"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const maxScale = 16

type CLICmd struct {
	Out       string        `help:"Destination folder for generated icons" default:"assets"`
	Theme     string        `help:"Theme name (health) or PAL file in RIFF format supplying the icon colors" default:"health"`
	Icons     []string      `help:"Icons to render, all when empty (cal, dist, heart, spo2, steps, stress, web)" sep:","`
	Format    string        `help:"Output format" enum:"png,bmp,tiff" default:"png"`
	Scale     int           `help:"Integer upscale factor, nearest neighbour" default:"1"`
	Overwrite bool          `help:"Replace existing files" default:"false"`
	theme     palette.Theme `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	if c.Scale < 1 || c.Scale > maxScale {
		return fmt.Errorf("invalid scale %d, must be between 1 and %d", c.Scale, maxScale)
	}

	if len(c.Icons) == 0 {
		c.Icons = icons.Names()
	}
	for _, name := range c.Icons {
		if _, ok := icons.Lookup(name); !ok {
			return fmt.Errorf("%w: %q", icons.ErrUnknownIcon, name)
		}
	}

	if c.theme, err = palette.LoadTheme(c.Theme); err != nil {
		return err
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Out, err)
	}

	enc := &pngenc.Encoder{
		CompressionLevel: pngenc.BestCompression,
		BufferPool:       encoderPool,
	}

	var renderedCount, errCount atomic.Uint64
	for _, name := range c.Icons {
		pool.Go(func() error {
			logger := slog.Default().With("icon", name)

			if err := c.renderOne(logger, enc, name); err != nil {
				errCount.Add(1)
				logger.Error("could not render icon", "error", err)
				return fmt.Errorf("icon %q: %w", name, err)
			}
			renderedCount.Add(1)
			return nil
		})
	}

	err := pool.Wait()

	rendered := renderedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "rendered", rendered, "errors", errors,
		"total", rendered+errors)

	if err != nil {
		return fmt.Errorf("error rendering %d icons: %w", errors, err)
	}
	return nil
}

func (c *CLICmd) renderOne(logger *slog.Logger, enc *pngenc.Encoder, name string) error {
	buf, err := icons.Render(name, c.theme)
	if err != nil {
		return err
	}

	if c.Scale > 1 {
		if buf, err = upscale(buf, c.Scale); err != nil {
			return err
		}
	}

	dest := filepath.Join(c.Out, name+"."+c.Format)
	logger.Info("writing", "file", dest, "width", buf.Width(), "height", buf.Height(), "mode", buf.Mode())

	return writeFile(dest, c.Overwrite, func(w io.Writer) error {
		switch c.Format {
		case "png":
			return enc.Encode(w, buf)
		case "bmp":
			return bmp.Encode(w, buf)
		case "tiff":
			return tiff.Encode(w, buf, &tiff.Options{Compression: tiff.Deflate})
		}
		return fmt.Errorf("unsupported output format: %s", c.Format)
	})
}

var encoderPool = pngenc.NewBufferPool()
