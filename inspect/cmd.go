// Package inspect implements the command that checks generated assets.
package inspect

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"iconsynth/parallel"
	"iconsynth/pngenc"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Scan string `arg:"" optional:"" help:"Folder to check" default:"assets"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	return nil
}

// Report is what Check found out about one file.
type Report struct {
	Format string
	Width  int
	Height int
	// Blocks lists the block tags of PNG files in file order.
	Blocks []string
}

// Check verifies the block framing of PNG data and reads the image
// dimensions of any registered format.
func Check(data []byte) (Report, error) {
	var rep Report

	conf, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return rep, fmt.Errorf("could not read image: %w", err)
	}
	rep.Format, rep.Width, rep.Height = format, conf.Width, conf.Height

	if format != "png" {
		return rep, nil
	}

	blocks, err := pngenc.ReadBlocks(data)
	if err != nil {
		return rep, err
	}
	for _, b := range blocks {
		rep.Blocks = append(rep.Blocks, b.Tag)
	}

	hdr, err := pngenc.ParseHeader(blocks[0])
	if err != nil {
		return rep, err
	}
	if hdr.Width != conf.Width || hdr.Height != conf.Height {
		return rep, fmt.Errorf("header declares %dx%d, decoder reads %dx%d", hdr.Width, hdr.Height, conf.Width, conf.Height)
	}
	return rep, nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var okCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() || strings.HasPrefix(file.Name(), ".") {
			continue
		}

		pool.Go(func() error {
			name := filepath.Join(c.Scan, file.Name())
			logger := slog.Default().With("file", name)

			data, err := os.ReadFile(name)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not read file", "error", err)
				return fmt.Errorf("could not read %q: %w", name, err)
			}

			rep, err := Check(data)
			if err != nil {
				errCount.Add(1)
				logger.Error("invalid image", "error", err)
				return fmt.Errorf("invalid image %q: %w", name, err)
			}

			okCount.Add(1)
			logger.Info("ok", "format", rep.Format, "width", rep.Width, "height", rep.Height,
				"blocks", strings.Join(rep.Blocks, ","), "bytes", len(data))
			return nil
		})
	}

	err = pool.Wait()

	ok, errors := okCount.Load(), errCount.Load()
	slog.Info("stats", "ok", ok, "errors", errors, "total", ok+errors)

	if err != nil {
		return fmt.Errorf("error checking %d files: %w", errors, err)
	}
	return nil
}
