package palette

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Theme string `help:"Theme name or PAL file to export" default:"health"`
	Out   string `arg:"" help:"Destination PAL file"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if _, err := LoadTheme(c.Theme); err != nil {
		return err
	}
	return nil
}

func (c *CLICmd) Run() error {
	theme, err := LoadTheme(c.Theme)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", c.Out, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close palette file", "name", c.Out, "error", closeErr)
		}
	}()

	pal := theme.Palette()
	if err = WritePAL(f, pal); err != nil {
		return fmt.Errorf("could not export theme %q: %w", theme.Name, err)
	}

	slog.Info("exported theme", "theme", theme.Name, "colors", len(pal), "file", c.Out)
	return f.Sync()
}
