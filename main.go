package main

import (
	"log/slog"
	"os"

	"iconsynth/inspect"
	"iconsynth/palette"
	"iconsynth/parallel"
	"iconsynth/render"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel  string `help:"Minimum log level" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `help:"Log output format" enum:"text,json" default:"text"`
	Workers   int    `help:"Number of icons processed in parallel, GOMAXPROCS when 0" default:"0"`

	Render  render.CLICmd  `cmd:"" help:"Draw the icon set and write it to a folder"`
	Inspect inspect.CLICmd `cmd:"" help:"Check the block framing and dimensions of generated images"`
	Theme   palette.CLICmd `cmd:"" help:"Export a theme as a RIFF PAL file"`
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("iconsynth"),
		kong.Description("Procedural icon generator writing PNG without an image library."),
		kong.UsageOnError(),
	)

	slog.SetDefault(newLogger(cli.LogLevel, cli.LogFormat))
	slog.Debug("running", "command", kctx.Command(), "workers", cli.Workers)

	pool := parallel.Start(cli.Workers)
	err := kctx.Run(pool)
	if waitErr := pool.Wait(); err == nil {
		err = waitErr
	}
	kctx.FatalIfErrorf(err)
}
