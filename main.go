package main

import (
	"log/slog"

	"pixproc/mangle"
	"pixproc/parallel"
	"pixproc/probe"

	"github.com/alecthomas/kong"
)

type cli struct {
	Workers int `help:"Number of workers for per-pixel operations, 0 uses all CPUs" default:"0"`

	Apply mangle.CLICmd `cmd:"" help:"Shift, convert and clamp every image in a folder"`
	Probe probe.CLICmd  `cmd:"" help:"Print RGB, HSV and gray samples of one pixel"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("pixproc"),
		kong.Description("Planar float pixel operations on image folders."),
		kong.UsageOnError(),
	)

	pool := parallel.Start(c.Workers)
	slog.Info("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(pool)
	pool.Wait(true)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
	}
	kctx.FatalIfErrorf(err)
}
