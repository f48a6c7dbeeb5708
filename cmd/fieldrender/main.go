// Command fieldrender renders field ground scenes to PNG.
//
// Usage:
//
//	fieldrender render scene.json -o field.png
//	fieldrender render scene.json --frames 24 --fps 12 -o frame.png
//	fieldrender atlas -o atlas.png
//	fieldrender shader --spirv -o field_ground.spv
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/fieldground"
)

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" env:"FIELDGROUND_VERBOSE" help:"Log per-frame diagnostics."`
}

type cli struct {
	Globals

	Render renderCmd `cmd:"" help:"Render a scene to PNG."`
	Atlas  atlasCmd  `cmd:"" help:"Write the procedural tile atlas to PNG."`
	Shader shaderCmd `cmd:"" help:"Write the WGSL source or compiled SPIR-V."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("fieldrender"),
		kong.Description("Render mycelium field ground frames."),
		kong.UsageOnError(),
	)
	fieldground.SetLogger(newLogger(c.Verbose))
	ctx.FatalIfErrorf(ctx.Run(&c.Globals))
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
