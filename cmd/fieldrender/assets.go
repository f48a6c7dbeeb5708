package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/fieldground"
	"github.com/gogpu/fieldground/playfield"
	"github.com/gogpu/fieldground/shader"
)

type atlasCmd struct {
	Output string `short:"o" type:"path" default:"atlas.png" help:"Output PNG."`
	Scale  int    `default:"1" help:"Nearest-neighbor upscale factor."`
}

func (c *atlasCmd) Run(_ *Globals) error {
	if c.Scale < 1 {
		return fmt.Errorf("--scale must be positive, got %d", c.Scale)
	}
	layout := fieldground.DefaultAtlasLayout()
	img, err := playfield.GenerateAtlas(layout)
	if err != nil {
		return err
	}
	if err := savePNG(c.Output, upscale(img, c.Scale)); err != nil {
		return err
	}
	fieldground.Logger().Info("atlas written",
		slog.String("path", c.Output),
		slog.Int("slots", layout.Slots),
		slog.Int("width", layout.Width()),
		slog.Int("height", layout.Height()))
	return nil
}

type shaderCmd struct {
	Output string `short:"o" default:"-" help:"Output file, - for stdout."`
	SPIRV  bool   `name:"spirv" help:"Compile to SPIR-V instead of writing WGSL."`
}

func (c *shaderCmd) Run(_ *Globals) error {
	w := io.Writer(os.Stdout)
	if c.Output != "-" {
		f, err := os.Create(filepath.Clean(c.Output))
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if !c.SPIRV {
		_, err := io.WriteString(w, shader.Source())
		return err
	}

	words, err := shader.Compile()
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, words); err != nil {
		return fmt.Errorf("write SPIR-V: %w", err)
	}
	fieldground.Logger().Debug("shader compiled", slog.Int("words", len(words)))
	return nil
}
