// Command texprep reports how image files would be stored as GPU textures
// and optionally writes the converted texels.
//
// Usage:
//
//	texprep [flags] image...
//
// With -o, the converted texels of a single input are written as raw
// tightly packed data.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/texprep"
	"github.com/gogpu/texprep/decode"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	premultiply bool
	webgpu      bool
	linear      bool
	inPlace     bool
	parallel    bool
	output      string
	verbose     bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("texprep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	fs.BoolVar(&cfg.premultiply, "premultiply", false, "premultiply color channels by alpha")
	fs.BoolVar(&cfg.webgpu, "webgpu", false, "avoid 3-component formats (WebGPU)")
	fs.BoolVar(&cfg.linear, "linear", false, "treat 8-bit color as linear instead of sRGB")
	fs.BoolVar(&cfg.inPlace, "inplace", false, "convert inside the decoded buffer when it is large enough")
	fs.BoolVar(&cfg.parallel, "parallel", false, "convert large images on all CPUs")
	fs.StringVar(&cfg.output, "o", "", "write converted texels of a single input to `file`")
	fs.BoolVar(&cfg.verbose, "v", false, "log conversions")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	if cfg.output != "" && fs.NArg() != 1 {
		_, _ = fmt.Fprintln(stderr, "texprep: -o needs exactly one input")
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	p := message.NewPrinter(language.English)
	status := 0
	for _, path := range fs.Args() {
		if err := prepareFile(p, stdout, logger, path, cfg); err != nil {
			logger.Error("prepare failed", "file", path, "err", err)
			status = 1
		}
	}
	return status
}

func prepareFile(p *message.Printer, w io.Writer, logger *slog.Logger, path string, cfg config) error {
	src, kind, err := decode.File(path, decode.WithLinear(cfg.linear))
	if err != nil {
		return err
	}
	srcFormat := src.Format

	opts := []texprep.Option{
		texprep.WithPremultiplyAlpha(cfg.premultiply),
		texprep.WithInPlace(cfg.inPlace),
		texprep.WithParallel(cfg.parallel),
		texprep.WithLogger(logger.With("file", filepath.Base(path))),
	}
	if cfg.webgpu {
		opts = append(opts, texprep.ForWebGPU())
	}
	tex, err := texprep.Prepare(src, opts...)
	if err != nil {
		return err
	}

	_, _ = p.Fprintf(w, "%s: %s %dx%d %v -> %v (%v), %d bytes, WebGPU %v\n",
		path, kind, tex.Width, tex.Height, srcFormat, tex.Format, tex.Op, len(tex.Pix), tex.Format.WebGPU())

	if cfg.output == "" {
		return nil
	}
	if err := os.WriteFile(filepath.Clean(cfg.output), tex.Pix, 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
