// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshgen reads a shape file, prepares and generates every
// shape in it, and prints the layout, parts and buffer sizes of each.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/mesh/config"
	"cogentcore.org/mesh/logx"
	"cogentcore.org/mesh/shape"
)

var (
	configPath = flag.String("config", "", "the shape file to read (.toml, .yaml or .yml)")
	example    = flag.String("example", "", "write an example shape file to this path and exit")
	debug      = flag.Bool("vv", false, "print debug messages")
	verbose    = flag.Bool("v", false, "print info messages")
	quiet      = flag.Bool("q", false, "only print errors")
	watchFile  = flag.Bool("watch", false, "generate again whenever the shape file changes, until interrupted")
)

// options are the command line settings of a run.
type options struct {
	config  string
	example string
	watch   bool

	// level overrides the log level of the shape file if non-nil.
	level *slog.Level
}

func main() {
	flag.Usage = Usage
	flag.Parse()
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	opts := &options{config: *configPath, example: *example, watch: *watchFile}
	if *debug || *verbose || *quiet {
		level := logx.LevelFromFlags(*debug, *verbose, *quiet)
		opts.level = &level
	}
	if err := run(ctx, os.Stdout, opts); err != nil {
		p := logx.NewPrinter(os.Stderr)
		p.Println(p.Error("meshgen:"), err)
		os.Exit(1)
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Meshgen generates the vertex and index buffers of the shapes in a shape file.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tmeshgen -config shapes.toml [-vv | -v | -q] [-watch]\n")
	_, _ = fmt.Fprintf(os.Stderr, "\tmeshgen -example shapes.toml\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

// run writes the example file if one is given, and otherwise
// generates the shapes in the shape file, then watches it if asked.
func run(ctx context.Context, w io.Writer, opts *options) error {
	if opts.example != "" {
		if opts.watch {
			return fmt.Errorf("-watch can not be used with -example")
		}
		if err := config.Example().Save(opts.example); err != nil {
			return err
		}
		logx.NewPrinter(w).Println("wrote", opts.example)
		return nil
	}
	if opts.config == "" {
		return fmt.Errorf("no shape file given; use -config")
	}
	if err := generateFile(w, opts.config, opts.level); err != nil {
		return err
	}
	if opts.watch {
		return watch(ctx, w, opts.config, opts.level)
	}
	return nil
}

// generateFile generates all of the shapes in the shape file.
func generateFile(w io.Writer, path string, level *slog.Level) error {
	f, err := config.Open(path)
	if err != nil {
		return err
	}
	lv, err := logx.LevelFromString(f.LogLevel)
	if err != nil {
		return err
	}
	if level != nil {
		lv = *level
	}
	logx.SetLevel(lv)

	p := logx.NewPrinter(w)
	for i := range f.Shapes {
		sc := &f.Shapes[i]
		gen, err := sc.Build()
		if err != nil {
			return err
		}
		if err := generate(p, sc.Name, gen); err != nil {
			return fmt.Errorf("shape %q: %w", sc.Name, err)
		}
	}
	p.Println(p.Success(fmt.Sprintf("generated %d shapes", len(f.Shapes))))
	return nil
}

// generate prepares and generates the shape and prints its summary.
func generate(p *logx.Printer, name string, gen shape.Generator) error {
	if err := gen.Prepare(false); err != nil {
		return err
	}
	vb, ib, err := gen.Generate(nil, nil)
	if err != nil {
		return err
	}
	g := gen.Geom()
	p.Println(p.Title(name))
	p.Println(g.Layout())
	for _, pt := range g.Parts() {
		p.Println("  part", pt)
	}
	p.Println(fmt.Sprintf("  vertices = %d, indices = %d, index type = %v", g.VertexCount(), g.IndexCount(), g.IndexType()))
	p.Println(fmt.Sprintf("  vertex bytes = %d, index bytes = %d", len(vb), len(ib)))
	bb := g.BBox()
	if !bb.IsEmpty() {
		p.Println(fmt.Sprintf("  bounds = %v to %v, center = %v, size = %v", bb.Min, bb.Max, bb.Center(), bb.Size()))
	}
	return nil
}
