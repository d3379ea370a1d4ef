// Command randpath draws a random polygonal path that never intersects
// itself and writes it to a PNG or SVG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"honnef.co/go/randpath"
	"honnef.co/go/randpath/internal/raster"
)

const usage = `Simple random path generator.

Usage: randpath [flags] [max-length]

Draws a randomly generated path with no intersections. Every segment of the
path is a line of random length. The maximum length of a line can be given as
the first argument. If it is 0 or not given, line lengths are not limited.

Flags:
`

func main() {
	var (
		n       = flag.Int("n", 500, "number of segments to generate")
		seed    = flag.Uint64("seed", 0, "random seed; 0 picks one at random")
		budget  = flag.Int("budget", 100000, "candidate draws per segment before giving up; 0 means no limit")
		strict  = flag.Bool("strict", false, "use the complete intersection test")
		radius  = flag.Int("region", 200, "sample points from [-region, region] on both axes")
		output  = flag.String("o", "path.png", "output file (.png or .svg)")
		size    = flag.Int("size", 800, "image size in pixels")
		stroke  = flag.Float64("stroke", 1, "line width in pixels")
		verbose = flag.Bool("v", false, "log every accepted segment")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	maxLength, err := parseMaxLength(flag.Args())
	if err != nil || checkCount(*n) != nil {
		flag.Usage()
		os.Exit(2)
	}
	if err := checkFormat(*output); err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	randpath.SetLogger(logger)

	region := randpath.Square(*radius)
	cfg := randpath.Config{
		MaxLength: float64(maxLength),
		Region:    &region,
		Strict:    *strict,
	}
	if *seed != 0 {
		cfg.Rand = randpath.NewSeeded(*seed)
	}
	g := randpath.New(cfg)

	segs := make([]randpath.Segment, 0, *n)
	for seg := range g.Within(*budget) {
		segs = append(segs, seg)
		if len(segs) == *n {
			break
		}
	}
	if len(segs) < *n {
		logger.Warn("path ran out of room", "wanted", *n, "got", len(segs))
	}

	if err := write(*output, segs, region, *size, *stroke); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	st := g.Stats()
	logger.Info("path saved",
		"file", *output,
		"segments", len(segs),
		"draws", st.Draws,
		"too_long", st.TooLong,
		"intersecting", st.Intersecting)
}

// parseMaxLength interprets the optional positional argument.
func parseMaxLength(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("too many arguments: %q", args)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid max length: %w", err)
	}
	return v, nil
}

func checkCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("segment count must be positive, got %d", n)
	}
	return nil
}

// checkFormat reports whether name has an extension write can handle.
func checkFormat(name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg", ".png":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(name))
	}
}

func write(name string, segs []randpath.Segment, bounds randpath.Region, size int, stroke float64) error {
	if err := checkFormat(name); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	els := randpath.Elements(slices.Values(segs))
	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg":
		err = writeSVGDocument(f, segs, bounds, stroke)
	case ".png":
		img := raster.Render(els, raster.Options{
			Width:       size,
			Height:      size,
			Bounds:      &bounds,
			StrokeWidth: stroke,
		})
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}

// writeSVGDocument writes a standalone SVG image of the path. The y axis is
// flipped so that the picture matches the PNG output.
func writeSVGDocument(w io.Writer, segs []randpath.Segment, bounds randpath.Region, stroke float64) error {
	// 0-y rather than -y, so that the origin isn't written as -0.
	flip := func(pt randpath.Point) randpath.Point { return randpath.Pt(pt.X, 0-pt.Y) }
	flipped := make([]randpath.Segment, len(segs))
	for i, s := range segs {
		flipped[i] = randpath.Seg(flip(s.Begin), flip(s.End))
	}
	b := bounds.Abs()
	if _, err := fmt.Fprintf(w, `<?xml version="1.0"?>
<svg version="1.1" viewBox="%d %d %d %d" xmlns="http://www.w3.org/2000/svg">
<rect x="%d" y="%d" width="%d" height="%d" fill="black"/>
<path fill="none" stroke="white" stroke-width="%g" d="`,
		b.MinX(), -b.MaxY(), b.Width(), b.Height(),
		b.MinX(), -b.MaxY(), b.Width(), b.Height(),
		stroke); err != nil {
		return err
	}
	if err := randpath.WriteSVG(w, randpath.Elements(slices.Values(flipped)), randpath.SVGOptions{}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"/>\n</svg>\n")
	return err
}
