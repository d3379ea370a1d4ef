// Package raster draws paths produced by randpath into images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"iter"

	"golang.org/x/image/vector"

	"honnef.co/go/randpath"
)

// Options control how [Render] draws a path. Zero fields select defaults.
type Options struct {
	// Size of the image in pixels. Defaults to 800×800.
	Width, Height int
	// The part of the plane that is mapped onto the image, preserving the
	// aspect ratio. If nil, [randpath.DefaultRegion] is used.
	Bounds *randpath.Region
	// Margin around Bounds in pixels. Defaults to 10.
	Padding float64
	// Width of the drawn lines in pixels. Defaults to 1.
	StrokeWidth float64
	// Defaults to black.
	Background color.Color
	// Defaults to white.
	Foreground color.Color
}

func (opts Options) withDefaults() Options {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	bounds := randpath.DefaultRegion
	if opts.Bounds != nil {
		bounds = opts.Bounds.Abs()
	}
	opts.Bounds = &bounds
	if opts.Padding <= 0 {
		opts.Padding = 10
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.Foreground == nil {
		opts.Foreground = color.White
	}
	return opts
}

// transform maps plane coordinates (y up) to pixel coordinates (y down).
type transform struct {
	scale  float64
	cx, cy float64
	mx, my float64
}

func newTransform(opts Options) transform {
	b := opts.Bounds
	bw := max(float64(b.Width()), 1)
	bh := max(float64(b.Height()), 1)
	sx := (float64(opts.Width) - 2*opts.Padding) / bw
	sy := (float64(opts.Height) - 2*opts.Padding) / bh
	return transform{
		scale: max(min(sx, sy), 0),
		cx:    float64(opts.Width) / 2,
		cy:    float64(opts.Height) / 2,
		mx:    float64(b.MinX()+b.MaxX()) / 2,
		my:    float64(b.MinY()+b.MaxY()) / 2,
	}
}

func (tf transform) apply(pt randpath.Point) randpath.Point {
	return randpath.Pt(
		tf.cx+(pt.X-tf.mx)*tf.scale,
		tf.cy-(pt.Y-tf.my)*tf.scale,
	)
}

// Render strokes the lines described by els and returns the resulting image.
// Lines are drawn with square caps, so consecutive lines join without gaps.
// Zero-length lines are not drawn.
func Render(els iter.Seq[randpath.PathElement], opts Options) *image.RGBA {
	opts = opts.withDefaults()
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(opts.Width, opts.Height)
	tf := newTransform(opts)
	half := opts.StrokeWidth / 2

	var cur randpath.Point
	for el := range els {
		p := tf.apply(el.P0)
		switch el.Kind {
		case randpath.MoveToKind:
		case randpath.LineToKind:
			strokeLine(r, cur, p, half)
		}
		cur = p
	}

	r.Draw(dst, dst.Bounds(), image.NewUniform(opts.Foreground), image.Point{})
	return dst
}

// strokeLine adds the outline of the line p0-p1, widened by half on each side
// and extended by half at both ends, to r. All outlines share the same
// orientation so that overlapping ones don't cancel out.
func strokeLine(r *vector.Rasterizer, p0, p1 randpath.Point, half float64) {
	d := p1.Sub(p0)
	if d.Hypot2() == 0 {
		return
	}
	d = d.Normalize().Mul(half)
	n := d.Turn90()

	a := p0.Translate(d.Mul(-1)).Translate(n)
	b := p1.Translate(d).Translate(n)
	c := p1.Translate(d).Translate(n.Mul(-1))
	e := p0.Translate(d.Mul(-1)).Translate(n.Mul(-1))

	r.MoveTo(float32(a.X), float32(a.Y))
	r.LineTo(float32(b.X), float32(b.Y))
	r.LineTo(float32(c.X), float32(c.Y))
	r.LineTo(float32(e.X), float32(e.Y))
	r.ClosePath()
}
