package randpath

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
)

// PathElement is a drawing command. A sequence of path elements starts with a
// MoveTo.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s)", kind, el.P0)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// Elements translates a chain of segments, such as the one produced by
// [Generator.All], into drawing commands: a MoveTo to the first segment's
// start, followed by a LineTo to each segment's end.
//
// If a segment doesn't start where the previous one ended, a MoveTo to its
// start is emitted first.
func Elements(seq iter.Seq[Segment]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		first := true
		var cur Point
		for s := range seq {
			if first || s.Begin != cur {
				first = false
				if !yield(MoveTo(s.Begin)) {
					return
				}
			}
			if !yield(LineTo(s.End)) {
				return
			}
			cur = s.End
		}
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	sep := ""
	for el := range seq {
		if err != nil {
			return err
		}
		switch el.Kind {
		case MoveToKind:
			writef("%sM%s,%s", sep, format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("%sL%s,%s", sep, format(el.P0.X), format(el.P0.Y))
		default:
			panic(fmt.Sprintf("invalid PathElement kind %v", el.Kind))
		}
		sep = " "
	}
	return err
}
