package randpath

import (
	"bytes"
	"slices"
	"testing"
)

func TestElements(t *testing.T) {
	segs := []Segment{
		Seg(Pt(0, 0), Pt(3, 4)),
		Seg(Pt(3, 4), Pt(3, 0)),
		Seg(Pt(3, 0), Pt(-1, -1)),
	}
	got := slices.Collect(Elements(slices.Values(segs)))
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(3, 4)),
		LineTo(Pt(3, 0)),
		LineTo(Pt(-1, -1)),
	}
	diff(t, want, got)
}

func TestElementsDisconnected(t *testing.T) {
	segs := []Segment{
		Seg(Pt(0, 0), Pt(1, 1)),
		Seg(Pt(5, 5), Pt(6, 6)),
	}
	got := slices.Collect(Elements(slices.Values(segs)))
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 1)),
		MoveTo(Pt(5, 5)),
		LineTo(Pt(6, 6)),
	}
	diff(t, want, got)
}

func TestElementsStopsEarly(t *testing.T) {
	g := New(Config{Rand: NewSeeded(1), MaxLength: 40})
	var els []PathElement
	for el := range Elements(g.All()) {
		els = append(els, el)
		if len(els) == 4 {
			break
		}
	}
	if els[0] != MoveTo(Pt(0, 0)) {
		t.Errorf("got first element %v, want MoveTo origin", els[0])
	}
	// The MoveTo and three LineTos only need three segments.
	if n := g.Len(); n != 3 {
		t.Errorf("generated %d segments, want 3", n)
	}
}

func TestPathElementString(t *testing.T) {
	if s := LineTo(Pt(1, -2)).String(); s != "LineTo((1, -2))" {
		t.Errorf("got %q", s)
	}
	if s := (PathElement{}).String(); s != "InvalidPathElement((0, 0))" {
		t.Errorf("got %q", s)
	}
}

func TestSVG(t *testing.T) {
	els := slices.Values([]PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(3, 4)),
		LineTo(Pt(-2.5, 1.0 / 3.0)),
	})
	if got, want := SVG(els, SVGOptions{}), "M0,0 L3,4 L-2.5,0.3333333333333333"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := SVG(els, SVGOptions{MaxPrecision: 2}), "M0,0 L3,4 L-2.5,0.33"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, els, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), SVG(els, SVGOptions{}); got != want {
		t.Errorf("WriteSVG wrote %q, SVG returned %q", got, want)
	}
}
