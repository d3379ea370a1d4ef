package randpath

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"math/rand/v2"
)

// ErrBudgetExhausted is returned by [Generator.NextWithin] when no candidate
// was accepted within the attempt budget.
var ErrBudgetExhausted = errors.New("randpath: attempt budget exhausted")

// Config specifies the settings of a [Generator]. The zero value is valid and
// describes an unconstrained generator over [DefaultRegion].
type Config struct {
	// The maximum length of a segment. A value of 0 or less means that
	// segment lengths aren't limited, other than by the size of Region.
	MaxLength float64
	// The region from which end points are sampled. If nil, [DefaultRegion]
	// is used. The path always starts at the origin, even if the region
	// doesn't contain it.
	Region *Region
	// The source of randomness. If nil, a randomly seeded source is used.
	// Use [NewSeeded] for reproducible paths.
	Rand *rand.Rand
	// Strict selects the complete intersection test, [IntersectsClosed],
	// instead of the asymmetric [Intersects]. Strict paths never touch
	// themselves, never fold back over the previous segment and contain no
	// zero-length segments.
	Strict bool
}

// Stats counts the work a [Generator] has done.
type Stats struct {
	// Number of candidate end points drawn.
	Draws int
	// Candidates discarded for exceeding the maximum length.
	TooLong int
	// Candidates discarded for intersecting the path.
	Intersecting int
	// Candidates that became part of the path.
	Accepted int
}

// NewSeeded returns a source of randomness that always produces the same
// sequence for the same seed.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generator grows a random, self-avoiding polygonal path by rejection
// sampling. The path starts with a degenerate anchor segment at the origin;
// every accepted segment begins where the previous one ends and doesn't
// intersect any earlier segment.
//
// Each new segment requires drawing random candidates until one is accepted.
// As the region fills up, acceptance becomes less likely, and a call to
// [Generator.Next] may take arbitrarily long or never return. This is a
// liveness property of rejection sampling in a bounded region, not an error.
// Callers that need an upper bound should use [Generator.NextWithin].
//
// A Generator must not be used concurrently.
type Generator struct {
	cfg      Config
	region   Region
	rng      *rand.Rand
	accepted []Segment
	stats    Stats
}

// New returns a generator whose path consists of only the anchor segment.
func New(cfg Config) *Generator {
	region := DefaultRegion
	if cfg.Region != nil {
		region = cfg.Region.Abs()
	}
	cfg.Region = &region
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		cfg:      cfg,
		region:   region,
		rng:      rng,
		accepted: []Segment{{}},
	}
}

// Generate returns the infinite sequence of segments of a new random path
// whose segments are at most maxLength long. A maxLength of 0 or less means
// that segment lengths aren't limited.
func Generate(maxLength float64) iter.Seq[Segment] {
	return New(Config{MaxLength: maxLength}).All()
}

// Config returns the generator's effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Region returns the region end points are sampled from.
func (g *Generator) Region() Region {
	return g.region
}

// Len returns the number of segments accepted so far, not counting the anchor.
func (g *Generator) Len() int {
	return len(g.accepted) - 1
}

// Stats returns counters describing the work done so far.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Last returns the most recently accepted segment, or the anchor if no
// segment has been accepted yet.
func (g *Generator) Last() Segment {
	return g.accepted[len(g.accepted)-1]
}

// Next draws candidates until one can be appended to the path, appends it
// and returns it. Next may never return if the path has no room to grow.
func (g *Generator) Next() Segment {
	seg, _ := g.NextWithin(0)
	return seg
}

// NextWithin is like [Generator.Next] but draws at most budget candidates. If
// none of them is accepted, it returns [ErrBudgetExhausted] and leaves the
// path unchanged. A budget of 0 or less means no limit.
func (g *Generator) NextWithin(budget int) (Segment, error) {
	start := g.stats.Draws
	for attempt := 0; budget <= 0 || attempt < budget; attempt++ {
		g.stats.Draws++
		candidate := Seg(g.Last().End, g.region.Sample(g.rng))
		if g.cfg.MaxLength > 0 && candidate.Begin.DistanceSquared(candidate.End) > g.cfg.MaxLength*g.cfg.MaxLength {
			g.stats.TooLong++
			continue
		}
		if g.blocked(candidate) {
			g.stats.Intersecting++
			continue
		}
		g.accepted = append(g.accepted, candidate)
		g.stats.Accepted++
		if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("accepted segment",
				"n", g.Len(),
				"segment", candidate,
				"draws", g.stats.Draws-start)
		}
		return candidate, nil
	}
	Logger().Warn("attempt budget exhausted",
		"budget", budget,
		"segments", g.Len(),
		"end", g.Last().End)
	return Segment{}, ErrBudgetExhausted
}

// blocked reports whether candidate can't be appended to the path.
func (g *Generator) blocked(candidate Segment) bool {
	if !g.cfg.Strict {
		for _, s := range g.accepted {
			if Intersects(s, candidate) {
				return true
			}
		}
		return false
	}

	if candidate.IsDegenerate() {
		return true
	}
	// The last segment shares candidate's start point; only a fold back over
	// it counts.
	n := len(g.accepted) - 1
	if overlaps(g.accepted[n], candidate) {
		return true
	}
	for _, s := range g.accepted[:n] {
		if IntersectsClosed(s, candidate) {
			return true
		}
	}
	return false
}

// All returns the infinite sequence of segments produced by calling
// [Generator.Next] repeatedly. The sequence isn't restartable: every
// iteration continues growing the same path. Stop iterating to stop
// generating.
func (g *Generator) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Within returns a sequence like [Generator.All] that ends as soon as a
// segment can't be placed within budget draws.
func (g *Generator) Within(budget int) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for {
			seg, err := g.NextWithin(budget)
			if err != nil || !yield(seg) {
				return
			}
		}
	}
}
