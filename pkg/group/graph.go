package group

import (
	"slices"

	"github.com/matzehuels/raagpile/pkg/errors"
)

// Pair is an unordered commuting pair of generators.
type Pair struct {
	A, B Generator
}

// normalized returns p with its endpoints in ascending order.
func (p Pair) normalized() Pair {
	if p.B < p.A {
		return Pair{A: p.B, B: p.A}
	}
	return p
}

// Graph stores a generator set and a symmetric commutation relation.
//
// Self-commutation is implied and never stored as an edge. The identity
// generator is always present and commutes with every generator.
// The zero value is not usable; use [NewGraph].
type Graph struct {
	generators   []Generator // declaration order, identity excluded
	known        map[Generator]bool
	commutes     map[Generator]map[Generator]bool
	nonCommuting map[Generator][]Generator
	edges        []Pair
}

// NewGraph validates generators and pairs and precomputes the
// non-commuting neighbourhoods.
//
// Generator names are stored in their [CanonicalName] form, so "x_{12}"
// and "x_12" declare the same generator. It returns an
// INVALID_CONFIGURATION error for empty, malformed, duplicate or reserved
// generator names, and an [errors.UnknownGeneratorError] wrapped
// as INVALID_CONFIGURATION when a pair references an undeclared generator.
// Pairs may be listed in either orientation and more than once.
func NewGraph(generators []Generator, pairs []Pair) (*Graph, error) {
	g := &Graph{
		generators:   make([]Generator, 0, len(generators)),
		known:        make(map[Generator]bool, len(generators)),
		commutes:     make(map[Generator]map[Generator]bool, len(generators)),
		nonCommuting: make(map[Generator][]Generator, len(generators)),
	}

	for _, declared := range generators {
		if declared == Identity {
			return nil, errors.New(errors.ErrCodeConfiguration, "generator %q is reserved for the identity", declared)
		}
		gen, err := CanonicalName(string(declared))
		if err != nil {
			return nil, err
		}
		if g.known[gen] {
			return nil, errors.New(errors.ErrCodeConfiguration, "duplicate generator %q", gen)
		}
		g.known[gen] = true
		g.generators = append(g.generators, gen)
		g.commutes[gen] = map[Generator]bool{gen: true}
	}

	seen := make(map[Pair]bool, len(pairs))
	for _, p := range pairs {
		p.A, p.B = canonicalOrSelf(p.A), canonicalOrSelf(p.B)
		for _, end := range []Generator{p.A, p.B} {
			if !g.known[end] {
				return nil, errors.Wrap(errors.ErrCodeConfiguration,
					&errors.UnknownGeneratorError{Generator: string(end), Known: g.names()},
					"commuting pair (%s, %s)", p.A, p.B)
			}
		}
		if p.A == p.B {
			continue
		}
		g.commutes[p.A][p.B] = true
		g.commutes[p.B][p.A] = true
		if n := p.normalized(); !seen[n] {
			seen[n] = true
			g.edges = append(g.edges, n)
		}
	}

	slices.SortFunc(g.edges, comparePairs)

	for _, gen := range g.generators {
		var nc []Generator
		for _, other := range g.generators {
			if !g.commutes[gen][other] {
				nc = append(nc, other)
			}
		}
		slices.Sort(nc)
		g.nonCommuting[gen] = nc
	}

	return g, nil
}

// canonicalOrSelf maps a pair endpoint to its canonical name, leaving names that
// do not canonicalize as written so they are reported verbatim.
func canonicalOrSelf(gen Generator) Generator {
	if c, err := CanonicalName(string(gen)); err == nil {
		return c
	}
	return gen
}

func comparePairs(x, y Pair) int {
	if x.A != y.A {
		if x.A < y.A {
			return -1
		}
		return 1
	}
	if x.B < y.B {
		return -1
	}
	if x.B > y.B {
		return 1
	}
	return 0
}

func (g *Graph) names() []string {
	out := make([]string, len(g.generators))
	for i, gen := range g.generators {
		out[i] = string(gen)
	}
	return out
}

// Generators returns the declared generators in declaration order.
// The identity is not included.
func (g *Graph) Generators() []Generator {
	return slices.Clone(g.generators)
}

// Has reports whether gen is a declared generator or the identity.
func (g *Graph) Has(gen Generator) bool {
	return gen == Identity || g.known[gen]
}

// Len returns the number of declared generators.
func (g *Graph) Len() int { return len(g.generators) }

// CommutesWith reports whether a and b commute.
func (g *Graph) CommutesWith(a, b Generator) bool {
	if a == Identity || b == Identity || a == b {
		return true
	}
	return g.commutes[a][b]
}

// Commutes returns the sorted set of declared generators commuting with
// gen, including gen itself. For the identity it returns every generator.
func (g *Graph) Commutes(gen Generator) []Generator {
	if gen == Identity {
		out := g.Generators()
		slices.Sort(out)
		return out
	}
	var out []Generator
	for other := range g.commutes[gen] {
		out = append(out, other)
	}
	slices.Sort(out)
	return out
}

// NonCommuting returns the sorted set of generators that do not commute
// with gen. The slice is shared; callers must not modify it.
func (g *Graph) NonCommuting(gen Generator) []Generator {
	return g.nonCommuting[gen]
}

// Edges returns the commutation diagram: each commuting pair once, with
// endpoints ordered, sorted lexicographically.
func (g *Graph) Edges() []Pair {
	return slices.Clone(g.edges)
}

// Unknown returns an error for the first generator in gens that the graph
// does not know, or nil.
func (g *Graph) Unknown(gens []Generator) error {
	for _, gen := range gens {
		if !g.Has(gen) {
			return &errors.UnknownGeneratorError{Generator: string(gen), Known: g.names()}
		}
	}
	return nil
}
