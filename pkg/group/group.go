package group

import (
	"fmt"
	"strings"

	"github.com/matzehuels/raagpile/pkg/errors"
)

// Generator identifies a group generator, e.g. "a" or "s_12".
type Generator string

// Identity is the trivial element. It never carries a stack.
const Identity Generator = "1"

// Type selects between Artin and Coxeter semantics.
type Type int

const (
	// Artin groups have generators of infinite order.
	Artin Type = iota
	// Coxeter groups have generators that square to the identity.
	Coxeter
)

// Group type tags as they appear in presentation files and flags.
const (
	TagArtin   = "artin"
	TagCoxeter = "coxeter"
)

// String returns the lowercase tag for t.
func (t Type) String() string {
	switch t {
	case Artin:
		return TagArtin
	case Coxeter:
		return TagCoxeter
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts a tag into a Type. Matching is case-insensitive.
// Unsupported tags yield an INVALID_CONFIGURATION error.
func ParseType(tag string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case TagArtin:
		return Artin, nil
	case TagCoxeter:
		return Coxeter, nil
	default:
		return 0, errors.New(errors.ErrCodeConfiguration,
			"unknown group type %q (must be one of: %s, %s)", tag, TagArtin, TagCoxeter)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t != Artin && t != Coxeter {
		return nil, errors.New(errors.ErrCodeConfiguration, "unknown group type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Group is a right-angled group: a commutation graph plus a type.
// The zero value is not usable; create groups with [New].
type Group struct {
	graph *Graph
	typ   Type
}

// New validates the presentation and returns an immutable Group.
func New(generators []Generator, pairs []Pair, typ Type) (*Group, error) {
	if typ != Artin && typ != Coxeter {
		return nil, errors.New(errors.ErrCodeConfiguration, "unknown group type %d", int(typ))
	}
	g, err := NewGraph(generators, pairs)
	if err != nil {
		return nil, err
	}
	return &Group{graph: g, typ: typ}, nil
}

// Graph returns the commutation graph.
func (g *Group) Graph() *Graph { return g.graph }

// Type returns the group type.
func (g *Group) Type() Type { return g.typ }

// String describes the group, e.g. "coxeter<a,b | [a,b]>".
func (g *Group) String() string {
	gens := make([]string, len(g.graph.generators))
	for i, gen := range g.graph.generators {
		gens[i] = string(gen)
	}
	rels := make([]string, 0, len(g.graph.edges))
	for _, e := range g.graph.edges {
		rels = append(rels, fmt.Sprintf("[%s,%s]", e.A, e.B))
	}
	return fmt.Sprintf("%s<%s | %s>", g.typ, strings.Join(gens, ","), strings.Join(rels, ","))
}
