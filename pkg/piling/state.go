package piling

import (
	"maps"
	"slices"

	"github.com/matzehuels/raagpile/pkg/group"
)

// Mark is a single entry on a generator stack.
type Mark int8

const (
	// Negative records an occurrence of the inverse generator.
	Negative Mark = -1
	// Blocked records that a non-commuting generator was written here.
	Blocked Mark = 0
	// Positive records an occurrence of the generator.
	Positive Mark = 1
)

// String returns "+", "-" or "0".
func (m Mark) String() string {
	switch m {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return "0"
	}
}

// State maps every non-identity generator to its stack, bottom first.
type State map[group.Generator][]Mark

// newState returns empty, non-nil stacks for each generator.
func newState(gens []group.Generator) State {
	s := make(State, len(gens))
	for _, g := range gens {
		s[g] = []Mark{}
	}
	return s
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	for g, stack := range s {
		out[g] = slices.Clone(stack)
	}
	return out
}

// Height returns the number of marks on g's stack.
func (s State) Height(g group.Generator) int { return len(s[g]) }

// Top returns the top mark of g's stack and whether the stack is non-empty.
func (s State) Top(g group.Generator) (Mark, bool) {
	stack := s[g]
	if len(stack) == 0 {
		return Blocked, false
	}
	return stack[len(stack)-1], true
}

// Depth returns the tallest stack height.
func (s State) Depth() int {
	d := 0
	for _, stack := range s {
		d = max(d, len(stack))
	}
	return d
}

// Empty reports whether every stack is empty.
func (s State) Empty() bool { return s.Depth() == 0 }

// Generators returns the generators of s sorted by name.
func (s State) Generators() []group.Generator {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether s and other hold identical stacks.
func (s State) Equal(other State) bool {
	return maps.EqualFunc(s, other, func(a, b []Mark) bool { return slices.Equal(a, b) })
}

// Snapshot is an immutable view of the pile after a unit step.
type Snapshot struct {
	State     State           `json:"state"`
	Step      int             `json:"step"`      // 1-based unit step; 0 before any step
	Position  int             `json:"position"`  // index of the word term; -1 before any step
	Generator group.Generator `json:"generator"` // letter just applied; empty before any step
}

// Result is the outcome of a full computation.
type Result struct {
	State    State `json:"state"`
	MaxDepth int   `json:"max_depth"`
	Steps    int   `json:"steps"`
}
