package word

import (
	"iter"
	"strconv"
	"strings"

	"github.com/matzehuels/raagpile/pkg/group"
)

// Term is one generator raised to a non-zero exponent.
type Term struct {
	Generator group.Generator `json:"generator"`
	Exponent  int             `json:"exponent"`
}

// Word is an ordered product of terms.
type Word []Term

// Letter is a single unit step of a word's letter stream.
type Letter struct {
	Generator group.Generator
	Sign      int // +1 or -1
	Term      int // index of the originating term
}

// Letters yields the expanded letter stream: each term contributes
// |exponent| letters with the exponent's sign, in order. Identity terms
// contribute nothing.
func (w Word) Letters() iter.Seq[Letter] {
	return func(yield func(Letter) bool) {
		for idx, t := range w {
			if t.Generator == group.Identity {
				continue
			}
			sign, n := 1, t.Exponent
			if n < 0 {
				sign, n = -1, -n
			}
			for range n {
				if !yield(Letter{Generator: t.Generator, Sign: sign, Term: idx}) {
					return
				}
			}
		}
	}
}

// Len returns the number of unit steps in the letter stream.
func (w Word) Len() int {
	n := 0
	for _, t := range w {
		if t.Generator == group.Identity {
			continue
		}
		if t.Exponent < 0 {
			n -= t.Exponent
		} else {
			n += t.Exponent
		}
	}
	return n
}

// IsIdentity reports whether the letter stream is empty.
func (w Word) IsIdentity() bool { return w.Len() == 0 }

// Generators returns the distinct non-identity generators of w in order
// of first occurrence.
func (w Word) Generators() []group.Generator {
	seen := make(map[group.Generator]bool, len(w))
	var out []group.Generator
	for _, t := range w {
		if t.Generator == group.Identity || seen[t.Generator] {
			continue
		}
		seen[t.Generator] = true
		out = append(out, t.Generator)
	}
	return out
}

// String returns canonical text that parses back to w.
func (w Word) String() string {
	var sb strings.Builder
	for _, t := range w {
		sb.WriteString(spell(t.Generator))
		if t.Exponent != 1 {
			sb.WriteString("^{")
			sb.WriteString(strconv.Itoa(t.Exponent))
			sb.WriteString("}")
		}
	}
	return sb.String()
}

// LaTeX renders w in math mode, e.g. "$a^{}b^{-2}$". Every term is written
// as base^{power} with an empty power for exponent 1. The term at index
// highlight is wrapped in \boldsymbol; pass -1 to highlight nothing.
func (w Word) LaTeX(highlight int) string {
	var sb strings.Builder
	sb.WriteString("$")
	for idx, t := range w {
		power := ""
		if t.Exponent != 1 {
			power = strconv.Itoa(t.Exponent)
		}
		term := spell(t.Generator) + "^{" + power + "}"
		if idx == highlight {
			term = `\boldsymbol{` + term + "}"
		}
		sb.WriteString(term)
	}
	sb.WriteString("$")
	return sb.String()
}

// spell writes a generator in input syntax, bracing multi-rune indices.
func spell(g group.Generator) string {
	base, index, ok := strings.Cut(string(g), "_")
	if !ok {
		return string(g)
	}
	if len([]rune(index)) == 1 {
		return base + "_" + index
	}
	return base + "_{" + index + "}"
}
