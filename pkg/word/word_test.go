package word

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/raagpile/pkg/group"
)

func TestLetters(t *testing.T) {
	w := Word{{"a", 2}, {"b", -1}, {group.Identity, 1}, {"a", -2}}

	got := slices.Collect(w.Letters())
	want := []Letter{
		{Generator: "a", Sign: 1, Term: 0},
		{Generator: "a", Sign: 1, Term: 0},
		{Generator: "b", Sign: -1, Term: 1},
		{Generator: "a", Sign: -1, Term: 3},
		{Generator: "a", Sign: -1, Term: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Letters() mismatch (-want +got):\n%s", diff)
	}
	if w.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", w.Len(), len(want))
	}
}

func TestLettersStopsEarly(t *testing.T) {
	w := Word{{"a", 5}}
	n := 0
	for range w.Letters() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d letters, want 2", n)
	}
}

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		w    Word
		want bool
	}{
		{Word{}, true},
		{Word{{group.Identity, 1}}, true},
		{Word{{"a", 1}}, false},
	}
	for _, tt := range tests {
		if got := tt.w.IsIdentity(); got != tt.want {
			t.Errorf("%v.IsIdentity() = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestGenerators(t *testing.T) {
	w := MustParse("b a b^{-1} c a")
	want := []group.Generator{"b", "a", "c"}
	if diff := cmp.Diff(want, w.Generators()); diff != "" {
		t.Errorf("Generators() mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		w    Word
		want string
	}{
		{Word{{"a", 1}, {"b", 2}}, "ab^{2}"},
		{Word{{"x_12", 2}, {"x_2", 1}, {"x", 4}}, "x_{12}^{2}x_2x^{4}"},
		{Word{{"s_4", -1}}, "s_4^{-1}"},
		{Word{}, ""},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLaTeX(t *testing.T) {
	w := Word{{"a", 1}, {"b", -2}, {"s_10", 3}}

	tests := []struct {
		highlight int
		want      string
	}{
		{-1, `$a^{}b^{-2}s_{10}^{3}$`},
		{1, `$a^{}\boldsymbol{b^{-2}}s_{10}^{3}$`},
		{0, `$\boldsymbol{a^{}}b^{-2}s_{10}^{3}$`},
	}
	for _, tt := range tests {
		if got := w.LaTeX(tt.highlight); got != tt.want {
			t.Errorf("LaTeX(%d) = %q, want %q", tt.highlight, got, tt.want)
		}
	}
}
