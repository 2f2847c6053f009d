package word

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/raagpile/pkg/errors"
	"github.com/matzehuels/raagpile/pkg/group"
)

// identityText is the literal spelling of the identity word.
const identityText = "1"

// specials are the punctuation runes the grammar gives meaning to.
const specials = "{}^_-"

// MaxExponent bounds the absolute value of a term's exponent. A word's
// letter stream, and with it the snapshot trace, grows linearly in it.
const MaxExponent = 1000

// Parse turns text into a Word. See the package documentation for the
// grammar. The returned Word is never nil.
func Parse(text string) (Word, error) {
	if text == identityText {
		return Word{{Generator: group.Identity, Exponent: 1}}, nil
	}

	p, err := newParser(text)
	if err != nil {
		return nil, err
	}

	w := Word{}
	for p.i < len(p.runes) {
		if !unicode.IsLetter(p.runes[p.i]) {
			return nil, p.fail(p.i, "expected a generator, found %q", p.runes[p.i])
		}
		gen, err := p.generator()
		if err != nil {
			return nil, err
		}
		exp, err := p.exponent()
		if err != nil {
			return nil, err
		}
		w = append(w, Term{Generator: gen, Exponent: exp})
	}
	return w, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(text string) Word {
	w, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return w
}

// parser walks the separator-stripped runes of the input while keeping
// the original rune offset of each kept rune for error reporting.
type parser struct {
	input string
	runes []rune
	pos   []int
	end   int
	i     int
}

func newParser(text string) (*parser, error) {
	p := &parser{input: text}
	offset, depth := 0, 0
	for _, r := range text {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		}
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), strings.ContainsRune(specials, r),
			r == '+' && depth > 0:
			p.runes = append(p.runes, r)
			p.pos = append(p.pos, offset)
		case r == '*', r == '(', r == ')', unicode.IsSpace(r):
			if depth > 0 {
				return nil, &errors.ParseError{
					Input:  text,
					Offset: offset,
					Reason: fmt.Sprintf("separator %q inside braces", r),
				}
			}
		default:
			return nil, &errors.ParseError{
				Input:  text,
				Offset: offset,
				Reason: fmt.Sprintf("character %q is not allowed", r),
			}
		}
		offset++
	}
	p.end = offset
	return p, nil
}

// fail builds a ParseError at kept-rune index i.
func (p *parser) fail(i int, format string, args ...any) error {
	offset := p.end
	if i < len(p.pos) {
		offset = p.pos[i]
	}
	return &errors.ParseError{
		Input:  p.input,
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}

// closing returns the index of the first '}' after open, or -1.
func (p *parser) closing(open int) int {
	for j := open + 1; j < len(p.runes); j++ {
		if p.runes[j] == '}' {
			return j
		}
	}
	return -1
}

func (p *parser) generator() (group.Generator, error) {
	name := string(p.runes[p.i])
	p.i++
	if p.i >= len(p.runes) || p.runes[p.i] != '_' {
		return group.Generator(name), nil
	}
	p.i++
	if p.i >= len(p.runes) {
		return "", p.fail(p.i, "missing subscript after '_'")
	}

	r := p.runes[p.i]
	switch {
	case r == '{':
		j := p.closing(p.i)
		if j < 0 {
			return "", p.fail(p.i, "unterminated subscript")
		}
		if j == p.i+1 {
			return "", p.fail(p.i, "empty subscript")
		}
		for k := p.i + 1; k < j; k++ {
			if c := p.runes[k]; !unicode.IsLetter(c) && !unicode.IsDigit(c) {
				return "", p.fail(k, "subscript must be letters or digits, found %q", c)
			}
		}
		name += "_" + string(p.runes[p.i+1:j])
		p.i = j + 1
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		name += "_" + string(r)
		p.i++
	default:
		return "", p.fail(p.i, "expected a digit, letter or '{' after '_'")
	}
	return group.Generator(name), nil
}

func (p *parser) exponent() (int, error) {
	if p.i >= len(p.runes) || unicode.IsLetter(p.runes[p.i]) {
		return 1, nil
	}
	if p.runes[p.i] != '^' {
		return 0, p.fail(p.i, "unexpected %q after generator", p.runes[p.i])
	}
	p.i++
	if p.i >= len(p.runes) {
		return 0, p.fail(p.i, "missing exponent after '^'")
	}

	start := p.i
	var exp int
	switch r := p.runes[p.i]; {
	case r == '{':
		j := p.closing(p.i)
		if j < 0 {
			return 0, p.fail(p.i, "unterminated exponent")
		}
		n, err := strconv.Atoi(string(p.runes[p.i+1 : j]))
		if stderrors.Is(err, strconv.ErrRange) || n > MaxExponent || n < -MaxExponent {
			return 0, p.fail(start, "exponent magnitude exceeds %d", MaxExponent)
		}
		if err != nil {
			return 0, p.fail(p.i+1, "exponent must be an integer")
		}
		exp = n
		p.i = j + 1
	case r >= '0' && r <= '9':
		exp = int(r - '0')
		p.i++
	default:
		return 0, p.fail(p.i, "expected a digit or '{' after '^'")
	}

	if exp == 0 {
		return 0, p.fail(start, "exponent must be non-zero")
	}
	return exp, nil
}
