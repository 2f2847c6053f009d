package group

import (
	"strings"
	"unicode"

	"github.com/matzehuels/raagpile/pkg/errors"
)

// CanonicalName validates a declared generator name and returns the form
// the word parser produces for it.
//
// A name is a letter, optionally followed by "_" and an index of letters or
// digits. An index longer than one character is written either braced
// ("x_{12}") or bare ("x_12"); both canonicalize to "x_12". Anything else,
// such as a multi-letter stem "ab", can never appear in a parsed word and
// is an INVALID_CONFIGURATION error.
func CanonicalName(name string) (Generator, error) {
	if err := errors.ValidateGeneratorName(name); err != nil {
		return "", err
	}

	runes := []rune(name)
	if len(runes) == 1 {
		return Generator(name), nil
	}
	if runes[1] != '_' {
		return "", errors.New(errors.ErrCodeConfiguration,
			"generator name %q must be a single letter, optionally followed by _index", name)
	}

	index := string(runes[2:])
	if strings.HasPrefix(index, "{") && strings.HasSuffix(index, "}") {
		index = index[1 : len(index)-1]
	}
	if index == "" {
		return "", errors.New(errors.ErrCodeConfiguration, "generator name %q has an empty index", name)
	}
	for _, r := range index {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "", errors.New(errors.ErrCodeConfiguration,
				"generator name %q: index must be letters or digits, found %q", name, r)
		}
	}
	return Generator(string(runes[0]) + "_" + index), nil
}
