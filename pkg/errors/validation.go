package errors

import (
	"unicode"
)

// maxGeneratorName bounds generator identifiers read from presentation files.
const maxGeneratorName = 64

// ValidateGeneratorName validates a generator identifier declared in a
// group presentation.
//
// The validation rules are:
//   - No empty names
//   - No control characters or whitespace
//   - Must start with a letter
//   - Maximum length of 64 characters
func ValidateGeneratorName(name string) error {
	if name == "" {
		return New(ErrCodeConfiguration, "generator name cannot be empty")
	}

	if len(name) > maxGeneratorName {
		return New(ErrCodeConfiguration, "generator name too long (max %d characters)", maxGeneratorName)
	}

	for i, r := range []rune(name) {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeConfiguration, "generator name %q contains invalid characters", name)
		}
		if i == 0 && !unicode.IsLetter(r) {
			return New(ErrCodeConfiguration, "generator name %q must start with a letter", name)
		}
	}

	return nil
}
