package errors

import (
	"strings"
	"testing"
)

func TestValidateGeneratorName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single letter", "a", false},
		{"subscripted", "s_1", false},
		{"long index", "x_12", false},
		{"greek", "σ_3", false},

		{"empty", "", true},
		{"too long", "a" + strings.Repeat("b", 70), true},
		{"starts with digit", "1a", true},
		{"starts with underscore", "_a", true},
		{"space", "a b", true},
		{"control char", "a\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeneratorName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGeneratorName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeConfiguration) {
				t.Errorf("ValidateGeneratorName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}
