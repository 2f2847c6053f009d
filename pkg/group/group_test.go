package group

import (
	"testing"

	"github.com/matzehuels/raagpile/pkg/errors"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		tag     string
		want    Type
		wantErr bool
	}{
		{"artin", Artin, false},
		{"coxeter", Coxeter, false},
		{"Coxeter", Coxeter, false},
		{" artin ", Artin, false},
		{"garside", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseType(tt.tag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.tag, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeConfiguration) {
					t.Errorf("ParseType(%q) code = %s", tt.tag, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range []Type{Artin, Coxeter} {
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != typ {
			t.Errorf("text round trip = %v, want %v", back, typ)
		}
	}

	if _, err := Type(7).MarshalText(); err == nil {
		t.Error("MarshalText on unknown type should fail")
	}
}

func TestNewGroup(t *testing.T) {
	grp, err := New([]Generator{"a", "b"}, []Pair{{"a", "b"}}, Coxeter)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if grp.Type() != Coxeter {
		t.Errorf("Type() = %v, want coxeter", grp.Type())
	}
	if grp.Graph().Len() != 2 {
		t.Errorf("Graph().Len() = %d, want 2", grp.Graph().Len())
	}
	if got, want := grp.String(), "coxeter<a,b | [a,b]>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if _, err := New([]Generator{"a"}, nil, Type(9)); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("New with bad type: err = %v, want INVALID_CONFIGURATION", err)
	}
}
