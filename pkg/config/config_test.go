package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/raagpile/pkg/errors"
	"github.com/matzehuels/raagpile/pkg/group"
)

const tomlDoc = `
type = "coxeter"
generators = ["a", "b", "c"]
commutations = [["a", "c"]]
`

const yamlDoc = `
type: coxeter
generators: [a, b, c]
commutations:
  - [a, c]
`

func TestDecodeFormats(t *testing.T) {
	want := &Presentation{
		Type:         "coxeter",
		Generators:   []string{"a", "b", "c"},
		Commutations: [][]string{{"a", "c"}},
	}

	tests := []struct {
		format string
		doc    string
	}{
		{FormatTOML, tomlDoc},
		{FormatYAML, yamlDoc},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := Decode([]byte(tt.doc), tt.format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte("type = "), FormatTOML); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("bad toml: err = %v", err)
	}
	if _, err := Decode([]byte("generators: [a"), FormatYAML); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("bad yaml: err = %v", err)
	}
	if _, err := Decode(nil, "ini"); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("unknown format: err = %v", err)
	}
}

func TestPresentationGroup(t *testing.T) {
	p, err := Decode([]byte(tomlDoc), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	g, err := p.Group()
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if g.Type() != group.Coxeter {
		t.Errorf("Type() = %v, want coxeter", g.Type())
	}
	if diff := cmp.Diff([]group.Generator{"a", "c"}, g.Graph().NonCommuting("b")); diff != "" {
		t.Errorf("NonCommuting(b) mismatch (-want +got):\n%s", diff)
	}
}

func TestPresentationGroupErrors(t *testing.T) {
	tests := []struct {
		name string
		p    Presentation
	}{
		{"bad type", Presentation{Type: "braid", Generators: []string{"a"}}},
		{"missing type", Presentation{Generators: []string{"a"}}},
		{"triple commutation", Presentation{Type: "artin", Generators: []string{"a", "b", "c"}, Commutations: [][]string{{"a", "b", "c"}}}},
		{"unknown generator", Presentation{Type: "artin", Generators: []string{"a"}, Commutations: [][]string{{"a", "z"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.p.Group(); !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Errorf("Group() err = %v, want INVALID_CONFIGURATION", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "triangle.toml")
	yamlPath := filepath.Join(dir, "triangle.yml")
	if err := os.WriteFile(tomlPath, []byte(tomlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, yamlPath} {
		p, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if p.Name != "triangle" {
			t.Errorf("Load(%s).Name = %q, want triangle", path, p.Name)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file: err = %v", err)
	}
	if _, err := Load(filepath.Join(dir, "group.json")); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("unsupported extension: err = %v", err)
	}
}

func TestPresets(t *testing.T) {
	want := []string{"hexagon-artin", "hexagon-coxeter", "square"}
	if diff := cmp.Diff(want, Presets()); diff != "" {
		t.Fatalf("Presets() mismatch (-want +got):\n%s", diff)
	}

	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			p, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset: %v", err)
			}
			if p.Name != name {
				t.Errorf("Name = %q, want %q", p.Name, name)
			}
			if _, err := p.Group(); err != nil {
				t.Errorf("Group: %v", err)
			}
		})
	}

	if _, err := Preset("nope"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown preset: err = %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	p, err := Preset("hexagon-coxeter")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	g, err := p.Group()
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	canon := FromGroup(p.Name, g)

	for _, format := range []string{FormatTOML, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, canon, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			back, err := Decode(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, buf.String())
			}
			if diff := cmp.Diff(canon, back); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
