// Package config loads group presentations from TOML and YAML files.
//
// A presentation file names a group type, its generators and the commuting
// pairs:
//
//	type = "coxeter"
//	generators = ["a", "b", "c"]
//	commutations = [["a", "c"]]
//
// The same document in YAML:
//
//	type: coxeter
//	generators: [a, b, c]
//	commutations:
//	  - [a, c]
//
// A few presentations ship embedded in the binary; see [Preset].
package config

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/raagpile/pkg/errors"
	"github.com/matzehuels/raagpile/pkg/group"
)

// Supported presentation formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

//go:embed presets/*.toml presets/*.yaml
var presetFS embed.FS

// Presentation is the on-disk form of a right-angled group.
type Presentation struct {
	Name         string     `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Type         string     `toml:"type" yaml:"type" json:"type"`
	Generators   []string   `toml:"generators" yaml:"generators" json:"generators"`
	Commutations [][]string `toml:"commutations" yaml:"commutations" json:"commutations"`
}

// Group validates the presentation and builds the group.
// All failures carry the INVALID_CONFIGURATION code.
func (p *Presentation) Group() (*group.Group, error) {
	typ, err := group.ParseType(p.Type)
	if err != nil {
		return nil, err
	}

	gens := make([]group.Generator, len(p.Generators))
	for i, g := range p.Generators {
		gens[i] = group.Generator(g)
	}

	pairs := make([]group.Pair, 0, len(p.Commutations))
	for i, c := range p.Commutations {
		if len(c) != 2 {
			return nil, errors.New(errors.ErrCodeConfiguration,
				"commutation %d must list exactly two generators, got %d", i, len(c))
		}
		pairs = append(pairs, group.Pair{A: group.Generator(c[0]), B: group.Generator(c[1])})
	}

	return group.New(gens, pairs, typ)
}

// FromGroup returns the canonical presentation of g: generators in
// declaration order and the deduplicated, sorted commutation diagram.
func FromGroup(name string, g *group.Group) *Presentation {
	p := &Presentation{Name: name, Type: g.Type().String()}
	for _, gen := range g.Graph().Generators() {
		p.Generators = append(p.Generators, string(gen))
	}
	for _, e := range g.Graph().Edges() {
		p.Commutations = append(p.Commutations, []string{string(e.A), string(e.B)})
	}
	return p
}

// FormatFor infers the format from a file extension.
func FormatFor(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeConfiguration,
			"unsupported presentation file %q (want .toml, .yaml or .yml)", filename)
	}
}

// Decode parses a presentation document in the given format.
func Decode(data []byte, format string) (*Presentation, error) {
	var p Presentation
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeConfiguration, "unknown presentation format %q", format)
	}
	return &p, nil
}

// Encode writes p in the given format.
func Encode(w io.Writer, p *Presentation, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(p)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.New(errors.ErrCodeConfiguration, "unknown presentation format %q", format)
	}
}

// Load reads a presentation file, choosing the decoder by extension.
// A missing name defaults to the file's base name.
func Load(filename string) (*Presentation, error) {
	format, err := FormatFor(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read presentation %s", filename)
	}
	p, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return p, nil
}

// Presets returns the names of all embedded presentations, sorted.
func Presets() []string {
	entries, _ := presetFS.ReadDir("presets")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(names)
	return names
}

// Preset loads an embedded presentation by name.
func Preset(name string) (*Presentation, error) {
	entries, _ := presetFS.ReadDir("presets")
	for _, e := range entries {
		if strings.TrimSuffix(e.Name(), path.Ext(e.Name())) != name {
			continue
		}
		data, err := presetFS.ReadFile(path.Join("presets", e.Name()))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "read preset %s", name)
		}
		format, err := FormatFor(e.Name())
		if err != nil {
			return nil, err
		}
		p, err := Decode(data, format)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		if p.Name == "" {
			p.Name = name
		}
		return p, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound,
		"preset %q not found (available: %s)", name, strings.Join(Presets(), ", "))
}
