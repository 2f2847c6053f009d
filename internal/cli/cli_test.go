package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/raagpile/pkg/config"
	"github.com/matzehuels/raagpile/pkg/errors"
	rpio "github.com/matzehuels/raagpile/pkg/io"
	"github.com/matzehuels/raagpile/pkg/piling"
	"github.com/matzehuels/raagpile/pkg/pipeline"
	"github.com/matzehuels/raagpile/pkg/word"
)

// isolate points the cache at a fresh directory and clears the Redis default.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv(envRedisURL, "")
	return filepath.Join(dir, appName)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPileJSON(t *testing.T) {
	isolate(t)

	tests := []struct {
		name     string
		args     []string
		want     piling.State
		maxDepth int
	}{
		{
			name: "artin",
			args: []string{"pile", "--preset", "square", "--json", "a c a^{-1}"},
			want: piling.State{
				"a": {1, 0, -1},
				"b": {},
				"c": {0, 1, 0},
				"d": {},
			},
			maxDepth: 3,
		},
		{
			name: "type override",
			args: []string{"pile", "--preset", "square", "--type", "coxeter", "--json", "a a"},
			want: piling.State{
				"a": {},
				"b": {},
				"c": {},
				"d": {},
			},
			maxDepth: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			var res pipeline.Result
			if err := json.Unmarshal([]byte(out), &res); err != nil {
				t.Fatalf("decode output: %v\n%s", err, out)
			}
			if diff := cmp.Diff(tt.want, res.Piling.State); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
			if res.Piling.MaxDepth != tt.maxDepth {
				t.Errorf("MaxDepth = %d, want %d", res.Piling.MaxDepth, tt.maxDepth)
			}
		})
	}
}

func TestPileTable(t *testing.T) {
	isolate(t)
	out, err := execute(t, "pile", "--no-cache", "s_1 s_2")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"s_1s_2", "2 steps", "fresh", "Generator", "s_6"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPileCachesAcrossRuns(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "pile", "s_1"); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "pile", "s_1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "cached") {
		t.Errorf("second run not served from cache:\n%s", out)
	}
}

func TestPileWordsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# hexagon words\na\n\nb a^{-1}  # trailing comment\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "pile", "--preset", "square", "--json", "--words", path, "c")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var results []pipeline.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	var got []string
	for _, r := range results {
		got = append(got, r.Word.String())
	}
	if diff := cmp.Diff([]string{"c", "a", "ba^{-1}"}, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestPileGroupFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "path.toml")
	doc := `type = "artin"
generators = ["a", "b", "c"]
commutations = [["a", "c"]]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "pile", "--group", path, "--json", "a b a^{-1} c b^{-1}")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var res pipeline.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatal(err)
	}
	want := piling.State{
		"a": {1, 0, -1, 0},
		"b": {0, 1, 0, 0, -1},
		"c": {0, 1, 0},
	}
	if diff := cmp.Diff(want, res.Piling.State); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if res.Group != "path" {
		t.Errorf("Group = %q, want name from file", res.Group)
	}
}

func TestCommandErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"parse error", []string{"pile", "s_1^0"}, errors.ErrCodeParse},
		{"unknown generator", []string{"pile", "s_9"}, errors.ErrCodeUnknownGenerator},
		{"no words", []string{"pile"}, errors.ErrCodeInvalidInput},
		{"bad type", []string{"pile", "--type", "braid", "s_1"}, errors.ErrCodeConfiguration},
		{"group and preset", []string{"pile", "--group", "g.toml", "--preset", "square", "a"}, errors.ErrCodeConfiguration},
		{"unknown preset", []string{"graph", "--preset", "nope"}, errors.ErrCodeNotFound},
		{"check generators", []string{"parse", "--check", "s_7"}, errors.ErrCodeUnknownGenerator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "parse", "--json", "x_{12}^{-3} * (y^2)")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var got word.Word
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	want := word.Word{{Generator: "x_12", Exponent: -3}, {Generator: "y", Exponent: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("word mismatch (-want +got):\n%s", diff)
	}

	out, err = execute(t, "parse", "a b^{-2}")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"ab^{-2}", "letters", "3", "a, b"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGraphCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "graph", "--preset", "square", "--current", "a")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{
		"graph commutation {",
		`"a" -- "b";`,
		`"c" -- "d";`,
		`"a" -- "c" [color=red, style=dashed];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT missing %q:\n%s", want, out)
		}
	}

	path := filepath.Join(t.TempDir(), "g.dot")
	if _, err := execute(t, "graph", "--preset", "square", "-o", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "graph commutation {") {
		t.Errorf("file content = %q", data)
	}
}

func TestPresetsCommands(t *testing.T) {
	isolate(t)

	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.Presets() {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %q", name)
		}
	}

	out, err = execute(t, "presets", "show", "square", "--format", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	p, err := config.Decode([]byte(out), config.FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if p.Name != "square" || p.Type != "artin" || len(p.Generators) != 4 || len(p.Commutations) != 4 {
		t.Errorf("presentation = %+v", p)
	}
}

func TestTraceCommand(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "trace.json")

	if _, err := execute(t, "trace", "--preset", "square", "-o", path, "a c^2"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	tr, err := rpio.ImportTrace(path)
	if err != nil {
		t.Fatalf("ImportTrace: %v", err)
	}
	if len(tr.Frames) != 4 {
		t.Errorf("len(Frames) = %d, want 4", len(tr.Frames))
	}
	if tr.Type != "artin" || tr.Group != "square" {
		t.Errorf("trace header = %q/%q", tr.Type, tr.Group)
	}

	out, err := execute(t, "trace", "--preset", "square", "--frames", "a")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "start") || !strings.Contains(out, "step 1: a") {
		t.Errorf("frames output:\n%s", out)
	}
}

func TestCacheClear(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), dir)
	}

	if _, err := execute(t, "pile", "s_1", "s_2"); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cleared 2 cached entries") {
		t.Errorf("clear output:\n%s", out)
	}
}
