package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/raagpile/pkg/errors"
	"github.com/matzehuels/raagpile/pkg/group"
	"github.com/matzehuels/raagpile/pkg/piling"
	"github.com/matzehuels/raagpile/pkg/pipeline"
)

// Trace is the exported form of a traced run.
type Trace struct {
	RunID    uuid.UUID `json:"run_id"`
	Group    string    `json:"group,omitempty"`
	Type     string    `json:"type,omitempty"`
	Word     string    `json:"word"`
	MaxDepth int       `json:"max_depth"`
	Frames   []Frame   `json:"frames"`
}

// Frame is one exported snapshot. Label is the word in LaTeX with the
// current term in bold.
type Frame struct {
	Step      int             `json:"step"`
	Position  int             `json:"position"`
	Generator group.Generator `json:"generator"`
	Label     string          `json:"label,omitempty"`
	State     piling.State    `json:"state"`
}

// NewTrace converts a pipeline result into its exported form. The result
// must come from a trace request.
func NewTrace(res *pipeline.Result, typ string) (*Trace, error) {
	if res == nil || res.Piling == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no piling to export")
	}
	if len(res.Frames) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "result has no frames (run with trace enabled)")
	}

	t := &Trace{
		RunID:    res.RunID,
		Group:    res.Group,
		Type:     typ,
		Word:     res.Word.String(),
		MaxDepth: res.Piling.MaxDepth,
		Frames:   make([]Frame, len(res.Frames)),
	}
	for i, s := range res.Frames {
		t.Frames[i] = Frame{
			Step:      s.Step,
			Position:  s.Position,
			Generator: s.Generator,
			Label:     res.Word.LaTeX(s.Position),
			State:     s.State,
		}
	}
	return t, nil
}

// WriteTrace encodes a traced result as indented JSON and writes it to w.
// The output can be read back with [ReadTrace].
func WriteTrace(w io.Writer, res *pipeline.Result, typ string) error {
	t, err := NewTrace(res, typ)
	if err != nil {
		return err
	}
	return WriteJSON(w, t)
}

// ExportTrace writes a traced result to a JSON file at path.
func ExportTrace(res *pipeline.Result, typ, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTrace(f, res, typ); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadTrace decodes a trace document from r.
//
// ReadTrace returns an INVALID_INPUT error if:
//   - the JSON is malformed
//   - there are no frames, or frame 0 is not the empty pile
//   - steps do not increase by one from frame to frame
//   - a frame is deeper than the recorded max depth
func ReadTrace(r io.Reader) (*Trace, error) {
	var t Trace
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode trace")
	}
	if len(t.Frames) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "trace has no frames")
	}
	if first := t.Frames[0]; first.Step != 0 || !first.State.Empty() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "frame 0 must be the empty pile")
	}
	for i, f := range t.Frames {
		if f.Step != i {
			return nil, errors.New(errors.ErrCodeInvalidInput, "frame %d has step %d", i, f.Step)
		}
		if d := f.State.Depth(); d > t.MaxDepth {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"frame %d has depth %d above max depth %d", i, d, t.MaxDepth)
		}
	}
	return &t, nil
}

// ImportTrace reads a trace from a JSON file at path.
func ImportTrace(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadTrace(f)
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
