// Package pipeline runs the parse → pile pipeline with caching.
//
// A [Request] names a group presentation and a word. [Runner.Run] builds the
// group, parses the word, computes the piling (optionally with every
// intermediate frame) and returns a [Result]. Results are pure functions
// of their inputs and are cached under a content hash of the canonical
// presentation, the group type, the canonical word text and the trace flag.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Run(ctx, pipeline.Request{
//	    Presentation: pres,
//	    Word:         "s_1 s_4^{-1} s_2",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Piling.MaxDepth)
//
// Many words can be piled concurrently with [Runner.RunBatch].
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/raagpile/pkg/config"
	"github.com/matzehuels/raagpile/pkg/errors"
	"github.com/matzehuels/raagpile/pkg/piling"
	"github.com/matzehuels/raagpile/pkg/word"
)

// DefaultParallel is the batch concurrency used when none is given.
const DefaultParallel = 4

// Request describes one piling run.
type Request struct {
	// Presentation is the group to pile in. Required.
	Presentation *config.Presentation `json:"presentation"`

	// Word is the textual word, e.g. "a b^{-1} c_2".
	Word string `json:"word"`

	// Trace also records every intermediate frame.
	Trace bool `json:"trace,omitempty"`

	// Refresh skips the cache lookup. The fresh result is still stored.
	Refresh bool `json:"refresh,omitempty"`
}

// Validate checks that the request is complete.
func (r Request) Validate() error {
	if r.Presentation == nil {
		return errors.New(errors.ErrCodeInvalidInput, "presentation is required")
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run. Cache hits get a fresh ID.
	RunID uuid.UUID `json:"run_id"`

	// Group is the presentation name.
	Group string `json:"group,omitempty"`

	// Word is the parsed word.
	Word word.Word `json:"word"`

	// Piling is the final pile with its statistics.
	Piling *piling.Result `json:"piling"`

	// Frames holds the initial empty frame followed by one frame per unit
	// step. Only set for trace requests.
	Frames []piling.Snapshot `json:"frames,omitempty"`

	// CacheHit reports whether the piling came from the cache.
	CacheHit bool `json:"cache_hit"`

	// Duration is the wall time of the run, including cache access.
	Duration time.Duration `json:"duration"`
}

// cachedResult is the part of a Result that is stored in the cache.
type cachedResult struct {
	Word   word.Word         `json:"word"`
	Piling *piling.Result    `json:"piling"`
	Frames []piling.Snapshot `json:"frames,omitempty"`
}
