// Package cli implements the raagpile command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - pile: compute the piling of one or more words
//   - trace: export every intermediate pile of a word as JSON
//   - parse: show how a word is read
//   - graph: draw the commutation graph as Graphviz DOT
//   - presets: list or print the embedded group presentations
//   - cache: manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Piled 12 words (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports piling and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnParseComplete(_ context.Context, text string, letters int, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "word", text, "error", err)
		return
	}
	h.logger.Debug("parsed word", "word", text, "letters", letters)
}

func (h logHooks) OnPileStart(_ context.Context, group string, letters int) {
	h.logger.Debug("piling", "group", group, "letters", letters)
}

func (h logHooks) OnPileComplete(_ context.Context, group string, steps, maxDepth int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("piling failed", "group", group, "error", err)
		return
	}
	h.logger.Debug("piled", "group", group, "steps", steps, "max_depth", maxDepth, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
