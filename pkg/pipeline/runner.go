package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/raagpile/pkg/cache"
	"github.com/matzehuels/raagpile/pkg/config"
	"github.com/matzehuels/raagpile/pkg/group"
	"github.com/matzehuels/raagpile/pkg/observability"
	"github.com/matzehuels/raagpile/pkg/piling"
	"github.com/matzehuels/raagpile/pkg/word"
)

const keyTypePiling = "piling"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Run executes one request.
//
// Configuration problems, parse errors and unknown generators are returned
// before any piling work starts. Cache failures are logged and otherwise
// ignored.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	grp, err := req.Presentation.Group()
	if err != nil {
		return nil, err
	}
	w, err := word.Parse(req.Word)
	observability.Piling().OnParseComplete(ctx, req.Word, w.Len(), err)
	if err != nil {
		return nil, err
	}
	if err := grp.Graph().Unknown(w.Generators()); err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.New(), Group: req.Presentation.Name}
	logger := r.Logger.With("run", res.RunID.String()[:8])

	key, err := r.key(grp, w, req.Trace)
	if err != nil {
		logger.Warn("cache key unavailable", "error", err)
	}

	if key != "" && !req.Refresh {
		if cached, ok := r.lookup(ctx, logger, key); ok {
			res.Word = cached.Word
			res.Piling = cached.Piling
			res.Frames = cached.Frames
			res.CacheHit = true
			res.Duration = time.Since(start)
			logger.Debug("piling from cache", "word", w.String(), "max_depth", res.Piling.MaxDepth)
			return res, nil
		}
	}

	observability.Piling().OnPileStart(ctx, res.Group, w.Len())
	pileStart := time.Now()
	if req.Trace {
		res.Frames, res.Piling, err = piling.Trace(w, grp)
	} else {
		res.Piling, err = piling.Compute(w, grp, piling.Options{})
	}
	if err != nil {
		observability.Piling().OnPileComplete(ctx, res.Group, 0, 0, time.Since(pileStart), err)
		return nil, err
	}
	observability.Piling().OnPileComplete(ctx, res.Group, res.Piling.Steps, res.Piling.MaxDepth, time.Since(pileStart), nil)
	res.Word = w

	logger.Debug("computed piling",
		"group", grp.String(),
		"word", w.String(),
		"steps", res.Piling.Steps,
		"max_depth", res.Piling.MaxDepth,
		"duration", time.Since(pileStart))

	if key != "" {
		r.store(ctx, logger, key, cachedResult{Word: w, Piling: res.Piling, Frames: res.Frames})
	}

	res.Duration = time.Since(start)
	return res, nil
}

// RunBatch executes reqs with at most parallel concurrent runs and returns
// the results in request order. The first failure cancels the remaining
// runs and is returned annotated with its request index.
func (r *Runner) RunBatch(ctx context.Context, reqs []Request, parallel int) ([]*Result, error) {
	if parallel <= 0 {
		parallel = DefaultParallel
	}
	results := make([]*Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := r.Run(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d (%q): %w", i, req.Word, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// key derives the cache key from the canonical presentation with sorted
// generators, so the same group declared in a different order or with
// duplicated pairs shares entries.
func (r *Runner) key(grp *group.Group, w word.Word, trace bool) (string, error) {
	pres := config.FromGroup("", grp)
	slices.Sort(pres.Generators)
	groupHash, err := cache.HashJSON(pres)
	if err != nil {
		return "", err
	}
	return r.Keyer.PilingKey(groupHash, cache.PilingKeyOpts{
		Type:  grp.Type().String(),
		Word:  w.String(),
		Trace: trace,
	}), nil
}

func (r *Runner) lookup(ctx context.Context, logger *log.Logger, key string) (cachedResult, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "error", err)
		return cachedResult{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypePiling)
		return cachedResult{}, false
	}

	var cached cachedResult
	if err := json.Unmarshal(data, &cached); err != nil || cached.Piling == nil {
		// Undecodable entries are recomputed and overwritten.
		logger.Debug("discarding cache entry", "error", err)
		observability.Cache().OnCacheMiss(ctx, keyTypePiling)
		return cachedResult{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypePiling)
	return cached, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, key string, entry cachedResult) {
	data, err := json.Marshal(entry)
	if err != nil {
		logger.Warn("cache encode failed", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypePiling, len(data))
}
