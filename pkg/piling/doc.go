// Package piling computes the piling representation of a word in a
// right-angled Artin or Coxeter group.
//
// A piling keeps one stack per generator. Each unit step of the word either
// cancels against the top of its generator's stack or pushes a mark onto it.
// A push also drops a blocking mark (0) on every non-commuting generator,
// and a cancellation removes those marks again, so the stacks together form
// a heap of pieces that respects the commutation graph.
//
// # Cancellation
//
// Only the predicate differs between group types:
//
//	artin:   cancel iff top == -sign   (a a^{-1} vanishes, a a does not)
//	coxeter: cancel iff top != 0       (a a vanishes)
//
// # Usage
//
//	res, err := piling.Compute(w, grp, piling.Options{})
//	res.State["a"] // []Mark
//	res.MaxDepth
//
// Per-step snapshots, for renderers, come from [Options.OnStep], [Trace] or
// [Steps]. Snapshots are deep copies and never alias the engine's state.
//
// # Concurrency
//
// A [Pile] is owned by one goroutine. Independent computations may share a
// [group.Group] and run in parallel.
package piling
