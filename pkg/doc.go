// Package pkg provides the libraries behind raagpile.
//
// # Overview
//
// raagpile computes the piling of a word in a right-angled Artin group
// (RAAG) or right-angled Coxeter group (RACG): one stack per generator that
// records how the letters of the word interleave and cancel under the
// commutation graph. The pkg directory is organized into three areas:
//
//  1. Domain: [group], [word] and [piling]
//  2. Infrastructure: [config], [cache], [observability] and [errors]
//  3. Orchestration and output: [pipeline] and [io]
//
// # Architecture
//
// The typical data flow:
//
//	presentation file / preset
//	         ↓
//	    [config] package (decode TOML or YAML)
//	         ↓
//	    [group] package (commutation graph + group type)
//	         ↓
//	    [word] package (parse text into terms)
//	         ↓
//	    [piling] package (stack per generator, one unit step at a time)
//	         ↓
//	    [io] package (JSON traces, DOT graphs)
//
// [pipeline] ties these together with caching.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/raagpile/pkg/group"
//	    "github.com/matzehuels/raagpile/pkg/piling"
//	    "github.com/matzehuels/raagpile/pkg/word"
//	)
//
//	grp, err := group.New(
//	    []group.Generator{"a", "b", "c"},
//	    []group.Pair{{A: "a", B: "c"}},
//	    group.Artin,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, err := word.Parse("a b a^{-1} c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := piling.Compute(w, grp, piling.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.State["a"], res.MaxDepth)
//
// # Group types
//
// The two group types share everything except the cancellation rule. In a
// RAAG a letter cancels the top of its stack only against its inverse; in a
// RACG every generator is an involution, so any non-blocking top cancels.
//
// [group]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/group
// [word]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/word
// [piling]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/piling
// [config]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/errors
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/raagpile/pkg/io
package pkg
