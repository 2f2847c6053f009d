// Package group models right-angled Artin and Coxeter group presentations.
//
// A presentation is a finite generator set plus a symmetric commutation
// relation. Right-angled Artin groups (RAAGs) have generators of infinite
// order; right-angled Coxeter groups (RACGs) have generators that are
// involutions. Both share the same [Graph]; the [Type] selects the
// cancellation rule used by the piling engine.
//
// # Graph
//
// [NewGraph] validates the declared generators and the commuting pairs.
// Every generator commutes with itself, and the distinguished [Identity]
// commutes with everything. For each generator the graph precomputes the
// sorted set of generators it does not commute with:
//
//	g, err := group.NewGraph(
//	    []group.Generator{"a", "b", "c"},
//	    []group.Pair{{"a", "c"}},
//	)
//	g.NonCommuting("b") // [a c]
//
// # Group
//
// [New] combines a graph with a [Type]:
//
//	grp, err := group.New(gens, pairs, group.Coxeter)
//
// # Concurrency
//
// [Graph] and [Group] are immutable after construction and safe for
// concurrent reads.
package group
