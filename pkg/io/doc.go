// Package io exports piling results for external tools.
//
// # Trace format
//
// [WriteTrace] serialises a traced run as JSON. Frame 0 is the empty pile;
// every following frame is the pile after one unit step. The final max
// depth is stored once so a renderer can give every frame the same height:
//
//	{
//	  "run_id": "3f0c9a4e-...",
//	  "group": "hexagon-artin",
//	  "type": "artin",
//	  "word": "s_1s_4^{-1}",
//	  "max_depth": 2,
//	  "frames": [
//	    {"step": 0, "position": -1, "generator": "", "label": "$s_1^{}s_4^{-1}$", "state": {...}},
//	    {"step": 1, "position": 0, "generator": "s_1", "label": "$\\boldsymbol{s_1^{}}s_4^{-1}$", "state": {...}}
//	  ]
//	}
//
// Each state maps a generator to its stack, bottom first, with marks 1
// (positive letter), -1 (negative letter) and 0 (blocked). [ReadTrace]
// parses the same document back and checks it for consistency.
//
// # DOT format
//
// [WriteDOT] draws the commutation graph as an undirected Graphviz graph.
// Commuting pairs are joined by black edges. When a current generator is
// given, it is highlighted and its non-commuting relations are drawn as
// red dashed edges, the relations that block its letters in the pile.
//
//	dot -Tsvg graph.dot > graph.svg
package io
