package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/raagpile/pkg/group"
)

// WriteDOT writes the commutation graph g in Graphviz DOT syntax.
//
// When current is non-empty it must be a generator of g. Its node is drawn
// red, and a red dashed edge joins it to each generator it does not commute
// with.
func WriteDOT(w io.Writer, g *group.Graph, current group.Generator) error {
	if current != "" && current != group.Identity {
		if err := g.Unknown([]group.Generator{current}); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph commutation {")
	fmt.Fprintln(bw, "  node [shape=circle];")
	for _, gen := range g.Generators() {
		if gen == current {
			fmt.Fprintf(bw, "  %s [color=red, fontcolor=red];\n", quote(gen))
			continue
		}
		fmt.Fprintf(bw, "  %s;\n", quote(gen))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %s -- %s;\n", quote(e.A), quote(e.B))
	}
	if current != "" && current != group.Identity {
		for _, h := range g.NonCommuting(current) {
			fmt.Fprintf(bw, "  %s -- %s [color=red, style=dashed];\n", quote(current), quote(h))
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func quote(g group.Generator) string {
	return strconv.Quote(string(g))
}
