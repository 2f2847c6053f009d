package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/raagpile/pkg/group"
	rpio "github.com/matzehuels/raagpile/pkg/io"
)

// graphCommand creates the graph command, which writes the commutation
// graph of the selected group as Graphviz DOT.
func (c *CLI) graphCommand() *cobra.Command {
	var output, current string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Draw the commutation graph as Graphviz DOT",
		Long: `Write the commutation graph of the selected group in Graphviz DOT syntax.
Commuting generators are joined by an edge. With --current, the generator is
highlighted and red dashed edges show the generators it does not commute with.`,
		Example: `  raagpile graph --preset square | dot -Tsvg > square.svg
  raagpile graph --current s_1 -o hexagon.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.OutOrStdout(), output, group.Generator(current))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&current, "current", "", "highlight this generator's non-commuting relations")

	return cmd
}

func (c *CLI) runGraph(w io.Writer, output string, current group.Generator) error {
	pres, err := c.presentation()
	if err != nil {
		return err
	}
	grp, err := pres.Group()
	if err != nil {
		return err
	}

	if output == "" {
		return rpio.WriteDOT(w, grp.Graph(), current)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	bw := bufio.NewWriter(f)
	if err := rpio.WriteDOT(bw, grp.Graph(), current); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess(w, "Wrote commutation graph of %s", pres.Name)
	printFile(w, output)
	return nil
}
