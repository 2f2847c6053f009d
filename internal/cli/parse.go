package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	rpio "github.com/matzehuels/raagpile/pkg/io"
	"github.com/matzehuels/raagpile/pkg/word"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	jsonOut bool // print the parsed terms as JSON
	check   bool // also check generators against the selected group
}

// parseCommand creates the parse command, which shows how a word is read
// without piling it.
func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <word>",
		Short: "Show how a word is parsed",
		Example: `  raagpile parse "x_{12}^{-3} y^2"
  raagpile parse --check "s_1 s_7"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the parsed terms as JSON")
	cmd.Flags().BoolVar(&opts.check, "check", false, "check generators against the selected group")

	return cmd
}

func (c *CLI) runParse(w io.Writer, text string, opts parseOpts) error {
	parsed, err := word.Parse(text)
	if err != nil {
		return err
	}

	if opts.check {
		pres, err := c.presentation()
		if err != nil {
			return err
		}
		grp, err := pres.Group()
		if err != nil {
			return err
		}
		if err := grp.Graph().Unknown(parsed.Generators()); err != nil {
			return err
		}
	}

	if opts.jsonOut {
		return rpio.WriteJSON(w, parsed)
	}

	gens := make([]string, 0, len(parsed))
	for _, g := range parsed.Generators() {
		gens = append(gens, string(g))
	}
	printKeyValue(w, "canonical", parsed.String())
	printKeyValue(w, "latex", parsed.LaTeX(-1))
	printKeyValue(w, "terms", fmt.Sprint(len(parsed)))
	printKeyValue(w, "letters", fmt.Sprint(parsed.Len()))
	printKeyValue(w, "generators", strings.Join(gens, ", "))
	return nil
}
