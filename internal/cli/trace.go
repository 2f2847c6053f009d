package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/raagpile/pkg/group"
	rpio "github.com/matzehuels/raagpile/pkg/io"
	"github.com/matzehuels/raagpile/pkg/pipeline"
)

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	output string // write the JSON trace here instead of stdout
	frames bool   // print every frame as a table instead of JSON
}

// traceCommand creates the trace command, which exports the pile after
// every unit step for external renderers.
func (c *CLI) traceCommand() *cobra.Command {
	var opts traceOpts

	cmd := &cobra.Command{
		Use:   "trace <word>",
		Short: "Export every intermediate pile of a word",
		Long: `Compute a word step by step and export every frame: the empty pile first,
then the pile after each unit step. The JSON output carries the final max
depth so all frames can be drawn at one height.`,
		Example: `  raagpile trace "s_1 s_4^{2} s_1^{-1}" -o frames.json
  raagpile trace --frames "a b a^{-1}"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrace(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.frames, "frames", false, "print each frame as a table")

	return cmd
}

func (c *CLI) runTrace(ctx context.Context, w io.Writer, text string, opts traceOpts) error {
	pres, err := c.presentation()
	if err != nil {
		return err
	}
	typ, err := group.ParseType(pres.Type)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Run(ctx, pipeline.Request{Presentation: pres, Word: text, Trace: true})
	if err != nil {
		return err
	}

	switch {
	case opts.frames:
		for _, f := range res.Frames {
			label := "start"
			if f.Position >= 0 {
				label = fmt.Sprintf("step %d: %s", f.Step, f.Generator)
			}
			fmt.Fprintln(w, StyleTitle.Render(label)+" "+StyleDim.Render(res.Word.LaTeX(f.Position)))
			fmt.Fprintln(w, stackTable(f.State))
		}
		printStats(w, res.Piling.Steps, res.Piling.MaxDepth, res.CacheHit)
		return nil
	case opts.output != "":
		if err := rpio.ExportTrace(res, typ.String(), opts.output); err != nil {
			return err
		}
		printSuccess(w, "Exported %d frames", len(res.Frames))
		printFile(w, opts.output)
		return nil
	default:
		return rpio.WriteTrace(w, res, typ.String())
	}
}
