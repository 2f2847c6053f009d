package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/raagpile/pkg/errors"
	rpio "github.com/matzehuels/raagpile/pkg/io"
	"github.com/matzehuels/raagpile/pkg/pipeline"
)

// pileOpts holds the command-line flags for the pile command.
type pileOpts struct {
	jsonOut   bool   // print results as JSON instead of tables
	wordsFile string // read additional words from this file, one per line
	parallel  int    // concurrent computations for batches
	refresh   bool   // ignore cached results
}

// pileCommand creates the pile command.
func (c *CLI) pileCommand() *cobra.Command {
	opts := pileOpts{parallel: pipeline.DefaultParallel}

	cmd := &cobra.Command{
		Use:   "pile [word...]",
		Short: "Compute the piling of one or more words",
		Long: `Compute the piling of each word in the selected group and print its stacks.

Words use generator names with optional subscripts and exponents, separated
by spaces or '*': "s_1 s_4^{-1} s_2", "a*b^2*(c)", "x_{12}^{-3}". The
identity is written "1".`,
		Example: `  raagpile pile "s_1 s_4 s_1^{-1}"
  raagpile pile --preset hexagon-coxeter "s_1 s_2 s_1"
  raagpile pile -g group.toml --words words.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := args
			if opts.wordsFile != "" {
				more, err := readWords(opts.wordsFile)
				if err != nil {
					return err
				}
				words = append(words, more...)
			}
			if len(words) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no words given")
			}
			return c.runPile(cmd.Context(), cmd.OutOrStdout(), words, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	cmd.Flags().StringVarP(&opts.wordsFile, "words", "w", "", "file with one word per line ('#' starts a comment)")
	cmd.Flags().IntVar(&opts.parallel, "parallel", opts.parallel, "number of words piled concurrently")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")

	return cmd
}

func (c *CLI) runPile(ctx context.Context, w io.Writer, words []string, opts pileOpts) error {
	pres, err := c.presentation()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	reqs := make([]pipeline.Request, len(words))
	for i, word := range words {
		reqs[i] = pipeline.Request{Presentation: pres, Word: word, Refresh: opts.refresh}
	}

	var results []*pipeline.Result
	if len(reqs) == 1 {
		res, err := runner.Run(ctx, reqs[0])
		if err != nil {
			return err
		}
		results = []*pipeline.Result{res}
	} else {
		prog := newProgress(loggerFromContext(ctx))
		results, err = runner.RunBatch(ctx, reqs, opts.parallel)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Piled %d words in %s", len(results), pres.Name))
	}

	if opts.jsonOut {
		if len(results) == 1 {
			return rpio.WriteJSON(w, results[0])
		}
		return rpio.WriteJSON(w, results)
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printPiling(w, res)
	}
	return nil
}

// readWords reads one word per line, skipping blank lines and comments.
func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open words file")
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		if line = strings.TrimSpace(line); line != "" {
			words = append(words, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}
