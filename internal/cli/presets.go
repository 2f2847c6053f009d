package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/raagpile/pkg/config"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the embedded group presentations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsList(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(c.presetsShowCommand())

	return cmd
}

// presetsShowCommand creates the "presets show" subcommand, which prints a
// preset in canonical form so it can be saved and edited.
func (c *CLI) presetsShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:       "show <name>",
		Short:     "Print a preset as a presentation file",
		Example:   `  raagpile presets show hexagon-coxeter --format yaml > hexagon.yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Presets(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsShow(cmd.OutOrStdout(), args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, "output format: toml, yaml")

	return cmd
}

func runPresetsList(w io.Writer) error {
	for _, name := range config.Presets() {
		p, err := config.Preset(name)
		if err != nil {
			return err
		}
		grp, err := p.Group()
		if err != nil {
			return err
		}
		printKeyValue(w, name, grp.String())
	}
	return nil
}

func runPresetsShow(w io.Writer, name, format string) error {
	p, err := config.Preset(name)
	if err != nil {
		return err
	}
	grp, err := p.Group()
	if err != nil {
		return err
	}
	return config.Encode(w, config.FromGroup(p.Name, grp), format)
}
