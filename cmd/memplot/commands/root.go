package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/memplot"
	"github.com/rmera/memplot/deriv"
	"github.com/rmera/memplot/style"
)

var (
	inputs    []string
	output    string
	title     string
	stylePath string
	plotStyle *style.Style
)

func Execute() error {
	root := &cobra.Command{
		Use:          "memplot",
		Short:        "Plots for membrane simulation analysis output",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if stylePath == "" {
				plotStyle = style.Default()
				return nil
			}
			var err error
			plotStyle, err = style.Load(stylePath)
			return err
		},
	}
	root.PersistentFlags().StringSliceVarP(&inputs, "input", "i", nil, "input file(s) or directories")
	root.PersistentFlags().StringVarP(&output, "output", "o", "", "output image (.png or .pdf)")
	root.PersistentFlags().StringVarP(&title, "title", "t", "", "plot title")
	root.PersistentFlags().StringVar(&stylePath, "style", "", "YAML style file")

	root.AddCommand(contactsCmd(), curvatureCmd(), orderCmd(), densityCmd())
	return root.Execute()
}

// expand turns the -i values into a concrete file list.
func expand() ([]string, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one -i input is required")
	}
	return memplot.ExpandInputs(inputs)
}

func requireOutput() error {
	if output == "" {
		return fmt.Errorf("an -o output path is required")
	}
	return nil
}

// limitOverride builds a limit override from the min/max flags; only the
// flags the user actually set take effect.
func limitOverride(cmd *cobra.Command, minv, maxv float64) deriv.Override {
	var ov deriv.Override
	if cmd.Flags().Changed("min") {
		ov.Min = &minv
	}
	if cmd.Flags().Changed("max") {
		ov.Max = &maxv
	}
	return ov
}
