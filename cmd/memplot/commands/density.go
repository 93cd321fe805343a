package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/memplot"
	"github.com/rmera/memplot/deriv"
	"github.com/rmera/memplot/render"
)

func densityCmd() *cobra.Command {
	var cmap string
	var minv, maxv float64
	cmd := &cobra.Command{
		Use:   "density",
		Short: "2-D number density maps",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOutput(); err != nil {
				return err
			}
			files, err := expand()
			if err != nil {
				return err
			}
			if len(files) != 1 {
				return fmt.Errorf("density maps take exactly one input file, got %d", len(files))
			}
			g, err := memplot.ReadGridFile(files[0])
			if err != nil {
				return err
			}
			if cmap != "" {
				plotStyle.Colormap = cmap
			}
			mn, mx := g.MinMax()
			lim := deriv.Diverging(deriv.FromData([]float64{mn, mx}, 0, limitOverride(cmd, minv, maxv)))
			ttl := title
			if ttl == "" {
				ttl = "Number density"
			}
			return render.Heat(g, lim, nil, plotStyle, ttl, "x", "y", output)
		},
	}
	cmd.Flags().StringVarP(&cmap, "colormap", "c", "", "colormap name")
	cmd.Flags().Float64Var(&minv, "min", 0, "explicit lower bound for the color scale")
	cmd.Flags().Float64Var(&maxv, "max", 0, "explicit upper bound for the color scale")
	return cmd
}
