package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/memplot"
	"github.com/rmera/memplot/deriv"
	"github.com/rmera/memplot/render"
)

func curvatureCmd() *cobra.Command {
	var plotMode, cmap string
	var limv float64
	cmd := &cobra.Command{
		Use:   "curvature",
		Short: "Mean and Gaussian curvature maps and leaflet surfaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOutput(); err != nil {
				return err
			}
			mode, err := deriv.ParseCurvatureMode(plotMode)
			if err != nil {
				return err
			}
			files, err := expand()
			if err != nil {
				return err
			}
			if cmap != "" {
				plotStyle.Colormap = cmap
			}
			var ov deriv.Override
			if cmd.Flags().Changed("lim") {
				ov = deriv.Symmetric(limv)
			}
			ttl := title
			if ttl == "" {
				ttl = mode.Title()
			}
			switch mode {
			case deriv.Mean, deriv.Gaussian, deriv.Basic, deriv.Smoothed:
				if len(files) != 1 {
					return fmt.Errorf("%v maps take exactly one input file, got %d", mode, len(files))
				}
				g, err := memplot.ReadGridFile(files[0])
				if err != nil {
					return err
				}
				if mode == deriv.Smoothed {
					g.Data = deriv.Smooth(g.Data)
				}
				mn, mx := g.MinMax()
				lim := deriv.Diverging(deriv.FromData([]float64{mn, mx}, 0, ov))
				if mode == deriv.Mean || mode == deriv.Gaussian {
					return render.Contour(g, lim, 11, plotStyle, ttl, "x", "y", output)
				}
				return render.Heat(g, lim, nil, plotStyle, ttl, "x", "y", output)
			case deriv.Three:
				if len(files) != 3 {
					return fmt.Errorf("3_curvatures takes exactly three inputs (height, mean and Gaussian grids), got %d", len(files))
				}
				names := []string{"height", "mean curvature", "Gaussian curvature"}
				panels := make([]deriv.Panel, 0, 3)
				for i, f := range files {
					g, err := memplot.ReadGridFile(f)
					if err != nil {
						return err
					}
					mn, mx := g.MinMax()
					lim := deriv.Diverging(deriv.FromData([]float64{mn, mx}, 0, ov))
					panels = append(panels, deriv.Panel{Title: names[i], Grid: g, Limits: lim})
				}
				return render.Panels(panels, 1, 3, nil, plotStyle, "", output)
			case deriv.First6, deriv.Last6, deriv.Middle6:
				if len(files) != 1 {
					return fmt.Errorf("%v takes exactly one surface file, got %d", mode, len(files))
				}
				rows, err := memplot.ReadSurfaceFile(files[0])
				if err != nil {
					return err
				}
				panels, lim, err := deriv.SurfacePanels(mode, rows, ov)
				if err != nil {
					return err
				}
				return render.Panels(panels, 2, 3, &lim, plotStyle, "", output)
			}
			return fmt.Errorf("unhandled plot mode %v", mode)
		},
	}
	cmd.Flags().StringVar(&plotMode, "plot", "mean", "mean, gaussian, basic, smooth, 3_curvatures, first_6, last_6 or middle_6")
	cmd.Flags().StringVarP(&cmap, "colormap", "c", "", "colormap name")
	cmd.Flags().Float64Var(&limv, "lim", 0, "force the color scale to ±lim")
	return cmd
}
