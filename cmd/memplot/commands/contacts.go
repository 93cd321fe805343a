package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rmera/memplot"
	"github.com/rmera/memplot/deriv"
	"github.com/rmera/memplot/render"
)

func contactsCmd() *cobra.Command {
	var mode, coordName string
	var minv, maxv float64
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Protein contact maps and peptide z trajectories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOutput(); err != nil {
				return err
			}
			files, err := expand()
			if err != nil {
				return err
			}
			coord, err := memplot.ParseCoord(coordName)
			if err != nil {
				return err
			}
			ov := limitOverride(cmd, minv, maxv)
			switch mode {
			case "heatmap":
				if len(files) != 1 {
					return fmt.Errorf("contact heatmaps take exactly one input file, got %d", len(files))
				}
				t, err := memplot.ReadTrajectory(files[0])
				if err != nil {
					return err
				}
				return render.ContactMap(t, coord, ov, plotStyle, title, output)
			case "ztraj":
				return zTrajPlot(files, coord, ov)
			case "enrichment":
				return enrichmentPlot(files)
			}
			return fmt.Errorf("unknown contacts plot mode %q (want heatmap, ztraj or enrichment)", mode)
		},
	}
	cmd.Flags().StringVar(&mode, "plot", "heatmap", "heatmap, ztraj or enrichment")
	cmd.Flags().StringVar(&coordName, "coord", "abs", "z representation: abs or rel")
	cmd.Flags().Float64Var(&minv, "min", 0, "explicit lower bound for the z scale")
	cmd.Flags().Float64Var(&maxv, "max", 0, "explicit upper bound for the z scale")
	return cmd
}

// zTrajPlot draws the peptide z of each input trajectory against time.
// With absolute coordinates the Y axis is ticked at the five representative
// leaflet positions, unless the z range straddles zero symmetrically.
func zTrajPlot(files []string, coord memplot.Coord, ov deriv.Override) error {
	series := make([]render.Series, 0, len(files))
	var allz []float64
	var lowerMax, upperMin float64
	for i, f := range files {
		t, err := memplot.ReadTrajectory(f)
		if err != nil {
			return err
		}
		z, err := deriv.ZColumn(t, coord)
		if err != nil {
			return err
		}
		series = append(series, render.Series{Name: seriesName(f), X: t.Times(), Y: z})
		allz = append(allz, z...)
		lm, um := t.LeafletBounds()
		if i == 0 || lm > lowerMax {
			lowerMax = lm
		}
		if i == 0 || um < upperMin {
			upperMin = um
		}
	}
	ylabel := "z"
	var yticks []float64
	if coord == memplot.Relative {
		ylabel = "relative z"
	} else {
		lim := deriv.Diverging(deriv.FromData(allz, 0, ov))
		if !lim.Symmetric() {
			yticks = deriv.LeafletTicks(lim.Min, lowerMax, upperMin, lim.Max)
		}
	}
	return render.Lines(series, yticks, plotStyle, title, "time", ylabel, output)
}

// enrichmentPlot draws, per input, the fraction of frames each protein
// residue spends in contact with lipid headgroups.
func enrichmentPlot(files []string) error {
	series := make([]render.Series, 0, len(files))
	for _, f := range files {
		t, err := memplot.ReadTrajectory(f)
		if err != nil {
			return err
		}
		counts, err := t.ContactCounts()
		if err != nil {
			return err
		}
		res := make([]float64, len(counts))
		for i := range res {
			res[i] = float64(i)
		}
		series = append(series, render.Series{Name: seriesName(f), X: res, Y: counts})
	}
	return render.Lines(series, nil, plotStyle, title, "residue", "contact fraction", output)
}

func seriesName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
