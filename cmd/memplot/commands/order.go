package commands

import (
	"github.com/spf13/cobra"

	"github.com/rmera/memplot"
	"github.com/rmera/memplot/render"
)

func orderCmd() *cobra.Command {
	var metricName string
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Order parameter profiles per carbon position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOutput(); err != nil {
				return err
			}
			files, err := expand()
			if err != nil {
				return err
			}
			metric, err := memplot.ParseOrderMetric(metricName)
			if err != nil {
				return err
			}
			series := make([]render.Series, 0, len(files))
			for _, f := range files {
				s, err := memplot.ReadOrderParams(f, metric)
				if err != nil {
					return err
				}
				xs := make([]float64, len(s.Carbons))
				for i, c := range s.Carbons {
					xs[i] = float64(c)
				}
				series = append(series, render.Series{Name: s.Name, X: xs, Y: s.Values})
			}
			ttl := title
			if ttl == "" {
				ttl = metric.String() + " order parameters"
			}
			return render.Lines(series, nil, plotStyle, ttl, "carbon", metric.String(), output)
		},
	}
	cmd.Flags().StringVarP(&metricName, "param", "s", "scc", "order parameter: scc or sch")
	return cmd
}
