//Package style holds the figure-wide appearance settings of memplot and
//reads them from an optional YAML file.
package style

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Style collects the appearance settings shared by every plot kind. The
// zero value of a field in the YAML file falls back to the default, except
// Colormap, where an empty string lets each plot pick a diverging or
// sequential map from its limits.
type Style struct {
	Colormap string  `yaml:"colormap"`
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
	FontPt   float64 `yaml:"font_pt"`
	XLabel   string  `yaml:"x_label"`
	YLabel   string  `yaml:"y_label"`
}

// Default returns the built-in style.
func Default() *Style {
	return &Style{WidthCm: 14, HeightCm: 10, FontPt: 11}
}

// Load reads a YAML style file and merges it over the defaults, so the
// file only needs the settings it wants to change.
func Load(name string) (*Style, error) {
	st := Default()
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("style.Load: %v", err)
	}
	if err := yaml.Unmarshal(b, st); err != nil {
		return nil, fmt.Errorf("style.Load: %s: %v", name, err)
	}
	if st.WidthCm <= 0 || st.HeightCm <= 0 {
		return nil, fmt.Errorf("style.Load: %s: figure dimensions must be positive", name)
	}
	return st, nil
}

// Width returns the figure width as a vg length.
func (s *Style) Width() vg.Length { return vg.Length(s.WidthCm) * vg.Centimeter }

// Height returns the figure height as a vg length.
func (s *Style) Height() vg.Length { return vg.Length(s.HeightCm) * vg.Centimeter }

// Apply sets the common cosmetics on a plot. Label overrides from the
// style file replace whatever the plot kind chose.
func (s *Style) Apply(p *plot.Plot) {
	if s.FontPt > 0 {
		sz := vg.Points(s.FontPt)
		p.Title.TextStyle.Font.Size = sz
		p.X.Label.TextStyle.Font.Size = sz
		p.Y.Label.TextStyle.Font.Size = sz
		p.X.Tick.Label.Font.Size = sz
		p.Y.Tick.Label.Font.Size = sz
		p.Legend.TextStyle.Font.Size = sz
	}
	if s.XLabel != "" {
		p.X.Label.Text = s.XLabel
	}
	if s.YLabel != "" {
		p.Y.Label.Text = s.YLabel
	}
}
