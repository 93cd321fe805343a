//Package render assembles and saves the memplot figures with
//gonum.org/v1/plot: heatmaps and contour maps with colorbars, tiled
//per-frame surface panels, order parameter and z-trajectory line plots,
//and the contact map with its z overlay.
package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/memplot"
	"github.com/rmera/memplot/deriv"
	"github.com/rmera/memplot/style"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// colorBarHeight is the vertical space reserved for the colorbar strip
// under heatmaps and contour maps.
const colorBarHeight = 1.5 * vg.Centimeter

// colorMap returns the named gonum colormap scaled to the given limits.
func colorMap(name string, lim deriv.Limits) (palette.ColorMap, error) {
	var cm palette.ColorMap
	switch name {
	case "blue-red":
		cm = moreland.SmoothBlueRed()
	case "kindlmann":
		cm = moreland.Kindlmann()
	case "black-body":
		cm = moreland.BlackBody()
	case "extended-black-body":
		cm = moreland.ExtendedBlackBody()
	default:
		return nil, fmt.Errorf("render: unknown colormap %q (have blue-red, kindlmann, black-body, extended-black-body)", name)
	}
	cm.SetMin(lim.Min)
	cm.SetMax(lim.Max)
	return cm, nil
}

// pickMap chooses the colormap: the style's explicit choice if there is
// one, a diverging map for symmetric limits, a sequential one otherwise.
func pickMap(st *style.Style, lim deriv.Limits) string {
	if st.Colormap != "" {
		return st.Colormap
	}
	if lim.Symmetric() {
		return "blue-red"
	}
	return "kindlmann"
}

// colorBarPlot builds the horizontal colorbar strip for the given map.
// ticks, when non-nil, replaces the automatic tick positions.
func colorBarPlot(cm palette.ColorMap, ticks []float64) *plot.Plot {
	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: cm})
	p.HideY()
	p.X.Padding = 0
	if ticks != nil {
		tk := make([]plot.Tick, len(ticks))
		for i, v := range ticks {
			tk[i] = plot.Tick{Value: v, Label: fmt.Sprintf("%.4g", v)}
		}
		p.X.Tick.Marker = plot.ConstantTicks(tk)
	}
	return p
}

// saveCanvas renders through the given function into a canvas of the
// requested size and writes it to out, as PNG or PDF by extension.
func saveCanvas(w, h vg.Length, out string, render func(dc draw.Canvas)) error {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		img := vgimg.New(w, h)
		render(draw.New(img))
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		png := vgimg.PngCanvas{Canvas: img}
		_, err = png.WriteTo(f)
		return err
	case ".pdf":
		c := vgpdf.New(w, h)
		render(draw.New(c))
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = c.WriteTo(f)
		return err
	}
	return fmt.Errorf("render: unsupported output format %q (want .png or .pdf)", filepath.Ext(out))
}

// withColorBar draws the main plot above a colorbar strip.
func withColorBar(p, cb *plot.Plot, w, h vg.Length, out string) error {
	return saveCanvas(w, h, out, func(dc draw.Canvas) {
		hgt := dc.Max.Y - dc.Min.Y
		p.Draw(draw.Crop(dc, 0, 0, colorBarHeight, 0))
		cb.Draw(draw.Crop(dc, 0, 0, 0, colorBarHeight-hgt))
	})
}

// Heat renders the grid as a heatmap with a colorbar. cbticks, when
// non-nil, gives explicit colorbar tick positions (the five leaflet
// positions, typically).
func Heat(g *memplot.Grid, lim deriv.Limits, cbticks []float64, st *style.Style, title, xlabel, ylabel, out string) error {
	cm, err := colorMap(pickMap(st, lim), lim)
	if err != nil {
		return err
	}
	h := plotter.NewHeatMap(g, cm.Palette(255))
	h.Min = lim.Min
	h.Max = lim.Max
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(h)
	st.Apply(p)
	return withColorBar(p, colorBarPlot(cm, cbticks), st.Width(), st.Height(), out)
}

// Contour renders the grid as a filled contour map with nlevels levels
// spread evenly between the limits.
func Contour(g *memplot.Grid, lim deriv.Limits, nlevels int, st *style.Style, title, xlabel, ylabel, out string) error {
	cm, err := colorMap(pickMap(st, lim), lim)
	if err != nil {
		return err
	}
	if nlevels < 2 {
		nlevels = 2
	}
	levels := floats.Span(make([]float64, nlevels), lim.Min, lim.Max)
	c := plotter.NewContour(g, levels, cm.Palette(nlevels))
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(c)
	st.Apply(p)
	return withColorBar(p, colorBarPlot(cm, nil), st.Width(), st.Height(), out)
}

// Panels tiles the derived panels into rows-by-cols cells. With a non-nil
// shared limit every panel uses the same colormap and one colorbar strip
// is drawn under the tiles; otherwise each panel keeps its own scale and
// no colorbar is drawn. A non-empty title replaces the first panel's own.
func Panels(panels []deriv.Panel, rows, cols int, shared *deriv.Limits, st *style.Style, title, out string) error {
	if len(panels) == 0 {
		return fmt.Errorf("render.Panels: no panels to draw")
	}
	var sharedMap palette.ColorMap
	var err error
	if shared != nil {
		sharedMap, err = colorMap(pickMap(st, *shared), *shared)
		if err != nil {
			return err
		}
	}
	pp := make([][]*plot.Plot, rows)
	k := 0
	for i := 0; i < rows; i++ {
		pp[i] = make([]*plot.Plot, cols)
		for j := 0; j < cols && k < len(panels); j++ {
			pn := panels[k]
			k++
			cm := sharedMap
			if shared == nil {
				cm, err = colorMap(pickMap(st, pn.Limits), pn.Limits)
				if err != nil {
					return err
				}
			}
			h := plotter.NewHeatMap(pn.Grid, cm.Palette(255))
			h.Min = pn.Limits.Min
			h.Max = pn.Limits.Max
			p := plot.New()
			p.Title.Text = pn.Title
			p.Add(h)
			st.Apply(p)
			pp[i][j] = p
		}
	}
	if title != "" {
		pp[0][0].Title.Text = title
	}
	return saveCanvas(st.Width(), st.Height(), out, func(dc draw.Canvas) {
		upper := dc
		if shared != nil {
			hgt := dc.Max.Y - dc.Min.Y
			upper = draw.Crop(dc, 0, 0, colorBarHeight, 0)
			colorBarPlot(sharedMap, nil).Draw(draw.Crop(dc, 0, 0, 0, colorBarHeight-hgt))
		}
		t := draw.Tiles{Rows: rows, Cols: cols, PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2}
		cs := plot.Align(pp, t, upper)
		for i := range pp {
			for j := range pp[i] {
				if pp[i][j] != nil {
					pp[i][j].Draw(cs[i][j])
				}
			}
		}
	})
}

// Series is one labelled line of a line plot.
type Series struct {
	Name string
	X, Y []float64
}

// Lines draws the series on a single plot with a legend. yticks, when
// non-nil, replaces the automatic Y tick positions.
func Lines(series []Series, yticks []float64, st *style.Style, title, xlabel, ylabel, out string) error {
	if len(series) == 0 {
		return fmt.Errorf("render.Lines: no series to draw")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("render.Lines: series %s: %d x values against %d y values", s.Name, len(s.X), len(s.Y))
		}
		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j].X = s.X[j]
			pts[j].Y = s.Y[j]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(s.Name, l)
	}
	p.Legend.Top = true
	if yticks != nil {
		tk := make([]plot.Tick, len(yticks))
		for i, v := range yticks {
			tk[i] = plot.Tick{Value: v, Label: fmt.Sprintf("%.4g", v)}
		}
		p.Y.Tick.Marker = plot.ConstantTicks(tk)
	}
	st.Apply(p)
	return p.Save(st.Width(), st.Height(), out)
}

// ContactMap draws the residue-by-frame contact matrix of the trajectory
// as a heatmap and overlays the peptide z trajectory, rescaled onto the
// residue axis. ov constrains the z range used for the rescaling.
func ContactMap(t *memplot.Trajectory, coord memplot.Coord, ov deriv.Override, st *style.Style, title, out string) error {
	m, err := t.ContactMatrix()
	if err != nil {
		return err
	}
	z, err := deriv.ZColumn(t, coord)
	if err != nil {
		return err
	}
	lim := deriv.Limits{Min: 0, Max: 1}
	name := st.Colormap
	if name == "" {
		name = "black-body"
	}
	cm, err := colorMap(name, lim)
	if err != nil {
		return err
	}
	maxres, _ := m.Dims()
	maxres--
	g := memplot.UnitGrid(m)
	g.XTicks = t.Times()
	h := plotter.NewHeatMap(g, cm.Palette(2))
	h.Min = 0
	h.Max = 1
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time"
	p.Y.Label.Text = "residue"
	p.Add(h)
	zl := deriv.FromData(z, 0, ov)
	span := zl.Max - zl.Min
	if span == 0 {
		span = 1 //flat trajectory, draw it flat
	}
	pts := make(plotter.XYs, len(z))
	for i := range z {
		pts[i].X = t.Frames[i].Time
		pts[i].Y = (z[i] - zl.Min) / span * float64(maxres)
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{R: 255, A: 255}
	l.Width = vg.Points(1.5)
	p.Add(l)
	p.Legend.Add(fmt.Sprintf("z (%v)", coord), l)
	p.Legend.Top = true
	st.Apply(p)
	return p.Save(st.Width(), st.Height(), out)
}
