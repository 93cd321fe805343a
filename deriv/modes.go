package deriv

import (
	"fmt"

	"github.com/rmera/memplot"
)

// CurvatureMode enumerates the curvature plot variants. Grid modes (Mean,
// Gaussian, Basic, Smoothed) take a single axis-annotated grid file; frame
// modes (First6, Last6, Middle6) take a per-frame surface file; Three takes
// the height, mean and Gaussian grids together.
type CurvatureMode int

const (
	Mean CurvatureMode = iota
	Gaussian
	Basic
	Smoothed
	Three
	First6
	Last6
	Middle6
)

var modeNames = map[string]CurvatureMode{
	"mean":         Mean,
	"gaussian":     Gaussian,
	"basic":        Basic,
	"smooth":       Smoothed,
	"3_curvatures": Three,
	"first_6":      First6,
	"last_6":       Last6,
	"middle_6":     Middle6,
}

// ParseCurvatureMode returns the mode corresponding to the given flag
// value.
func ParseCurvatureMode(s string) (CurvatureMode, error) {
	m, ok := modeNames[s]
	if !ok {
		return Mean, fmt.Errorf("deriv.ParseCurvatureMode: unknown plot mode %q (want mean, gaussian, basic, smooth, 3_curvatures, first_6, last_6 or middle_6)", s)
	}
	return m, nil
}

func (m CurvatureMode) String() string {
	for k, v := range modeNames {
		if v == m {
			return k
		}
	}
	return "unknown"
}

// Title returns the default plot title for the mode.
func (m CurvatureMode) Title() string {
	switch m {
	case Mean:
		return "Mean curvature"
	case Gaussian:
		return "Gaussian curvature"
	case Three:
		return "Surface and curvatures"
	case First6:
		return "Leaflet surface, first frames"
	case Last6:
		return "Leaflet surface, last frames"
	case Middle6:
		return "Leaflet surface, middle frames"
	}
	return "Leaflet surface"
}

// Panel pairs one derived grid with its title and color limits. The
// renderer tiles panels into a single figure.
type Panel struct {
	Title  string
	Grid   *memplot.Grid
	Limits Limits
}

// SurfacePanels selects the frames the mode asks for from the per-frame
// surface rows, reshapes each row into its square grid, and derives one
// set of color limits shared by all panels, symmetric when the surfaces
// straddle zero. ov wins over the computed limits.
func SurfacePanels(mode CurvatureMode, rows [][]float64, ov Override) ([]Panel, Limits, error) {
	var w Window
	total := len(rows)
	switch mode {
	case First6:
		w = First(total, 6)
	case Last6:
		w = Last(total, 6)
	case Middle6:
		var ok bool
		w, ok = Middle(total)
		if !ok {
			return nil, Limits{}, fmt.Errorf("deriv.SurfacePanels: the middle window needs at least 7 frames, have %d", total)
		}
	default:
		return nil, Limits{}, fmt.Errorf("deriv.SurfacePanels: mode %v does not select frames", mode)
	}
	panels := make([]Panel, 0, w.Hi-w.Lo)
	var all []float64
	for i := w.Lo; i < w.Hi; i++ {
		d, err := Reshape(rows[i])
		if err != nil {
			return nil, Limits{}, fmt.Errorf("frame %d: %v", i, err)
		}
		panels = append(panels, Panel{Title: fmt.Sprintf("frame %d", i), Grid: memplot.UnitGrid(d)})
		all = append(all, rows[i]...)
	}
	lims := Diverging(FromData(all, 0, ov))
	for i := range panels {
		panels[i].Limits = lims
	}
	return panels, lims, nil
}
