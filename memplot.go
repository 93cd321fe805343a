/*
 * memplot.go, part of memplot.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package memplot

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Coord selects the z representation used for peptide trajectories:
// absolute simulation coordinates, or coordinates relative to the leaflets,
// where the lower leaflet maps to 0 and the upper one to 1.
type Coord int

const (
	Absolute Coord = iota
	Relative
)

// ParseCoord returns the Coord corresponding to the given flag value.
func ParseCoord(s string) (Coord, error) {
	switch strings.ToLower(s) {
	case "abs", "absolute":
		return Absolute, nil
	case "rel", "relative":
		return Relative, nil
	}
	return Absolute, fmt.Errorf("memplot.ParseCoord: unknown coordinate mode %q (want abs or rel)", s)
}

func (c Coord) String() string {
	if c == Relative {
		return "rel"
	}
	return "abs"
}

// Frame holds one row of a peptide trajectory table: the time, the z
// position of each leaflet, the absolute z of the peptide, and the protein
// residues contacted by lipid headgroups during the frame, if any.
// Physically valid input has LowerZ <= AbsZ <= UpperZ, but this is not
// enforced: garbage in, garbage plotted.
type Frame struct {
	Time     float64
	UpperZ   float64
	LowerZ   float64
	AbsZ     float64
	Contacts []int
}

// Trajectory is an ordered sequence of frames read from one file.
type Trajectory struct {
	Frames   []Frame
	Filename string
}

func (T *Trajectory) Len() int { return len(T.Frames) }

// Times returns the time value of every frame, in order.
func (T *Trajectory) Times() []float64 {
	t := make([]float64, len(T.Frames))
	for i, f := range T.Frames {
		t[i] = f.Time
	}
	return t
}

// LeafletBounds returns the largest lower-leaflet z and the smallest
// upper-leaflet z seen along the trajectory. Together with the overall
// extrema they give the representative positions for axis ticks.
func (T *Trajectory) LeafletBounds() (lowerMax, upperMin float64) {
	for i, f := range T.Frames {
		if i == 0 || f.LowerZ > lowerMax {
			lowerMax = f.LowerZ
		}
		if i == 0 || f.UpperZ < upperMin {
			upperMin = f.UpperZ
		}
	}
	return lowerMax, upperMin
}

// MaxResidue returns the largest residue index contacted in any frame,
// or -1 if there are no contacts at all.
func (T *Trajectory) MaxResidue() int {
	max := -1
	for _, f := range T.Frames {
		for _, r := range f.Contacts {
			if r > max {
				max = r
			}
		}
	}
	return max
}

// TotalContacts returns the number of contacts summed over all frames.
func (T *Trajectory) TotalContacts() int {
	var n int
	for _, f := range T.Frames {
		n += len(f.Contacts)
	}
	return n
}

// ContactMatrix builds the residue-by-frame 0/1 contact matrix for the
// trajectory. Rows are residues 0..MaxResidue, columns are frames. It
// returns an error when there are no contacts in any frame, as an all-zero
// matrix has nothing to plot.
func (T *Trajectory) ContactMatrix() (*mat.Dense, error) {
	if T.TotalContacts() == 0 {
		return nil, DataError{message: NoContacts, filename: T.Filename, critical: true}
	}
	m := mat.NewDense(T.MaxResidue()+1, T.Len(), nil)
	for j, f := range T.Frames {
		for _, r := range f.Contacts {
			m.Set(r, j, 1)
		}
	}
	return m, nil
}

// ContactCounts returns, for each residue 0..MaxResidue, the fraction of
// frames in which it was contacted. Same no-contact failure as ContactMatrix.
func (T *Trajectory) ContactCounts() ([]float64, error) {
	if T.TotalContacts() == 0 {
		return nil, DataError{message: NoContacts, filename: T.Filename, critical: true}
	}
	counts := make([]float64, T.MaxResidue()+1)
	for _, f := range T.Frames {
		for _, r := range f.Contacts {
			counts[r]++
		}
	}
	n := float64(T.Len())
	for i := range counts {
		counts[i] /= n
	}
	return counts, nil
}

// Grid is a rectangular numeric field with tick values for both axes, as
// read from density and curvature map files. It implements the GridXYZ
// interface of gonum.org/v1/plot/plotter, so it can be fed directly to
// heatmap and contour plotters.
type Grid struct {
	XTicks []float64
	YTicks []float64
	Data   *mat.Dense //len(YTicks) rows, len(XTicks) columns
}

func (G *Grid) Dims() (c, r int) { return len(G.XTicks), len(G.YTicks) }

func (G *Grid) Z(c, r int) float64 { return G.Data.At(r, c) }

func (G *Grid) X(c int) float64 { return G.XTicks[c] }

func (G *Grid) Y(r int) float64 { return G.YTicks[r] }

// MinMax returns the extrema of the grid data.
func (G *Grid) MinMax() (min, max float64) {
	return mat.Min(G.Data), mat.Max(G.Data)
}

// UnitGrid wraps a matrix in a Grid with 0,1,2... tick values on both axes.
// It is used for reshaped leaflet surfaces, which carry no axis information.
func UnitGrid(d *mat.Dense) *Grid {
	r, c := d.Dims()
	g := &Grid{XTicks: make([]float64, c), YTicks: make([]float64, r), Data: d}
	for i := range g.XTicks {
		g.XTicks[i] = float64(i)
	}
	for i := range g.YTicks {
		g.YTicks[i] = float64(i)
	}
	return g
}

// OrderMetric selects which order parameter a table row belongs to:
// SCC (carbon-carbon) or SCH (carbon-hydrogen).
type OrderMetric int

const (
	SCC OrderMetric = iota
	SCH
)

// ParseOrderMetric returns the OrderMetric corresponding to the given
// flag value.
func ParseOrderMetric(s string) (OrderMetric, error) {
	switch strings.ToLower(s) {
	case "scc":
		return SCC, nil
	case "sch":
		return SCH, nil
	}
	return SCC, fmt.Errorf("memplot.ParseOrderMetric: unknown order parameter %q (want scc or sch)", s)
}

func (m OrderMetric) String() string {
	if m == SCH {
		return "SCH"
	}
	return "SCC"
}

// matches tells whether a row with the given second atom name belongs to
// the metric. SCC pairs a carbon with a carbon, SCH a carbon with a hydrogen.
func (m OrderMetric) matches(atom2 string) bool {
	if atom2 == "" {
		return false
	}
	if m == SCH {
		return atom2[0] == 'H'
	}
	return atom2[0] == 'C'
}

// OrderSeries holds one order parameter profile: the mean value of the
// parameter at each carbon position of the lipid tail, aggregated over all
// bonds involving that carbon.
type OrderSeries struct {
	Name    string
	Carbons []int
	Values  []float64
}
