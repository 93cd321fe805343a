//Package deriv turns raw membrane analysis arrays into the bounds, grids
//and frame windows the renderer needs: data or user driven plot limits,
//the symmetric-limit policy for diverging color scales, leaflet-relative
//z normalization, folding of flat surface rows into square grids, and
//first/last/middle frame-window selection.
package deriv

import (
	"fmt"
	"math"

	"github.com/rmera/memplot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Limits is a pair of plot bounds, Min <= Max for any value this package
// produces.
type Limits struct {
	Min, Max float64
}

// Symmetric tells whether the limits are centered at zero, which is what
// selects a diverging color scale downstream.
func (l Limits) Symmetric() bool {
	return l.Max > 0 && l.Min == -l.Max
}

// Override carries optional user-supplied bounds. A nil field means the
// bound was not given and the data decides. An explicit value always wins
// over the computed one.
type Override struct {
	Min, Max *float64
}

// Symmetric returns an override forcing the bounds to ±v.
func Symmetric(v float64) Override {
	lo := -v
	hi := v
	return Override{Min: &lo, Max: &hi}
}

// FromData derives plot limits from the extrema of data, padded outward by
// pad, with any explicit override taking precedence unconditionally.
// It panics on empty data, as floats.Min does.
func FromData(data []float64, pad float64, ov Override) Limits {
	l := Limits{Min: floats.Min(data) - pad, Max: floats.Max(data) + pad}
	if ov.Min != nil {
		l.Min = *ov.Min
	}
	if ov.Max != nil {
		l.Max = *ov.Max
	}
	return l
}

// Diverging applies the symmetric-limit policy: when the data spans both
// signs the limits become ±max(|Min|,Max) so a diverging colormap centers
// at zero. Same-sign limits are returned unchanged.
func Diverging(l Limits) Limits {
	if l.Min < 0 && l.Max > 0 {
		b := math.Max(-l.Min, l.Max)
		return Limits{Min: -b, Max: b}
	}
	return l
}

// LeafletTicks returns the five representative axis positions for an
// absolute-z scale: the overall minimum, the highest point of the lower
// leaflet, the midpoint, the lowest point of the upper leaflet, and the
// overall maximum.
func LeafletTicks(min, lowerMax, upperMin, max float64) []float64 {
	return []float64{min, lowerMax, (min + max) / 2, upperMin, max}
}

// RelativeZ rescales z so the lower leaflet maps to 0 and the upper one
// to 1. The division is not guarded: a zero leaflet separation yields
// ±Inf or NaN. Callers that want a hard failure use ZColumn instead.
func RelativeZ(z, lower, upper float64) float64 {
	return (z - lower) / (upper - lower)
}

// ZColumn extracts the peptide z of every frame in the requested
// representation. In the relative representation a frame with zero leaflet
// separation is an error, as the normalization is undefined there.
func ZColumn(t *memplot.Trajectory, coord memplot.Coord) ([]float64, error) {
	z := make([]float64, t.Len())
	for i, f := range t.Frames {
		if coord == memplot.Relative {
			if f.UpperZ == f.LowerZ {
				return nil, fmt.Errorf("deriv.ZColumn: frame %d of %s: zero leaflet separation", i, t.Filename)
			}
			z[i] = RelativeZ(f.AbsZ, f.LowerZ, f.UpperZ)
		} else {
			z[i] = f.AbsZ
		}
	}
	return z, nil
}

// Reshape folds a flat surface row of length S*S into an S-by-S grid,
// preserving row-major order. A row whose length is not a perfect square
// is an error.
func Reshape(row []float64) (*mat.Dense, error) {
	side := int(math.Sqrt(float64(len(row))))
	if side == 0 || side*side != len(row) {
		return nil, fmt.Errorf("deriv.Reshape: row of length %d is not a perfect square", len(row))
	}
	return mat.NewDense(side, side, row), nil
}

// Smooth returns a copy of the grid with every cell replaced by the mean
// of its 3x3 neighborhood; cells on the border use the neighbors they have.
func Smooth(d *mat.Dense) *mat.Dense {
	r, c := d.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var sum float64
			var n int
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					if i+di < 0 || i+di >= r || j+dj < 0 || j+dj >= c {
						continue
					}
					sum += d.At(i+di, j+dj)
					n++
				}
			}
			out.Set(i, j, sum/float64(n))
		}
	}
	return out
}

// Window is a half-open frame range [Lo,Hi).
type Window struct {
	Lo, Hi int
}

// First returns the window of the first n frames, clipped to the total.
func First(total, n int) Window {
	if n > total {
		n = total
	}
	return Window{0, n}
}

// Last returns the window of the last n frames, clipped to the total.
func Last(total, n int) Window {
	if n > total {
		return Window{0, total}
	}
	return Window{total - n, total}
}

// Middle returns the six frames around the center of the sequence,
// [total/2-3, total/2+3). With fewer than 7 frames there is no middle
// window and ok is false.
func Middle(total int) (w Window, ok bool) {
	if total < 7 {
		return Window{}, false
	}
	c := total / 2
	return Window{c - 3, c + 3}, true
}
