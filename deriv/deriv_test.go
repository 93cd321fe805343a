package deriv

import (
	"fmt"
	"testing"

	"github.com/rmera/memplot"
)

func TestLimits(Te *testing.T) {
	fmt.Println("Limit derivation test!")
	//same-sign data must keep its limits
	l := Diverging(FromData([]float64{1, 2, 5}, 0, Override{}))
	if l.Min != 1 || l.Max != 5 {
		Te.Errorf("same-sign limits changed: %+v", l)
	}
	if l.Symmetric() {
		Te.Error("same-sign limits must not be symmetric")
	}
	//mixed-sign data must become symmetric
	l = Diverging(FromData([]float64{-3, 2}, 0, Override{}))
	if l.Max != -l.Min || l.Max != 3 {
		Te.Errorf("mixed-sign limits not symmetric: %+v", l)
	}
	if !l.Symmetric() {
		Te.Error("Symmetric() disagrees with the symmetric policy")
	}
	//explicit overrides win unconditionally
	hi := 10.0
	l = FromData([]float64{-3, 2}, 0, Override{Max: &hi})
	if l.Max != 10 || l.Min != -3 {
		Te.Errorf("override ignored: %+v", l)
	}
	l = FromData([]float64{1, 5}, 0.5, Override{})
	if l.Min != 0.5 || l.Max != 5.5 {
		Te.Errorf("padding wrong: %+v", l)
	}
	s := Symmetric(2.5)
	if *s.Min != -2.5 || *s.Max != 2.5 {
		Te.Errorf("symmetric override wrong: %v %v", *s.Min, *s.Max)
	}
}

func TestReshape(Te *testing.T) {
	fmt.Println("Reshape test!")
	row := make([]float64, 16)
	for i := range row {
		row[i] = float64(i)
	}
	d, err := Reshape(row)
	if err != nil {
		Te.Fatal(err)
	}
	r, c := d.Dims()
	if r != 4 || c != 4 {
		Te.Errorf("want a 4x4 grid, got %dx%d", r, c)
	}
	//row-major order must be preserved
	if d.At(0, 3) != 3 || d.At(1, 0) != 4 || d.At(3, 3) != 15 {
		Te.Errorf("element order not row-major: %v", d.RawMatrix().Data)
	}
	if _, err := Reshape(make([]float64, 15)); err == nil {
		Te.Error("non-square row length accepted")
	}
	if _, err := Reshape(nil); err == nil {
		Te.Error("empty row accepted")
	}
}

func TestWindows(Te *testing.T) {
	fmt.Println("Frame window test!")
	w, ok := Middle(20)
	if !ok || w.Lo != 7 || w.Hi != 13 {
		Te.Errorf("middle of 20 frames: want [7,13), got %+v %v", w, ok)
	}
	if _, ok := Middle(5); ok {
		Te.Error("middle window of 5 frames should not exist")
	}
	if w := First(20, 6); w.Lo != 0 || w.Hi != 6 {
		Te.Errorf("first window wrong: %+v", w)
	}
	if w := Last(20, 6); w.Lo != 14 || w.Hi != 20 {
		Te.Errorf("last window wrong: %+v", w)
	}
	if w := First(4, 6); w.Hi != 4 {
		Te.Errorf("first window must clip to the total: %+v", w)
	}
}

func TestRelativeZ(Te *testing.T) {
	fmt.Println("Relative z test!")
	if v := RelativeZ(0, 0, 10); v != 0.0 {
		Te.Errorf("z at the lower leaflet: want 0, got %v", v)
	}
	if v := RelativeZ(10, 0, 10); v != 1.0 {
		Te.Errorf("z at the upper leaflet: want 1, got %v", v)
	}
	traj := &memplot.Trajectory{Frames: []memplot.Frame{
		{Time: 0, UpperZ: 10, LowerZ: 0, AbsZ: 5},
		{Time: 1, UpperZ: 10, LowerZ: 0, AbsZ: 10},
	}}
	z, err := ZColumn(traj, memplot.Relative)
	if err != nil {
		Te.Fatal(err)
	}
	if z[0] != 0.5 || z[1] != 1.0 {
		Te.Errorf("relative column wrong: %v", z)
	}
	//a degenerate leaflet separation is undefined and must fail
	traj.Frames[1].LowerZ = 10
	if _, err := ZColumn(traj, memplot.Relative); err == nil {
		Te.Error("zero leaflet separation accepted")
	}
	z, err = ZColumn(traj, memplot.Absolute)
	if err != nil || z[1] != 10 {
		Te.Errorf("absolute column wrong: %v, %v", z, err)
	}
}

func TestLeafletTicks(Te *testing.T) {
	tk := LeafletTicks(-20, -18, 19, 21)
	want := []float64{-20, -18, 0.5, 19, 21}
	for i, v := range want {
		if tk[i] != v {
			Te.Errorf("tick %d: want %v, got %v", i, v, tk[i])
		}
	}
}

func TestSmooth(Te *testing.T) {
	d, err := Reshape([]float64{1, 1, 1, 1, 1, 1, 1, 1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	s := Smooth(d)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if s.At(i, j) != 1 {
				Te.Errorf("smoothing a constant grid changed it at %d,%d: %v", i, j, s.At(i, j))
			}
		}
	}
}

func TestSurfacePanels(Te *testing.T) {
	fmt.Println("Surface panel test!")
	rows := make([][]float64, 20)
	for i := range rows {
		rows[i] = make([]float64, 16)
		for j := range rows[i] {
			rows[i][j] = float64(i) - 10 //frames straddle zero
		}
	}
	panels, lim, err := SurfacePanels(Middle6, rows, Override{})
	if err != nil {
		Te.Fatal(err)
	}
	if len(panels) != 6 {
		Te.Errorf("want 6 panels, got %d", len(panels))
	}
	if panels[0].Title != "frame 7" || panels[5].Title != "frame 12" {
		Te.Errorf("panel titles wrong: %s .. %s", panels[0].Title, panels[5].Title)
	}
	if !lim.Symmetric() {
		Te.Errorf("straddling surfaces should give symmetric limits: %+v", lim)
	}
	if _, _, err := SurfacePanels(Middle6, rows[:5], Override{}); err == nil {
		Te.Error("middle window of 5 frames accepted")
	}
	if _, _, err := SurfacePanels(Mean, rows, Override{}); err == nil {
		Te.Error("a grid mode should not select frames")
	}
	//a non-square row must fail
	rows[8] = rows[8][:15]
	if _, _, err := SurfacePanels(Middle6, rows, Override{}); err == nil {
		Te.Error("non-square surface row accepted")
	}
}

func TestParseCurvatureMode(Te *testing.T) {
	for s, want := range modeNames {
		m, err := ParseCurvatureMode(s)
		if err != nil || m != want {
			Te.Errorf("mode %s: got %v, %v", s, m, err)
		}
		if m.String() != s {
			Te.Errorf("mode %v prints as %s, want %s", m, m.String(), s)
		}
	}
	if _, err := ParseCurvatureMode("median"); err == nil {
		Te.Error("unknown mode accepted")
	}
}
