/*
 * memplot_test.go, part of memplot.
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
	"strconv"
	"strings"
	"testing"
)

// Parsing a contact list and joining it back must reproduce the original
// residues.
func TestParseContactsRoundTrip(Te *testing.T) {
	fmt.Println("Contact parsing test!")
	orig := "3,7,11,0,25"
	res, err := ParseContacts(orig)
	if err != nil {
		Te.Error(err)
	}
	joined := make([]string, len(res))
	for i, v := range res {
		joined[i] = strconv.Itoa(v)
	}
	if strings.Join(joined, ",") != orig {
		Te.Errorf("round trip failed: %s -> %v", orig, res)
	}
	empty, err := ParseContacts("   ")
	if err != nil || empty != nil {
		Te.Errorf("empty contact string should give no contacts and no error, got %v, %v", empty, err)
	}
	if _, err := ParseContacts("3,x,1"); err == nil {
		Te.Error("non-numeric contact accepted")
	}
	if _, err := ParseContacts("3,-1"); err == nil {
		Te.Error("negative residue index accepted")
	}
}

func TestReadTrajectory(Te *testing.T) {
	fmt.Println("Trajectory reading test!")
	traj, err := ReadTrajectory("testdata/traj.tsv")
	if err != nil {
		Te.Fatal(err)
	}
	if traj.Len() != 10 {
		Te.Errorf("want 10 frames, got %d", traj.Len())
	}
	if traj.Frames[0].Contacts == nil || len(traj.Frames[0].Contacts) != 3 {
		Te.Errorf("frame 0 should have 3 contacts, got %v", traj.Frames[0].Contacts)
	}
	if traj.Frames[1].Contacts != nil {
		Te.Errorf("frame 1 should have no contacts, got %v", traj.Frames[1].Contacts)
	}
	if traj.MaxResidue() != 11 {
		Te.Errorf("want max residue 11, got %d", traj.MaxResidue())
	}
	lm, um := traj.LeafletBounds()
	if lm != -19.8 || um != 19.9 {
		Te.Errorf("leaflet bounds: want -19.8, 19.9, got %v, %v", lm, um)
	}
	//the compressed copy must read identically
	traj2, err := ReadTrajectory("testdata/traj.tsv.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if traj2.Len() != traj.Len() || traj2.TotalContacts() != traj.TotalContacts() {
		Te.Error("gzipped trajectory differs from the plain one")
	}
}

func TestContactMatrix(Te *testing.T) {
	fmt.Println("Contact matrix test!")
	traj, err := ReadTrajectory("testdata/traj.tsv")
	if err != nil {
		Te.Fatal(err)
	}
	m, err := traj.ContactMatrix()
	if err != nil {
		Te.Fatal(err)
	}
	r, c := m.Dims()
	if r != 12 || c != 10 {
		Te.Errorf("want a 12x10 matrix, got %dx%d", r, c)
	}
	if m.At(7, 0) != 1 || m.At(7, 2) != 1 || m.At(7, 1) != 0 {
		Te.Error("residue 7 contacts misplaced")
	}
	counts, err := traj.ContactCounts()
	if err != nil {
		Te.Fatal(err)
	}
	if counts[7] != 0.3 {
		Te.Errorf("residue 7 contact fraction: want 0.3, got %v", counts[7])
	}
}

// A trajectory whose contacts column is empty in every frame has nothing
// to plot and must fail loudly, not produce a zero-sized matrix.
func TestNoContacts(Te *testing.T) {
	traj, err := ReadTrajectory("testdata/empty_contacts.tsv")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := traj.ContactMatrix(); err == nil {
		Te.Error("all-empty contacts column should be an error")
	} else {
		fmt.Println("got the expected failure:", err)
	}
	if _, err := traj.ContactCounts(); err == nil {
		Te.Error("all-empty contacts column should be an error")
	}
}

func TestReadGridFile(Te *testing.T) {
	fmt.Println("Grid file reading test!")
	g, err := ReadGridFile("testdata/density.dat")
	if err != nil {
		Te.Fatal(err)
	}
	c, r := g.Dims()
	if c != 4 || r != 3 {
		Te.Errorf("want 4 columns and 3 rows, got %d, %d", c, r)
	}
	if g.X(0) != 1.0 || g.Y(0) != 0.5 {
		Te.Errorf("axis ticks misread: X(0)=%v Y(0)=%v", g.X(0), g.Y(0))
	}
	if g.Z(2, 1) != 0.60 {
		Te.Errorf("grid interior misread: Z(2,1)=%v", g.Z(2, 1))
	}
	mn, mx := g.MinMax()
	if mn != 0.10 || mx != 1.20 {
		Te.Errorf("extrema: want 0.10, 1.20, got %v, %v", mn, mx)
	}
	//a curvature map straddles zero
	g, err = ReadGridFile("testdata/curvature.dat")
	if err != nil {
		Te.Fatal(err)
	}
	mn, mx = g.MinMax()
	if mn >= 0 || mx <= 0 {
		Te.Errorf("curvature fixture should straddle zero, got %v, %v", mn, mx)
	}
}

func TestReadOrderParams(Te *testing.T) {
	fmt.Println("Order parameter reading test!")
	sch, err := ReadOrderParams("testdata/ops.csv", SCH)
	if err != nil {
		Te.Fatal(err)
	}
	if len(sch.Carbons) != 2 || sch.Carbons[0] != 2 || sch.Carbons[1] != 3 {
		Te.Errorf("SCH carbons: want [2 3], got %v", sch.Carbons)
	}
	if sch.Values[0] != -0.13 {
		Te.Errorf("SCH mean at carbon 2: want -0.13, got %v", sch.Values[0])
	}
	scc, err := ReadOrderParams("testdata/ops.csv", SCC)
	if err != nil {
		Te.Fatal(err)
	}
	if len(scc.Carbons) != 2 || scc.Values[0] != 0.21 || scc.Values[1] != 0.23 {
		Te.Errorf("SCC profile wrong: %v %v", scc.Carbons, scc.Values)
	}
	fmt.Println("SCH profile:", sch.Carbons, sch.Values)
}

func TestExpandInputs(Te *testing.T) {
	files, err := ExpandInputs([]string{"testdata"})
	if err != nil {
		Te.Fatal(err)
	}
	if len(files) < 5 {
		Te.Errorf("directory expansion returned too few files: %v", files)
	}
	empty := Te.TempDir()
	if _, err := ExpandInputs([]string{empty}); err == nil {
		Te.Error("empty input directory should be an error")
	}
	if _, err := ExpandInputs([]string{"testdata/does_not_exist"}); err == nil {
		Te.Error("missing input should be an error")
	}
}
