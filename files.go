/*
 * files.go, part of memplot.
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
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// openData opens a data file for reading, transparently decompressing it
// when the name ends in .gz or .zst.
func openData(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, DataError{message: UnableToOpen, filename: name, critical: true}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, DataError{message: fmt.Sprintf("%s: %v", WrongFormat, err), filename: name, critical: true}
		}
		return &decompressed{r: g, f: f}, nil
	case ".zst":
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, DataError{message: fmt.Sprintf("%s: %v", WrongFormat, err), filename: name, critical: true}
		}
		return &decompressed{r: z.IOReadCloser(), f: f}, nil
	}
	return f, nil
}

// decompressed couples a decompressing reader with its underlying file so
// both get closed.
type decompressed struct {
	r io.ReadCloser
	f *os.File
}

func (d *decompressed) Read(p []byte) (int, error) { return d.r.Read(p) }

func (d *decompressed) Close() error {
	err := d.r.Close()
	err2 := d.f.Close()
	if err != nil {
		return err
	}
	return err2
}

// ParseContacts parses a comma-separated list of residue indices, as found
// in the last column of a peptide trajectory table. An empty (or
// all-whitespace) string means no contacts in the frame and yields a nil
// slice, not an error.
func ParseContacts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	ret := make([]int, 0, len(fields))
	for _, v := range fields {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("memplot.ParseContacts: bad residue index %q", v)
		}
		if i < 0 {
			return nil, fmt.Errorf("memplot.ParseContacts: negative residue index %d", i)
		}
		ret = append(ret, i)
	}
	return ret, nil
}

// ReadTrajectory reads a peptide trajectory table. Each data row has at
// least four columns: time, upper leaflet z, lower leaflet z and absolute
// peptide z, separated by tabs or any whitespace. A fifth column, when
// present, holds the comma-separated indices of the protein residues
// contacted during the frame; an empty cell or a missing column means no
// contacts. Lines starting with # are skipped.
func ReadTrajectory(name string) (*Trajectory, error) {
	fin, err := openData(name)
	if err != nil {
		return nil, errDecorate(err, "ReadTrajectory")
	}
	defer fin.Close()
	traj := &Trajectory{Filename: name}
	scanner := bufio.NewScanner(fin)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			fields = strings.Fields(line)
		}
		if len(fields) < 4 {
			return nil, DataError{message: fmt.Sprintf("line %d: want at least 4 columns, got %d", lineno, len(fields)), filename: name, critical: true}
		}
		nums, err := parsefloats(fields[0], fields[1], fields[2], fields[3])
		if err != nil {
			return nil, DataError{message: fmt.Sprintf("line %d: %v", lineno, err), filename: name, critical: true}
		}
		fr := Frame{Time: nums[0], UpperZ: nums[1], LowerZ: nums[2], AbsZ: nums[3]}
		if len(fields) > 4 {
			fr.Contacts, err = ParseContacts(fields[4])
			if err != nil {
				return nil, DataError{message: fmt.Sprintf("line %d: %v", lineno, err), filename: name, critical: true}
			}
		}
		traj.Frames = append(traj.Frames, fr)
	}
	if err := scanner.Err(); err != nil {
		return nil, DataError{message: err.Error(), filename: name, critical: true}
	}
	if traj.Len() == 0 {
		return nil, DataError{message: NoDataRows, filename: name, critical: true}
	}
	return traj, nil
}

// ReadGridFile reads a whitespace-separated numeric matrix where the first
// row holds the X axis tick values (its first cell is ignored), the first
// column holds the Y axis tick values, and the interior holds the data, as
// produced by density and curvature analysis tools.
func ReadGridFile(name string) (*Grid, error) {
	rows, err := readRows(name)
	if err != nil {
		return nil, errDecorate(err, "ReadGridFile")
	}
	if len(rows) < 2 || len(rows[0]) < 2 {
		return nil, DataError{message: WrongFormat + ": a grid file needs at least 2 rows and 2 columns", filename: name, critical: true}
	}
	width := len(rows[0])
	g := &Grid{
		XTicks: rows[0][1:],
		YTicks: make([]float64, len(rows)-1),
		Data:   mat.NewDense(len(rows)-1, width-1, nil),
	}
	for i, row := range rows[1:] {
		if len(row) != width {
			return nil, DataError{message: fmt.Sprintf("%s: row %d has %d columns, want %d", WrongFormat, i+2, len(row), width), filename: name, critical: true}
		}
		g.YTicks[i] = row[0]
		g.Data.SetRow(i, row[1:])
	}
	return g, nil
}

// ReadSurfaceFile reads a per-frame leaflet surface file: one row of
// whitespace-separated values per frame, each row a flattened square grid.
// The squareness is not checked here but by deriv.Reshape.
func ReadSurfaceFile(name string) ([][]float64, error) {
	rows, err := readRows(name)
	if err != nil {
		return nil, errDecorate(err, "ReadSurfaceFile")
	}
	return rows, nil
}

// readRows reads every non-empty, non-comment line of a file as a slice
// of floats.
func readRows(name string) ([][]float64, error) {
	fin, err := openData(name)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	var rows [][]float64
	scanner := bufio.NewScanner(fin)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024) //surface rows can be long
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parsefloats(strings.Fields(line)...)
		if err != nil {
			return nil, DataError{message: fmt.Sprintf("line %d: %v", lineno, err), filename: name, critical: true}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, DataError{message: err.Error(), filename: name, critical: true}
	}
	if len(rows) == 0 {
		return nil, DataError{message: NoDataRows, filename: name, critical: true}
	}
	return rows, nil
}

// ReadOrderParams reads an order parameter table in CSV format with named
// columns OP_mean, atom1, atom2 and OP_name, keeps the rows belonging to
// the given metric, and aggregates the mean value per carbon position. The
// carbon position is taken from the digits of the atom1 name (C12 -> 12).
func ReadOrderParams(name string, metric OrderMetric) (*OrderSeries, error) {
	fin, err := openData(name)
	if err != nil {
		return nil, errDecorate(err, "ReadOrderParams")
	}
	defer fin.Close()
	r := csv.NewReader(fin)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, DataError{message: err.Error(), filename: name, critical: true}
	}
	if len(records) < 2 {
		return nil, DataError{message: NoDataRows, filename: name, critical: true}
	}
	cols := map[string]int{"OP_mean": -1, "atom1": -1, "atom2": -1, "OP_name": -1}
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		if _, ok := cols[h]; ok {
			cols[h] = i
		}
	}
	for k, v := range cols {
		if v == -1 {
			return nil, DataError{message: fmt.Sprintf("%s: missing column %s", WrongFormat, k), filename: name, critical: true}
		}
	}
	percarbon := make(map[int][]float64)
	for i, rec := range records[1:] {
		if !metric.matches(strings.TrimSpace(rec[cols["atom2"]])) {
			continue
		}
		carbon, err := carbonIndex(strings.TrimSpace(rec[cols["atom1"]]))
		if err != nil {
			return nil, DataError{message: fmt.Sprintf("row %d: %v", i+2, err), filename: name, critical: true}
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[cols["OP_mean"]]), 64)
		if err != nil {
			return nil, DataError{message: fmt.Sprintf("row %d: bad OP_mean %q", i+2, rec[cols["OP_mean"]]), filename: name, critical: true}
		}
		percarbon[carbon] = append(percarbon[carbon], v)
	}
	if len(percarbon) == 0 {
		return nil, DataError{message: fmt.Sprintf("no %v order parameters in file", metric), filename: name, critical: true}
	}
	s := &OrderSeries{Name: strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))}
	for c := range percarbon {
		s.Carbons = append(s.Carbons, c)
	}
	sort.Ints(s.Carbons)
	s.Values = make([]float64, len(s.Carbons))
	for i, c := range s.Carbons {
		s.Values[i] = stat.Mean(percarbon[c], nil)
	}
	return s, nil
}

// carbonIndex extracts the position number from an atom name like C12 or
// C3A.
func carbonIndex(atom string) (int, error) {
	var digits strings.Builder
	for _, r := range atom {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("no carbon number in atom name %q", atom)
	}
	return strconv.Atoi(digits.String())
}

// ExpandInputs turns a list of file and directory arguments into a concrete
// list of files. Directories expand to their regular entries in name order.
// An empty directory is an error: it means there is nothing to plot.
func ExpandInputs(args []string) ([]string, error) {
	var ret []string
	for _, a := range args {
		fi, err := os.Stat(a)
		if err != nil {
			return nil, DataError{message: UnableToOpen, filename: a, critical: true}
		}
		if !fi.IsDir() {
			ret = append(ret, a)
			continue
		}
		entries, err := os.ReadDir(a)
		if err != nil {
			return nil, DataError{message: err.Error(), filename: a, critical: true}
		}
		var n int
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ret = append(ret, filepath.Join(a, e.Name()))
			n++
		}
		if n == 0 {
			return nil, DataError{message: EmptyDirectory, filename: a, critical: true}
		}
	}
	return ret, nil
}

func parsefloats(s ...string) ([]float64, error) {
	r := make([]float64, 0, len(s))
	for _, v := range s {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, err
		}
		r = append(r, f)
	}
	return r, nil
}
