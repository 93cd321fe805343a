/*
 * errors.go, part of memplot.
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

import "fmt"

// Error is the interface for errors that the packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// Each call returns the current "decoration" slice of strings. If passed an
// empty string, it should just return the current value, not add the empty
// string to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// DataError is the general structure for errors found while reading
// membrane analysis files. It fulfills memplot.Error.
type DataError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err DataError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("memplot: %s", err.message)
	}
	return fmt.Sprintf("memplot: file %s: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err DataError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, or an empty string.
func (err DataError) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err DataError) Critical() bool { return err.critical }

// errDecorate is a helper function that asserts that the error
// implements memplot.Error and decorates the error with the caller's name
// before returning it. If used with a non-memplot.Error error, it will cause
// a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// Messages for the errors the readers produce.
const (
	UnableToOpen   = "Unable to open file"
	WrongFormat    = "Wrong format"
	NoContacts     = "No contacts found in any frame"
	NoDataRows     = "No data rows found"
	EmptyDirectory = "No input files found in directory"
)
