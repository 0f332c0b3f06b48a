/*
 * errors.go, part of goDock.
 *
 * Copyright 2025 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
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

package dock

import "fmt"

//This error scheme predates the "wrapping" error system of Go (i.e. the "%w"
//directive and the errors package). It is kept for consistency with goChem.

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// Each Decorate call should add the caller's name, plus, optionally, any
// relevant extra information, in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError (Concrete Error) is the error type returned by this package.
// It implements Error.
type CError struct {
	msg      string
	filename string //the file associated to the error, or the empty string.
	deco     []string
}

func (err CError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("godock error: %s", err.msg)
	}
	return fmt.Sprintf("godock file %s error: %s", err.filename, err.msg)
}

// Decorate adds new information to the error.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err CError) FileName() string { return err.filename }

// The different errors the library can report. Only the "message" part,
// the full error carries the offending file and the calling stack.
const (
	MalformedRecord = "Geometry record too short, or with non-numeric text in a coordinate field"
	EmptyStructure  = "The structure contains no ATOM/HETATM records"
	FieldOverflow   = "A coordinate does not fit its 8-character field"
	UnableToOpen    = "Unable to open file"
)

// errDecorate asserts that the error implements Error and decorates it with
// the caller's name before returning it. Using it on anything else is a
// programming error, and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
