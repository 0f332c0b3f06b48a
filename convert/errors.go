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

package convert

import (
	"fmt"

	dock "github.com/rmera/godock"
)

// Error is the error type for conversions. It carries the name of the
// external program involved and the input it was working on, and fulfills
// the dock.Error decoration contract.
type Error struct {
	message   string
	program   string
	inputname string
	deco      []string
}

func (err Error) Error() string {
	return fmt.Sprintf("convert %s error: %s (input: %s)", err.program, err.message, err.inputname)
}

// Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Program returns the name of the external program associated to the error.
func (err Error) Program() string { return err.program }

const (
	ErrNotRunning       = "Unable to run the external program"
	ErrNoArtifact       = "The external program terminated without producing its output file"
	ConversionExhausted = "All conversion strategies failed"
)

// errDecorate asserts that the error implements dock.Error and decorates it
// with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(dock.Error)
	err2.Decorate(caller)
	return err2
}
