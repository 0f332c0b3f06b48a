/*
 * obabel.go, part of goDock.
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
//To use this part of the library you need the OpenBabel program, obtainable
//at http://openbabel.org. Please cite the OpenBabel paper if you use it.

package convert

import (
	"fmt"
)

// OBabel drives the OpenBabel format converter.
type OBabel struct {
	command string
}

func NewOBabel() *OBabel {
	O := new(OBabel)
	O.SetDefaults()
	return O
}

func (O *OBabel) SetDefaults() {
	O.command = "obabel"
}

// SetCommand sets the name or path of the obabel executable.
func (O *OBabel) SetCommand(name string) {
	O.command = name
}

func (O *OBabel) Name() string {
	return "OpenBabel"
}

// Convert produces out from in directly, assigning Gasteiger partial
// charges on the way.
func (O *OBabel) Convert(in, out string) error {
	cmdline := fmt.Sprintf("%s %q -opdbqt -O %q --partialcharge gasteiger", O.command, in, out)
	if err := run(O.Name(), cmdline, in); err != nil {
		return errDecorate(err, "Convert")
	}
	return artifactCheck(O.Name(), out)
}

// Gen3D builds 3D coordinates for a SMILES string and writes them, in PDB
// format, to the file out. This is the front end of a preparation pipeline,
// not one of the PDBQT fallback strategies: if it fails there is no
// structure to convert at all.
func (O *OBabel) Gen3D(smiles, out string) error {
	cmdline := fmt.Sprintf("%s -:%q -opdb --gen3d -O %q", O.command, smiles, out)
	if err := run(O.Name(), cmdline, smiles); err != nil {
		return errDecorate(err, "Gen3D")
	}
	return artifactCheck(O.Name(), out)
}
