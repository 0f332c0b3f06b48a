/*
 * adt.go, part of goDock.
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
//To use this part of the library you need AutoDockTools, distributed with
//MGLTools (http://mgltools.scripps.edu). Please cite the AutoDock paper if
//you use it.

package convert

import (
	"fmt"
)

// ADTPrepare drives AutoDockTools' prepare_ligand4.py, the reference ligand
// preparation script for AutoDock. It is the preferred strategy: it builds
// the torsion tree the way AutoDock expects it.
type ADTPrepare struct {
	command string
}

func NewADTPrepare() *ADTPrepare {
	A := new(ADTPrepare)
	A.SetDefaults()
	return A
}

func (A *ADTPrepare) SetDefaults() {
	A.command = "prepare_ligand4.py"
}

// SetCommand sets the name or path of the prepare_ligand4.py script.
func (A *ADTPrepare) SetCommand(name string) {
	A.command = name
}

func (A *ADTPrepare) Name() string {
	return "prepare_ligand4"
}

// Convert produces out from in, adding hydrogens and merging non-polar
// hydrogens and lone pairs, as AutoDock4 wants them.
func (A *ADTPrepare) Convert(in, out string) error {
	cmdline := fmt.Sprintf("%s -l %q -o %q -A hydrogens -U nphs_lps", A.command, in, out)
	if err := run(A.Name(), cmdline, in); err != nil {
		return errDecorate(err, "Convert")
	}
	return artifactCheck(A.Name(), out)
}

// Pythonsh drives the AD4LigandPreparation class of the legacy
// AutoDockTools python library, through the pythonsh interpreter shipped
// with MGLTools. It is the last-resort strategy, for installations where
// the prepare_ligand4.py entry point is broken but the library underneath
// it still works.
type Pythonsh struct {
	command string
	libpath string
}

func NewPythonsh() *Pythonsh {
	P := new(Pythonsh)
	P.SetDefaults()
	return P
}

func (P *Pythonsh) SetDefaults() {
	P.command = "pythonsh"
	P.libpath = "/usr/local/lib/python2.7/site-packages/"
}

// SetCommand sets the name or path of the pythonsh interpreter.
func (P *Pythonsh) SetCommand(name string) {
	P.command = name
}

// SetLibPath sets the directory prepended to the python path, where the
// AutoDockTools package lives.
func (P *Pythonsh) SetLibPath(path string) {
	P.libpath = path
}

func (P *Pythonsh) Name() string {
	return "pythonsh"
}

// Convert produces out from in, repairing hydrogens and assigning
// Gasteiger charges. The python is inlined: there is no script to install,
// which is the whole point of this fallback.
func (P *Pythonsh) Convert(in, out string) error {
	script := fmt.Sprintf("import sys; sys.path.append('%s'); "+
		"from AutoDockTools.MoleculePreparation import AD4LigandPreparation; "+
		"prep = AD4LigandPreparation(); "+
		"prep.prepare_ligand('%s', outputfilename='%s', repairs='checkhydrogens', charges_to_add='gasteiger')",
		P.libpath, in, out)
	cmdline := fmt.Sprintf("%s -c %q", P.command, script)
	if err := run(P.Name(), cmdline, in); err != nil {
		return errDecorate(err, "Convert")
	}
	return artifactCheck(P.Name(), out)
}
