/*
 * doc.go, part of goDock.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package dock prepares small-molecule ligands for docking calculations.

It reads and writes PDBQT (and PDB) files preserving their fixed-width
layout byte per byte, computes the geometric center of a structure and
rigidly translates the structure so that center coincides with the center
of the docking grid. The actual chemistry (3D coordinate generation,
protonation, partial charges, torsion assignment) is left to external
programs, driven by the convert subpackage.

The library does not impose any workflow. The godock command (cmd/godock)
implements the usual one: a list of SMILES strings goes in, one positioned
PDBQT file per ligand comes out.
*/
package dock
