/*
 * pdbqt.go, part of goDock.
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

package dock

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//PDBQT keeps the fixed column layout of PDB. The coordinates of an atom
//sit at these byte offsets of its line, 8 characters per coordinate,
//fixed point, 3 decimals.
const (
	coordStart = 30
	xEnd       = 38
	yEnd       = 46
	coordEnd   = 54
)

// Structure is the contents of one PDBQT (or PDB) file. Every line of the
// file is kept verbatim, in order. The coordinates of the geometry records
// (the ATOM and HETATM lines) are additionally extracted into an N×3 matrix,
// which is the only part of the file this library ever modifies. Everything
// else (REMARK, ROOT, BRANCH, TORSDOF, and the non-coordinate columns of the
// atom lines themselves) is written back byte per byte.
type Structure struct {
	lines  []string
	geom   []int      //indices into lines of the ATOM/HETATM records
	coords *mat.Dense //len(geom)x3. nil if there are no geometry records.
}

// Len returns the number of geometry records in the structure.
func (S *Structure) Len() int {
	return len(S.geom)
}

// Coords returns the coordinate matrix of the structure, one row per
// ATOM/HETATM record, in file order. It is a view, not a copy.
func (S *Structure) Coords() *mat.Dense {
	return S.coords
}

// isGeometry tells whether a line takes part in geometric operations.
// Any other line is inert and passed through unchanged.
func isGeometry(line string) bool {
	return strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM")
}

// parseCoords extracts the x, y and z fields from the fixed coordinate span
// of a geometry line. Fields are located by offset, not by whitespace, so a
// line that is too short, or that carries non-numbers in the span, is
// malformed, whatever the rest of it looks like.
func parseCoords(line string) (float64, float64, float64, error) {
	if len(line) < coordEnd {
		return 0, 0, 0, CError{MalformedRecord, "", []string{"parseCoords"}}
	}
	err := make([]error, 3)
	var x, y, z float64
	x, err[0] = strconv.ParseFloat(strings.TrimSpace(line[coordStart:xEnd]), 64)
	y, err[1] = strconv.ParseFloat(strings.TrimSpace(line[xEnd:yEnd]), 64)
	z, err[2] = strconv.ParseFloat(strings.TrimSpace(line[yEnd:coordEnd]), 64)
	for _, e := range err {
		if e != nil {
			return 0, 0, 0, CError{MalformedRecord, "", []string{"parseCoords"}}
		}
	}
	return x, y, z, nil
}

// formatCoord renders v as an 8-character, right-aligned, fixed-point field
// with 3 decimals. A value too large for the field is an error: truncating
// or widening it would silently shift every column after it, corrupting the
// file for whatever reads it next.
func formatCoord(v float64) (string, error) {
	s := fmt.Sprintf("%8.3f", v)
	if len(s) > xEnd-coordStart {
		return "", CError{FieldOverflow + fmt.Sprintf(" (%s)", s), "", []string{"formatCoord"}}
	}
	return s, nil
}

// PDBQTRead reads a PDBQT or PDB structure from in. The whole file is
// materialized; a single malformed geometry record makes the whole read
// fail, there are no partial structures.
func PDBQTRead(in io.Reader) (*Structure, error) {
	S := new(Structure)
	raw := make([]float64, 0, 3*30)
	scanner := bufio.NewScanner(in)
	cont := 0
	for scanner.Scan() {
		line := scanner.Text()
		S.lines = append(S.lines, line)
		if isGeometry(line) {
			x, y, z, err := parseCoords(line)
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("PDBQTRead: line %d", cont+1))
			}
			S.geom = append(S.geom, cont)
			raw = append(raw, x, y, z)
		}
		cont++
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{err.Error(), "", []string{"PDBQTRead"}}
	}
	if len(S.geom) > 0 {
		S.coords = mat.NewDense(len(S.geom), 3, raw)
	}
	return S, nil
}

// PDBQTFileRead reads the PDBQT or PDB file name.
func PDBQTFileRead(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{UnableToOpen, name, []string{"PDBQTFileRead"}}
	}
	defer f.Close()
	S, err := PDBQTRead(f)
	if err != nil {
		return nil, errDecorate(err, "PDBQTFileRead: "+name)
	}
	return S, nil
}

// render produces the output lines for S, with the current coordinates
// formatted back into the coordinate span of each geometry line. The prefix
// (bytes 0-30) and suffix (bytes 54-end) of those lines, and every inert
// line, are reproduced exactly.
func (S *Structure) render() ([]string, error) {
	out := make([]string, len(S.lines))
	copy(out, S.lines)
	var field [3]string
	for i, li := range S.geom {
		var err error
		for j := 0; j < 3; j++ {
			field[j], err = formatCoord(S.coords.At(i, j))
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("render: line %d", li+1))
			}
		}
		line := S.lines[li]
		out[li] = line[:coordStart] + field[0] + field[1] + field[2] + line[coordEnd:]
	}
	return out, nil
}

// PDBQTWrite writes the structure S to out.
func PDBQTWrite(out io.Writer, S *Structure) error {
	lines, err := S.render()
	if err != nil {
		return errDecorate(err, "PDBQTWrite")
	}
	for _, v := range lines {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return CError{err.Error(), "", []string{"PDBQTWrite"}}
		}
	}
	return nil
}

// PDBQTFileWrite writes the structure S to the file name. The structure is
// fully rendered before the file is created, so a structure that can not be
// formatted (say, a coordinate overflowing its field) leaves no partial
// file behind.
func PDBQTFileWrite(name string, S *Structure) error {
	lines, err := S.render()
	if err != nil {
		return errDecorate(err, "PDBQTFileWrite: "+name)
	}
	f, err := os.Create(name)
	if err != nil {
		return CError{UnableToOpen, name, []string{"PDBQTFileWrite"}}
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, v := range lines {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return CError{err.Error(), name, []string{"PDBQTFileWrite"}}
		}
	}
	if err := w.Flush(); err != nil {
		return CError{err.Error(), name, []string{"PDBQTFileWrite"}}
	}
	return nil
}
