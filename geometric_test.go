/*
 * geometric_test.go, part of goDock.
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

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const tolerance = 1e-6

func twoAtoms() (*Structure, error) {
	in := strings.Join([]string{
		"REMARK  two atoms",
		atomLine("HETATM", 1, 0, 0, 0),
		atomLine("HETATM", 2, 2, 2, 2),
	}, "\n") + "\n"
	return PDBQTRead(strings.NewReader(in))
}

func vecEq(a, b mat.Vector) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a.AtVec(i)-b.AtVec(i)) > tolerance {
			return false
		}
	}
	return true
}

func TestReposition(Te *testing.T) {
	S, err := twoAtoms()
	if err != nil {
		Te.Fatal(err)
	}
	target := mat.NewVecDense(3, []float64{10, 10, 10})
	t, err := S.Reposition(target)
	if err != nil {
		Te.Fatal(err)
	}
	if want := mat.NewVecDense(3, []float64{9, 9, 9}); !vecEq(t, want) {
		Te.Errorf("wrong translation applied: %v", mat.Formatted(t.T()))
	}
	for i, want := range [][]float64{{9, 9, 9}, {11, 11, 11}} {
		got := S.Coords().RowView(i)
		if !vecEq(got, mat.NewVecDense(3, want)) {
			Te.Errorf("atom %d at %v, want %v", i+1, mat.Formatted(got.T()), want)
		}
	}
	c, err := S.Centroid()
	if err != nil {
		Te.Fatal(err)
	}
	if !vecEq(c, target) {
		Te.Errorf("centroid after repositioning is %v, want the target %v",
			mat.Formatted(c.T()), mat.Formatted(target.T()))
	}
}

// Repositioning on the structure's own centroid must change nothing.
func TestRepositionNoop(Te *testing.T) {
	S, err := twoAtoms()
	if err != nil {
		Te.Fatal(err)
	}
	before := mat.DenseCopyOf(S.Coords())
	c, err := S.Centroid()
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := S.Reposition(c); err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < S.Len(); i++ {
		if !vecEq(S.Coords().RowView(i), before.RowView(i)) {
			Te.Errorf("no-op repositioning moved atom %d", i+1)
		}
	}
}

func TestEmptyStructure(Te *testing.T) {
	in := "REMARK  nothing here\nTORSDOF 0\n"
	S, err := PDBQTRead(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := S.Centroid(); err == nil {
		Te.Error("centroid of an empty structure should be an error")
	}
	target := mat.NewVecDense(3, []float64{1, 2, 3})
	if _, err := S.Reposition(target); err == nil {
		Te.Error("repositioning an empty structure should be an error")
	}
}

// A translation that pushes a coordinate out of its 8-character field must
// fail the write, leaving no file at all behind.
func TestOverflowLeavesNoFile(Te *testing.T) {
	S, err := twoAtoms()
	if err != nil {
		Te.Fatal(err)
	}
	if err := S.Translate(mat.NewVecDense(3, []float64{100000, 0, 0})); err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "overflow.pdbqt")
	if err := PDBQTFileWrite(name, S); err == nil {
		Te.Fatal("writing overflowing coordinates should fail")
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		Te.Error("a failed write should not leave a file behind")
	}
}
