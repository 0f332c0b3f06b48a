/*
 * geometric.go, part of goDock.
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
	"gonum.org/v1/gonum/mat"
)

// Centroid returns the geometric center of the structure, the arithmetic
// mean of the coordinates of its geometry records. Note that this is not
// the center of mass: all atoms weigh the same here, as docking grids are
// defined geometrically.
func (S *Structure) Centroid() (*mat.VecDense, error) {
	if S.Len() == 0 {
		return nil, CError{EmptyStructure, "", []string{"Centroid"}}
	}
	c := mat.NewVecDense(3, nil)
	for i := 0; i < S.Len(); i++ {
		c.AddVec(c, S.coords.RowView(i))
	}
	c.ScaleVec(1/float64(S.Len()), c)
	return c, nil
}

// Translate displaces every geometry record of the structure by v, leaving
// everything else untouched. Whether the new coordinates still fit their
// 8-character fields is checked when the structure is written, not here.
func (S *Structure) Translate(v *mat.VecDense) error {
	if S.Len() == 0 {
		return CError{EmptyStructure, "", []string{"Translate"}}
	}
	for i := 0; i < S.Len(); i++ {
		r := S.coords.RowView(i).(*mat.VecDense)
		r.AddVec(r, v)
	}
	return nil
}

// Reposition rigidly translates the structure so its centroid coincides
// with target, and returns the translation it applied. It is translation
// only: no rotation, no scaling. The point is to drop the ligand inside the
// docking search space, not to guess a pose; that is the docking engine's
// job. Line order is preserved.
func (S *Structure) Reposition(target *mat.VecDense) (*mat.VecDense, error) {
	c, err := S.Centroid()
	if err != nil {
		return nil, errDecorate(err, "Reposition")
	}
	t := mat.NewVecDense(3, nil)
	t.SubVec(target, c)
	if err := S.Translate(t); err != nil {
		return nil, errDecorate(err, "Reposition")
	}
	return t, nil
}
