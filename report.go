/*
 * report.go, part of goDock.
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
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Report accumulates the outcome of a preparation batch: how many ligands
// went in, how many came out, and how far each successful one had to be
// displaced to reach the grid center. The displacements are worth looking
// at: a ligand that needed a huge translation probably came out of the 3D
// generator in some arbitrary frame, which is normal, but a whole batch of
// tiny ones suggests the grid center is wrong.
type Report struct {
	displacements []float64
	total         int
	prepared      int
}

// AddFailure records a ligand that failed at some stage of the pipeline.
func (R *Report) AddFailure() {
	R.total++
}

// AddSuccess records a fully prepared ligand and the translation that was
// applied to it.
func (R *Report) AddSuccess(translation *mat.VecDense) {
	R.total++
	R.prepared++
	R.displacements = append(R.displacements, mat.Norm(translation, 2))
}

// Total returns the number of ligands attempted so far.
func (R *Report) Total() int { return R.total }

// Prepared returns the number of ligands successfully prepared so far.
func (R *Report) Prepared() int { return R.prepared }

// Summary writes the batch summary to out.
func (R *Report) Summary(out io.Writer) {
	fmt.Fprintf(out, "Processing complete: %d/%d ligands successfully prepared\n", R.prepared, R.total)
	if len(R.displacements) == 0 {
		return
	}
	mean, std := stat.MeanStdDev(R.displacements, nil)
	if len(R.displacements) < 2 {
		std = 0 //MeanStdDev returns NaN for a single sample
	}
	fmt.Fprintf(out, "Displacement to the grid center (Å): mean %.2f, sd %.2f, max %.2f\n",
		mean, std, floats.Max(R.displacements))
}

// Histogram plots the distribution of the applied displacements and saves
// it to name (the extension selects the format, e.g. .png or .pdf).
func (R *Report) Histogram(name string) error {
	if len(R.displacements) == 0 {
		return CError{"No displacements to plot", name, []string{"Histogram"}}
	}
	p := plot.New()
	p.Title.Text = "Ligand displacement to grid center"
	p.X.Label.Text = "Displacement (Å)"
	p.Y.Label.Text = "Ligands"
	h, err := plotter.NewHist(plotter.Values(R.displacements), 10)
	if err != nil {
		return CError{err.Error(), name, []string{"plotter.NewHist", "Histogram"}}
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, name); err != nil {
		return CError{err.Error(), name, []string{"plot.Save", "Histogram"}}
	}
	return nil
}
