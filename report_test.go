/*
 * report_test.go, part of goDock.
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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestReportSummary(Te *testing.T) {
	rep := new(Report)
	rep.AddSuccess(mat.NewVecDense(3, []float64{3, 4, 0})) //displacement 5
	rep.AddFailure()
	rep.AddSuccess(mat.NewVecDense(3, []float64{0, 0, 7}))
	if rep.Total() != 3 || rep.Prepared() != 2 {
		Te.Errorf("counts are %d/%d, want 2/3", rep.Prepared(), rep.Total())
	}
	var out bytes.Buffer
	rep.Summary(&out)
	if !strings.Contains(out.String(), "2/3") {
		Te.Errorf("summary doesn't report the counts: %q", out.String())
	}
	if !strings.Contains(out.String(), "max 7.00") {
		Te.Errorf("summary doesn't report the largest displacement: %q", out.String())
	}
}

func TestReportHistogram(Te *testing.T) {
	rep := new(Report)
	for _, v := range []float64{1, 2, 2, 3, 5, 8} {
		rep.AddSuccess(mat.NewVecDense(3, []float64{v, 0, 0}))
	}
	name := filepath.Join(Te.TempDir(), "displacements.png")
	if err := rep.Histogram(name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Errorf("histogram file wasn't written: %v", err)
	}
	//nothing to plot is an error, not an empty plot
	if err := new(Report).Histogram(name); err == nil {
		Te.Error("plotting an empty report should fail")
	}
}
