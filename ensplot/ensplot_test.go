/*
 * ensplot_test.go, part of goensemble.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package ensplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPerAtom(Te *testing.T) {
	file := filepath.Join(Te.TempDir(), "msf.png")
	//the NaN marks a never-resolved atom and gets skipped
	err := PerAtom([]float64{0.5, 1.25, math.NaN(), 0.75}, "MSF", "MSF (A^2)", file)
	if err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		Te.Error("no plot was written")
	}
	if err := PerAtom([]float64{math.NaN()}, "MSF", "MSF", file); err == nil {
		Te.Error("an all-NaN series should fail")
	}
	if err := PerAtom(nil, "MSF", "MSF", file); err == nil {
		Te.Error("an empty series should fail")
	}
}

func TestPerFrame(Te *testing.T) {
	file := filepath.Join(Te.TempDir(), "rmsd.png")
	if err := PerFrame([]float64{0, 1.5, 2, 1.75}, "RMSD", "RMSD (A)", file); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		Te.Error("no plot was written")
	}
}

func TestPairwiseHeatMap(Te *testing.T) {
	m := mat.NewSymDense(3, nil)
	m.SetSym(0, 1, 1.5)
	m.SetSym(0, 2, 2.5)
	m.SetSym(1, 2, 0.5)
	file := filepath.Join(Te.TempDir(), "pairwise.png")
	if err := PairwiseHeatMap(m, "Pairwise RMSD", file); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		Te.Error("no plot was written")
	}
	if err := PairwiseHeatMap(nil, "empty", file); err == nil {
		Te.Error("a nil matrix should fail")
	}
}
