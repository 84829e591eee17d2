/*
 * stats_test.go, part of goensemble.
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

package ensemble

import (
	"math"
	"testing"

	v3 "github.com/rmera/goensemble/v3"
)

func TestMSFs(Te *testing.T) {
	//3 atoms, 3 frames. Atom 0 wiggles along x; atom 1 is unresolved
	//in the middle frame (and carries junk there); atom 2 is never
	//resolved.
	f0, _ := v3.NewMatrix([]float64{0, 0, 0 /**/, 0, 0, 0 /**/, 9, 9, 9})
	f1, _ := v3.NewMatrix([]float64{1, 0, 0 /**/, 7, 7, 7 /**/, 9, 9, 9})
	f2, _ := v3.NewMatrix([]float64{2, 0, 0 /**/, 2, 0, 0 /**/, 9, 9, 9})
	E := New("msf")
	err := E.AddFrames([]*v3.Matrix{f0, f1, f2}, &AddOptions{Weights: [][]float64{
		{1, 1, 0},
		{1, 0, 0},
		{1, 1, 0},
	}})
	if err != nil {
		Te.Fatal(err)
	}
	msfs, err := E.MSFs()
	if err != nil {
		Te.Fatal(err)
	}
	//atom 0: x values 0,1,2 around mean 1
	if math.Abs(msfs[0]-2.0/3.0) > 1e-12 {
		Te.Errorf("MSF of atom 0: %f, wanted %f", msfs[0], 2.0/3.0)
	}
	//atom 1: only frames 0 and 2 count, x values 0 and 2 around mean 1
	if math.Abs(msfs[1]-1) > 1e-12 {
		Te.Errorf("MSF of atom 1: %f, wanted 1", msfs[1])
	}
	if !math.IsNaN(msfs[2]) {
		Te.Errorf("a never-resolved atom should give NaN, got %f", msfs[2])
	}
	//a selection restricts the output
	E.Select([]int{1})
	msfs, err = E.MSFs()
	if err != nil {
		Te.Fatal(err)
	}
	if len(msfs) != 1 || math.Abs(msfs[0]-1) > 1e-12 {
		Te.Errorf("selected MSFs wrong: %v", msfs)
	}
}

func TestRMSDs(Te *testing.T) {
	ref, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	same, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	shifted, _ := v3.NewMatrix([]float64{3, 4, 0, 4, 4, 0})
	oneoff, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 1})
	masked, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 1})
	E := New("rmsd")
	E.SetCoords(ref)
	err := E.AddFrames([]*v3.Matrix{same, shifted, oneoff, masked}, &AddOptions{Weights: [][]float64{
		{1, 1},
		{1, 1},
		{1, 1},
		{1, 0},
	}})
	if err != nil {
		Te.Fatal(err)
	}
	rmsds, err := E.RMSDs()
	if err != nil {
		Te.Fatal(err)
	}
	if rmsds[0] != 0 {
		Te.Errorf("identical frame: %f", rmsds[0])
	}
	if math.Abs(rmsds[1]-5) > 1e-12 {
		Te.Errorf("uniformly shifted frame: %f, wanted 5", rmsds[1])
	}
	if math.Abs(rmsds[2]-math.Sqrt(0.5)) > 1e-12 {
		Te.Errorf("one atom off by 1: %f, wanted %f", rmsds[2], math.Sqrt(0.5))
	}
	if rmsds[3] != 0 {
		Te.Errorf("the deviating atom has weight 0: %f, wanted 0", rmsds[3])
	}
}

func TestPairwiseRMSDs(Te *testing.T) {
	f0, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	f1, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 1})
	f2, _ := v3.NewMatrix([]float64{8, 8, 8, 1, 0, 0}) //atom 0 unresolved
	f3, _ := v3.NewMatrix([]float64{0, 0, 0, 9, 9, 9}) //atom 1 unresolved
	E := New("pairwise")
	err := E.AddFrames([]*v3.Matrix{f0, f1, f2, f3}, &AddOptions{Weights: [][]float64{
		{1, 1},
		{1, 1},
		{0, 1},
		{1, 0},
	}})
	if err != nil {
		Te.Fatal(err)
	}
	m, err := E.PairwiseRMSDs()
	if err != nil {
		Te.Fatal(err)
	}
	n := m.SymmetricDim()
	if n != 4 {
		Te.Fatalf("wanted a 4x4 matrix, got %dx%d", n, n)
	}
	for i := 0; i < n; i++ {
		if m.At(i, i) != 0 {
			Te.Errorf("diagonal entry (%d,%d) is %f", i, i, m.At(i, i))
		}
		for j := 0; j < n; j++ {
			if v, w := m.At(i, j), m.At(j, i); v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
				Te.Errorf("matrix not symmetric at (%d,%d): %f vs %f", i, j, v, w)
			}
		}
	}
	if math.Abs(m.At(0, 1)-math.Sqrt(0.5)) > 1e-12 {
		Te.Errorf("frames 0,1: %f, wanted %f", m.At(0, 1), math.Sqrt(0.5))
	}
	//frames 2 and 3 share no resolved atom
	if !math.IsNaN(m.At(2, 3)) {
		Te.Errorf("no commonly resolved atoms should give NaN, got %f", m.At(2, 3))
	}
	//the junk coordinates of unresolved atoms never leak in
	if m.At(0, 2) != 0 {
		Te.Errorf("frames 0,2 agree on their only common atom: %f", m.At(0, 2))
	}
}

func TestStatsErrors(Te *testing.T) {
	E := New("empty")
	if _, err := E.MSFs(); err == nil {
		Te.Error("MSFs on an empty ensemble should fail")
	}
	if _, err := E.PairwiseRMSDs(); err == nil {
		Te.Error("PairwiseRMSDs on an empty ensemble should fail")
	}
	E.AddFrame(testCoords(), nil)
	E.coords = nil //no reference set
	if _, err := E.RMSDs(); err == nil {
		Te.Error("RMSDs without a reference should fail")
	}
}
