/*
 * rigid_test.go, part of goensemble.
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

package rigid

import (
	"math"
	"testing"

	v3 "github.com/rmera/goensemble/v3"
)

//rotZ90Plus applies a 90-degree rotation around Z plus the translation
//(1,2,3) to every point, returning the result as a fresh matrix.
func rotZ90Plus(m *v3.Matrix) *v3.Matrix {
	r := v3.Zeros(m.NVecs())
	for i := 0; i < m.NVecs(); i++ {
		x, y, z := m.At(i, 0), m.At(i, 1), m.At(i, 2)
		r.Set(i, 0, -y+1)
		r.Set(i, 1, x+2)
		r.Set(i, 2, z+3)
	}
	return r
}

func TestOptimalTransform(Te *testing.T) {
	moving, _ := v3.NewMatrix([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 1, 0,
	})
	target := rotZ90Plus(moving)
	T, err := OptimalTransform(moving, target, nil)
	if err != nil {
		Te.Fatal(err)
	}
	T.Apply(moving)
	for i := 0; i < moving.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(moving.At(i, j)-target.At(i, j)) > 1e-9 {
				Te.Errorf("point %d component %d: %f vs %f", i, j, moving.At(i, j), target.At(i, j))
			}
		}
	}
	rot := T.Rotation()
	want := [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			if math.Abs(rot.At(a, b)-want[a][b]) > 1e-9 {
				Te.Errorf("rotation entry (%d,%d): %f, wanted %f", a, b, rot.At(a, b), want[a][b])
			}
		}
	}
	four := T.Matrix()
	if four.At(0, 3) != T.Translation()[0] || four.At(3, 3) != 1 {
		Te.Error("the homogeneous matrix does not match the transformation")
	}
}

//A zero weight must take its point completely out of the fit.
func TestWeightedExclusion(Te *testing.T) {
	moving, _ := v3.NewMatrix([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 1, 0,
		10, -5, 2, //junk, excluded below
	})
	target := rotZ90Plus(moving)
	//corrupt the excluded point's target so it would wreck the fit if counted
	target.Set(4, 0, 0)
	target.Set(4, 1, 0)
	target.Set(4, 2, 0)
	T, err := OptimalTransform(moving, target, []float64{1, 1, 1, 1, 0})
	if err != nil {
		Te.Fatal(err)
	}
	T.Apply(moving)
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(moving.At(i, j)-target.At(i, j)) > 1e-9 {
				Te.Errorf("point %d component %d: %f vs %f", i, j, moving.At(i, j), target.At(i, j))
			}
		}
	}
}

func TestOptimalTransformErrors(Te *testing.T) {
	a, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	b, _ := v3.NewMatrix([]float64{1, 0, 0})
	if _, err := OptimalTransform(a, b, nil); err == nil {
		Te.Error("mismatched point sets should fail")
	}
	c, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	if _, err := OptimalTransform(a, c, []float64{1, -1}); err == nil {
		Te.Error("negative weights should fail")
	}
	if _, err := OptimalTransform(a, c, []float64{0, 0}); err == nil {
		Te.Error("all-zero weights should fail")
	}
}

func TestRMSD(Te *testing.T) {
	a, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	b, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 1})
	r, err := RMSD(a, b, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(r-math.Sqrt(0.5)) > 1e-12 {
		Te.Errorf("RMSD %f, wanted %f", r, math.Sqrt(0.5))
	}
	//excluding the deviating point leaves nothing but a perfect match
	r, err = RMSD(a, b, []float64{1, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if r != 0 {
		Te.Errorf("weighted RMSD %f, wanted 0", r)
	}
	r, err = RMSD(a, b, []float64{0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsNaN(r) {
		Te.Errorf("zero total weight should give NaN, got %f", r)
	}
}

func TestRMSDMany(Te *testing.T) {
	ref, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	c1, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	c2, _ := v3.NewMatrix([]float64{3, 4, 0, 4, 4, 0})
	rmsds, err := RMSDMany(ref, []*v3.Matrix{c1, c2}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if rmsds[0] != 0 {
		Te.Errorf("identical sets should give 0, got %f", rmsds[0])
	}
	if math.Abs(rmsds[1]-5) > 1e-12 {
		Te.Errorf("uniform (3,4,0) shift should give 5, got %f", rmsds[1])
	}
}
