/*
 * rigid.go, part of goensemble.
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

//Package rigid computes optimal rigid-body (rotation plus translation)
//transformations between sets of points in 3D space, and weighted
//root-mean-square deviations. A per-point weight of zero excludes the
//point from the fit; positive weights set its relative importance.
package rigid

import (
	"fmt"
	"math"

	v3 "github.com/rmera/goensemble/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Transformation is a rigid-body transformation: a rotation followed by
//a translation. Applied to a row vector p it produces p*R^T + t.
type Transformation struct {
	rot *mat.Dense //3x3
	tr  [3]float64
}

//Rotation returns a copy of the 3x3 rotation matrix.
func (T *Transformation) Rotation() *mat.Dense {
	r := mat.NewDense(3, 3, nil)
	r.Copy(T.rot)
	return r
}

//Translation returns the translation as a 3-element slice.
func (T *Transformation) Translation() []float64 {
	return []float64{T.tr[0], T.tr[1], T.tr[2]}
}

//Matrix returns the transformation as a 4x4 homogeneous matrix, with
//the rotation in the upper-left 3x3 block and the translation in the
//last column.
func (T *Transformation) Matrix() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, T.rot.At(i, j))
		}
		m.Set(i, 3, T.tr[i])
	}
	m.Set(3, 3, 1)
	return m
}

//Apply transforms every vector of coords in place.
func (T *Transformation) Apply(coords *v3.Matrix) {
	tmp := v3.Zeros(coords.NVecs())
	tmp.Mul(coords, T.rot.T())
	tvec, _ := v3.NewMatrix(T.Translation()) //hardcoded length, can't fail
	tmp.AddVec(tmp, tvec)
	coords.Copy(tmp.Dense)
}

//OptimalTransform returns the transformation that, applied to moving,
//minimizes the weighted sum of squared distances to target, i.e.
//sum over i of weights[i]*||R*p_i + t - q_i||^2. A nil weights slice
//means all weights equal to one. Reflections are corrected to proper
//rotations, so specular point sets superpose as well as possible
//instead of failing.
func OptimalTransform(moving, target *v3.Matrix, weights []float64) (*Transformation, error) {
	n := moving.NVecs()
	if target.NVecs() != n {
		return nil, fmt.Errorf("rigid: mismatched point sets: %d vs %d", n, target.NVecs())
	}
	if weights == nil {
		weights = ones(n)
	}
	if len(weights) != n {
		return nil, fmt.Errorf("rigid: %d weights for %d points", len(weights), n)
	}
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("rigid: negative weight %f", w)
		}
	}
	wsum := floats.Sum(weights)
	if wsum <= 0 {
		return nil, fmt.Errorf("rigid: total weight must be positive")
	}
	//weighted centroids
	var cm, ct [3]float64
	for i := 0; i < n; i++ {
		w := weights[i]
		for j := 0; j < 3; j++ {
			cm[j] += w * moving.At(i, j)
			ct[j] += w * target.At(i, j)
		}
	}
	for j := 0; j < 3; j++ {
		cm[j] /= wsum
		ct[j] /= wsum
	}
	//weighted covariance of the centered sets
	cov := mat.NewDense(3, 3, nil)
	for i := 0; i < n; i++ {
		w := weights[i]
		if w == 0 {
			continue
		}
		var xm, xt [3]float64
		for j := 0; j < 3; j++ {
			xm[j] = moving.At(i, j) - cm[j]
			xt[j] = target.At(i, j) - ct[j]
		}
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				cov.Set(a, b, cov.At(a, b)+w*xm[a]*xt[b])
			}
		}
	}
	var svd mat.SVD
	if ok := svd.Factorize(cov, mat.SVDFull); !ok {
		return nil, fmt.Errorf("rigid: SVD of the covariance matrix failed")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	rot := mat.NewDense(3, 3, nil)
	rot.Mul(&v, u.T())
	if mat.Det(rot) < 0 {
		for i := 0; i < 3; i++ {
			v.Set(i, 2, -v.At(i, 2))
		}
		rot.Mul(&v, u.T())
	}
	var tr [3]float64
	for a := 0; a < 3; a++ {
		tr[a] = ct[a] - (rot.At(a, 0)*cm[0] + rot.At(a, 1)*cm[1] + rot.At(a, 2)*cm[2])
	}
	return &Transformation{rot: rot, tr: tr}, nil
}

//RMSD returns the weighted root-mean-square deviation between the
//point sets a and b, sqrt(sum(w_i*d_i^2)/sum(w_i)). A nil weights
//slice means all weights equal to one. If the weights sum to zero the
//deviation is undefined and NaN is returned.
func RMSD(a, b *v3.Matrix, weights []float64) (float64, error) {
	n := a.NVecs()
	if b.NVecs() != n {
		return 0, fmt.Errorf("rigid: mismatched point sets: %d vs %d", n, b.NVecs())
	}
	if weights == nil {
		weights = ones(n)
	}
	if len(weights) != n {
		return 0, fmt.Errorf("rigid: %d weights for %d points", len(weights), n)
	}
	wsum := floats.Sum(weights)
	if wsum == 0 {
		return math.NaN(), nil
	}
	var sum float64
	for i := 0; i < n; i++ {
		if weights[i] == 0 {
			continue
		}
		var d2 float64
		for j := 0; j < 3; j++ {
			d := a.At(i, j) - b.At(i, j)
			d2 += d * d
		}
		sum += weights[i] * d2
	}
	return math.Sqrt(sum / wsum), nil
}

//RMSDMany returns the weighted RMSD of each of the point sets in confs
//against ref. weights may be nil (all ones for every set) or contain
//one weight slice per set, each of which may itself be nil.
func RMSDMany(ref *v3.Matrix, confs []*v3.Matrix, weights [][]float64) ([]float64, error) {
	if weights != nil && len(weights) != len(confs) {
		return nil, fmt.Errorf("rigid: %d weight sets for %d point sets", len(weights), len(confs))
	}
	rmsds := make([]float64, len(confs))
	for i, conf := range confs {
		var w []float64
		if weights != nil {
			w = weights[i]
		}
		r, err := RMSD(ref, conf, w)
		if err != nil {
			return nil, err
		}
		rmsds[i] = r
	}
	return rmsds, nil
}

func ones(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = 1
	}
	return r
}
