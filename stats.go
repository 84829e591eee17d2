/*
 * stats.go, part of goensemble.
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

	"github.com/rmera/goensemble/rigid"
	v3 "github.com/rmera/goensemble/v3"
	"gonum.org/v1/gonum/mat"
)

//MSFs returns the mean square fluctuation of each selected atom around
//the per-atom mean of the frames. For each atom only the frames where
//its weight is nonzero contribute, both to the mean and to the
//normalizer; an atom resolved in no frame gets NaN. Call after
//superposing the frames, or the fluctuations will mix in rigid-body
//motion.
func (E *Ensemble) MSFs() ([]float64, error) {
	if len(E.confs) == 0 {
		return nil, statef("MSFs: ensemble has no frames")
	}
	mean := E.maskedMeanOfFrames()
	indices := E.indices
	if indices == nil {
		indices = allIndices(E.natoms)
	}
	msfs := make([]float64, len(indices))
	for j, a := range indices {
		var sum, count float64
		for i, conf := range E.confs {
			if E.weights[i][a] == 0 {
				continue
			}
			count++
			for k := 0; k < 3; k++ {
				d := conf.At(a, k) - mean.At(a, k)
				sum += d * d
			}
		}
		if count == 0 {
			msfs[j] = math.NaN()
			continue
		}
		msfs[j] = sum / count
	}
	return msfs, nil
}

//maskedMeanOfFrames is maskedMean over the stored frames, with a zero
//fallback for never-resolved atoms (those only ever feed NaN results).
func (E *Ensemble) maskedMeanOfFrames() *v3.Matrix {
	return E.maskedMean(E.confs, v3.Zeros(E.natoms))
}

//RMSDs returns the weighted RMSD of each frame against the reference
//coordinates, over the selected atoms, using each frame's weights.
func (E *Ensemble) RMSDs() ([]float64, error) {
	if E.coords == nil {
		return nil, statef("RMSDs: ensemble has no reference coordinates")
	}
	if len(E.confs) == 0 {
		return nil, statef("RMSDs: ensemble has no frames")
	}
	ref := subsetCopy(E.coords, E.indices)
	confs := make([]*v3.Matrix, len(E.confs))
	weights := make([][]float64, len(E.confs))
	for i := range E.confs {
		confs[i] = subsetCopy(E.confs[i], E.indices)
		weights[i] = subsetWeights(E.weights[i], E.indices)
	}
	rmsds, err := rigid.RMSDMany(ref, confs, weights)
	if err != nil {
		return nil, errDecorate(validationf("%s", err.Error()), "RMSDs")
	}
	return rmsds, nil
}

//PairwiseRMSDs returns the symmetric matrix of weighted RMSDs between
//every pair of frames, over the selected atoms. The weight of an atom
//in a pair is the product of its weights in the two frames, so an atom
//missing in either frame drops out of that pair. The diagonal is zero;
//a pair with no commonly resolved atoms gets NaN.
func (E *Ensemble) PairwiseRMSDs() (*mat.SymDense, error) {
	if len(E.confs) == 0 {
		return nil, statef("PairwiseRMSDs: ensemble has no frames")
	}
	n := len(E.confs)
	confs := make([]*v3.Matrix, n)
	weights := make([][]float64, n)
	for i := range E.confs {
		confs[i] = subsetCopy(E.confs[i], E.indices)
		weights[i] = subsetWeights(E.weights[i], E.indices)
	}
	r := mat.NewSymDense(n, nil)
	pairw := make([]float64, E.NSelected())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for a := range pairw {
				pairw[a] = weights[i][a] * weights[j][a]
			}
			d, err := rigid.RMSD(confs[i], confs[j], pairw)
			if err != nil {
				return nil, errDecorate(validationf("frames %d, %d: %s", i, j, err.Error()), "PairwiseRMSDs")
			}
			r.SetSym(i, j, d)
		}
	}
	return r, nil
}

func allIndices(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}
