/*
 * align.go, part of goensemble.
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
	"log"

	"github.com/rmera/goensemble/rigid"
	v3 "github.com/rmera/goensemble/v3"
)

//iterposeMaxSteps bounds the iterative superposition loop for inputs
//whose mean reference never settles below the tolerance.
const iterposeMaxSteps = 1000

//Superpose superposes every frame of the ensemble onto the reference
//coordinates, in place. The optimal rotation and translation for each
//frame are fitted on the selected atoms only, using the frame's
//weights, and then applied to all the atoms of the frame. If
//trackTransforms is true the fitted transformations are recorded and
//can be retrieved with Transformations or Conformation.Transformation;
//previously recorded ones are overwritten, with a warning.
func (E *Ensemble) Superpose(trackTransforms bool) error {
	if E.coords == nil {
		return statef("Superpose: ensemble has no reference coordinates")
	}
	if len(E.confs) == 0 {
		return statef("Superpose: ensemble has no frames")
	}
	if trackTransforms && E.trans != nil {
		log.Printf("goensemble: Existing transformations will be overwritten.")
	}
	return errDecorate(E.superposeRaw(E.confs, trackTransforms), "Superpose")
}

//superposeRaw fits each frame in confs against the current reference
//on the selected atoms and applies the transformation to the full
//frame. confs is either E.confs or a working copy of it; weights and
//selection always come from E.
func (E *Ensemble) superposeRaw(confs []*v3.Matrix, track bool) error {
	ref := subsetCopy(E.coords, E.indices)
	var trans []*rigid.Transformation
	if track {
		trans = make([]*rigid.Transformation, len(confs))
	}
	for i, conf := range confs {
		sub := subsetCopy(conf, E.indices)
		w := subsetWeights(E.weights[i], E.indices)
		t, err := rigid.OptimalTransform(sub, ref, w)
		if err != nil {
			return errDecorate(validationf("frame %d: %s", i, err.Error()), "superposeRaw")
		}
		t.Apply(conf)
		if track {
			trans[i] = t
		}
	}
	if track {
		E.trans = trans
	}
	return nil
}

//IterSuperpose iteratively superposes the frames onto their own mean:
//on every pass, working copies of the frames are superposed onto the
//current reference, a new weight-masked mean of the copies becomes the
//candidate reference, and the loop stops when the RMSD between
//consecutive references (over the selected atoms) drops below
//tolerance. The converged mean replaces the reference coordinates and
//the original frames are then superposed onto it once, with
//transformations recorded. It returns the number of iterations run.
//If convergence is not reached in 1000 iterations a warning is logged
//and the last reference is used anyway.
func (E *Ensemble) IterSuperpose(tolerance float64) (int, error) {
	if E.coords == nil {
		return 0, statef("IterSuperpose: ensemble has no reference coordinates")
	}
	if len(E.confs) == 0 {
		return 0, statef("IterSuperpose: ensemble has no frames")
	}
	if tolerance <= 0 {
		return 0, validationf("IterSuperpose: tolerance must be positive, got %f", tolerance)
	}
	//the search runs on copies so a failure leaves the frames untouched
	work := make([]*v3.Matrix, len(E.confs))
	for i, c := range E.confs {
		work[i] = v3.Zeros(E.natoms)
		work[i].Copy(c.Dense)
	}
	ref := v3.Zeros(E.natoms)
	ref.Copy(E.coords.Dense)
	iterations := 0
	for iterations < iterposeMaxSteps {
		iterations++
		prev := E.coords
		E.coords = ref
		err := E.superposeRaw(work, false)
		E.coords = prev
		if err != nil {
			return iterations, errDecorate(err, "IterSuperpose")
		}
		newref := E.maskedMean(work, ref)
		change, err := rigid.RMSD(subsetCopy(ref, E.indices), subsetCopy(newref, E.indices), nil)
		if err != nil {
			return iterations, errDecorate(validationf("%s", err.Error()), "IterSuperpose")
		}
		ref = newref
		if change < tolerance {
			break
		}
		if iterations == iterposeMaxSteps {
			log.Printf("goensemble: iterative superposition did not converge below %g after %d iterations (last change %g)", tolerance, iterations, change)
		}
	}
	E.coords = ref
	if err := E.Superpose(true); err != nil {
		return iterations, errDecorate(err, "IterSuperpose")
	}
	return iterations, nil
}

//maskedMean returns the per-atom mean of confs counting, for each
//atom, only the frames where its weight is nonzero. Atoms resolved in
//no frame keep their coordinates from fallback.
func (E *Ensemble) maskedMean(confs []*v3.Matrix, fallback *v3.Matrix) *v3.Matrix {
	mean := v3.Zeros(E.natoms)
	counts := make([]float64, E.natoms)
	for i, conf := range confs {
		for a := 0; a < E.natoms; a++ {
			if E.weights[i][a] == 0 {
				continue
			}
			counts[a]++
			for j := 0; j < 3; j++ {
				mean.Set(a, j, mean.At(a, j)+conf.At(a, j))
			}
		}
	}
	for a := 0; a < E.natoms; a++ {
		if counts[a] == 0 {
			for j := 0; j < 3; j++ {
				mean.Set(a, j, fallback.At(a, j))
			}
			continue
		}
		for j := 0; j < 3; j++ {
			mean.Set(a, j, mean.At(a, j)/counts[a])
		}
	}
	return mean
}
