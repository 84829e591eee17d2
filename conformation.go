/*
 * conformation.go, part of goensemble.
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
	"github.com/rmera/goensemble/rigid"
	v3 "github.com/rmera/goensemble/v3"
)

//Conformation is a lightweight view of a single frame of an Ensemble.
//It holds no coordinate data of its own: accessors read through to the
//parent ensemble, so a Conformation sees later mutations of its frame.
//Deleting frames from the parent invalidates the view's index.
type Conformation struct {
	ens   *Ensemble
	index int
}

//Conformation returns a view of frame i.
func (E *Ensemble) Conformation(i int) (*Conformation, error) {
	if len(E.confs) == 0 {
		return nil, statef("Conformation: ensemble has no frames")
	}
	if i < 0 || i >= len(E.confs) {
		return nil, validationf("Conformation: frame %d out of range [0, %d)", i, len(E.confs))
	}
	return &Conformation{ens: E, index: i}, nil
}

//Index returns the frame index of the conformation in its ensemble.
func (C *Conformation) Index() int { return C.index }

//Label returns the label of the conformation's frame.
func (C *Conformation) Label() string { return C.ens.labels[C.index] }

//Coords returns a copy of the conformation's coordinates, restricted
//to the selected atoms, with the reference coordinates substituted at
//weight-zero atoms.
func (C *Conformation) Coords() (*v3.Matrix, error) {
	return C.ens.Coordset(C.index)
}

//Weights returns a copy of the conformation's per-atom weights,
//restricted to the selected atoms.
func (C *Conformation) Weights() []float64 {
	w := subsetWeights(C.ens.weights[C.index], C.ens.indices)
	r := make([]float64, len(w))
	copy(r, w)
	return r
}

//RMSD returns the weighted RMSD of the conformation against the
//reference coordinates of its ensemble, over the selected atoms.
func (C *Conformation) RMSD() (float64, error) {
	E := C.ens
	if E.coords == nil {
		return 0, statef("RMSD: ensemble has no reference coordinates")
	}
	ref := subsetCopy(E.coords, E.indices)
	conf := subsetCopy(E.confs[C.index], E.indices)
	w := subsetWeights(E.weights[C.index], E.indices)
	r, err := rigid.RMSD(ref, conf, w)
	if err != nil {
		return 0, errDecorate(validationf("%s", err.Error()), "RMSD")
	}
	return r, nil
}

//Transformation returns the rigid transformation recorded for the
//conformation's frame by the last tracked superposition, or nil if
//none was recorded.
func (C *Conformation) Transformation() *rigid.Transformation {
	if C.ens.trans == nil {
		return nil
	}
	return C.ens.trans[C.index]
}
