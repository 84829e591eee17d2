/*
 * ensemble.go, part of goensemble.
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
	"fmt"
	"log"
	"strings"

	"github.com/rmera/goensemble/rigid"
	"github.com/rmera/goensemble/seq"
	v3 "github.com/rmera/goensemble/v3"
)

//Ensemble stores a reference coordinate set and a growable collection
//of conformation frames. Each frame is an atoms x 3 coordinate matrix
//plus a per-atom weight vector and a label, kept in parallel slices
//that always resize together. An optional atom subset selection
//restricts which atoms participate in superpositions and statistics;
//full per-atom data is stored regardless.
type Ensemble struct {
	title   string
	coords  *v3.Matrix              //reference coordinates, natoms rows
	natoms  int                     //fixed once any coordinate data is set
	confs   []*v3.Matrix            //one frame per entry, natoms rows each
	weights [][]float64             //parallel to confs, natoms per entry
	labels  []string                //parallel to confs
	indices []int                   //atom subset selection, nil means all
	trans   []*rigid.Transformation //nil, or exactly one per frame
	msa     *seq.Alignment          //nil until any frame supplies a sequence
	current int                     //next frame for Traj-style reads
	reading int                     //frame count snapshot taken by InitRead
}

//A Coordser can hand over one or more full coordinate sets, e.g.
//another Ensemble or any structure-like object.
type Coordser interface {
	Coordsets() []*v3.Matrix
}

//A Titler knows a title for itself, used to label frames taken from it.
type Titler interface {
	Title() string
}

//A Sequencer knows the residue sequence of its atoms.
type Sequencer interface {
	Sequence() string
}

//New returns an empty Ensemble with the given title.
func New(title string) *Ensemble {
	if title == "" {
		title = "Unknown"
	}
	return &Ensemble{title: title}
}

//Title returns the title of the ensemble.
func (E *Ensemble) Title() string { return E.title }

//SetTitle sets the title of the ensemble.
func (E *Ensemble) SetTitle(title string) { E.title = title }

//NAtoms returns the number of atoms per frame, 0 if no coordinate
//data has been set yet.
func (E *Ensemble) NAtoms() int { return E.natoms }

//NFrames returns the number of conformation frames.
func (E *Ensemble) NFrames() int { return len(E.confs) }

//NSelected returns the number of atoms in the active subset selection,
//or the full atom count if no selection is active.
func (E *Ensemble) NSelected() int {
	if E.indices == nil {
		return E.natoms
	}
	return len(E.indices)
}

//SetCoords sets (or replaces) the reference coordinates. The first
//coordinate data given to the ensemble fixes its atom count.
func (E *Ensemble) SetCoords(coords *v3.Matrix) error {
	if coords == nil {
		return validationf("SetCoords: nil coordinates")
	}
	n := coords.NVecs()
	if E.natoms != 0 && n != E.natoms {
		return validationf("SetCoords: %d coordinates for %d atoms", n, E.natoms)
	}
	c := v3.Zeros(n)
	c.Copy(coords.Dense)
	E.coords = c
	E.natoms = n
	return nil
}

//Coords returns a copy of the reference coordinates restricted to the
//selected atoms, or nil if the reference has not been set.
func (E *Ensemble) Coords() *v3.Matrix {
	if E.coords == nil {
		return nil
	}
	return subsetCopy(E.coords, E.indices)
}

//Select restricts superpositions and statistics to the atoms whose
//indexes are given, in the given order. The indexes must be a
//duplicate-free subset of [0, NAtoms()).
func (E *Ensemble) Select(indices []int) error {
	if E.natoms == 0 {
		return statef("Select: no coordinate data set yet")
	}
	if len(indices) == 0 {
		return validationf("Select: empty selection")
	}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= E.natoms {
			return validationf("Select: index %d out of range [0, %d)", i, E.natoms)
		}
		if seen[i] {
			return validationf("Select: duplicate index %d", i)
		}
		seen[i] = true
	}
	E.indices = make([]int, len(indices))
	copy(E.indices, indices)
	return nil
}

//ClearSelection removes the active atom subset selection, if any.
func (E *Ensemble) ClearSelection() { E.indices = nil }

//SelectedIndices returns a copy of the active selection, or nil if all
//atoms are selected.
func (E *Ensemble) SelectedIndices() []int {
	if E.indices == nil {
		return nil
	}
	r := make([]int, len(E.indices))
	copy(r, E.indices)
	return r
}

//Labels returns a copy of the per-frame labels.
func (E *Ensemble) Labels() []string {
	r := make([]string, len(E.labels))
	copy(r, E.labels)
	return r
}

//FramesWithLabel returns the indexes of the frames carrying the given
//label, in frame order.
func (E *Ensemble) FramesWithLabel(label string) []int {
	var r []int
	for i, l := range E.labels {
		if l == label {
			r = append(r, i)
		}
	}
	return r
}

//Weights returns a deep copy of the per-frame, per-atom weights.
func (E *Ensemble) Weights() ([][]float64, error) {
	if len(E.confs) == 0 {
		return nil, statef("Weights: ensemble has no frames")
	}
	r := make([][]float64, len(E.weights))
	for i, w := range E.weights {
		r[i] = make([]float64, len(w))
		copy(r[i], w)
	}
	return r, nil
}

//SetWeights sets the weights of every atom in every frame from one
//full-length per-atom vector.
func (E *Ensemble) SetWeights(w []float64) error {
	if len(E.confs) == 0 {
		return statef("SetWeights: ensemble has no frames")
	}
	if err := checkWeightRow(w, E.natoms); err != nil {
		return errDecorate(err, "SetWeights")
	}
	for i := range E.weights {
		copy(E.weights[i], w)
	}
	return nil
}

//SetFrameWeights sets the weights of frame k. A vector of NAtoms()
//elements replaces the whole row; with an active selection, a vector
//of NSelected() elements is assigned at the selected atoms only,
//leaving the others untouched.
func (E *Ensemble) SetFrameWeights(k int, w []float64) error {
	if len(E.confs) == 0 {
		return statef("SetFrameWeights: ensemble has no frames")
	}
	if k < 0 || k >= len(E.confs) {
		return validationf("SetFrameWeights: frame %d out of range [0, %d)", k, len(E.confs))
	}
	if len(w) == E.natoms {
		if err := checkWeightRow(w, E.natoms); err != nil {
			return errDecorate(err, "SetFrameWeights")
		}
		copy(E.weights[k], w)
		return nil
	}
	if E.indices != nil && len(w) == len(E.indices) {
		if err := checkWeightRow(w, len(E.indices)); err != nil {
			return errDecorate(err, "SetFrameWeights")
		}
		for j, a := range E.indices {
			E.weights[k][a] = w[j]
		}
		return nil
	}
	return validationf("SetFrameWeights: %d weights for %d atoms (%d selected)", len(w), E.natoms, E.NSelected())
}

//MSA returns a copy of the sequence alignment associated with the
//frames, restricted to the selected atom columns if a selection is
//active, or nil if no frame ever supplied a sequence.
func (E *Ensemble) MSA() *seq.Alignment {
	if E.msa == nil {
		return nil
	}
	if E.indices == nil {
		return E.msa.Copy()
	}
	return E.msa.Columns(E.indices)
}

//Transformations returns the per-frame transformations recorded by the
//last tracked superposition, or nil if none were recorded. The
//returned slice is a copy but the transformations are shared; they are
//never mutated by the ensemble.
func (E *Ensemble) Transformations() []*rigid.Transformation {
	if E.trans == nil {
		return nil
	}
	r := make([]*rigid.Transformation, len(E.trans))
	copy(r, E.trans)
	return r
}

//AddOptions modify how frames are appended to an ensemble. The zero
//value (or a nil pointer) asks for fully-resolved frames with
//autogenerated labels.
type AddOptions struct {
	//One weight row per incoming frame, or a single row applied to
	//all of them. Rows are full-atom length or, with an active
	//selection and selection-sized coordinates, selection length.
	Weights [][]float64
	//One label per incoming frame, or a single base label from which
	//per-frame labels are generated as base_m1, base_m2, ...
	Labels []string
	//One residue string per appended frame, or a single one for all.
	Sequences []string
	//Degenerate means the incoming frames are known to be copies of
	//the same structure: only the first one is stored.
	Degenerate bool
}

//AddFrame appends a single conformation frame to the ensemble.
func (E *Ensemble) AddFrame(coords *v3.Matrix, o *AddOptions) error {
	if coords == nil {
		return validationf("AddFrame: nil coordinates")
	}
	return errDecorate(E.AddFrames([]*v3.Matrix{coords}, o), "AddFrame")
}

//AddSource appends the coordinate sets of src to the ensemble. If src
//knows a title it becomes the default frame label; if it knows its
//sequence, that sequence is recorded for the appended frames (and any
//caller-supplied sequences are ignored with a warning).
func (E *Ensemble) AddSource(src Coordser, o *AddOptions) error {
	if src == nil {
		return validationf("AddSource: nil source")
	}
	var opts AddOptions
	if o != nil {
		opts = *o
	}
	if opts.Labels == nil {
		if t, ok := src.(Titler); ok && t.Title() != "" {
			opts.Labels = []string{t.Title()}
		}
	}
	if s, ok := src.(Sequencer); ok {
		if opts.Sequences != nil {
			log.Printf("goensemble: sequence supplied although the source provides one; using the source's")
		}
		opts.Sequences = []string{s.Sequence()}
	} else if e, ok := src.(*Ensemble); ok && e.msa != nil {
		//another ensemble carries one sequence per frame; bring them along
		if opts.Sequences != nil {
			log.Printf("goensemble: sequences supplied although the source ensemble provides them; using the source's")
		}
		opts.Sequences = nil
		stop := e.msa.Len()
		if opts.Degenerate {
			stop = 1
		}
		for i := 0; i < stop; i++ {
			opts.Sequences = append(opts.Sequences, e.msa.Get(i).String())
		}
	}
	return errDecorate(E.AddFrames(src.Coordsets(), &opts), "AddSource")
}

//AddFrames appends a stack of conformation frames to the ensemble.
//The first coordinate data ever added fixes the ensemble's atom
//count. With an active atom selection, incoming frames sized like the
//selection are scattered into full frames seeded from the reference
//coordinates. The call either appends all frames or, on a validation
//fault, leaves the ensemble unchanged.
func (E *Ensemble) AddFrames(frames []*v3.Matrix, o *AddOptions) error {
	if len(frames) == 0 {
		return validationf("AddFrames: no coordinates given")
	}
	for i, f := range frames {
		if f == nil {
			return validationf("AddFrames: frame %d is nil", i)
		}
		if f.NVecs() != frames[0].NVecs() {
			return validationf("AddFrames: frame %d has %d atoms, frame 0 has %d", i, f.NVecs(), frames[0].NVecs())
		}
	}
	var opts AddOptions
	if o != nil {
		opts = *o
	}
	nin := len(frames)
	nadd := nin
	if opts.Degenerate {
		nadd = 1
	}
	//resolve the atom count and the need for subset scatter
	in := frames[0].NVecs()
	natoms := E.natoms
	scatter := false
	switch {
	case natoms == 0:
		natoms = in
	case in == natoms:
	case E.indices != nil && in == len(E.indices):
		if E.coords == nil {
			return statef("AddFrames: selection-sized frames need reference coordinates to fill the unselected atoms")
		}
		scatter = true
	default:
		return validationf("AddFrames: %d coordinates per frame, want %d (or %d selected)", in, E.natoms, E.NSelected())
	}
	//validate weights
	if opts.Weights != nil && len(opts.Weights) != 1 && len(opts.Weights) != nin {
		return validationf("AddFrames: %d weight rows for %d frames", len(opts.Weights), nin)
	}
	for _, row := range opts.Weights {
		want := natoms
		if scatter && len(row) == len(E.indices) {
			want = len(E.indices)
		}
		if err := checkWeightRow(row, want); err != nil {
			return errDecorate(err, "AddFrames")
		}
	}
	//validate labels
	if opts.Labels != nil && len(opts.Labels) != 1 && len(opts.Labels) != nin {
		return validationf("AddFrames: %d labels for %d frames", len(opts.Labels), nin)
	}
	//validate sequences
	if opts.Sequences != nil {
		if len(opts.Sequences) != 1 && len(opts.Sequences) != nadd {
			return validationf("AddFrames: the number of sequences should be either one or that of the appended frames (%d, got %d)", nadd, len(opts.Sequences))
		}
		for _, s := range opts.Sequences {
			if len(s) != natoms {
				return validationf("AddFrames: sequence of %d residues for %d atoms", len(s), natoms)
			}
		}
	}
	//all input checked, commit
	E.natoms = natoms
	newconfs := make([]*v3.Matrix, nadd)
	for i := 0; i < nadd; i++ {
		full := v3.Zeros(natoms)
		if scatter {
			full.Copy(E.coords.Dense)
			full.SetVecs(frames[i], E.indices)
		} else {
			full.Copy(frames[i].Dense)
		}
		newconfs[i] = full
	}
	newweights := make([][]float64, nadd)
	for i := 0; i < nadd; i++ {
		row := onesRow(natoms)
		var given []float64
		if len(opts.Weights) == 1 {
			given = opts.Weights[0]
		} else if opts.Weights != nil {
			given = opts.Weights[i]
		}
		if given != nil {
			if len(given) == natoms {
				copy(row, given)
			} else { //selection-sized, scatter over the ones
				for j, a := range E.indices {
					row[a] = given[j]
				}
			}
		}
		newweights[i] = row
	}
	newlabels := makeLabels(opts.Labels, nin, nadd)
	newseqs := make([]string, 0, nadd)
	if opts.Sequences != nil {
		for i := 0; i < nadd; i++ {
			if len(opts.Sequences) == 1 {
				newseqs = append(newseqs, opts.Sequences[0])
			} else {
				newseqs = append(newseqs, opts.Sequences[i])
			}
		}
	}
	E.extendMSA(newseqs, newlabels)
	E.appendParallel(newconfs, newweights, newlabels)
	return nil
}

//makeLabels resolves the labels for nadd appended frames out of nin
//incoming ones.
func makeLabels(labels []string, nin, nadd int) []string {
	base := "Unknown"
	switch {
	case len(labels) == 0:
	case len(labels) == 1:
		base = labels[0]
	default:
		r := make([]string, nadd)
		copy(r, labels[:nadd])
		return r
	}
	r := make([]string, nadd)
	if nadd == 1 {
		r[0] = base
		return r
	}
	for i := range r {
		r[i] = fmt.Sprintf("%s_m%d", base, i+1)
	}
	return r
}

//extendMSA keeps the sequence collection in lockstep with the frames
//about to be appended. It must be called with pre-validated input,
//right before appendParallel.
func (E *Ensemble) extendMSA(seqs []string, labels []string) {
	if len(seqs) == 0 {
		if E.msa == nil {
			return
		}
		//synthesize unknown-residue placeholders so lengths stay aligned
		for _, l := range labels {
			E.mustAddSeq(seq.NewSequence(l, strings.Repeat("X", E.natoms)))
		}
		return
	}
	if E.msa == nil {
		E.msa = seq.NewAlignment(E.title)
		for _, l := range E.labels { //backfill the pre-existing frames
			E.mustAddSeq(seq.NewSequence(l, strings.Repeat("X", E.natoms)))
		}
	}
	for i, s := range seqs {
		E.mustAddSeq(seq.NewSequence(labels[i], s))
	}
}

func (E *Ensemble) mustAddSeq(s seq.Sequence) {
	if err := E.msa.Add(s); err != nil {
		//lengths are validated before any sequence reaches the alignment
		panic(err.Error())
	}
}

//appendParallel is the single place where the parallel frame slices
//grow. Any recorded transformations no longer cover every frame, so
//they are dropped.
func (E *Ensemble) appendParallel(confs []*v3.Matrix, weights [][]float64, labels []string) {
	E.confs = append(E.confs, confs...)
	E.weights = append(E.weights, weights...)
	E.labels = append(E.labels, labels...)
	E.trans = nil
}

//DelCoordsets removes the frames at the given indexes. The surviving
//frames keep their relative order and are renumbered down. Duplicate
//or out-of-range indexes fail with a ValidationError before any
//mutation happens.
func (E *Ensemble) DelCoordsets(indices ...int) error {
	if len(indices) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(E.confs) {
			return validationf("DelCoordsets: frame %d out of range [0, %d)", i, len(E.confs))
		}
		if seen[i] {
			return validationf("DelCoordsets: duplicate frame index %d", i)
		}
		seen[i] = true
	}
	keep := make([]int, 0, len(E.confs)-len(indices))
	for i := range E.confs {
		if !seen[i] {
			keep = append(keep, i)
		}
	}
	confs := make([]*v3.Matrix, 0, len(keep))
	weights := make([][]float64, 0, len(keep))
	labels := make([]string, 0, len(keep))
	for _, i := range keep {
		confs = append(confs, E.confs[i])
		weights = append(weights, E.weights[i])
		labels = append(labels, E.labels[i])
	}
	E.confs = confs
	E.weights = weights
	E.labels = labels
	if E.msa != nil {
		E.msa = E.msa.Some(keep)
	}
	E.trans = nil
	return nil
}

//Extract returns a new, fully independent ensemble with copies of the
//frames at the given indexes (in the given order), the reference
//coordinates, the atom selection and, when present, the matching
//sequence and transformation rows. Mutating either ensemble never
//affects the other.
func (E *Ensemble) Extract(indices []int) (*Ensemble, error) {
	for _, i := range indices {
		if i < 0 || i >= len(E.confs) {
			return nil, validationf("Extract: frame %d out of range [0, %d)", i, len(E.confs))
		}
	}
	r := New(E.title)
	r.natoms = E.natoms
	if E.coords != nil {
		r.coords = v3.Zeros(E.natoms)
		r.coords.Copy(E.coords.Dense)
	}
	r.indices = E.SelectedIndices()
	for _, i := range indices {
		c := v3.Zeros(E.natoms)
		c.Copy(E.confs[i].Dense)
		w := make([]float64, E.natoms)
		copy(w, E.weights[i])
		r.confs = append(r.confs, c)
		r.weights = append(r.weights, w)
		r.labels = append(r.labels, E.labels[i])
	}
	if E.msa != nil {
		r.msa = E.msa.Some(indices)
	}
	if E.trans != nil {
		r.trans = make([]*rigid.Transformation, 0, len(indices))
		for _, i := range indices {
			r.trans = append(r.trans, E.trans[i])
		}
	}
	return r, nil
}

//Slice returns a new independent ensemble with the frames in
//[lo, hi), as Extract does.
func (E *Ensemble) Slice(lo, hi int) (*Ensemble, error) {
	if lo < 0 || hi > len(E.confs) || lo > hi {
		return nil, validationf("Slice: invalid range [%d, %d) for %d frames", lo, hi, len(E.confs))
	}
	indices := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		indices = append(indices, i)
	}
	r, err := E.Extract(indices)
	if err != nil {
		return nil, errDecorate(err, "Slice")
	}
	r.SetTitle(fmt.Sprintf("%s (%d:%d)", E.title, lo, hi))
	return r, nil
}

//Concatenate returns a new ensemble with all the frames of E followed
//by all the frames of other. The reference coordinates of E are used
//in the result, as is E's selection (other's, if E has none).
func (E *Ensemble) Concatenate(other *Ensemble) (*Ensemble, error) {
	if other == nil {
		return nil, validationf("Concatenate: nil ensemble")
	}
	if E.natoms != other.natoms {
		return nil, validationf("Concatenate: ensembles must have the same number of atoms (%d vs %d)", E.natoms, other.natoms)
	}
	r := New(fmt.Sprintf("%s + %s", E.title, other.title))
	r.natoms = E.natoms
	if E.coords != nil {
		r.coords = v3.Zeros(E.natoms)
		r.coords.Copy(E.coords.Dense)
	}
	if E.indices != nil {
		r.indices = E.SelectedIndices()
	} else {
		r.indices = other.SelectedIndices()
	}
	withseqs := E.msa != nil || other.msa != nil
	if withseqs {
		r.msa = seq.NewAlignment(r.title)
	}
	for _, src := range []*Ensemble{E, other} {
		for i := range src.confs {
			c := v3.Zeros(src.natoms)
			c.Copy(src.confs[i].Dense)
			w := make([]float64, src.natoms)
			copy(w, src.weights[i])
			r.confs = append(r.confs, c)
			r.weights = append(r.weights, w)
			r.labels = append(r.labels, src.labels[i])
			if withseqs {
				if src.msa != nil {
					r.mustAddSeq(src.msa.Get(i))
				} else {
					r.mustAddSeq(seq.NewSequence(src.labels[i], strings.Repeat("X", src.natoms)))
				}
			}
		}
	}
	return r, nil
}

//Coordset returns a copy of the coordinates of frame i, restricted to
//the selected atoms. Atoms with weight zero get the coordinates of the
//reference structure, when one is set; their stored values are not
//meaningful.
func (E *Ensemble) Coordset(i int) (*v3.Matrix, error) {
	if len(E.confs) == 0 {
		return nil, statef("Coordset: ensemble has no frames")
	}
	if i < 0 || i >= len(E.confs) {
		return nil, validationf("Coordset: frame %d out of range [0, %d)", i, len(E.confs))
	}
	full := E.substitutedFrame(i)
	return subsetCopy(full, E.indices), nil
}

//Coordsets returns copies of all the frames' coordinates, full atom
//count, with the reference coordinates substituted at weight-zero
//atoms. It makes Ensemble a Coordser, so whole ensembles can be fed
//to AddSource.
func (E *Ensemble) Coordsets() []*v3.Matrix {
	r := make([]*v3.Matrix, 0, len(E.confs))
	for i := range E.confs {
		r = append(r, E.substitutedFrame(i))
	}
	return r
}

//substitutedFrame returns a full-atom copy of frame i with reference
//coordinates in place of weight-zero atoms.
func (E *Ensemble) substitutedFrame(i int) *v3.Matrix {
	c := v3.Zeros(E.natoms)
	c.Copy(E.confs[i].Dense)
	if E.coords == nil {
		return c
	}
	for a, w := range E.weights[i] {
		if w == 0 {
			for j := 0; j < 3; j++ {
				c.Set(a, j, E.coords.At(a, j))
			}
		}
	}
	return c
}

//InitRead prepares the ensemble for Traj-style sequential frame
//reads with Next.
func (E *Ensemble) InitRead() error {
	if len(E.confs) == 0 {
		return statef("InitRead: ensemble has no frames")
	}
	E.current = 0
	E.reading = len(E.confs)
	return nil
}

//Readable returns whether there are frames left to read.
func (E *Ensemble) Readable() bool {
	return E.current < len(E.confs)
}

//Next puts the coordinates of the next frame (selected atoms,
//weight-zero atoms substituted by the reference) into out, which must
//have NSelected rows. At the end of the ensemble it returns an error
//implementing LastFrameError. If the frame count changed since
//InitRead, the read fails fast instead of silently visiting the wrong
//frames.
func (E *Ensemble) Next(out *v3.Matrix) error {
	if len(E.confs) != E.reading {
		return statef("Next: number of frames in the ensemble changed during iteration")
	}
	if E.current >= len(E.confs) {
		return lastFrameError("No more frames")
	}
	if out == nil {
		return validationf("Next: nil output matrix")
	}
	if out.NVecs() != E.NSelected() {
		return validationf("Next: output matrix has %d rows, want %d", out.NVecs(), E.NSelected())
	}
	c, err := E.Coordset(E.current)
	if err != nil {
		return errDecorate(err, "Next")
	}
	out.Copy(c.Dense)
	E.current++
	return nil
}

//Corrupted checks that the parallel per-frame slices are in lockstep
//and that every frame matches the atom count. It returns nil if the
//ensemble is consistent.
func (E *Ensemble) Corrupted() error {
	if len(E.weights) != len(E.confs) || len(E.labels) != len(E.confs) {
		return statef("Corrupted: %d frames, %d weight rows, %d labels", len(E.confs), len(E.weights), len(E.labels))
	}
	if E.msa != nil && E.msa.Len() != len(E.confs) {
		return statef("Corrupted: %d frames but %d sequences", len(E.confs), E.msa.Len())
	}
	if E.trans != nil && len(E.trans) != len(E.confs) {
		return statef("Corrupted: %d frames but %d transformations", len(E.confs), len(E.trans))
	}
	for i, c := range E.confs {
		if c.NVecs() != E.natoms || len(E.weights[i]) != E.natoms {
			return statef("Corrupted: frame %d does not match the atom count %d", i, E.natoms)
		}
	}
	return nil
}

//subsetCopy returns a copy of m restricted to the rows in indices, or
//a full copy if indices is nil.
func subsetCopy(m *v3.Matrix, indices []int) *v3.Matrix {
	if indices == nil {
		c := v3.Zeros(m.NVecs())
		c.Copy(m.Dense)
		return c
	}
	c := v3.Zeros(len(indices))
	c.SomeVecs(m, indices)
	return c
}

//subsetWeights returns w restricted to indices, or w itself if
//indices is nil.
func subsetWeights(w []float64, indices []int) []float64 {
	if indices == nil {
		return w
	}
	r := make([]float64, len(indices))
	for j, a := range indices {
		r[j] = w[a]
	}
	return r
}

func checkWeightRow(w []float64, want int) error {
	if len(w) != want {
		return validationf("%d weights for %d atoms", len(w), want)
	}
	for _, v := range w {
		if v < 0 {
			return validationf("negative weight %f", v)
		}
	}
	return nil
}

func onesRow(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = 1
	}
	return r
}
