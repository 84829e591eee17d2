/*
 * seq.go, part of goensemble.
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

//Package seq implements a minimal aligned collection of labeled
//residue sequences. All sequences in a collection have the same
//length, one residue column per position.
package seq

import "fmt"

//Sequence is a labeled string of single-letter residue codes.
//The residue 'X' stands for an unknown residue.
type Sequence struct {
	Label    string
	Residues []byte
}

//NewSequence returns a Sequence with the given label and residues.
func NewSequence(label, residues string) Sequence {
	return Sequence{Label: label, Residues: []byte(residues)}
}

//Len returns the number of residues in the sequence.
func (s Sequence) Len() int {
	return len(s.Residues)
}

//String returns the residues as a string.
func (s Sequence) String() string {
	return string(s.Residues)
}

//Copy returns a deep copy of the sequence.
func (s Sequence) Copy() Sequence {
	r := make([]byte, len(s.Residues))
	copy(r, s.Residues)
	return Sequence{Label: s.Label, Residues: r}
}

//Alignment is an ordered collection of labeled sequences of uniform
//length.
type Alignment struct {
	title   string
	entries []Sequence
}

//NewAlignment returns an empty Alignment with the given title.
func NewAlignment(title string) *Alignment {
	return &Alignment{title: title}
}

//Title returns the title of the alignment.
func (A *Alignment) Title() string {
	return A.title
}

//Len returns the number of sequences in the alignment.
func (A *Alignment) Len() int {
	return len(A.entries)
}

//Width returns the residue count shared by all sequences, or 0 if the
//alignment is empty.
func (A *Alignment) Width() int {
	if len(A.entries) == 0 {
		return 0
	}
	return A.entries[0].Len()
}

//Get returns the ith sequence. Panics if out of range.
func (A *Alignment) Get(i int) Sequence {
	return A.entries[i]
}

//Add appends a copy of s. It fails if the length of s does not match
//the sequences already in the alignment.
func (A *Alignment) Add(s Sequence) error {
	if len(A.entries) > 0 && s.Len() != A.Width() {
		return fmt.Errorf("seq: sequence '%s' has length %d, but other sequences have length %d",
			s.Label, s.Len(), A.Width())
	}
	A.entries = append(A.entries, s.Copy())
	return nil
}

//Extend appends copies of all the sequences in other.
func (A *Alignment) Extend(other *Alignment) error {
	for i := 0; i < other.Len(); i++ {
		if err := A.Add(other.Get(i)); err != nil {
			return err
		}
	}
	return nil
}

//Some returns a new Alignment with copies of the sequences whose
//indexes are given in rows, in the order of rows. Panics if an index
//is out of range.
func (A *Alignment) Some(rows []int) *Alignment {
	r := NewAlignment(A.title)
	for _, i := range rows {
		r.entries = append(r.entries, A.entries[i].Copy())
	}
	return r
}

//Columns returns a new Alignment keeping only the residue columns
//whose indexes are given in cols, in the order of cols. Panics if an
//index is out of range.
func (A *Alignment) Columns(cols []int) *Alignment {
	r := NewAlignment(A.title)
	for _, s := range A.entries {
		res := make([]byte, 0, len(cols))
		for _, c := range cols {
			res = append(res, s.Residues[c])
		}
		r.entries = append(r.entries, Sequence{Label: s.Label, Residues: res})
	}
	return r
}

//Copy returns a deep copy of the alignment.
func (A *Alignment) Copy() *Alignment {
	r := NewAlignment(A.title)
	for _, s := range A.entries {
		r.entries = append(r.entries, s.Copy())
	}
	return r
}
