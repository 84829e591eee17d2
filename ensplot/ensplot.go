/*
 * ensplot.go, part of goensemble.
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

//Package ensplot plots per-atom and per-frame ensemble statistics
//(mean square fluctuations, RMSD series, pairwise RMSD maps) to image
//files. The output format is taken from the file name extension; png,
//svg and pdf are among the supported ones.
package ensplot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//PerAtom plots values (one per atom, e.g. the output of MSFs) as a
//line against the atom index and saves the plot to file. NaN entries,
//which mark never-resolved atoms, are skipped.
func PerAtom(values []float64, title, ylabel, file string) error {
	if len(values) == 0 {
		return fmt.Errorf("ensplot: nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Atom"
	p.Y.Label.Text = ylabel
	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: v})
	}
	if len(pts) == 0 {
		return fmt.Errorf("ensplot: all values are NaN")
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("ensplot: %v", err)
	}
	p.Add(line)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, file)
}

//PerFrame plots values (one per frame, e.g. the output of RMSDs) as a
//line against the frame index and saves the plot to file.
func PerFrame(values []float64, title, ylabel, file string) error {
	if len(values) == 0 {
		return fmt.Errorf("ensplot: nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = ylabel
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("ensplot: %v", err)
	}
	p.Add(line)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, file)
}

//symGrid adapts a symmetric matrix to the plotter.GridXYZ interface.
type symGrid struct {
	m *mat.SymDense
}

func (g symGrid) Dims() (int, int)   { n := g.m.SymmetricDim(); return n, n }
func (g symGrid) X(c int) float64    { return float64(c) }
func (g symGrid) Y(r int) float64    { return float64(r) }
func (g symGrid) Z(c, r int) float64 { return g.m.At(r, c) }

//PairwiseHeatMap plots a symmetric matrix (e.g. the output of
//PairwiseRMSDs) as a heat map and saves it to file.
func PairwiseHeatMap(m *mat.SymDense, title, file string) error {
	if m == nil || m.SymmetricDim() == 0 {
		return fmt.Errorf("ensplot: nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Frame"
	hm := plotter.NewHeatMap(symGrid{m}, palette.Heat(12, 1))
	p.Add(hm)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, file)
}
