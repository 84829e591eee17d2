/*
 * doc.go, part of goensemble.
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

//Package ensemble handles heterogeneous collections of molecular
//conformations: sets of 3D coordinate frames for the same molecule
//where each frame may have a different subset of atoms resolved.
//Missing atoms are encoded through per-atom weights (a weight of zero
//means "not resolved in this frame"; for such atoms the coordinates of
//the reference structure are assumed in RMSD calculations and
//superpositions). The package supports incremental accumulation of
//frames, iterative superposition to a converging mean reference, and
//weight-aware statistics (mean square fluctuations, plain and pairwise
//RMSD).
//
//The package is not safe for concurrent mutation. Read-only access to
//a stable ensemble from several goroutines is fine; callers that need
//concurrent mutation must serialize it themselves.
package ensemble
