// Package pairs - center-of-mass mirror pairing.
//
// This file implements the within-structure matcher: two atoms form a
// symmetric pair when their displacement vectors from the structure's
// center of mass are mutual negatives, coordinate by coordinate.
//
// Design principles:
//   - The center of mass is computed exactly once per call.
//   - Duplicate indices in an input set collapse to one table entry;
//     iteration follows first occurrence, so output order never depends on
//     map internals.
//   - Closeness tolerances are fixed internals, not options: mirror
//     symmetry is a property of the geometry, not a caller preference.
package pairs

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phystone/atommatch/atoms"
)

// Tolerances for the per-coordinate mirror test. An absolute bound absorbs
// noise around zero coordinates; a relative bound scales with coordinate
// magnitude. A coordinate pair passes when either bound holds.
const (
	symAbsTol = 1e-8
	symRelTol = 1e-5
)

// SymmetricPairs reports every pair (a, b), a drawn from set1 and b from
// set2, whose displacement vectors from the center of mass of st are
// mutual negatives within fixed tolerances on each coordinate.
//
// The intended use is locating centrosymmetric partners in a slab model,
// for example to freeze the bottom mirror image of a relaxing top surface.
// set1 and set2 hold atom indices of st; they may overlap, list atoms in
// any order, or repeat an index (repeats collapse to one entry).
//
// Contracts:
//   - An empty set1 or set2 yields an empty result and nil error before
//     any other check runs.
//   - Pairs are emitted with A from set1 and B from set2, ordered by first
//     occurrence in set1, then first occurrence in set2.
//   - One atom may appear in any number of pairs; no uniqueness is
//     enforced.
//   - Inputs are never mutated; calls are safe to run concurrently.
//
// Errors:
//   - ErrNilStructure when st is nil.
//   - atoms.ErrNoAtoms (wrapped) when st is empty, via CenterOfMass.
//   - atoms.ErrAtomNotFound (wrapped, naming the set and index) when an
//     index resolves to no atom of st.
//
// Complexity: O(n + |set1|·|set2|) time for n atoms in st, O(|set1|+|set2|)
// memory.
func SymmetricPairs(st *atoms.Structure, set1, set2 []int) ([]Pair, error) {
	// 1. Trivial sets short-circuit to a trivial result.
	if len(set1) == 0 || len(set2) == 0 {
		return []Pair{}, nil
	}

	// 2. Validate the structure handle.
	if st == nil {
		return nil, ErrNilStructure
	}

	// 3. The mirror origin: center of mass, computed once.
	com, err := st.CenterOfMass()
	if err != nil {
		return nil, fmt.Errorf("pairs: center of mass: %w", err)
	}

	// 4. Resolve both index sets to displacement tables.
	order1, disp1, err := displacements(st, set1, com, "set1")
	if err != nil {
		return nil, err
	}
	order2, disp2, err := displacements(st, set2, com, "set2")
	if err != nil {
		return nil, err
	}

	// 5. Emit every mirror pair: outer loop over set1, inner over set2.
	out := make([]Pair, 0)
	for _, i := range order1 {
		d1 := disp1[i]
		for _, j := range order2 {
			if mirrored(d1, disp2[j]) {
				out = append(out, Pair{A: i, B: j})
			}
		}
	}

	return out, nil
}

// displacements resolves every index of set against st and tabulates the
// displacement of each atom from com. Duplicate indices collapse (the
// displacement is identical anyway); order records first occurrences so
// callers can iterate deterministically.
func displacements(st *atoms.Structure, set []int, com r3.Vec, setName string) ([]int, map[int]r3.Vec, error) {
	var (
		order = make([]int, 0, len(set))
		disp  = make(map[int]r3.Vec, len(set))
	)

	for _, idx := range set {
		a, err := st.ByIndex(idx)
		if err != nil {
			return nil, nil, fmt.Errorf("pairs: %s: %w", setName, err)
		}

		if _, seen := disp[idx]; !seen {
			order = append(order, idx)
		}
		disp[idx] = r3.Sub(a.Position, com)
	}

	return order, disp, nil
}

// mirrored reports whether d1 equals the negation of d2 on all three
// coordinates, each tested independently against the fixed tolerances.
func mirrored(d1, d2 r3.Vec) bool {
	return scalar.EqualWithinAbsOrRel(d1.X, -d2.X, symAbsTol, symRelTol) &&
		scalar.EqualWithinAbsOrRel(d1.Y, -d2.Y, symAbsTol, symRelTol) &&
		scalar.EqualWithinAbsOrRel(d1.Z, -d2.Z, symAbsTol, symRelTol)
}
