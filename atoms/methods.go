// Package atoms - read-only accessors over a constructed Structure.
//
// Every method on *Structure in this file is side-effect free and safe for
// concurrent use; see types.go for the construction path.
package atoms

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Len returns the number of atoms in the Structure.
//
// Complexity: O(1).
func (s *Structure) Len() int {
	return len(s.atoms)
}

// Atoms returns the atoms in construction order.
//
// The returned slice is a copy: callers may sort, filter or mutate it
// without affecting the Structure.
//
// Complexity: O(n) in the number of atoms.
func (s *Structure) Atoms() []Atom {
	out := make([]Atom, len(s.atoms))
	copy(out, s.atoms)
	return out
}

// ByIndex returns the atom whose Index equals idx.
//
// Errors:
//   - ErrAtomNotFound (wrapped with idx) if the Structure holds no such atom.
//
// Complexity: O(1).
func (s *Structure) ByIndex(idx int) (Atom, error) {
	slot, ok := s.slots[idx]
	if !ok {
		return Atom{}, fmt.Errorf("%w: index %d", ErrAtomNotFound, idx)
	}
	return s.atoms[slot], nil
}

// Has reports whether the Structure holds an atom with the given Index.
//
// Complexity: O(1).
func (s *Structure) Has(idx int) bool {
	_, ok := s.slots[idx]
	return ok
}

// TotalMass returns the sum of all atom masses.
//
// After construction every mass is strictly positive (zero is normalized to
// DefaultMass), so TotalMass is positive whenever Len() > 0.
//
// Complexity: O(n).
func (s *Structure) TotalMass() float64 {
	var total float64
	for _, a := range s.atoms {
		total += a.Mass
	}
	return total
}

// CenterOfMass returns the mass-weighted average position
//
//	com = Σ mᵢ·pᵢ / Σ mᵢ
//
// over all atoms. With uniform masses this is the plain centroid.
//
// Errors:
//   - ErrNoAtoms if the Structure is empty.
//
// Complexity: O(n).
func (s *Structure) CenterOfMass() (r3.Vec, error) {
	if len(s.atoms) == 0 {
		return r3.Vec{}, ErrNoAtoms
	}

	var (
		weighted r3.Vec
		total    float64
	)
	for _, a := range s.atoms {
		weighted = r3.Add(weighted, r3.Scale(a.Mass, a.Position))
		total += a.Mass
	}

	// total > 0 is guaranteed: construction leaves no non-positive masses.
	return r3.Scale(1/total, weighted), nil
}

// Clone returns an independent deep copy of the Structure.
//
// Complexity: O(n).
func (s *Structure) Clone() *Structure {
	c := &Structure{
		atoms: make([]Atom, len(s.atoms)),
		slots: make(map[int]int, len(s.slots)),
	}
	copy(c.atoms, s.atoms)
	for idx, slot := range s.slots {
		c.slots[idx] = slot
	}
	return c
}
