// Package atoms - core types and construction.
//
// This file declares the Atom value, the Structure container and its
// constructor, together with the sentinel errors the package returns.
// Behavioural methods (iteration, lookup, center of mass) live in
// methods.go.
package atoms

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultMass is substituted for an Atom whose Mass is zero at
// construction time. With every mass defaulted the center of mass
// reduces to the unweighted centroid.
const DefaultMass = 1.0

// Sentinel errors returned by this package.
// All begin with the "atoms:" prefix so callers can surface them verbatim.
var (
	// ErrDuplicateIndex is returned by NewStructure when two atoms carry
	// the same Index.
	ErrDuplicateIndex = errors.New("atoms: duplicate atom index")

	// ErrNegativeMass is returned by NewStructure when an atom carries a
	// negative Mass.
	ErrNegativeMass = errors.New("atoms: negative atom mass")

	// ErrAtomNotFound is returned by ByIndex when no atom with the
	// requested Index exists in the Structure.
	ErrAtomNotFound = errors.New("atoms: atom not found")

	// ErrNoAtoms is returned by CenterOfMass on an empty Structure.
	ErrNoAtoms = errors.New("atoms: structure has no atoms")
)

// Atom is a single site in a Structure.
//
// Index identifies the atom within its Structure; indices are unique but
// need not be contiguous or zero-based, so atoms keep their identity when a
// Structure is built from a slice of a larger model. Position is the
// Cartesian location in whatever length unit the caller works in (the
// matchers only ever compare distances, never interpret units). Mass feeds
// the center-of-mass computation; zero means "use DefaultMass".
type Atom struct {
	// Index is the caller-assigned identifier, unique per Structure.
	Index int

	// Position is the Cartesian coordinate of the atom.
	Position r3.Vec

	// Mass is the atomic mass. Zero is normalized to DefaultMass by
	// NewStructure; negative values are rejected.
	Mass float64
}

// Structure is an ordered collection of atoms with O(1) lookup by Index.
//
// A Structure is immutable after NewStructure returns: there is no method
// that adds, removes or moves atoms. Consequently a single Structure value
// may be shared freely between goroutines.
type Structure struct {
	// atoms holds the atoms in construction order.
	atoms []Atom

	// slots maps Atom.Index to the position inside atoms.
	slots map[int]int
}

// NewStructure validates the given atoms and assembles a Structure.
//
// Validation and normalization, in order per atom:
//  1. Mass < 0            → ErrNegativeMass (wrapped with the offending Index).
//  2. Mass == 0           → replaced by DefaultMass.
//  3. Index already seen  → ErrDuplicateIndex (wrapped with the Index).
//
// The input slice is copied; the caller may reuse or mutate it afterwards.
// An empty call (no atoms) yields a valid empty Structure: Len() == 0 and
// only CenterOfMass refuses to operate on it.
func NewStructure(list ...Atom) (*Structure, error) {
	s := &Structure{
		atoms: make([]Atom, 0, len(list)),
		slots: make(map[int]int, len(list)),
	}

	for _, a := range list {
		// 1. Reject negative masses.
		if a.Mass < 0 {
			return nil, fmt.Errorf("%w: index %d mass %v", ErrNegativeMass, a.Index, a.Mass)
		}
		// 2. Normalize "unspecified" mass to the uniform default.
		if a.Mass == 0 {
			a.Mass = DefaultMass
		}
		// 3. Enforce Index uniqueness.
		if _, dup := s.slots[a.Index]; dup {
			return nil, fmt.Errorf("%w: index %d", ErrDuplicateIndex, a.Index)
		}

		s.slots[a.Index] = len(s.atoms)
		s.atoms = append(s.atoms, a)
	}

	return s, nil
}
