// Package atoms provides the in-memory Structure and Atom container types
// consumed by the pairs matchers.
//
// A Structure S = (A₁ … Aₙ) is an ordered, immutable-after-construction
// collection of atoms:
//
//   - Every Atom carries an integer Index (unique within its Structure, not
//     necessarily contiguous or zero-based), a Cartesian Position (r3.Vec),
//     and a Mass.
//   - Iteration order is construction order; Atoms() is the stable
//     enumeration surface higher-level matchers rely on for determinism.
//   - ByIndex(i) resolves an atom by its Index in O(1).
//   - CenterOfMass() is the mass-weighted average position; with all masses
//     equal it degrades to the plain centroid.
//
// Why a concrete container?
//
//   - One loop adapts any caller-side atom storage into a Structure, and the
//     matchers get the three capabilities they need (stable iteration,
//     index lookup, center of mass) from a single type.
//   - No mutation surface after construction means no locks: the container
//     is safe to share across goroutines by construction.
//
// Mass policy:
//
//   - Mass zero means "unspecified" and is normalized to DefaultMass (1.0)
//     by NewStructure, so center-of-mass math never divides by zero and a
//     mass-less model behaves as a uniform one.
//   - Negative mass is rejected (ErrNegativeMass). No chemistry lookup is
//     performed; masses are caller-supplied data.
//
// Errors:
//
//	ErrDuplicateIndex - two atoms share an Index
//	ErrNegativeMass   - an atom has Mass < 0
//	ErrAtomNotFound   - ByIndex for an Index the Structure does not hold
//	ErrNoAtoms        - CenterOfMass on an empty Structure
package atoms
