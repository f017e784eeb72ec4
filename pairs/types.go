// Package pairs - result types, options and sentinel errors.
//
// The matchers live in refpoint.go (cross-structure matching by
// reference-point distance fingerprints) and symmetry.go (center-of-mass
// mirror pairing within one structure).
package pairs

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultTolerance is the per-component fingerprint tolerance used by
// DefaultOptions. A slab/ads atom pair is a candidate only if every
// fingerprint component agrees within this bound (inclusive).
const DefaultTolerance = 0.3

// Sentinel errors returned by this package.
// All begin with the "pairs:" prefix so callers can surface them verbatim.
var (
	// ErrNilStructure is returned when a matcher receives a nil *Structure.
	ErrNilStructure = errors.New("pairs: nil structure")

	// ErrNoReferencePoints is returned by the reference-point matchers when
	// Options.ReferencePoints is empty: with no points every fingerprint is
	// zero-length and every atom pair would trivially match.
	ErrNoReferencePoints = errors.New("pairs: no reference points")

	// ErrNegativeTolerance is returned by the reference-point matchers when
	// Options.Tolerance is negative.
	ErrNegativeTolerance = errors.New("pairs: negative tolerance")
)

// DefaultReferencePoints returns the standard reference-point set
//
//	(10, 10, 0), (0, 10, 0), (10, 0, 0)
//
// spanning the surface plane of a conventionally oriented slab cell. Three
// non-collinear points pin an atom's in-plane position and its height
// pattern tightly enough that distinct sites produce distinct fingerprints
// in practice.
//
// A fresh slice is returned on every call; callers may append to or reorder
// it freely.
func DefaultReferencePoints() []r3.Vec {
	return []r3.Vec{
		{X: 10, Y: 10},
		{Y: 10},
		{X: 10},
	}
}

// Options configures the reference-point matchers
// (ReferencePointPairs, ReferencePointCandidates).
//
// The zero value is NOT usable: an empty ReferencePoints set is rejected
// with ErrNoReferencePoints. Start from DefaultOptions and adjust fields,
// or pass nil to the matcher to get DefaultOptions implicitly.
type Options struct {
	// ReferencePoints is the ordered set of fixed points distances are
	// measured to. Fingerprints carry one component per point, in this
	// order. Must be non-empty.
	ReferencePoints []r3.Vec

	// Tolerance is the inclusive per-component bound on fingerprint
	// disagreement. Zero demands exact equality; negative is rejected
	// with ErrNegativeTolerance. A NaN Tolerance passes validation yet
	// accepts nothing, because no comparison against NaN holds.
	Tolerance float64
}

// DefaultOptions returns the standard matcher configuration:
// DefaultReferencePoints() and DefaultTolerance.
func DefaultOptions() Options {
	return Options{
		ReferencePoints: DefaultReferencePoints(),
		Tolerance:       DefaultTolerance,
	}
}

// Match is one row of a ReferencePointPairs result: the slab atom Slab is
// paired with the ads atom Ads.
//
// When no ads atom fell within tolerance, Matched is false and Ads is -1,
// so an unset zero value can never be mistaken for a real atom index.
type Match struct {
	// Slab is the Index of the slab atom this row describes.
	Slab int

	// Ads is the Index of the matched ads atom, or -1 when Matched is
	// false.
	Ads int

	// Matched reports whether any ads atom passed the fingerprint test.
	Matched bool
}

// Candidate is one tolerance-passing ads atom for some slab atom, as
// reported by ReferencePointCandidates.
type Candidate struct {
	// Ads is the Index of the candidate ads atom.
	Ads int

	// Residuals holds the signed fingerprint differences
	// slabDist − adsDist, one per configured reference point, in
	// Options.ReferencePoints order. All lie within ±Tolerance.
	Residuals []float64
}

// CandidateSet lists every candidate for one slab atom, in ads construction
// order. An atom with no candidates has an empty (non-nil) Candidates
// slice.
type CandidateSet struct {
	// Slab is the Index of the slab atom this set describes.
	Slab int

	// Candidates holds the tolerance-passing ads atoms in scan order.
	// Candidates[0], when present, is the atom ReferencePointPairs picks.
	Candidates []Candidate
}

// Pair is one row of a SymmetricPairs result: atom A (from the first index
// set) and atom B (from the second) sit at mirror positions about the
// structure's center of mass.
type Pair struct {
	// A is the Index of the atom drawn from the first set.
	A int

	// B is the Index of the atom drawn from the second set.
	B int
}
