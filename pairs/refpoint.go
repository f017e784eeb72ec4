// Package pairs - reference-point fingerprint matching.
//
// This file implements the cross-structure matcher: every atom is reduced to
// a fingerprint of Euclidean distances to a fixed set of reference points,
// and a slab atom pairs with the first ads atom whose fingerprint agrees
// component-wise within the tolerance.
//
// Design principles:
//   - One validation gate up front; the scan itself cannot fail.
//   - Fingerprints are computed once per atom, never per comparison.
//   - First-match (ReferencePointPairs) and all-candidates
//     (ReferencePointCandidates) share a single scan routine; the only
//     difference is whether the inner loop stops at the first hit.
//   - Deterministic: both loops follow construction order, so equal inputs
//     always produce equal outputs.
package pairs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phystone/atommatch/atoms"
)

// ReferencePointPairs pairs each atom of slab with the first atom of ads
// whose distance fingerprint agrees with the slab atom's within
// opts.Tolerance on every component.
//
// The intended use is constraint transfer between a clean surface model
// (slab) and the same surface with an adsorbate (ads): both structures
// contain the surface atoms at nearly identical positions, and the
// fingerprint comparison recovers which ads atom carries which slab site.
//
// Contracts:
//   - opts == nil means DefaultOptions().
//   - The result has exactly slab.Len() entries, in slab construction
//     order; entry i always carries the i-th slab atom's Index.
//   - A slab atom with no tolerance-passing ads atom yields
//     Match{Matched: false, Ads: -1}; this is not an error.
//   - Non-finite coordinates are not an error: a NaN position fails every
//     fingerprint comparison, so the affected atom simply never matches.
//   - ads.Len() >= slab.Len() is NOT enforced: an undersized ads structure
//     merely produces unmatched entries.
//   - Inputs are never mutated; calls are safe to run concurrently.
//
// Errors:
//   - ErrNilStructure when slab or ads is nil.
//   - ErrNoReferencePoints when opts.ReferencePoints is empty.
//   - ErrNegativeTolerance when opts.Tolerance < 0.
//
// Complexity: O(n·m·k) time, O((n+m)·k) memory, for n slab atoms, m ads
// atoms and k reference points.
func ReferencePointPairs(slab, ads *atoms.Structure, opts *Options) ([]Match, error) {
	sets, err := referenceScan(slab, ads, opts, false)
	if err != nil {
		return nil, err
	}

	// Project each candidate set onto its head: the first tolerance-passing
	// ads atom wins, exactly as the scan encountered it.
	matches := make([]Match, len(sets))
	for i, cs := range sets {
		if len(cs.Candidates) == 0 {
			matches[i] = Match{Slab: cs.Slab, Ads: -1, Matched: false}
			continue
		}
		matches[i] = Match{Slab: cs.Slab, Ads: cs.Candidates[0].Ads, Matched: true}
	}

	return matches, nil
}

// ReferencePointCandidates is the diagnostic form of ReferencePointPairs:
// instead of committing to the first tolerance-passing ads atom, it reports
// every candidate for every slab atom together with the signed residuals
// slabDist − adsDist per reference point.
//
// Use it to judge how decisive a pairing is: a healthy correspondence shows
// exactly one candidate per slab atom with small residuals, while multiple
// candidates signal a tolerance too loose (or a genuinely ambiguous
// geometry), and an empty candidate list pinpoints the atom that failed.
//
// Contracts:
//   - Same validation and ordering guarantees as ReferencePointPairs.
//   - Candidates appear in ads construction order; Candidates[0], when
//     present, is the atom ReferencePointPairs selects.
//   - A slab atom with no candidates yields an empty, non-nil Candidates
//     slice.
//
// Errors: as ReferencePointPairs.
//
// Complexity: O(n·m·k) time; memory grows with the number of reported
// candidates, worst case O(n·m·k).
func ReferencePointCandidates(slab, ads *atoms.Structure, opts *Options) ([]CandidateSet, error) {
	return referenceScan(slab, ads, opts, true)
}

// referenceScan validates inputs, fingerprints both structures once, and
// walks the slab×ads product collecting tolerance-passing candidates.
// With all=false the inner loop stops at the first candidate per slab atom,
// which is all ReferencePointPairs needs.
func referenceScan(slab, ads *atoms.Structure, opts *Options, all bool) ([]CandidateSet, error) {
	// 1. Resolve options: nil means defaults.
	if opts == nil {
		def := DefaultOptions()
		opts = &def
	}

	// 2. Validate inputs before touching any geometry.
	if err := validateReferenceInputs(slab, ads, opts); err != nil {
		return nil, err
	}

	// 3. Fingerprint every atom of both structures exactly once.
	var (
		slabAtoms = slab.Atoms()
		adsAtoms  = ads.Atoms()
		slabFP    = fingerprints(slabAtoms, opts.ReferencePoints)
		adsFP     = fingerprints(adsAtoms, opts.ReferencePoints)
	)

	// 4. Scan: for each slab atom, walk ads atoms in construction order and
	//    record every fingerprint agreement.
	sets := make([]CandidateSet, len(slabAtoms))
	for i, sa := range slabAtoms {
		cs := CandidateSet{
			Slab:       sa.Index,
			Candidates: []Candidate{},
		}

		for j, aa := range adsAtoms {
			res, ok := residuals(slabFP[i], adsFP[j], opts.Tolerance)
			if !ok {
				continue
			}

			cs.Candidates = append(cs.Candidates, Candidate{Ads: aa.Index, Residuals: res})
			if !all {
				// First hit decides the pairing; no need to keep scanning.
				break
			}
		}

		sets[i] = cs
	}

	return sets, nil
}

// validateReferenceInputs checks the structure handles and option fields,
// returning the matching sentinel on the first violation.
func validateReferenceInputs(slab, ads *atoms.Structure, opts *Options) error {
	if slab == nil {
		return fmt.Errorf("%w: slab", ErrNilStructure)
	}
	if ads == nil {
		return fmt.Errorf("%w: ads", ErrNilStructure)
	}
	if len(opts.ReferencePoints) == 0 {
		return ErrNoReferencePoints
	}
	if opts.Tolerance < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeTolerance, opts.Tolerance)
	}

	return nil
}

// fingerprints returns one distance fingerprint per atom: fp[i][k] is the
// Euclidean distance from atom i to reference point k.
func fingerprints(list []atoms.Atom, refs []r3.Vec) [][]float64 {
	fps := make([][]float64, len(list))
	for i, a := range list {
		fp := make([]float64, len(refs))
		for k, ref := range refs {
			fp[k] = r3.Norm(r3.Sub(a.Position, ref))
		}
		fps[i] = fp
	}

	return fps
}

// residuals compares two fingerprints component-wise. When every signed
// difference a[k]−b[k] has magnitude at most tol (inclusive), it returns the
// differences and true; otherwise nil and false. NaN never satisfies the
// bound, so atoms with non-finite coordinates collect no candidates.
// Rejections allocate nothing.
func residuals(a, b []float64, tol float64) ([]float64, bool) {
	for k := range a {
		// NaN must reject; a plain "> tol" test would accept it.
		if !(math.Abs(a[k]-b[k]) <= tol) {
			return nil, false
		}
	}

	res := make([]float64, len(a))
	for k := range a {
		res[k] = a[k] - b[k]
	}

	return res, true
}
