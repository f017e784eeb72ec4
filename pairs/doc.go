// Package pairs establishes atom-to-atom correspondences between molecular
// structures using two independent geometric matchers.
//
// 🚀 What is pairs?
//
//	When the same physical site appears in two models (a clean slab and a
//	slab with an adsorbate, or two mirror-image halves of one structure),
//	the atom carrying it usually sits at a different list position in each.
//	pairs recovers the correspondence from geometry alone. It is used in:
//	  • Adsorption-energy workflows (pairing slab atoms with their
//	    counterparts in a slab+adsorbate supercell)
//	  • Constraint propagation between relaxed and unrelaxed models
//	  • Detecting centrosymmetric atom pairs within one structure
//
// ✨ Key features:
//   - ReferencePointPairs: matches atoms across two structures by
//     comparing per-atom distance fingerprints to fixed reference points
//     within a configurable tolerance
//   - ReferencePointCandidates: the diagnostic form, reporting every
//     candidate with its signed per-component residuals
//   - SymmetricPairs: pairs atoms of one structure whose displacement
//     vectors from the center of mass are mutual negatives
//   - nil Options means DefaultOptions(); all matchers are pure functions
//     over immutable inputs, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/phystone/atommatch/pairs"
//
//	// pair slab atoms with adsorbate-structure atoms at the default 0.3 tolerance
//	matches, err := pairs.ReferencePointPairs(slab, ads, nil)
//
//	// pair mirror atoms within one structure
//	sym, err := pairs.SymmetricPairs(st, set1, set2)
//
// Performance:
//
//   - ReferencePointPairs: O(n·m·k) time, O((n+m)·k) memory
//     (n slab atoms, m adsorbate atoms, k reference points)
//   - SymmetricPairs: O(n + |set1|·|set2|) time, O(|set1|+|set2|) memory
//
// See examples in example_test.go.
package pairs
