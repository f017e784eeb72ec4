// Package atommatch recovers index-to-index correspondences between atoms of
// similar atomic structures using nothing but their 3D geometry.
//
// 🚀 What is atommatch?
//
//	A small, pure-Go library for a recurring bookkeeping problem in
//	computational chemistry and materials modeling: two structures describe
//	"the same" physical system (a bare slab and the slab with an adsorbed
//	molecule, or one slab mirrored through its own center of mass), yet
//	their atom indices do not line up. atommatch pairs the indices back up:
//	  • Reference-point matching: pair atoms of two structures whose
//	    distance fingerprints (distances to a configurable set of fixed
//	    reference points) agree within a tolerance
//	  • Symmetry matching: pair atoms of one structure whose displacement
//	    vectors from the center of mass are mutual negatives
//
// ✨ Why choose atommatch?
//
//   - Deterministic: identical inputs give identical, order-stable outputs
//   - Read-only: input structures are never mutated; calls are safe to run
//     concurrently on independent data
//   - Typed misses: an atom without a counterpart is reported as an
//     unmatched entry, never as a magic index value
//   - No scaffolding: no file parsing, no chemistry lookup tables, no
//     periodic-boundary handling; plain in-memory geometry
//
// Everything is organized under two subpackages:
//
//	atoms/ - the Structure and Atom container types (positions, masses,
//	         center of mass) that both matchers consume
//	pairs/ - the two matchers: ReferencePointPairs and SymmetricPairs
//
// Quick ASCII example:
//
//	    slab          slab + adsorbate
//	    2 1 0   ==>   4 0 3 1 2
//	                      ↑   ↑
//	             same atoms, new indices
//
// Dive into pairs/doc.go for the matching contracts and examples/ for
// runnable demos.
//
//	go get github.com/phystone/atommatch
package atommatch
