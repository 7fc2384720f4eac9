// Package riemann computes geometric paths on a Riemann surface defined
// by a plane algebraic curve f(x,y)=0, and uses those paths to derive
// the surface's monodromy group and a homology basis (a-, b-, c-cycles).
//
// 🚀 What is algeom/riemann?
//
//	A pure-Go library that lifts paths from the complex x-plane onto the
//	surface {(x,y) : f(x,y)=0} by numerically continuing the fiber of
//	y-roots along them:
//		• Sheet permutations: compose, invert, match fibers (perm)
//		• Algebraic curves: evaluation & fiber root-solving (curve)
//		• X-plane planning: lines, arcs, monodromy loops, avoiding paths (xpath)
//		• Homology words: a/b/c-cycles over the monodromy group (ypath)
//		• The core factory: monodromy, cycles, routing to places (surface)
//
// ✨ Why choose riemann?
//
//   - Deterministic – canonical generator ordering, no hidden randomness
//   - Fail-fast – tolerance violations are hard errors, never silent drift
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – analytic continuation is a strategy interface
//
// Everything is organized under five subpackages:
//
//	perm/    — permutations of fiber sheet indices
//	curve/   — the defining polynomial f(x,y) and its fiber
//	xpath/   — abstract x-plane segments and the geometric planner
//	ypath/   — abstract homology cycles as branch-point winding words
//	surface/ — path assembly, monodromy, cycle building, place routing
//
// Quick sketch:
//
//	   x-plane loop around b       fiber above the base point
//	        ___
//	       /   \
//	  a ──▶  b  │   induces:  y0 ──continue──▶ y0 permuted,
//	       \___/              the monodromy permutation of b
//
// Higher-level invariants of the surface (periods, the Abel map, theta
// functions) are built on these paths; see surface.Factory for the
// exposed contract.
//
//	go get github.com/algeom/riemann
package riemann
