// Package ypath plans "y-paths": abstract winding words in the
// monodromy generators of a Riemann surface, independent of any
// geometry.
//
// A monodromy group — branch points paired with sheet permutations in
// canonical order — induces a graph on the fiber sheets: applying a
// generator once moves a sheet along its permutation. From a BFS
// spanning tree of that graph (rooted at the base sheet) the Builder
// derives:
//
//   - SheetPath(k): a word of (branch point, winding) turns carrying
//     the base sheet to sheet k — the branch-switching words used when
//     routing to a place on another sheet.
//   - CCycles(): one closed word per non-tree edge, a (possibly
//     redundant) generating set of the homology, plus the integer
//     matrix combining them into a- and b-cycles.
//   - ACycles()/BCycles(): the combined words themselves, genus-many
//     each, with the genus read off the branching data via
//     Riemann–Hurwitz.
//
// The a/b pairing uses the chain rule over the branch-point ladder,
// exact for hyperelliptic-type monodromy. Realizing words as concrete
// surface paths is package surface's job.
package ypath
