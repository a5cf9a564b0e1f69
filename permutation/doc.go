// Package permutation generates orderings of a slice lazily, one per call,
// keeping memory at O(n) regardless of how many orderings exist.
//
// What:
//
//   - Array[T]: every ordering of the input, in lexicographic order of input
//     positions, starting with the input order itself. n! orderings.
//   - Compound[T]: the Cartesian product of independent permutations of each
//     group. Group k always occupies the same index range of the output, so
//     no ordering moves an element across a group boundary. Π(sᵢ!) orderings.
//
// Each call to Next returns a freshly allocated slice the caller may keep.
//
// Complexity:
//
//   - Array.Next:    amortized O(n) (next-permutation step plus copy)
//   - Compound.Next: amortized O(n)
//   - Memory:        O(n) for cursors, independent of the number of orderings
//
// Key functions:
//
//   - NewArray(items) *Array[T]
//   - NewCompound(groups) *Compound[T]
//   - Factorial(n), CompoundCount(sizes) for the exact number of orderings
package permutation
