// Package equivalence splits a slice into maximal groups of mutually
// equivalent elements and pairs the groups of two such partitions.
//
// What:
//
//   - Partition(items, eq, sign) groups items under a Comparator that must be
//     reflexive, symmetric and transitive over the items. Each group carries an
//     aggregate signature (wrapping sum of member signatures), so groups from
//     different inputs can be compared cheaply by (size, signature) before any
//     exact comparison runs.
//   - Groups are returned in a deterministic order: descending size, then
//     ascending signature, then order of first appearance.
//   - Match(left, right, exact) reorders right so right[i] pairs with left[i].
//     Candidates must share (size, signature); exact then decides. A key match
//     that fails the exact check does not end the search: every remaining
//     right-hand group with the same key is tried.
//   - Flatten concatenates groups back into one slice in group order.
//
// Complexity:
//
//   - Partition: O(n·k) comparator calls for k groups, plus O(k log k) sorting.
//   - Match:     O(k²) key checks plus at most O(k²) exact checks.
package equivalence
