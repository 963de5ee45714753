//
// Released into the public domain under the Creative Commons CC0
// Public Domain Dedication.
//

/*

Overview

This is a GO implementation of an intrusive, iterative AVL tree, intended
for real-time and safety-critical environments such as automotive control
units. Callers provide all node storage; the tree performs no dynamic
allocation and uses no recursion anywhere on the insert, remove, or
lookup paths, so worst-case time and worst-case stack depth are both
bounded by the tree's height.

This implementation is "intrusive", meaning that the tree node structure
is a value the caller owns directly (in an array, a pool, or a single
stack variable), rather than something the tree allocates on the
caller's behalf. This is the style commonly used in kernel and embedded
data structures.

Keys are 64-bit unsigned integers and must be unique within a tree.
Values are whatever the caller associates with a node, carried as a type
parameter.

Features

Briefly, the supported operations are:

- Lookup
- Insertion, with duplicate-key rejection
- Deletion, by in-order-successor splice
- Find-minimum

There are no iterators beyond find-minimum, no range queries, no bulk
construction, and no persistence. See node.go and tree.go for details.

Files

- node.go      Node type and the height/rotation/rebalance primitives.
- tree.go      Lookup, Insert, Remove, and the Tree handle.
- validate.go  Structural invariant checker (P1-P5).
- stats.go     Height and balance diagnostics.

License

This code and its accompanying files have been released into the
public domain under the CC0 Public Domain Dedication.  There is NO
WARRANTY, to the extent permitted by law.

*/

package avltree
