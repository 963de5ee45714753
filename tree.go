package avltree

// Lookup performs an iterative descent from root looking for key. It
// returns the matching node, or nil if no node in the tree carries key.
// Lookup never modifies the tree and runs in O(log n) time and O(1)
// auxiliary space.
func Lookup[V any](root *Node[V], key uint64) *Node[V] {
	cur := root
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// Insert attaches node into the tree rooted at root and rebalances on
// the way back up, returning the tree's new root. node must have been
// initialized (via Init or NewNode) with its key set and its left,
// right, and parent links nil; its height is reset unconditionally.
//
// If a node with node.key is already present, Insert is a no-op: the
// original root is returned unchanged and node's links are left exactly
// as the caller provided them, so the caller may discard or reuse it.
func Insert[V any](root, node *Node[V]) *Node[V] {
	recomputeHeight(node)

	if root == nil {
		node.parent = nil
		return node
	}

	var parent *Node[V]
	cur := root
	for cur != nil {
		parent = cur
		switch {
		case node.key < cur.key:
			cur = cur.left
		case node.key > cur.key:
			cur = cur.right
		default:
			return root
		}
	}

	node.parent = parent
	if node.key < parent.key {
		parent.left = node
	} else {
		parent.right = node
	}

	return rebalanceWalk(root, node)
}

// Remove deletes the node with the given key from the tree rooted at
// root, rebalances on the way back up, and returns the tree's new root.
// If no node carries key, Remove is a no-op and the original root is
// returned unchanged.
//
// The removed node's left, right, and parent links are cleared before
// Remove returns, so its storage may be reused immediately; its key and
// value are left untouched.
func Remove[V any](root *Node[V], key uint64) *Node[V] {
	target := Lookup(root, key)
	if target == nil {
		return root
	}

	var origin, replacement *Node[V]

	switch {
	case target.right != nil:
		// Two children, or right-only: splice in the in-order successor.
		successor := FindMin(target.right)
		if successor.parent == target {
			origin = successor
		} else {
			origin = successor.parent
			successor.parent.left = successor.right
			if successor.right != nil {
				successor.right.parent = successor.parent
			}
			successor.right = target.right
			successor.right.parent = successor
		}
		if target.left != nil {
			successor.left = target.left
			successor.left.parent = successor
		}
		successor.parent = target.parent
		replacement = successor
	case target.left != nil:
		replacement = target.left
		replacement.parent = target.parent
		origin = replacement
	default:
		origin = target.parent
	}

	if target.parent != nil {
		switch target {
		case target.parent.left:
			target.parent.left = replacement
		case target.parent.right:
			target.parent.right = replacement
		default:
			panic("avltree: Remove: target is not a child of its own parent")
		}
	} else {
		root = replacement
	}

	target.left, target.right, target.parent = nil, nil, nil

	if origin == nil {
		// Deleted a childless root: the tree is now empty.
		return root
	}

	return rebalanceWalk(root, origin)
}

// rebalanceWalk rebalances every node from start up to the tree root via
// parent pointers, and returns the resulting root. It is used by both
// Insert and Remove; on insertion the walk could stop after the first
// rotation, but since each rebalance call is O(1) given parent pointers,
// walking all the way up is simpler and still O(log n), and
// recomputeHeight is idempotent so overshooting is harmless.
func rebalanceWalk[V any](root, start *Node[V]) *Node[V] {
	newRoot := root
	for n := start; n != nil; {
		r := rebalance(n)
		if r.parent == nil {
			newRoot = r
		}
		n = r.parent
	}
	return newRoot
}

// Tree is a caller-facing handle around a single root pointer. It exists
// so callers do not have to thread the root through every call
// themselves; the free functions above remain the primitive the tree
// methods are built on.
type Tree[V any] struct {
	root *Node[V]
	size int
}

// NewTree returns an empty tree.
func NewTree[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Root returns the tree's current root, or nil if the tree is empty.
func (t *Tree[V]) Root() *Node[V] { return t.root }

// Len returns the number of nodes currently in the tree.
func (t *Tree[V]) Len() int { return t.size }

// Lookup finds the node with the given key. The ok result is false if no
// such node exists.
func (t *Tree[V]) Lookup(key uint64) (node *Node[V], ok bool) {
	n := Lookup(t.root, key)
	return n, n != nil
}

// Insert adds node to the tree. It reports false, leaving the tree
// unchanged, if a node with the same key is already present.
func (t *Tree[V]) Insert(node *Node[V]) bool {
	if Lookup(t.root, node.key) != nil {
		return false
	}
	t.root = Insert(t.root, node)
	t.size++
	return true
}

// Remove deletes the node with the given key. It reports false, leaving
// the tree unchanged, if no such node exists.
func (t *Tree[V]) Remove(key uint64) bool {
	if Lookup(t.root, key) == nil {
		return false
	}
	t.root = Remove(t.root, key)
	t.size--
	return true
}

// Min returns the node with the smallest key in the tree. The ok result
// is false if the tree is empty.
func (t *Tree[V]) Min() (node *Node[V], ok bool) {
	if t.root == nil {
		return nil, false
	}
	return FindMin(t.root), true
}
