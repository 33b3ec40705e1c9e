package omap

// Rotations are the only structural rewiring the tree ever performs. Both
// variants touch exactly three nodes, keep the in-order key sequence intact
// and update all link directions, including the root pointer when the pivot
// was the root. They are subroutines of the fixup walks and are never
// triggered by lookups or plain overwrites.

// rotateLeft lifts n's right child above n: the child takes n's position,
// n becomes its left child, and the child's former left subtree becomes
// n's new right subtree.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) {
	r := n.right
	assert(r != nil, "rotateLeft requires a right child")
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.parent = n.parent
	t.relink(n, r)
	r.left = n
	n.parent = r
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[K, V]) rotateRight(n *node[K, V]) {
	l := n.left
	assert(l != nil, "rotateRight requires a left child")
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.parent = n.parent
	t.relink(n, l)
	l.right = n
	n.parent = l
}

// relink points the parent link that used to address n at c instead. When n
// was the root, c becomes the new root. c may be nil; its own parent link is
// the caller's business.
func (t *Tree[K, V]) relink(n, c *node[K, V]) {
	p := n.parent
	if p == nil {
		t.root = c
		return
	}
	if n == p.left {
		p.left = c
	} else {
		p.right = c
	}
}
