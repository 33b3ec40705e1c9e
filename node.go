package omap

// nodeColor is the one-bit balance tag of a red-black tree node.
type nodeColor bool

const (
	red   nodeColor = true
	black nodeColor = false
)

// node is a single tree entry, allocated on insertion and never moved or
// copied afterwards: rotations rewire links, they do not relocate payloads.
//
// Children are owned by their parent (the root by the tree); parent is a
// non-owning back-reference used only for upward fixup walks and for
// iteration, never for teardown.
type node[K, V any] struct {
	key    K
	value  V
	color  nodeColor
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
}

// isBlack treats absent children as black, per the red-black leaf convention.
func (n *node[K, V]) isBlack() bool {
	return n == nil || n.color == black
}

func (n *node[K, V]) isRed() bool {
	return n != nil && n.color == red
}

// min returns the leftmost node of n's subtree.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of n's subtree.
func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil for the largest entry.
// It descends into the right subtree when there is one and otherwise climbs
// the parent chain until it leaves a left subtree.
func (n *node[K, V]) next() *node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}
