package omap

import "fmt"

// Check validates the red-black tree invariants.
//
// This checker is intentionally strict and meant to be called from tests
// after mutations. It walks the whole tree and is never part of the regular
// operation path.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d",
				ErrInvariantViolation, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root carries a parent link", ErrInvariantViolation)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is not black", ErrInvariantViolation)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes reachable, size is %d)",
			ErrInvariantViolation, count, t.size)
	}
	return t.checkOrdering()
}

// checkNode recursively validates the subtree below n and returns its entry
// count and black-height, counting absent-child positions as one black unit.
func (t *Tree[K, V]) checkNode(n *node[K, V]) (count int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link on left child", ErrInvariantViolation)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link on right child", ErrInvariantViolation)
	}
	if n.isRed() && (n.left.isRed() || n.right.isRed()) {
		return 0, 0, fmt.Errorf("%w: red node has a red child", ErrInvariantViolation)
	}
	lcount, lheight, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, fmt.Errorf("%w: black-height mismatch (%d left, %d right)",
			ErrInvariantViolation, lheight, rheight)
	}
	blackHeight = lheight
	if n.color == black {
		blackHeight++
	}
	return lcount + rcount + 1, blackHeight, nil
}

// checkOrdering verifies that an in-order walk yields strictly ascending keys.
func (t *Tree[K, V]) checkOrdering() error {
	var prev *node[K, V]
	for n := t.root.min(); n != nil; n = n.next() {
		if prev != nil && t.compare(prev.key, n.key) >= 0 {
			return fmt.Errorf("%w: in-order walk is not strictly ascending",
				ErrInvariantViolation)
		}
		prev = n
	}
	return nil
}
