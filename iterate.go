package omap

import "iter"

// Range returns an iterator over all entries in ascending key order.
//
// Each call starts an independent walk. The walk steps through the parent
// chain iteratively, so it needs no stack proportional to the tree height.
// Mutating the tree while ranging over it has undefined results.
func (t *Tree[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil || t.root == nil {
			return
		}
		for n := t.root.min(); n != nil; n = n.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// RangeFrom returns an iterator over all entries with keys not less than
// key, in ascending key order.
func (t *Tree[K, V]) RangeFrom(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil || t.root == nil {
			return
		}
		for n := t.ceiling(key); n != nil; n = n.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// ceiling returns the node with the smallest key not less than key.
func (t *Tree[K, V]) ceiling(key K) *node[K, V] {
	var best *node[K, V]
	n := t.root
	for n != nil {
		switch way := t.compare(key, n.key); {
		case way < 0:
			best = n
			n = n.left
		case way > 0:
			n = n.right
		default:
			return n
		}
	}
	return best
}

// ForEach walks all entries in ascending key order.
//
// The walk stops early if fn returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || fn == nil {
		return
	}
	for k, v := range t.Range() {
		if !fn(k, v) {
			return
		}
	}
}
