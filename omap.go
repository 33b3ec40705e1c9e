package omap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
)

// Tree is a mutable ordered map backed by a red-black tree.
//
// A Tree maps unique keys to values and keeps its entries sorted by key.
// Every operation visits at most O(log n) nodes.
//
// Due to the internal balancing, a Tree has performance characteristics
// differing from the builtin Go map:
//
//	Operation     |   Tree          |  map
//	--------------+-----------------+---------
//	Get           |   O(log n)      |  O(1)
//	Set           |   O(log n)      |  O(1)
//	Remove        |   O(log n)      |  O(1)
//	Min/Max       |   O(log n)      |  O(n)
//	Ordered walk  |   O(n)          |  O(n log n)
//
// Create trees with New or NewFunc; the zero value has no comparison
// function and is not ready for use.
type Tree[K, V any] struct {
	compare func(K, K) int
	root    *node[K, V]
	size    int
}

// New creates an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{compare: cmp.Compare[K]}
}

// NewFunc creates an empty tree ordered by a caller-supplied comparison.
//
// compare must return a negative value for less, zero for equal and a
// positive value for greater, and must induce a total order on keys.
func NewFunc[K, V any](compare func(K, K) int) (*Tree[K, V], error) {
	if compare == nil {
		return nil, ErrInvalidCompare
	}
	return &Tree[K, V]{compare: compare}, nil
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Get returns the value stored for key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V
	n := t.lookup(key)
	if n == nil {
		return zero, false
	}
	return n.value, true
}

// GetRef returns a pointer to the value stored for key, or nil if key is
// absent. Writing through the pointer updates the entry in place; the
// pointer stays valid until the entry is removed.
func (t *Tree[K, V]) GetRef(key K) *V {
	n := t.lookup(key)
	if n == nil {
		return nil
	}
	return &n.value
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	return t.lookup(key) != nil
}

// lookup is the binary-search descent shared by Get, Has and Remove.
func (t *Tree[K, V]) lookup(key K) *node[K, V] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		switch way := t.compare(key, n.key); {
		case way < 0:
			n = n.left
		case way > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Set stores value under key. An existing entry is overwritten in place,
// leaving the tree structure and size untouched; a new key is attached as a
// red leaf and the coloring invariants are restored by insertFixup.
func (t *Tree[K, V]) Set(key K, value V) {
	var parent *node[K, V]
	link := &t.root
	for *link != nil {
		parent = *link
		switch way := t.compare(key, parent.key); {
		case way < 0:
			link = &parent.left
		case way > 0:
			link = &parent.right
		default:
			parent.value = value
			return
		}
	}
	n := &node[K, V]{key: key, value: value, color: red, parent: parent}
	*link = n
	t.size++
	t.insertFixup(n)
}

// Remove deletes the entry stored for key and reports whether an entry was
// present. Removing an absent key leaves the tree untouched.
func (t *Tree[K, V]) Remove(key K) bool {
	z := t.lookup(key)
	if z == nil {
		return false
	}
	t.removeNode(z)
	t.size--
	return true
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	var key K
	var value V
	if t.IsEmpty() {
		return key, value, false
	}
	n := t.root.min()
	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	var key K
	var value V
	if t.IsEmpty() {
		return key, value, false
	}
	n := t.root.max()
	return n.key, n.value, true
}

// Height returns the tree height, where 0 means empty and 1 means a single
// root node. Red-black balancing bounds the height by 2*log2(size+1).
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return subtreeHeight(t.root)
}

func subtreeHeight[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(subtreeHeight(n.left), subtreeHeight(n.right))
}
