// Package avl implements insertion, removal and lookup on an AVL tree.
//
// Every mutation descends recursively and, on the way back up, recomputes
// height and balance of each visited node before rebalancing it, so the
// tree leaves each call with all balance factors in {-1, 0, +1}.
package avl

import (
	"cmp"
	"fmt"
)

// New returns an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option[T]) *Tree[T] {
	t, _ := NewFunc(cmp.Compare[T], opts...)
	return t
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when a > b.
// Returns ErrNilComparator if compare is nil.
func NewFunc[T any](compare func(a, b T) int, opts ...Option[T]) (*Tree[T], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[T]{
		compare: compare,
		opts:    o,
		nilable: nilableType[T](),
	}, nil
}

// FromSlice builds a tree ordered by cmp.Compare by inserting data in order.
// Duplicates are dropped.
func FromSlice[T cmp.Ordered](data []T, opts ...Option[T]) *Tree[T] {
	t := New(opts...)
	for _, d := range data {
		_ = t.Insert(d) // cannot fail: ordered types are never nil
	}
	return t
}

// FromSliceFunc builds a tree ordered by compare by inserting data in order.
// Duplicates are dropped. If any element is nil, ErrNilElement is returned
// and nothing is inserted.
func FromSliceFunc[T any](compare func(a, b T) int, data []T, opts ...Option[T]) (*Tree[T], error) {
	t, err := NewFunc(compare, opts...)
	if err != nil {
		return nil, err
	}
	for i, d := range data {
		if t.isNil(d) {
			return nil, fmt.Errorf("%w: data[%d]", ErrNilElement, i)
		}
	}
	for _, d := range data {
		t.root = t.insert(t.root, d)
	}
	return t, nil
}

// Insert adds e to the tree. Inserting an element equal to one already
// stored is a no-op. Returns ErrNilElement if e is nil.
//
// Complexity: O(log n).
func (t *Tree[T]) Insert(e T) error {
	if t.isNil(e) {
		return ErrNilElement
	}
	t.root = t.insert(t.root, e)
	return nil
}

func (t *Tree[T]) insert(n *node[T], e T) *node[T] {
	if n == nil {
		t.size++
		return &node[T]{data: e}
	}
	switch c := t.compare(e, n.data); {
	case c < 0:
		n.left = t.insert(n.left, e)
	case c > 0:
		n.right = t.insert(n.right, e)
	default:
		return n // duplicate
	}
	return t.fix(n)
}

// Remove deletes the element equal to e and returns the value that was
// stored. A node with two children takes its in-order predecessor's value.
// Returns ErrNilElement if e is nil, or ErrNotFound if no element matches;
// in both cases the tree is unchanged.
//
// Complexity: O(log n).
func (t *Tree[T]) Remove(e T) (T, error) {
	var zero T
	if t.isNil(e) {
		return zero, ErrNilElement
	}
	root, removed, ok := t.remove(t.root, e)
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, e)
	}
	t.root = root
	t.size--
	return removed, nil
}

// remove returns the new subtree root together with the removed value.
// On a miss it returns n untouched and ok == false.
func (t *Tree[T]) remove(n *node[T], e T) (sub *node[T], removed T, ok bool) {
	if n == nil {
		return nil, removed, false
	}
	switch c := t.compare(e, n.data); {
	case c < 0:
		sub, removed, ok = t.remove(n.left, e)
		if !ok {
			return n, removed, false
		}
		n.left = sub
	case c > 0:
		sub, removed, ok = t.remove(n.right, e)
		if !ok {
			return n, removed, false
		}
		n.right = sub
	default:
		removed = n.data
		switch {
		case n.left == nil:
			t.opts.OnSplice(n.data)
			return n.right, removed, true
		case n.right == nil:
			t.opts.OnSplice(n.data)
			return n.left, removed, true
		default:
			var pred T
			n.left, pred = t.removeMax(n.left)
			n.data = pred
		}
	}
	return t.fix(n), removed, true
}

// removeMax unlinks the rightmost node of the non-empty subtree n and
// returns the new subtree root together with that node's value.
func (t *Tree[T]) removeMax(n *node[T]) (*node[T], T) {
	if n.right == nil {
		t.opts.OnSplice(n.data)
		return n.left, n.data
	}
	var maxData T
	n.right, maxData = t.removeMax(n.right)
	return t.fix(n), maxData
}

// Get returns the stored element equal to e.
// Returns ErrNilElement if e is nil, or ErrNotFound if no element matches.
//
// Complexity: O(log n).
func (t *Tree[T]) Get(e T) (T, error) {
	var zero T
	if t.isNil(e) {
		return zero, ErrNilElement
	}
	n := t.find(e)
	if n == nil {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, e)
	}
	return n.data, nil
}

// Contains reports whether an element equal to e is stored.
// Returns ErrNilElement if e is nil.
//
// Complexity: O(log n).
func (t *Tree[T]) Contains(e T) (bool, error) {
	if t.isNil(e) {
		return false, ErrNilElement
	}
	return t.find(e) != nil, nil
}

// find returns the node holding an element equal to e, or nil.
func (t *Tree[T]) find(e T) *node[T] {
	n := t.root
	for n != nil {
		c := t.compare(e, n.data)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// Clear drops every element in O(1).
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Len returns the number of stored elements in O(1).
func (t *Tree[T]) Len() int {
	return t.size
}
