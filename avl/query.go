package avl

import "fmt"

// Height returns the height of the root in O(1): -1 for an empty tree,
// 0 for a single element.
func (t *Tree[T]) Height() int {
	return heightOf(t.root)
}

// MaxDeepest returns the element stored at the deepest node. When several
// nodes share the maximum depth the greatest of them is returned.
// Returns ErrEmptyTree on an empty tree.
//
// Every element of a right subtree is greater than every element of the
// matching left subtree, so the walk prefers the right child whenever it
// reaches the full depth and only consults cached heights.
//
// Complexity: O(log n).
func (t *Tree[T]) MaxDeepest() (T, error) {
	var zero T
	n := t.root
	if n == nil {
		return zero, ErrEmptyTree
	}
	for {
		switch {
		case n.right != nil && n.right.height == n.height-1:
			n = n.right
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			return n.data, nil
		}
	}
}

// DeepestCommonAncestor returns the lowest node that has both a and b as
// descendants, where a node counts as its own descendant. Argument order
// does not matter and a == b yields that element.
// Returns ErrNilElement if either argument is nil, or ErrNotFound if either
// is not stored.
//
// Complexity: O(log n).
func (t *Tree[T]) DeepestCommonAncestor(a, b T) (T, error) {
	var zero T
	if t.isNil(a) || t.isNil(b) {
		return zero, ErrNilElement
	}
	for _, e := range [2]T{a, b} {
		if t.find(e) == nil {
			return zero, fmt.Errorf("%w: %v", ErrNotFound, e)
		}
	}
	n := t.root
	for {
		ca, cb := t.compare(a, n.data), t.compare(b, n.data)
		switch {
		case ca < 0 && cb < 0:
			n = n.left
		case ca > 0 && cb > 0:
			n = n.right
		default:
			return n.data, nil
		}
	}
}

// Min returns the smallest element, or ErrEmptyTree.
func (t *Tree[T]) Min() (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.data, nil
}

// Max returns the greatest element, or ErrEmptyTree.
func (t *Tree[T]) Max() (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.data, nil
}

// KLargest returns the k greatest elements in ascending order.
// Returns ErrInvalidK when k < 0 or k > Len.
//
// Complexity: O(log n + k).
func (t *Tree[T]) KLargest(k int) ([]T, error) {
	if k < 0 || k > t.size {
		return nil, fmt.Errorf("%w: k=%d, size=%d", ErrInvalidK, k, t.size)
	}
	out := make([]T, k)
	i := k - 1
	// reverse in-order, filling from the back
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil || i < 0 {
			return
		}
		walk(n.right)
		if i < 0 {
			return
		}
		out[i] = n.data
		i--
		walk(n.left)
	}
	walk(t.root)
	return out, nil
}
