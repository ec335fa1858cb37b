package avl

import "iter"

// PreOrder returns the elements in node, left, right order.
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.data)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// InOrder returns the elements in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	for e := range t.All() {
		out = append(out, e)
	}
	return out
}

// PostOrder returns the elements in left, right, node order.
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.data)
	}
	walk(t.root)
	return out
}

// LevelOrder returns the elements level by level, left to right within a level.
func (t *Tree[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	queue := make([]*node[T], 0, t.size)
	queue = append(queue, t.root)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.data)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return out
}

// All returns an iterator over the elements in ascending order.
// The tree must not be mutated while the iteration is in progress.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := make([]*node[T], 0, heightOf(t.root)+1)
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.data) {
				return
			}
			n = n.right
		}
	}
}
