package avl

// heightOf returns the cached height of n, or -1 for an absent node.
func heightOf[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// update recomputes the cached height and then the balance factor of n
// from its children's cached heights.
func update[T any](n *node[T]) {
	lh, rh := heightOf(n.left), heightOf(n.right)
	n.height = 1 + max(lh, rh)
	n.balance = lh - rh
}

// rotateRight promotes n.left. The promoted node's right subtree moves over
// to become n's left subtree. Returns the new subtree root.
//
//	    n            l
//	   / \          / \
//	  l   c  =>    a   n
//	 / \              / \
//	a   b            b   c
func (t *Tree[T]) rotateRight(n *node[T]) *node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	update(n) // demoted node first
	update(l)
	t.opts.OnRotate(RotateRight, n.data)
	return l
}

// rotateLeft promotes n.right, the mirror image of rotateRight.
func (t *Tree[T]) rotateLeft(n *node[T]) *node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	update(n)
	update(r)
	t.opts.OnRotate(RotateLeft, n.data)
	return r
}

// rebalance restores the AVL property at n, whose height and balance
// must already be current. Returns the (possibly new) subtree root.
func (t *Tree[T]) rebalance(n *node[T]) *node[T] {
	switch {
	case n.balance > 1:
		if n.left.balance < 0 {
			// left-right case
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	case n.balance < -1:
		if n.right.balance > 0 {
			// right-left case
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	default:
		return n
	}
}

// fix is the unwind step shared by insert and remove.
func (t *Tree[T]) fix(n *node[T]) *node[T] {
	update(n)
	return t.rebalance(n)
}
