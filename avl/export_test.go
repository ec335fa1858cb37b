package avl

// Hooks that let avl_test reach node structure. Compiled only into tests.

// Depths maps every stored element to its depth (root = 0).
func Depths[T comparable](t *Tree[T]) map[T]int {
	out := make(map[T]int, t.size)
	var walk func(n *node[T], d int)
	walk = func(n *node[T], d int) {
		if n == nil {
			return
		}
		out[n.data] = d
		walk(n.left, d+1)
		walk(n.right, d+1)
	}
	walk(t.root, 0)
	return out
}

// BreakHeight corrupts the cached height of the root.
func BreakHeight[T any](t *Tree[T]) { t.root.height += 3 }

// BreakBalance corrupts the cached balance factor of the root.
func BreakBalance[T any](t *Tree[T]) { t.root.balance++ }

// BreakOrder swaps the root element with its left child's element.
func BreakOrder[T any](t *Tree[T]) {
	t.root.data, t.root.left.data = t.root.left.data, t.root.data
}

// BreakSize makes the cached count disagree with the node count.
func BreakSize[T any](t *Tree[T]) { t.size++ }

// RightChain replaces the tree with an unbalanced right spine of elems,
// which must be ascending. Cached heights and balances are kept accurate so
// only the balance check can reject it.
func RightChain[T any](t *Tree[T], elems ...T) {
	var build func(i int) *node[T]
	build = func(i int) *node[T] {
		if i == len(elems) {
			return nil
		}
		n := &node[T]{data: elems[i], right: build(i + 1)}
		update(n)
		return n
	}
	t.root = build(0)
	t.size = len(elems)
}
