// Package avl provides a generic AVL tree: a binary search tree of distinct
// elements that rebalances itself with rotations after every mutation.
//
// What
//
//   - Insert, Remove, Get and Contains by three-way comparison.
//   - Height in O(1) from the height cached on every node.
//   - MaxDeepest: the greatest element among the deepest nodes.
//   - DeepestCommonAncestor: the lowest node above two stored elements.
//   - Min, Max, KLargest and the four classic traversals, plus an
//     ascending iterator (All) for range-over-func loops.
//   - Validate re-derives every cached value from scratch; intended for
//     tests and debugging.
//
// Why
//
//   - Guaranteed O(log n) search and update regardless of insertion order.
//   - Cached heights make height queries and deepest-node lookups cheap.
//
// Balancing
//
//	Each node caches its height (leaf = 0, absent = -1) and its balance
//	factor, height(left) - height(right). While unwinding from an insert or
//	remove every visited node recomputes both and is rebalanced:
//	  - balance > 1 and left child balance >= 0: rotate right.
//	  - balance > 1 otherwise: rotate the left child left, then rotate right.
//	  - balance < -1 and right child balance <= 0: rotate left.
//	  - balance < -1 otherwise: rotate the right child right, then rotate left.
//	Removing a node with two children replaces it with its in-order
//	predecessor (the maximum of the left subtree).
//
// Complexity (n = Len)
//
//   - Insert, Remove, Get, Contains, MaxDeepest, DeepestCommonAncestor: O(log n)
//   - Height, Len, Clear: O(1)
//   - Traversals, Validate: O(n)
//   - Memory: O(n)
//
// Usage
//
//	t := avl.FromSlice([]int{5, 3, 8, 1, 4, 7, 9})
//	_ = t.Insert(6)
//	ok, _ := t.Contains(6)           // true
//	v, err := t.Remove(5)            // 5, nil
//	lca, _ := t.DeepestCommonAncestor(1, 4)
//	for v := range t.All() { ... }   // ascending
//
//	// Custom ordering and a rotation hook:
//	t, err := avl.NewFunc(strings.Compare,
//	    avl.WithOnRotate(func(r avl.Rotation, pivot string) { ... }),
//	)
//
// Errors
//
//   - ErrNilElement     if an element argument is nil (nilable element types only).
//   - ErrNotFound       from Remove, Get and DeepestCommonAncestor on a miss.
//   - ErrEmptyTree      from MaxDeepest, Min and Max on an empty tree.
//   - ErrNilComparator  from NewFunc and FromSliceFunc with a nil comparator.
//   - ErrInvalidK       from KLargest when k is out of range.
//   - ErrCorrupt        from Validate.
//
// A failing call never modifies the tree.
//
// Concurrency
//
//	A Tree performs no locking. Serialize access externally, for example
//	with a sync.Mutex held for the duration of each call.
package avl
