package avl

import "fmt"

// Validate walks the whole tree and checks, without trusting any cached
// value, that ordering, uniqueness, AVL balance, cached heights and balance
// factors, and the element count are all consistent.
// Returns nil or an error wrapping ErrCorrupt that names the offending element.
//
// Complexity: O(n).
func (t *Tree[T]) Validate() error {
	count := 0
	_, err := t.check(t.root, nil, nil, &count)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d but %d reachable nodes", ErrCorrupt, t.size, count)
	}
	return nil
}

// check returns the recomputed height of n. lo and hi are exclusive bounds
// inherited from ancestors; nil means unbounded.
func (t *Tree[T]) check(n *node[T], lo, hi *T, count *int) (int, error) {
	if n == nil {
		return -1, nil
	}
	*count++
	if lo != nil && t.compare(n.data, *lo) <= 0 {
		return 0, fmt.Errorf("%w: %v not greater than ancestor %v", ErrCorrupt, n.data, *lo)
	}
	if hi != nil && t.compare(n.data, *hi) >= 0 {
		return 0, fmt.Errorf("%w: %v not less than ancestor %v", ErrCorrupt, n.data, *hi)
	}
	lh, err := t.check(n.left, lo, &n.data, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(n.right, &n.data, hi, count)
	if err != nil {
		return 0, err
	}
	h, bf := 1+max(lh, rh), lh-rh
	switch {
	case n.height != h:
		return 0, fmt.Errorf("%w: %v caches height %d, actual %d", ErrCorrupt, n.data, n.height, h)
	case n.balance != bf:
		return 0, fmt.Errorf("%w: %v caches balance %d, actual %d", ErrCorrupt, n.data, n.balance, bf)
	case bf < -1 || bf > 1:
		return 0, fmt.Errorf("%w: %v out of balance (%d)", ErrCorrupt, n.data, bf)
	}
	return h, nil
}
