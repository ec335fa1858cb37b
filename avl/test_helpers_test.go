// Package avl_test contains shared fixtures for the avl tests.
//
// Purpose:
//   - Provide small, deterministic fixtures reused across test files.
//   - Keep magic numbers out of test bodies.
package avl_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/avl"
)

// Common fixtures.
var (
	// seven is a perfectly balanced insertion sequence; no rotation fires.
	seven = []int{5, 3, 8, 1, 4, 7, 9}
	// sevenSorted is the in-order traversal of seven.
	sevenSorted = []int{1, 3, 4, 5, 7, 8, 9}
)

// Sizes and seeds for randomized tests.
const (
	NRandomOps  = 2000
	NRandomKeys = 200
	NStringKeys = 300
	Seed1       = 1
	Seed2       = 42
	Seed3       = 20240601
)

// item is a nilable element type used to exercise ErrNilElement.
type item struct {
	key  int
	name string
}

// compareItems orders *item by key.
func compareItems(a, b *item) int {
	return cmp.Compare(a.key, b.key)
}

// newItemTree returns an empty tree of *item.
func newItemTree(t *testing.T, opts ...avl.Option[*item]) *avl.Tree[*item] {
	t.Helper()
	tr, err := avl.NewFunc(compareItems, opts...)
	require.NoError(t, err)
	return tr
}

// requireValid fails the test immediately if any invariant is broken.
func requireValid[T any](t *testing.T, tr *avl.Tree[T]) {
	t.Helper()
	require.NoError(t, tr.Validate())
}

// rotation records a single OnRotate call.
type rotation struct {
	dir   avl.Rotation
	pivot int
}

// recordRotations returns an option that appends every rotation to *log.
func recordRotations(log *[]rotation) avl.Option[int] {
	return avl.WithOnRotate(func(r avl.Rotation, pivot int) {
		*log = append(*log, rotation{dir: r, pivot: pivot})
	})
}
