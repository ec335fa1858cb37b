package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvltree/avl"
)

// TestValidate_DetectsCorruption breaks one invariant at a time and checks
// Validate reports ErrCorrupt with a matching message.
func TestValidate_DetectsCorruption(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(*avl.Tree[int])
		msg     string
	}{
		{"height", avl.BreakHeight[int], "caches height"},
		{"balance", avl.BreakBalance[int], "caches balance"},
		{"order", avl.BreakOrder[int], "not less than"},
		{"size", avl.BreakSize[int], "reachable nodes"},
		{"unbalanced", func(tr *avl.Tree[int]) { avl.RightChain(tr, 1, 2, 3) }, "out of balance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := avl.FromSlice(seven)
			assert.NoError(t, tr.Validate())
			tc.corrupt(tr)
			err := tr.Validate()
			assert.ErrorIs(t, err, avl.ErrCorrupt)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

// TestValidate_Empty accepts an empty tree.
func TestValidate_Empty(t *testing.T) {
	assert.NoError(t, avl.New[string]().Validate())
}
