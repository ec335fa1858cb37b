// Package lvltree is an in-memory playground for balanced search trees.
//
// What is inside?
//
//	avl/      - generic AVL tree: insert, remove, lookup, O(1) height,
//	            deepest-node and lowest-common-ancestor queries, traversals
//	examples/ - runnable scenarios built on the packages above
//
// Why lvltree?
//
//   - Generic over any cmp.Ordered type, or any type with a three-way comparator
//   - Sentinel errors matched with errors.Is; a failing call never mutates
//   - Hooks (OnRotate, OnSplice) to observe rebalancing
//   - Pure Go, no cgo
//
// Quick ASCII example, the tree built from 5 3 8 1 4 7 9:
//
//	      5
//	    /   \
//	   3     8
//	  / \   / \
//	 1   4 7   9
//
//	go get github.com/katalvlaran/lvltree/avl
package lvltree
