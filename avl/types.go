// Package avl defines the tree and node types, functional options,
// rotation kinds and sentinel errors for the AVL search tree.
package avl

import (
	"errors"
	"reflect"
)

// Sentinel errors for AVL operations.
var (
	// ErrNilElement is returned when an operation receives an absent (nil) element.
	// The tree is never modified in that case.
	ErrNilElement = errors.New("avl: element is nil")

	// ErrNotFound is returned by Remove, Get and DeepestCommonAncestor
	// when a requested element is not stored in the tree.
	ErrNotFound = errors.New("avl: element not found")

	// ErrEmptyTree is returned by queries that need at least one element
	// (MaxDeepest, Min, Max).
	ErrEmptyTree = errors.New("avl: tree is empty")

	// ErrNilComparator is returned by NewFunc when compare is nil.
	ErrNilComparator = errors.New("avl: comparator is nil")

	// ErrInvalidK is returned by KLargest when k is negative or exceeds Len.
	ErrInvalidK = errors.New("avl: k out of range")

	// ErrCorrupt is returned by Validate when a structural invariant is broken.
	ErrCorrupt = errors.New("avl: invariant violated")
)

// Rotation identifies a single rotation applied during rebalancing.
// A double rotation is reported as two single rotations.
type Rotation int

const (
	// RotateLeft promotes the right child of the pivot.
	RotateLeft Rotation = iota
	// RotateRight promotes the left child of the pivot.
	RotateRight
)

// String returns "left" or "right".
func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "unknown"
	}
}

// Option configures a Tree at construction via functional arguments.
type Option[T any] func(*Options[T])

// Options holds the hooks a Tree invokes while it restructures itself.
type Options[T any] struct {
	// OnRotate is called after every single rotation with its direction and
	// the element of the node that was rotated down.
	OnRotate func(r Rotation, pivot T)

	// OnSplice is called when a node is physically unlinked by Remove.
	// For a two-child removal this reports the predecessor's original value,
	// since that is the node that leaves the tree.
	OnSplice func(removed T)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		OnRotate: func(Rotation, T) {},
		OnSplice: func(T) {},
	}
}

// WithOnRotate registers a callback invoked after each single rotation.
func WithOnRotate[T any](fn func(r Rotation, pivot T)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnRotate = fn
		}
	}
}

// WithOnSplice registers a callback invoked when Remove unlinks a node.
func WithOnSplice[T any](fn func(removed T)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnSplice = fn
		}
	}
}

// node is a single tree position. Children are owned exclusively by their parent.
type node[T any] struct {
	data    T
	left    *node[T]
	right   *node[T]
	height  int // leaf = 0
	balance int // height(left) - height(right)
}

// Tree is an AVL-balanced binary search tree of distinct elements.
//
// The zero value is not usable; construct with New, NewFunc, FromSlice or
// FromSliceFunc. A Tree is not safe for concurrent use: callers sharing one
// across goroutines must hold an exclusive lock around every call.
type Tree[T any] struct {
	root    *node[T]
	size    int
	compare func(a, b T) int
	opts    Options[T]
	nilable bool
}

// nilableType reports whether values of T can be nil.
func nilableType[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// isNil reports whether v is an absent element. Only meaningful when the
// element type is nilable.
func (t *Tree[T]) isNil(v T) bool {
	if !t.nilable {
		return false
	}
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true // nil interface
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
