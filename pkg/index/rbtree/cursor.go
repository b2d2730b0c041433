package rbtree

import "github.com/scottcagno/mapbench"

// Cursor is a position within a Tree. It holds the node itself,
// so inserting or removing other keys leaves it valid.
type Cursor[K, V any] struct {
	t *Tree[K, V]
	n *rbNode[K, V]
}

func (c Cursor[K, V]) IsEnd() bool {
	return c.t == nil || c.n == c.t.NIL
}

func (c Cursor[K, V]) node() *rbNode[K, V] {
	if c.IsEnd() {
		panic(ErrEndCursor)
	}
	return c.n
}

func (c Cursor[K, V]) Entry() mapbench.Entry[K, V] {
	return c.node().entry
}

func (c Cursor[K, V]) Key() K {
	return c.node().entry.Key
}

func (c Cursor[K, V]) Value() V {
	return c.node().entry.Value
}

// Next moves to the in-order successor; the end cursor stays put
func (c Cursor[K, V]) Next() Cursor[K, V] {
	if c.IsEnd() {
		return c
	}
	c.n = c.t.successor(c.n)
	return c
}

// Prev moves to the in-order predecessor. Prev of the end
// cursor is the last entry.
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	if c.t == nil {
		return c
	}
	if c.IsEnd() {
		c.n = c.t.max(c.t.root)
		return c
	}
	c.n = c.t.predecessor(c.n)
	return c
}

func (c Cursor[K, V]) Equal(that Cursor[K, V]) bool {
	return c.t == that.t && c.n == that.n
}
