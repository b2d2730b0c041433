package rbtree

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/scottcagno/mapbench"
	"golang.org/x/exp/constraints"
)

const (
	RED   = 0
	BLACK = 1
)

type rbNode[K, V any] struct {
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	parent *rbNode[K, V]
	color  uint
	entry  mapbench.Entry[K, V]
}

// Tree is a red-black tree keyed by K. Nodes never move once
// inserted, so a Cursor stays usable until its own entry is
// removed.
type Tree[K, V any] struct {
	NIL   *rbNode[K, V]
	root  *rbNode[K, V]
	count int
	less  func(a, b K) bool
}

// New returns an empty tree ordered by the natural order of K
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b })
}

// NewFunc returns an empty tree ordered by less
func NewFunc[K, V any](less func(a, b K) bool) *Tree[K, V] {
	if less == nil {
		panic("rbtree: nil less function")
	}
	t := &Tree[K, V]{less: less}
	t.init()
	return t
}

func (t *Tree[K, V]) init() {
	n := &rbNode[K, V]{
		left:   nil,
		right:  nil,
		parent: nil,
		color:  BLACK,
	}
	t.NIL = n
	t.root = n
	t.count = 0
}

func (t *Tree[K, V]) compare(this, that K) int {
	if t.less(this, that) {
		return -1
	}
	if t.less(that, this) {
		return +1
	}
	return 0
}

// Insert adds key and value only if key is not already in the
// tree. It returns a cursor to the entry holding key and true
// if a new entry was added.
func (t *Tree[K, V]) Insert(key K, value V) (Cursor[K, V], bool) {
	n, added := t.insert(&rbNode[K, V]{
		left:   t.NIL,
		right:  t.NIL,
		parent: t.NIL,
		color:  RED,
		entry:  mapbench.Entry[K, V]{Key: key, Value: value},
	})
	return t.cursor(n), added
}

// Add is Insert without the cursor. It never fails.
func (t *Tree[K, V]) Add(key K, value V) (bool, error) {
	_, ok := t.Insert(key, value)
	return ok, nil
}

// Put inserts or replaces the value for key. It returns the
// previous value and true if key already existed.
func (t *Tree[K, V]) Put(key K, value V) (V, bool) {
	x := t.search(key)
	if x != t.NIL {
		// keys are not changing, so the balance holds
		prev := x.entry.Value
		x.entry.Value = value
		return prev, true
	}
	t.Insert(key, value)
	return *new(V), false
}

func (t *Tree[K, V]) Find(key K) Cursor[K, V] {
	return t.cursor(t.search(key))
}

func (t *Tree[K, V]) Lookup(key K) (K, V, bool) {
	x := t.search(key)
	if x == t.NIL {
		return *new(K), *new(V), false
	}
	return x.entry.Key, x.entry.Value, true
}

func (t *Tree[K, V]) Get(key K) (V, bool) {
	_, v, ok := t.Lookup(key)
	return v, ok
}

func (t *Tree[K, V]) Has(key K) bool {
	return t.search(key) != t.NIL
}

// Erase removes the entry for key and reports whether it was
// there. Only cursors to that entry are invalidated.
func (t *Tree[K, V]) Erase(key K) bool {
	z := t.search(key)
	if z == t.NIL {
		return false
	}
	t.delete(z)
	return true
}

func (t *Tree[K, V]) Len() int {
	return t.count
}

func (t *Tree[K, V]) Empty() bool {
	return t.count == 0
}

func (t *Tree[K, V]) Min() (mapbench.Entry[K, V], bool) {
	x := t.min(t.root)
	if x == t.NIL {
		return mapbench.Entry[K, V]{}, false
	}
	return x.entry, true
}

func (t *Tree[K, V]) Max() (mapbench.Entry[K, V], bool) {
	x := t.max(t.root)
	if x == t.NIL {
		return mapbench.Entry[K, V]{}, false
	}
	return x.entry, true
}

func (t *Tree[K, V]) Begin() Cursor[K, V] {
	return t.cursor(t.min(t.root))
}

func (t *Tree[K, V]) End() Cursor[K, V] {
	return t.cursor(t.NIL)
}

func (t *Tree[K, V]) cursor(x *rbNode[K, V]) Cursor[K, V] {
	return Cursor[K, V]{t: t, n: x}
}

type Iterator[K, V any] func(key K, value V) bool

// Scan calls iter in ascending key order until it returns false
func (t *Tree[K, V]) Scan(iter func(key K, value V) bool) {
	t.ScanFront(iter)
}

func (t *Tree[K, V]) ScanFront(iter Iterator[K, V]) {
	t.ascend(t.root, iter)
}

func (t *Tree[K, V]) ScanBack(iter Iterator[K, V]) {
	t.descend(t.root, iter)
}

// ScanRange calls iter for every key in [start, end)
func (t *Tree[K, V]) ScanRange(start, end K, iter Iterator[K, V]) {
	t.ascendRange(t.root, start, end, iter)
}

func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	t.ascend(t.root, func(key K, value V) bool {
		fmt.Fprintf(&sb, "%v-->%v\n", key, value)
		return true
	})
	return sb.String()
}

// Close drops every node. Calling Close more than once is fine.
func (t *Tree[K, V]) Close() {
	t.init()
}

func (t *Tree[K, V]) Reset() *Tree[K, V] {
	// clear all data
	t.root = nil
	t.count = 0
	// collect
	runtime.GC()
	// re-initialize
	t.init()
	return t
}

// insert places z in the tree. An existing node with the same
// key is returned untouched along with false.
func (t *Tree[K, V]) insert(z *rbNode[K, V]) (*rbNode[K, V], bool) {
	x := t.root
	y := t.NIL
	for x != t.NIL {
		y = x
		switch t.compare(z.entry.Key, x.entry.Key) {
		case -1:
			x = x.left
		case +1:
			x = x.right
		default:
			return x, false
		}
	}
	z.parent = y
	if y == t.NIL {
		t.root = z
	} else if t.less(z.entry.Key, y.entry.Key) {
		y.left = z
	} else {
		y.right = z
	}
	t.count++
	t.insertFixup(z)
	return z, true
}

func (t *Tree[K, V]) leftRotate(x *rbNode[K, V]) {
	if x.right == t.NIL {
		return
	}
	y := x.right
	x.right = y.left
	if y.left != t.NIL {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.NIL {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rightRotate(x *rbNode[K, V]) {
	if x.left == t.NIL {
		return
	}
	y := x.left
	x.left = y.right
	if y.right != t.NIL {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.NIL {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (t *Tree[K, V]) insertFixup(z *rbNode[K, V]) {
	for z.parent.color == RED {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == RED {
				z.parent.color = BLACK
				y.color = BLACK
				z.parent.parent.color = RED
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = BLACK
				z.parent.parent.color = RED
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == RED {
				z.parent.color = BLACK
				y.color = BLACK
				z.parent.parent.color = RED
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = BLACK
				z.parent.parent.color = RED
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = BLACK
}

func (t *Tree[K, V]) search(key K) *rbNode[K, V] {
	p := t.root
	for p != t.NIL {
		if t.less(p.entry.Key, key) {
			p = p.right
		} else if t.less(key, p.entry.Key) {
			p = p.left
		} else {
			break
		}
	}
	return p
}

// min traverses from root to left recursively until left is NIL
func (t *Tree[K, V]) min(x *rbNode[K, V]) *rbNode[K, V] {
	if x == t.NIL {
		return t.NIL
	}
	for x.left != t.NIL {
		x = x.left
	}
	return x
}

// max traverses from root to right recursively until right is NIL
func (t *Tree[K, V]) max(x *rbNode[K, V]) *rbNode[K, V] {
	if x == t.NIL {
		return t.NIL
	}
	for x.right != t.NIL {
		x = x.right
	}
	return x
}

func (t *Tree[K, V]) successor(x *rbNode[K, V]) *rbNode[K, V] {
	if x == t.NIL {
		return t.NIL
	}
	if x.right != t.NIL {
		return t.min(x.right)
	}
	y := x.parent
	for y != t.NIL && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

func (t *Tree[K, V]) predecessor(x *rbNode[K, V]) *rbNode[K, V] {
	if x == t.NIL {
		return t.NIL
	}
	if x.left != t.NIL {
		return t.max(x.left)
	}
	y := x.parent
	for y != t.NIL && x == y.left {
		x = y
		y = y.parent
	}
	return y
}

// transplant replaces the subtree rooted at u with the one
// rooted at v
func (t *Tree[K, V]) transplant(u, v *rbNode[K, V]) {
	if u.parent == t.NIL {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// delete unlinks z. The successor node, when used, is moved
// into z's place instead of having its entry copied, so no
// other node changes identity.
func (t *Tree[K, V]) delete(z *rbNode[K, V]) {
	y := z
	color := y.color
	var x *rbNode[K, V]
	if z.left == t.NIL {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.NIL {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.min(z.right)
		color = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if color == BLACK {
		t.deleteFixup(x)
	}
	// detach z so a stale cursor walks straight to the end
	z.left, z.right, z.parent = t.NIL, t.NIL, t.NIL
	t.count--
}

func (t *Tree[K, V]) deleteFixup(x *rbNode[K, V]) {
	for x != t.root && x.color == BLACK {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == RED {
				w.color = BLACK
				x.parent.color = RED
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == BLACK && w.right.color == BLACK {
				w.color = RED
				x = x.parent
			} else {
				if w.right.color == BLACK {
					w.left.color = BLACK
					w.color = RED
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = BLACK
				w.right.color = BLACK
				t.leftRotate(x.parent)
				// this is to exit while loop
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == RED {
				w.color = BLACK
				x.parent.color = RED
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.left.color == BLACK && w.right.color == BLACK {
				w.color = RED
				x = x.parent
			} else {
				if w.left.color == BLACK {
					w.right.color = BLACK
					w.color = RED
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = BLACK
				w.left.color = BLACK
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = BLACK
}

func (t *Tree[K, V]) ascend(x *rbNode[K, V], iter Iterator[K, V]) bool {
	if x == t.NIL {
		return true
	}
	if !t.ascend(x.left, iter) {
		return false
	}
	if !iter(x.entry.Key, x.entry.Value) {
		return false
	}
	return t.ascend(x.right, iter)
}

func (t *Tree[K, V]) descend(x *rbNode[K, V], iter Iterator[K, V]) bool {
	if x == t.NIL {
		return true
	}
	if !t.descend(x.right, iter) {
		return false
	}
	if !iter(x.entry.Key, x.entry.Value) {
		return false
	}
	return t.descend(x.left, iter)
}

func (t *Tree[K, V]) ascendRange(x *rbNode[K, V], inf, sup K, iter Iterator[K, V]) bool {
	if x == t.NIL {
		return true
	}
	if !t.less(x.entry.Key, sup) {
		return t.ascendRange(x.left, inf, sup, iter)
	}
	if t.less(x.entry.Key, inf) {
		return t.ascendRange(x.right, inf, sup, iter)
	}
	if !t.ascendRange(x.left, inf, sup, iter) {
		return false
	}
	if !iter(x.entry.Key, x.entry.Value) {
		return false
	}
	return t.ascendRange(x.right, inf, sup, iter)
}
