// Package vecmap implements an ordered map stored as a single
// sorted run of key value pairs. Lookups are a binary search
// over contiguous memory; inserts and removals shift the tail.
//
// Cursors returned by a Map are invalidated by any insert or
// removal that changes the map. Using an invalidated cursor
// panics with ErrInvalidCursor.
package vecmap

import (
	"fmt"
	"strings"

	"github.com/scottcagno/mapbench"
	"golang.org/x/exp/constraints"
)

// Option configures a Map
type Option[K, V any] func(*Map[K, V])

// WithStorage sets the backing storage policy
func WithStorage[K, V any](s Storage[K, V]) Option[K, V] {
	return func(m *Map[K, V]) {
		if s != nil {
			m.store = s
		}
	}
}

// WithCapacity uses growable storage that reserves room for n
// entries on the first insert
func WithCapacity[K, V any](n int) Option[K, V] {
	return WithStorage[K, V](Growable[K, V](n))
}

// WithFixedCapacity uses fixed storage of exactly n entries
func WithFixedCapacity[K, V any](n int) Option[K, V] {
	return WithStorage[K, V](Fixed[K, V](n))
}

// Map is a sorted contiguous map. It is not safe for
// concurrent mutation.
type Map[K, V any] struct {
	less  func(a, b K) bool
	store Storage[K, V]
	gen   uint64 // bumped on every structural mutation
}

// New returns an empty map ordered by the natural order of K
func New[K constraints.Ordered, V any](opts ...Option[K, V]) *Map[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b }, opts...)
}

// NewFunc returns an empty map ordered by less, which must be
// a strict weak ordering
func NewFunc[K, V any](less func(a, b K) bool, opts ...Option[K, V]) *Map[K, V] {
	if less == nil {
		panic("vecmap: nil less function")
	}
	m := &Map[K, V]{
		less: less,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = Growable[K, V](0)
	}
	return m
}

// search returns the index of the first entry whose key is
// not less than key (len if there is none)
func (m *Map[K, V]) search(key K) int {
	es := m.store.Entries()
	lo, hi := 0, len(es)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.less(es[mid].Key, key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// index returns the index of key, or -1 if it is absent
func (m *Map[K, V]) index(key K) int {
	i := m.search(key)
	es := m.store.Entries()
	if i < len(es) && !m.less(key, es[i].Key) {
		return i
	}
	return -1
}

// Insert adds key and value if key is not present. If it is,
// the existing entry is kept and Insert returns its cursor and
// false. A full fixed storage returns ErrCapacityExceeded and
// the map is left untouched.
func (m *Map[K, V]) Insert(key K, value V) (Cursor[K, V], bool, error) {
	i := m.search(key)
	es := m.store.Entries()
	if i < len(es) && !m.less(key, es[i].Key) {
		return m.cursor(i), false, nil
	}
	err := m.store.InsertAt(i, mapbench.Entry[K, V]{Key: key, Value: value})
	if err != nil {
		return m.End(), false, err
	}
	m.gen++
	return m.cursor(i), true, nil
}

// Add is Insert without the cursor
func (m *Map[K, V]) Add(key K, value V) (bool, error) {
	_, ok, err := m.Insert(key, value)
	return ok, err
}

// Find returns a cursor to the entry matching key, or End
func (m *Map[K, V]) Find(key K) Cursor[K, V] {
	if i := m.index(key); i >= 0 {
		return m.cursor(i)
	}
	return m.End()
}

// LowerBound returns a cursor to the first entry whose key is
// not less than key, or End
func (m *Map[K, V]) LowerBound(key K) Cursor[K, V] {
	return m.cursor(m.search(key))
}

func (m *Map[K, V]) Lookup(key K) (K, V, bool) {
	if i := m.index(key); i >= 0 {
		e := m.store.Entries()[i]
		return e.Key, e.Value, true
	}
	return *new(K), *new(V), false
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	_, v, ok := m.Lookup(key)
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	return m.index(key) >= 0
}

// Erase removes the entry matching key and reports whether
// one was removed
func (m *Map[K, V]) Erase(key K) bool {
	i := m.index(key)
	if i < 0 {
		return false
	}
	m.store.RemoveAt(i)
	m.gen++
	return true
}

func (m *Map[K, V]) Begin() Cursor[K, V] {
	return m.cursor(0)
}

func (m *Map[K, V]) End() Cursor[K, V] {
	return m.cursor(m.store.Len())
}

func (m *Map[K, V]) cursor(i int) Cursor[K, V] {
	return Cursor[K, V]{m: m, i: i, gen: m.gen}
}

func (m *Map[K, V]) Len() int {
	return m.store.Len()
}

func (m *Map[K, V]) Empty() bool {
	return m.store.Len() == 0
}

func (m *Map[K, V]) Cap() int {
	return m.store.Cap()
}

// Scan calls fn for each entry in ascending key order. The
// map must not be mutated from inside fn.
func (m *Map[K, V]) Scan(fn func(key K, value V) bool) {
	for _, e := range m.store.Entries() {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// Entries returns a copy of the entries in key order
func (m *Map[K, V]) Entries() []mapbench.Entry[K, V] {
	es := m.store.Entries()
	out := make([]mapbench.Entry[K, V], len(es))
	copy(out, es)
	return out
}

// Clear removes every entry and keeps the backing storage
func (m *Map[K, V]) Clear() {
	m.store.Reset()
	m.gen++
}

// Close releases the backing storage. Calling Close more than
// once is fine.
func (m *Map[K, V]) Close() {
	m.store.Release()
	m.gen++
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	for _, e := range m.store.Entries() {
		fmt.Fprintf(&sb, "%v-->%v\n", e.Key, e.Value)
	}
	return sb.String()
}

// Cursor is a position within a Map
type Cursor[K, V any] struct {
	m   *Map[K, V]
	i   int
	gen uint64
}

// Valid reports whether the map is unchanged since the cursor
// was taken
func (c Cursor[K, V]) Valid() bool {
	return c.m != nil && c.gen == c.m.gen
}

// IsEnd reports whether c is the end sentinel
func (c Cursor[K, V]) IsEnd() bool {
	return c.m == nil || c.i >= c.m.store.Len()
}

func (c Cursor[K, V]) entry() *mapbench.Entry[K, V] {
	if !c.Valid() {
		panic(ErrInvalidCursor)
	}
	if c.IsEnd() {
		panic(ErrEndCursor)
	}
	return &c.m.store.Entries()[c.i]
}

func (c Cursor[K, V]) Entry() mapbench.Entry[K, V] {
	return *c.entry()
}

func (c Cursor[K, V]) Key() K {
	return c.entry().Key
}

func (c Cursor[K, V]) Value() V {
	return c.entry().Value
}

// Next returns the cursor for the following entry; the end
// cursor stays put
func (c Cursor[K, V]) Next() Cursor[K, V] {
	if !c.IsEnd() {
		c.i++
	}
	return c
}

// Equal reports whether both cursors denote the same position
// of the same map
func (c Cursor[K, V]) Equal(that Cursor[K, V]) bool {
	if c.m != that.m {
		return false
	}
	if c.IsEnd() || that.IsEnd() {
		return c.IsEnd() && that.IsEnd()
	}
	return c.i == that.i
}
