package vecmap

import (
	"runtime"

	"github.com/scottcagno/mapbench"
)

const (
	// MaxEntries is the upper bound on the number of entries a
	// growable storage will ever try to allocate room for
	MaxEntries = 1<<31 - 1

	minGrowth = 4
)

// Storage is the backing policy for a Map. It holds one
// contiguous run of entries; the Map keeps them sorted.
type Storage[K, V any] interface {
	// Entries returns the live entries. The returned slice is
	// only valid until the next call to InsertAt, RemoveAt or
	// Release.
	Entries() []mapbench.Entry[K, V]
	// InsertAt places e at index i, shifting the tail one slot
	// to the right. It must not mutate anything on error.
	InsertAt(i int, e mapbench.Entry[K, V]) error
	// RemoveAt drops the entry at index i, shifting the tail
	// one slot to the left.
	RemoveAt(i int)
	Len() int
	Cap() int
	// Reset drops all entries but keeps the backing memory.
	Reset()
	// Release drops all entries and the backing memory.
	Release()
}

// Growable returns a heap backed storage that doubles its
// capacity whenever it runs out of room.
func Growable[K, V any](capacity int) Storage[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &growable[K, V]{
		initial: capacity,
	}
}

// Fixed returns a storage holding exactly capacity entries.
// The backing array is allocated once, here, and inserts
// past capacity fail with ErrCapacityExceeded.
func Fixed[K, V any](capacity int) Storage[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &fixed[K, V]{
		size:    capacity,
		entries: make([]mapbench.Entry[K, V], 0, capacity),
	}
}

type growable[K, V any] struct {
	initial int
	entries []mapbench.Entry[K, V]
}

func (s *growable[K, V]) Entries() []mapbench.Entry[K, V] {
	return s.entries
}

func (s *growable[K, V]) InsertAt(i int, e mapbench.Entry[K, V]) error {
	if len(s.entries) == cap(s.entries) {
		if err := s.grow(); err != nil {
			return err
		}
	}
	s.entries = insertAt(s.entries, i, e)
	return nil
}

func (s *growable[K, V]) grow() error {
	n := cap(s.entries)
	if n >= MaxEntries {
		return ErrAllocationFailure
	}
	switch {
	case n == 0 && s.initial > 0:
		n = s.initial
	case n < minGrowth:
		n = minGrowth
	case n > MaxEntries/2:
		n = MaxEntries
	default:
		n *= 2
	}
	entries, err := allocate[K, V](n)
	if err != nil {
		return err
	}
	s.entries = append(entries, s.entries...)
	return nil
}

func (s *growable[K, V]) RemoveAt(i int) {
	s.entries = removeAt(s.entries, i)
}

func (s *growable[K, V]) Len() int {
	return len(s.entries)
}

func (s *growable[K, V]) Cap() int {
	return cap(s.entries)
}

func (s *growable[K, V]) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

func (s *growable[K, V]) Release() {
	s.entries = nil
}

type fixed[K, V any] struct {
	size    int
	entries []mapbench.Entry[K, V]
}

func (s *fixed[K, V]) Entries() []mapbench.Entry[K, V] {
	return s.entries
}

func (s *fixed[K, V]) InsertAt(i int, e mapbench.Entry[K, V]) error {
	if len(s.entries) >= s.size {
		return ErrCapacityExceeded
	}
	s.entries = insertAt(s.entries, i, e)
	return nil
}

func (s *fixed[K, V]) RemoveAt(i int) {
	s.entries = removeAt(s.entries, i)
}

func (s *fixed[K, V]) Len() int {
	return len(s.entries)
}

func (s *fixed[K, V]) Cap() int {
	return s.size
}

func (s *fixed[K, V]) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

func (s *fixed[K, V]) Release() {
	// a released fixed storage holds nothing and accepts nothing
	s.entries = nil
	s.size = 0
}

// insertAt assumes len(es) < cap(es)
func insertAt[K, V any](es []mapbench.Entry[K, V], i int, e mapbench.Entry[K, V]) []mapbench.Entry[K, V] {
	n := len(es)
	es = es[:n+1]
	copy(es[i+1:], es[i:n])
	es[i] = e
	return es
}

func removeAt[K, V any](es []mapbench.Entry[K, V], i int) []mapbench.Entry[K, V] {
	n := len(es)
	copy(es[i:], es[i+1:])
	es[n-1] = mapbench.Entry[K, V]{}
	return es[:n-1]
}

// allocate turns a runtime allocation panic (for instance a
// capacity the runtime refuses) into ErrAllocationFailure.
func allocate[K, V any](n int) (es []mapbench.Entry[K, V], err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			es, err = nil, ErrAllocationFailure
		}
	}()
	return make([]mapbench.Entry[K, V], 0, n), nil
}
