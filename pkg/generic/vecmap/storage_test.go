package vecmap

import (
	"testing"

	"github.com/scottcagno/mapbench"
	"github.com/scottcagno/mapbench/pkg/util"
)

type tentry = mapbench.Entry[int, int]

func TestGrowable_InsertAt(t *testing.T) {
	s := Growable[int, int](0)
	util.AssertLen(t, 0, s.Cap())
	var caps []int
	for i := 0; i < 17; i++ {
		util.AssertNoError(t, s.InsertAt(0, tentry{Key: i, Value: i}))
		if len(caps) == 0 || caps[len(caps)-1] != s.Cap() {
			caps = append(caps, s.Cap())
		}
	}
	util.AssertEqual(t, []int{4, 8, 16, 32}, caps)
	util.AssertLen(t, 17, s.Len())
	util.AssertEqual(t, 16, s.Entries()[0].Key)
	util.AssertEqual(t, 0, s.Entries()[16].Key)
}

func TestGrowable_InitialCapacity(t *testing.T) {
	s := Growable[int, int](10)
	util.AssertNoError(t, s.InsertAt(0, tentry{Key: 1}))
	util.AssertEqual(t, 10, s.Cap())
	s.Release()
	util.AssertLen(t, 0, s.Len())
}

func TestFixed_InsertAt(t *testing.T) {
	s := Fixed[int, int](2)
	util.AssertNoError(t, s.InsertAt(0, tentry{Key: 2}))
	util.AssertNoError(t, s.InsertAt(0, tentry{Key: 1}))
	util.AssertErrorIs(t, ErrCapacityExceeded, s.InsertAt(2, tentry{Key: 3}))
	util.AssertEqual(t, []tentry{{Key: 1}, {Key: 2}}, s.Entries())

	s.RemoveAt(0)
	util.AssertEqual(t, []tentry{{Key: 2}}, s.Entries())
	util.AssertNoError(t, s.InsertAt(1, tentry{Key: 3}))
	util.AssertEqual(t, 2, s.Cap())

	s.Reset()
	util.AssertLen(t, 0, s.Len())
	util.AssertEqual(t, 2, s.Cap())

	s.Release()
	util.AssertErrorIs(t, ErrCapacityExceeded, s.InsertAt(0, tentry{Key: 1}))
}

func TestAllocate(t *testing.T) {
	es, err := allocate[int, int](8)
	util.AssertNoError(t, err)
	util.AssertEqual(t, 8, cap(es))

	size := -1
	_, err = allocate[int, int](size)
	util.AssertErrorIs(t, ErrAllocationFailure, err)
}
