package vecmap

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/scottcagno/mapbench"
	"github.com/scottcagno/mapbench/pkg/util"
)

const (
	thousand = 1000
	n        = 1
)

func makeKey(i int) string {
	return fmt.Sprintf("key-%.4d", i)
}

func makeVal(i int) string {
	return fmt.Sprintf("value-%.16d", i*3)
}

func TestMap_New(t *testing.T) {
	m := New[string, byte]()
	util.AssertTrue(t, m.Empty())
	util.AssertLen(t, 0, m.Len())
	util.AssertTrue(t, m.Begin().Equal(m.End()))
	util.AssertTrue(t, m.Find("a0").IsEnd())
	m.Close()
}

func TestMap_Insert(t *testing.T) {
	m := New[string, string]()
	for i := 0; i < n*thousand; i++ {
		_, added, err := m.Insert(makeKey(i), makeVal(i))
		util.AssertNoError(t, err)
		if !added {
			t.Errorf("inserting: %v", added)
		}
	}
	util.AssertLen(t, n*thousand, m.Len())
	if m.Cap() < m.Len() {
		t.Errorf("cap %d is less than len %d", m.Cap(), m.Len())
	}
	m.Close()
}

// keys "a0".."a9" with values 'a'..'j'
func TestMap_LetterWorkload(t *testing.T) {
	m := New[string, byte]()
	for i := 0; i < 10; i++ {
		_, err := m.Add(fmt.Sprintf("a%d", i), byte('a'+i))
		util.AssertNoError(t, err)
	}
	var got []string
	m.Scan(func(k string, v byte) bool {
		got = append(got, fmt.Sprintf("%s-->%c", k, v))
		return true
	})
	want := []string{
		"a0-->a", "a1-->b", "a2-->c", "a3-->d", "a4-->e",
		"a5-->f", "a6-->g", "a7-->h", "a8-->i", "a9-->j",
	}
	util.AssertEqual(t, want, got)

	c := m.Find("a1")
	util.AssertFalse(t, c.IsEnd())
	util.AssertEqual(t, mapbench.Entry[string, byte]{Key: "a1", Value: 'b'}, c.Entry())
	util.AssertTrue(t, m.Find("z").Equal(m.End()))
}

func TestMap_InsertDuplicateKeepsFirst(t *testing.T) {
	m := New[int, string]()
	_, added, err := m.Insert(1, "one")
	util.AssertNoError(t, err)
	util.AssertTrue(t, added)

	c, added, err := m.Insert(1, "uno")
	util.AssertNoError(t, err)
	util.AssertFalse(t, added)
	util.AssertEqual(t, "one", c.Value())
	util.AssertLen(t, 1, m.Len())
}

func TestMap_InsertIdempotent(t *testing.T) {
	once, twice := New[int, int](), New[int, int]()
	for i := 0; i < 64; i++ {
		once.Add(i, i*i)
		twice.Add(i, i*i)
		twice.Add(i, i*i)
	}
	util.AssertEqual(t, once.Entries(), twice.Entries())
}

func TestMap_Find(t *testing.T) {
	m := New[string, string]()
	for i := 0; i < n*thousand; i += 2 {
		m.Add(makeKey(i), makeVal(i))
	}
	for i := 0; i < n*thousand; i++ {
		c := m.Find(makeKey(i))
		if i%2 == 1 {
			if !c.IsEnd() {
				t.Errorf("found absent key %q", makeKey(i))
			}
			continue
		}
		if c.IsEnd() {
			t.Errorf("missing key %q", makeKey(i))
			continue
		}
		util.AssertEqual(t, makeKey(i), c.Key())
		util.AssertEqual(t, makeVal(i), c.Value())
	}
}

func TestMap_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	set := make(map[int]int)
	m := New[int, int]()
	for len(set) < 500 {
		k := r.Intn(1 << 20)
		if _, ok := set[k]; ok {
			continue
		}
		set[k] = r.Int()
		m.Add(k, set[k])
	}
	var want []mapbench.Entry[int, int]
	for k, v := range set {
		want = append(want, mapbench.Entry[int, int]{Key: k, Value: v})
	}
	sort.Slice(want, func(i, j int) bool { return want[i].Key < want[j].Key })

	var got []mapbench.Entry[int, int]
	for c := m.Begin(); !c.IsEnd(); c = c.Next() {
		got = append(got, c.Entry())
	}
	util.AssertEqual(t, want, got)
	for i := 1; i < len(got); i++ {
		if got[i-1].Key >= got[i].Key {
			t.Fatalf("keys out of order at %d: %d >= %d", i, got[i-1].Key, got[i].Key)
		}
	}
}

func TestMap_FixedCapacity(t *testing.T) {
	m := New[int, float64](WithFixedCapacity[int, float64](8))
	for i := 7; i >= 0; i-- {
		_, added, err := m.Insert(i, float64(i))
		util.AssertNoError(t, err)
		util.AssertTrue(t, added)
	}
	util.AssertLen(t, 8, m.Len())
	util.AssertLen(t, 8, m.Cap())

	i := 0
	m.Scan(func(k int, v float64) bool {
		util.AssertEqual(t, i, k)
		util.AssertEqual(t, float64(i), v)
		i++
		return true
	})
	util.AssertEqual(t, 3.0, m.Find(3).Value())

	before := m.Entries()
	_, added, err := m.Insert(8, 8.0)
	util.AssertErrorIs(t, ErrCapacityExceeded, err)
	util.AssertFalse(t, added)
	util.AssertEqual(t, before, m.Entries())

	// a duplicate is not an insert, so a full map still accepts it quietly
	_, added, err = m.Insert(3, 30.0)
	util.AssertNoError(t, err)
	util.AssertFalse(t, added)
}

func TestMap_FixedCapacityDoesNotAllocate(t *testing.T) {
	m := New[int, float64](WithFixedCapacity[int, float64](8))
	allocs := testing.AllocsPerRun(10, func() {
		m.Clear()
		for i := 7; i >= 0; i-- {
			m.Insert(i, float64(i))
		}
	})
	util.AssertEqual(t, float64(0), allocs)
}

func TestMap_CursorInvalidation(t *testing.T) {
	m := New[int, int]()
	m.Add(1, 1)
	m.Add(3, 3)
	c := m.Find(3)
	util.AssertTrue(t, c.Valid())

	// a rejected duplicate is not a mutation
	m.Add(3, 33)
	util.AssertTrue(t, c.Valid())

	m.Add(2, 2)
	util.AssertFalse(t, c.Valid())
	util.AssertPanics(t, ErrInvalidCursor, func() { c.Key() })

	c = m.Find(2)
	m.Erase(1)
	util.AssertFalse(t, c.Valid())
}

func TestMap_EndCursor(t *testing.T) {
	m := New[string, int]()
	util.AssertPanics(t, ErrEndCursor, func() { m.End().Value() })
	util.AssertTrue(t, m.End().Next().IsEnd())
}

func TestMap_Erase(t *testing.T) {
	m := New[string, string]()
	for i := 0; i < n*thousand; i++ {
		m.Add(makeKey(i), makeVal(i))
	}
	for i := 0; i < n*thousand; i += 2 {
		util.AssertTrue(t, m.Erase(makeKey(i)))
	}
	util.AssertFalse(t, m.Erase(makeKey(0)))
	util.AssertLen(t, n*thousand/2, m.Len())
	for i := 0; i < n*thousand; i++ {
		util.AssertEqual(t, i%2 == 1, m.Has(makeKey(i)))
	}
}

func TestMap_LowerBound(t *testing.T) {
	m := New[int, int]()
	for _, k := range []int{10, 20, 30} {
		m.Add(k, k)
	}
	util.AssertEqual(t, 10, m.LowerBound(5).Key())
	util.AssertEqual(t, 20, m.LowerBound(20).Key())
	util.AssertEqual(t, 30, m.LowerBound(21).Key())
	util.AssertTrue(t, m.LowerBound(31).IsEnd())
}

func TestMap_NewFunc(t *testing.T) {
	m := NewFunc[string, int](func(a, b string) bool {
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	for i, k := range []string{"ccc", "a", "bb", "b"} {
		m.Add(k, i)
	}
	var keys []string
	m.Scan(func(k string, _ int) bool {
		keys = append(keys, k)
		return true
	})
	util.AssertEqual(t, []string{"a", "b", "bb", "ccc"}, keys)
}

func TestMap_Close(t *testing.T) {
	m := New[int, int](WithCapacity[int, int](16))
	for i := 0; i < 16; i++ {
		m.Add(i, i)
	}
	m.Close()
	m.Close()
	util.AssertTrue(t, m.Empty())
	util.AssertTrue(t, m.Find(1).IsEnd())
}

func BenchmarkMap_Find(b *testing.B) {
	m := New[int, float64](WithFixedCapacity[int, float64](8))
	for i := 7; i >= 0; i-- {
		m.Insert(i, float64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Find(3)
	}
}

func BenchmarkMap_InsertFront(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := New[int, int](WithCapacity[int, int](256))
		for k := 255; k >= 0; k-- {
			m.Insert(k, k)
		}
	}
}
