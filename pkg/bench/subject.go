package bench

import (
	"github.com/scottcagno/mapbench"
	"github.com/scottcagno/mapbench/pkg/generic/vecmap"
	"github.com/scottcagno/mapbench/pkg/index/rbtree"
)

const (
	TagVecMap  = "VECMAP"
	TagTreeMap = "TREEMAP"
)

// Subject is one container shape under test. Strings builds
// the container for workload A, Ints the one for workload B,
// sized for capacity entries.
type Subject struct {
	Tag     string
	Strings func() mapbench.Container[string, byte]
	Ints    func(capacity int) mapbench.Container[int, float64]
}

// DefaultSubjects returns the contiguous map followed by the
// node map
func DefaultSubjects() []Subject {
	return []Subject{
		{
			Tag: TagVecMap,
			Strings: func() mapbench.Container[string, byte] {
				return vecmap.New[string, byte]()
			},
			Ints: func(capacity int) mapbench.Container[int, float64] {
				return vecmap.New[int, float64](vecmap.WithFixedCapacity[int, float64](capacity))
			},
		},
		{
			Tag: TagTreeMap,
			Strings: func() mapbench.Container[string, byte] {
				return rbtree.New[string, byte]()
			},
			Ints: func(int) mapbench.Container[int, float64] {
				return rbtree.New[int, float64]()
			},
		},
	}
}
