package mapbench

// Entry is a key value pair held by a container
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Container is an interface for this package. Both the
// contiguous (vector) map and the node (tree) map satisfy
// it so the benchmark driver can run them side by side.
type Container[K, V any] interface {
	// Add inserts the key and value only if the key is not
	// already present. It reports true if the entry was added.
	Add(key K, value V) (bool, error)
	// Lookup runs a find for key and returns the matched key
	// and value along with a boolean reporting a match.
	Lookup(key K) (K, V, bool)
	// Scan calls fn for each entry in ascending key order
	// until fn returns false.
	Scan(fn func(key K, value V) bool)
	Len() int
	Close()
}
