package types

import (
	"fmt"

	"fortio.org/safecast"
)

// indexedSet is an append-only deduplicating store. Inserting a value equal
// to a stored one returns the stored index.
type indexedSet[T any] struct {
	items   []T
	buckets map[uint64][]uint32
	hash    func(T) uint64
	equal   func(a, b T) bool
}

func newIndexedSet[T any](hash func(T) uint64, equal func(a, b T) bool) indexedSet[T] {
	return indexedSet[T]{
		buckets: make(map[uint64][]uint32, 64),
		hash:    hash,
		equal:   equal,
	}
}

// insert returns the index of v and whether it was newly added.
func (s *indexedSet[T]) insert(v T) (uint32, bool) {
	h := s.hash(v)
	for _, idx := range s.buckets[h] {
		if s.equal(s.items[idx], v) {
			return idx, false
		}
	}
	idx, err := safecast.Conv[uint32](len(s.items))
	if err != nil {
		panic(fmt.Errorf("len(items) overflow: %w", err))
	}
	s.items = append(s.items, v)
	s.buckets[h] = append(s.buckets[h], idx)
	return idx, true
}

func (s *indexedSet[T]) at(idx uint32) T {
	if int(idx) >= len(s.items) {
		panic(fmt.Sprintf("types: index %d out of range [0,%d)", idx, len(s.items)))
	}
	return s.items[idx]
}

func (s *indexedSet[T]) len() int {
	return len(s.items)
}
