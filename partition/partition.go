// Package partition implements lists split into ordered partitions.
//
// A PartitionedList routes each element to the partition whose Range contains
// the element key, creating partitions on demand through a Policy. Elements of
// a partition are held in a list.RandomAccessList, and all the partitions share
// a single index, so that looking up any element is done in constant time
// regardless of the partition it lives in.
//
// Partitions are kept sorted by range. Finding the partition of a key is a
// linear scan, which is efficient as long as the number of partitions remains
// small, and when most insertions happen near the last partitions. Programs
// with many partitions should consider a different data structure.
//
// Partitions are never merged nor removed; a partition emptied by removals
// remains in the list.
package partition

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/linkedlist/list"
	"golang.org/x/exp/slices"
)

var (
	// ErrInvalidRange is returned when constructing a range where the lower
	// bound is not strictly less than the upper bound.
	ErrInvalidRange = errors.New("invalid partition range")

	// ErrPartitionNotFound is returned when no partition covers a key.
	ErrPartitionNotFound = errors.New("partition not found")
)

// Element is the constraint on values held by partitioned lists. Values must
// be comparable, since they are used as index keys, and must expose the key
// used to route them to partitions. Both must be stable while the value is
// held in a list.
type Element[K any] interface {
	comparable
	Key() K
}

type partition[K any, E comparable] struct {
	bounds Range[K]
	list   *list.RandomAccessList[E]
}

// PartitionedList is a sequence of elements split in partitions ordered by
// range of keys.
type PartitionedList[K any, E Element[K]] struct {
	policy     Policy[K]
	index      *list.Index[E]
	partitions []*partition[K, E]
	logger     zerolog.Logger
}

// New constructs a new empty PartitionedList using policy to create new
// partitions, and the list of options passed as arguments to configure it.
func New[K any, E Element[K]](policy Policy[K], options ...Option) *PartitionedList[K, E] {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[K, E](policy, config)
}

// NewWithConfig is like New but uses a Config instance to pass the list
// configuration instead of a list of options.
func NewWithConfig[K any, E Element[K]](policy Policy[K], config *Config) *PartitionedList[K, E] {
	if policy == nil {
		panic("partition.NewWithConfig: nil policy")
	}
	return &PartitionedList[K, E]{
		policy: policy,
		index:  list.NewIndex[E](),
		logger: config.Logger,
	}
}

// Len returns the number of elements in the list.
func (pl *PartitionedList[K, E]) Len() int { return pl.index.Len() }

// IsEmpty returns true if the list holds no elements.
func (pl *PartitionedList[K, E]) IsEmpty() bool { return pl.index.Len() == 0 }

// Contains returns true if elem is held by the list, in any partition.
//
// Complexity: O(1)
func (pl *PartitionedList[K, E]) Contains(elem E) bool { return pl.index.Contains(elem) }

// Get returns the element held by the list for key.
//
// Complexity: O(1)
func (pl *PartitionedList[K, E]) Get(key E) (value E, found bool) {
	if owner, ok := pl.index.Lookup(key); ok {
		value, found = owner.Get(key)
	}
	return value, found
}

// Add appends elem to the partition covering its key, creating the partition
// if needed. The method returns false if elem was already in the list.
//
// The method returns an error if the policy failed to create a partition.
//
// Complexity: O(P), where P is the number of partitions
func (pl *PartitionedList[K, E]) Add(elem E) (bool, error) {
	if pl.index.Contains(elem) {
		return false, nil
	}
	p, err := pl.findPartition(elem.Key())
	if err != nil {
		return false, err
	}
	return p.list.Append(elem), nil
}

// Remove removes elem from the list. The method returns false if elem was not
// in the list. The partition which held elem is retained even if it becomes
// empty.
//
// Complexity: O(1)
func (pl *PartitionedList[K, E]) Remove(elem E) bool {
	if owner, ok := pl.index.Lookup(elem); ok {
		return owner.Remove(elem)
	}
	return false
}

// Clear removes all elements from the list. The partitions are retained.
func (pl *PartitionedList[K, E]) Clear() {
	for _, p := range pl.partitions {
		p.list.Clear()
	}
}

// PartitionCount returns the number of partitions in the list.
func (pl *PartitionedList[K, E]) PartitionCount() int { return len(pl.partitions) }

// Ranges returns the ranges of the partitions, in ascending order.
func (pl *PartitionedList[K, E]) Ranges() []Range[K] {
	ranges := make([]Range[K], len(pl.partitions))
	for i, p := range pl.partitions {
		ranges[i] = p.bounds
	}
	return ranges
}

// LinkedList returns the list of the partition covering key. Unlike Add, the
// method does not create partitions, it returns ErrPartitionNotFound when no
// partition covers key.
//
// The returned list shares its index with the other partitions, programs may
// use it to splice elements of the partition.
func (pl *PartitionedList[K, E]) LinkedList(key K) (*list.RandomAccessList[E], error) {
	for _, p := range pl.partitions {
		switch cmp := p.bounds.Compare(key); {
		case cmp == 0:
			return p.list, nil
		case cmp < 0:
			return nil, fmt.Errorf("%w: %v", ErrPartitionNotFound, key)
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrPartitionNotFound, key)
}

// Range calls f for each element of the list, in partition order then in
// insertion order within each partition. If f returns false, the iteration is
// stopped.
func (pl *PartitionedList[K, E]) Range(f func(E) bool) error {
	it := pl.ElementIterator()
	for {
		ok, err := it.HasNext()
		if err != nil || !ok {
			return err
		}
		v, err := it.Next()
		if err != nil {
			return err
		}
		if !f(v) {
			return nil
		}
	}
}

func (pl *PartitionedList[K, E]) findPartition(key K) (*partition[K, E], error) {
	if len(pl.partitions) == 0 {
		return pl.insertPartition(0, key)
	}

	for i, p := range pl.partitions {
		switch cmp := p.bounds.Compare(key); {
		case cmp < 0:
			return pl.insertPartition(i, key)
		case cmp == 0:
			return p, nil
		default:
			if i == len(pl.partitions)-1 {
				return pl.insertPartition(i+1, key)
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrPartitionNotFound, key)
}

func (pl *PartitionedList[K, E]) insertPartition(i int, key K) (*partition[K, E], error) {
	bounds, err := pl.policy.NewRange(len(pl.partitions), key)
	if err != nil {
		return nil, fmt.Errorf("creating partition for %v: %w", key, err)
	}

	p := &partition[K, E]{
		bounds: bounds,
		list:   list.NewWithIndex(pl.index),
	}
	pl.partitions = slices.Insert(pl.partitions, i, p)

	pl.logger.Debug().
		Stringer("range", bounds).
		Int("position", i).
		Int("partitions", len(pl.partitions)).
		Msg("created partition")

	if !bounds.Contains(key) {
		pl.logger.Warn().
			Stringer("range", bounds).
			Str("key", fmt.Sprint(key)).
			Msg("partition policy returned a range which does not contain the key")
	}

	if limit := pl.policy.MaxPartitions(); limit > 0 && len(pl.partitions) > limit {
		pl.logger.Warn().
			Int("partitions", len(pl.partitions)).
			Int("max_partitions", limit).
			Msg("partition count exceeds the maximum declared by the policy")
	}

	return p, nil
}
