package partition

import (
	"fmt"

	"github.com/segmentio/linkedlist/list"
)

// ElementIterator values produce the elements of a PartitionedList, in
// partition order then in link order within each partition. Empty partitions
// are skipped.
//
// Like list.Iterator, an ElementIterator fails with
// list.ErrConcurrentModification when the number of elements in the list
// changes while it is in use.
type ElementIterator[E comparable] struct {
	index   *list.Index[E]
	size    int
	lists   []*list.RandomAccessList[E]
	current *list.Iterator[E]
}

// ElementIterator returns an iterator positioned before the first element of
// the first partition.
func (pl *PartitionedList[K, E]) ElementIterator() *ElementIterator[E] {
	lists := make([]*list.RandomAccessList[E], len(pl.partitions))
	for i, p := range pl.partitions {
		lists[i] = p.list
	}
	return &ElementIterator[E]{
		index: pl.index,
		size:  pl.index.Len(),
		lists: lists,
	}
}

// HasNext returns true if a call to Next would produce an element.
func (it *ElementIterator[E]) HasNext() (bool, error) {
	if n := it.index.Len(); n != it.size {
		return false, fmt.Errorf("%w: length changed from %d to %d", list.ErrConcurrentModification, it.size, n)
	}
	for {
		if it.current != nil {
			if ok, err := it.current.HasNext(); err != nil || ok {
				return ok, err
			}
		}
		if len(it.lists) == 0 {
			it.current = nil
			return false, nil
		}
		it.current = it.lists[0].Iterator()
		it.lists = it.lists[1:]
	}
}

// Next returns the next element and advances the iterator.
//
// The method returns list.ErrNoSuchElement when the iterator is exhausted.
func (it *ElementIterator[E]) Next() (value E, err error) {
	ok, err := it.HasNext()
	if err != nil {
		return value, err
	}
	if !ok {
		return value, list.ErrNoSuchElement
	}
	return it.current.Next()
}
