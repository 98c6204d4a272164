package list

import "fmt"

// Iterator values produce the elements of a list, from the position they were
// created at to the back of the list.
//
// An iterator remembers the length of the index of its list when it was
// created, and fails with ErrConcurrentModification when it observes a
// different length. Modifications which do not change the number of elements
// (such as Replace) are not detected.
type Iterator[E comparable] struct {
	index *Index[E]
	next  *node[E]
	size  int
}

// Iterator returns an iterator positioned at the front of the list.
func (l *RandomAccessList[E]) Iterator() *Iterator[E] {
	return l.iterator(l.head)
}

// IteratorFrom returns an iterator positioned at key, which is the first
// element that the iterator produces.
//
// The method returns ErrKeyNotFound if key is not in the list.
func (l *RandomAccessList[E]) IteratorFrom(key E) (*Iterator[E], error) {
	n := l.nodeOf(key)
	if n == nil {
		return nil, fmt.Errorf("%w: %v is not a member of the list", ErrKeyNotFound, key)
	}
	return l.iterator(n), nil
}

func (l *RandomAccessList[E]) iterator(from *node[E]) *Iterator[E] {
	index := l.init()
	return &Iterator[E]{
		index: index,
		next:  from,
		size:  index.Len(),
	}
}

// HasNext returns true if a call to Next would produce an element.
func (it *Iterator[E]) HasNext() (bool, error) {
	if err := it.check(); err != nil {
		return false, err
	}
	return it.next != nil, nil
}

// Next returns the next element and advances the iterator.
//
// The method returns ErrNoSuchElement when the iterator is exhausted.
func (it *Iterator[E]) Next() (value E, err error) {
	if err = it.check(); err != nil {
		return value, err
	}
	n := it.next
	if n == nil {
		return value, ErrNoSuchElement
	}
	it.next = n.next
	return n.value, nil
}

func (it *Iterator[E]) check() error {
	if n := it.index.Len(); n != it.size {
		return fmt.Errorf("%w: length changed from %d to %d", ErrConcurrentModification, it.size, n)
	}
	return nil
}
