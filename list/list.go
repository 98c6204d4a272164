// Package list contains the implementation of a type-safe doubly-linked list
// which also supports constant time lookups of its elements by value.
//
// A regular doubly-linked list allows O(1) insertions and removals next to a
// known node, but finding the node holding a value requires a linear scan.
// RandomAccessList pairs the chain of nodes with an Index mapping each value to
// the node that holds it, so that programs can splice the list around any
// element they know the value of:
//
//	l := list.New[string]()
//	l.Append("A")
//	l.Append("C")
//	l.InsertAfter("A", "B")
//
//	l.Range(func(s string) bool {
//		...
//		return true
//	})
//
// Values are used as keys of the index, which means that a list cannot hold
// the same value twice, and that values must not be mutated in a way that
// changes their equality while they are held in a list.
//
// The Index of a list may be shared with other lists (see NewWithIndex), in
// which case a value is held by at most one of the lists sharing the index.
// This is how the partition package builds a single logical sequence out of
// multiple lists.
//
// Like the other containers of this module, lists are not safe to use
// concurrently from multiple goroutines. Iterators detect some modifications
// made to a list while they are in use, but this is a best-effort check that
// programs must not rely on for synchronization.
package list

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyNotFound is returned when an operation references a value which
	// is not held by the list.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDuplicateElement is returned when inserting a value which is already
	// held by the list, or by another list sharing the same index.
	ErrDuplicateElement = errors.New("duplicate element")

	// ErrOutOfOrder is returned by ReplaceRange when the end of the range does
	// not follow its start in the list.
	ErrOutOfOrder = errors.New("range end does not follow range start")

	// ErrConcurrentModification is returned by iterators and cursors which
	// observed a structural change of the list since they were created.
	ErrConcurrentModification = errors.New("list modified during iteration")

	// ErrIllegalState is returned by cursor mutations which require a prior
	// call to Next or Previous.
	ErrIllegalState = errors.New("no element was returned by the cursor")

	// ErrNoSuchElement is returned when advancing an iterator or a cursor
	// which has no more elements.
	ErrNoSuchElement = errors.New("no such element")
)

type node[E comparable] struct {
	prev   *node[E]
	next   *node[E]
	parent *RandomAccessList[E]
	value  E
}

// RandomAccessList values are doubly-linked lists which support lookups,
// insertions, replacements and removals of elements by value in O(1).
//
// The zero-value is a valid, empty list using a private index.
type RandomAccessList[E comparable] struct {
	index *Index[E]
	head  *node[E]
	tail  *node[E]
	size  int
	// Counts structural changes, cursors use it to detect modifications that
	// they did not make themselves.
	mods int
}

// New constructs a new empty list with a private index.
func New[E comparable]() *RandomAccessList[E] {
	return NewWithIndex(NewIndex[E]())
}

// NewWithIndex constructs a new empty list which registers its elements in
// index. The index may be shared by multiple lists.
func NewWithIndex[E comparable](index *Index[E]) *RandomAccessList[E] {
	return &RandomAccessList[E]{index: index}
}

// Len returns the number of elements in the list.
func (l *RandomAccessList[E]) Len() int { return l.size }

// Contains returns true if value is held by the list.
func (l *RandomAccessList[E]) Contains(value E) bool {
	return l.nodeOf(value) != nil
}

// Get returns the element held by the list for key, and a boolean indicating
// whether it was found.
//
// Complexity: O(1)
func (l *RandomAccessList[E]) Get(key E) (value E, found bool) {
	if n := l.nodeOf(key); n != nil {
		value, found = n.value, true
	}
	return value, found
}

// Front returns the element at the front of the list.
func (l *RandomAccessList[E]) Front() (value E, found bool) {
	if n := l.head; n != nil {
		value, found = n.value, true
	}
	return value, found
}

// Back returns the element at the back of the list.
func (l *RandomAccessList[E]) Back() (value E, found bool) {
	if n := l.tail; n != nil {
		value, found = n.value, true
	}
	return value, found
}

// Prev returns the element right before key in the list. The boolean is false
// if key is not in the list or is at its front.
func (l *RandomAccessList[E]) Prev(key E) (value E, found bool) {
	if n := l.nodeOf(key); n != nil && n.prev != nil {
		value, found = n.prev.value, true
	}
	return value, found
}

// Next returns the element right after key in the list. The boolean is false
// if key is not in the list or is at its back.
func (l *RandomAccessList[E]) Next(key E) (value E, found bool) {
	if n := l.nodeOf(key); n != nil && n.next != nil {
		value, found = n.next.value, true
	}
	return value, found
}

// Append inserts value at the back of the list. The method returns false and
// leaves the list unchanged if value was already held by the list (or by
// another list sharing its index).
//
// Complexity: O(1)
func (l *RandomAccessList[E]) Append(value E) bool {
	if l.init().Contains(value) {
		return false
	}
	l.pushBack(l.newNode(value))
	return true
}

// InsertAfter inserts value right after anchor in the list.
//
// The method returns ErrKeyNotFound if anchor is not in the list, and
// ErrDuplicateElement if value already is.
//
// Complexity: O(1)
func (l *RandomAccessList[E]) InsertAfter(anchor, value E) error {
	at := l.nodeOf(anchor)
	if at == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, anchor)
	}
	if l.index.Contains(value) {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, value)
	}
	l.linkAfter(at, l.newNode(value))
	return nil
}

// Replace substitutes value for key, retaining the position of the element in
// the list. After the call, looking up key finds nothing and looking up value
// finds the element.
//
// The method returns ErrKeyNotFound if key is not in the list, and
// ErrDuplicateElement if value is already held by another node.
//
// Replace does not change the length of the list, iterators do not detect it.
//
// Complexity: O(1)
func (l *RandomAccessList[E]) Replace(key, value E) error {
	n := l.nodeOf(key)
	if n == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return l.rekey(n, value)
}

// ReplaceRange removes all elements strictly between from and to, and links
// values in their place, in order. When values is empty, to directly follows
// from after the call.
//
// Both endpoints must be in the list, and to must come after from. Values must
// not be held by the list already, unless they are part of the elements being
// replaced. The list is left unchanged when the method returns an error.
//
// Complexity: O(n+k), where n is the number of replaced elements and k the
// number of values.
func (l *RandomAccessList[E]) ReplaceRange(from, to E, values []E) error {
	first := l.nodeOf(from)
	if first == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, from)
	}
	last := l.nodeOf(to)
	if last == nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, to)
	}
	if first == last {
		return fmt.Errorf("%w: %v to %v", ErrOutOfOrder, from, to)
	}

	var gap []*node[E]
	for n := first.next; n != last; n = n.next {
		if n == nil {
			return fmt.Errorf("%w: %v to %v", ErrOutOfOrder, from, to)
		}
		gap = append(gap, n)
	}

	if len(values) > 0 {
		replaced := make(map[*node[E]]struct{}, len(gap))
		for _, n := range gap {
			replaced[n] = struct{}{}
		}
		seen := make(map[E]struct{}, len(values))
		for _, v := range values {
			if _, dup := seen[v]; dup {
				return fmt.Errorf("%w: %v", ErrDuplicateElement, v)
			}
			seen[v] = struct{}{}
			if n := l.index.lookup(v); n != nil {
				if _, ok := replaced[n]; !ok {
					return fmt.Errorf("%w: %v", ErrDuplicateElement, v)
				}
			}
		}
	}

	for _, n := range gap {
		l.detach(n)
	}
	first.next = last
	last.prev = first
	l.mods++

	at := first
	for _, v := range values {
		n := l.newNode(v)
		l.linkAfter(at, n)
		at = n
	}
	return nil
}

// Remove removes key from the list. The method returns false if key was not
// in the list.
//
// Complexity: O(1)
func (l *RandomAccessList[E]) Remove(key E) bool {
	n := l.nodeOf(key)
	if n == nil {
		return false
	}
	l.unlink(n)
	return true
}

// Clear removes all elements from the list, and from its index.
//
// Complexity: O(n)
func (l *RandomAccessList[E]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.detach(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.mods++
}

// Range calls f for each element of the list, from front to back. If f returns
// false, the iteration is stopped.
//
// The method returns ErrConcurrentModification if f changes the length of the
// list.
func (l *RandomAccessList[E]) Range(f func(E) bool) error {
	it := l.Iterator()
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

// Values returns the elements of the list in a slice, from front to back.
func (l *RandomAccessList[E]) Values() []E {
	values := make([]E, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// String returns a representation of the list chain which is useful when
// debugging.
func (l *RandomAccessList[E]) String() string {
	sb := new(strings.Builder)
	sb.WriteString("RandomAccessList:\n")
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(sb, "Node: %v Prev: ", n.value)
		if n.prev != nil {
			fmt.Fprint(sb, n.prev.value)
		}
		sb.WriteString(" Next: ")
		if n.next != nil {
			fmt.Fprint(sb, n.next.value)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(sb, l.size)
	return sb.String()
}

func (l *RandomAccessList[E]) init() *Index[E] {
	if l.index == nil {
		l.index = NewIndex[E]()
	}
	return l.index
}

func (l *RandomAccessList[E]) newNode(value E) *node[E] {
	return &node[E]{parent: l, value: value}
}

func (l *RandomAccessList[E]) nodeOf(key E) *node[E] {
	if n := l.index.lookup(key); n != nil && n.parent == l {
		return n
	}
	return nil
}

func (l *RandomAccessList[E]) pushBack(n *node[E]) {
	if l.tail == nil {
		l.head = n
	} else {
		n.prev = l.tail
		l.tail.next = n
	}
	l.tail = n
	l.attach(n)
}

func (l *RandomAccessList[E]) linkAfter(at, n *node[E]) {
	n.prev = at
	n.next = at.next
	if at.next != nil {
		at.next.prev = n
	}
	at.next = n
	if at == l.tail {
		l.tail = n
	}
	l.attach(n)
}

func (l *RandomAccessList[E]) linkBefore(at, n *node[E]) {
	n.next = at
	n.prev = at.prev
	if at.prev != nil {
		at.prev.next = n
	}
	at.prev = n
	if at == l.head {
		l.head = n
	}
	l.attach(n)
}

func (l *RandomAccessList[E]) unlink(n *node[E]) {
	prev := n.prev
	next := n.next

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	if n == l.head {
		l.head = next
	}

	if n == l.tail {
		l.tail = prev
	}

	l.detach(n)
	l.mods++
}

func (l *RandomAccessList[E]) rekey(n *node[E], value E) error {
	if n.value == value {
		return nil
	}
	if l.index.Contains(value) {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, value)
	}
	delete(l.index.nodes, n.value)
	l.index.nodes[value] = n
	n.value = value
	return nil
}

// attach registers a node which was just linked in the chain.
func (l *RandomAccessList[E]) attach(n *node[E]) {
	l.init().nodes[n.value] = n
	l.size++
	l.mods++
}

// detach removes a node from the index and severs its links. The caller is
// responsible for fixing the links of its neighbors.
func (l *RandomAccessList[E]) detach(n *node[E]) {
	delete(l.index.nodes, n.value)
	n.prev = nil
	n.next = nil
	n.parent = nil
	l.size--
}
