package list

import "fmt"

// Cursor values move back and forth in a list, and can modify the list at
// their position.
//
// A cursor sits between two elements: Next returns the element after the
// cursor, Previous the element before it. Structural changes made to the list
// by anything but the cursor itself cause the cursor methods to return
// ErrConcurrentModification.
type Cursor[E comparable] struct {
	list *RandomAccessList[E]
	next *node[E]
	last *node[E]
	mods int
}

// Cursor returns a cursor positioned before the front of the list.
func (l *RandomAccessList[E]) Cursor() *Cursor[E] {
	return &Cursor[E]{list: l, next: l.head, mods: l.mods}
}

// CursorFrom returns a cursor positioned right before key, so that the first
// call to Next returns key.
//
// The method returns ErrKeyNotFound if key is not in the list.
func (l *RandomAccessList[E]) CursorFrom(key E) (*Cursor[E], error) {
	n := l.nodeOf(key)
	if n == nil {
		return nil, fmt.Errorf("%w: %v is not a member of the list", ErrKeyNotFound, key)
	}
	return &Cursor[E]{list: l, next: n, mods: l.mods}, nil
}

// HasNext returns true if a call to Next would produce an element.
func (c *Cursor[E]) HasNext() (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.next != nil, nil
}

// Next returns the element after the cursor and moves the cursor past it.
func (c *Cursor[E]) Next() (value E, err error) {
	if err = c.check(); err != nil {
		return value, err
	}
	n := c.next
	if n == nil {
		return value, ErrNoSuchElement
	}
	c.next = n.next
	c.last = n
	return n.value, nil
}

// HasPrevious returns true if a call to Previous would produce an element.
func (c *Cursor[E]) HasPrevious() (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.prev() != nil, nil
}

// Previous returns the element before the cursor and moves the cursor before
// it.
func (c *Cursor[E]) Previous() (value E, err error) {
	if err = c.check(); err != nil {
		return value, err
	}
	n := c.prev()
	if n == nil {
		return value, ErrNoSuchElement
	}
	c.next = n
	c.last = n
	return n.value, nil
}

// Remove removes the element last returned by Next or Previous.
//
// The method returns ErrIllegalState if neither was called since the last
// call to Remove or Add.
func (c *Cursor[E]) Remove() error {
	if c.last == nil {
		return ErrIllegalState
	}
	if err := c.check(); err != nil {
		return err
	}
	if c.last == c.next {
		c.next = c.next.next
	}
	c.list.unlink(c.last)
	c.last = nil
	c.mods = c.list.mods
	return nil
}

// Set replaces the element last returned by Next or Previous with value, in
// the same way as RandomAccessList.Replace.
//
// The method returns ErrIllegalState if neither was called since the last
// call to Remove or Add.
func (c *Cursor[E]) Set(value E) error {
	if c.last == nil {
		return ErrIllegalState
	}
	if err := c.check(); err != nil {
		return err
	}
	return c.list.rekey(c.last, value)
}

// Add inserts value right before the element that Next would return: at the
// front of the list when the cursor was just created, right after the last
// element returned by Next otherwise. A subsequent call to Next is unaffected,
// while a call to Previous returns value.
func (c *Cursor[E]) Add(value E) error {
	if err := c.check(); err != nil {
		return err
	}
	l := c.list
	if l.index.Contains(value) {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, value)
	}
	if c.next == nil {
		l.pushBack(l.newNode(value))
	} else {
		l.linkBefore(c.next, l.newNode(value))
	}
	c.last = nil
	c.mods = l.mods
	return nil
}

func (c *Cursor[E]) prev() *node[E] {
	if c.next != nil {
		return c.next.prev
	}
	return c.list.tail
}

func (c *Cursor[E]) check() error {
	if c.mods != c.list.mods {
		return ErrConcurrentModification
	}
	return nil
}
