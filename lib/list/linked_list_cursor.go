package list

import (
	"go.uber.org/zap"
)

var (
	_ ListCursor[struct{}] = (*listCursor[struct{}])(nil)
	_ Iterator[struct{}]   = (*descendingIterator[struct{}])(nil)
)

// cursorTarget tells whether Remove and Set have an element to operate on.
type cursorTarget uint8

const (
	cursorNoTarget cursorTarget = iota
	cursorHasTarget
)

// listCursor sits between prev and next. Either of them is the root
// when the cursor is at an end.
//
// After Next, lastReturned == prev. After Prev, lastReturned == next.
type listCursor[T comparable] struct {
	list         *doublyLinkedList[T]
	next, prev   *nodeElement[T]
	lastReturned *nodeElement[T]
	pos          int64
	target       cursorTarget
}

func newListCursor[T comparable](l *doublyLinkedList[T], idx int64) *listCursor[T] {
	next := l.root
	if idx < l.len {
		next = l.nodeAt(idx)
	}
	return &listCursor[T]{
		list:   l,
		next:   next,
		prev:   next.prev,
		pos:    idx,
		target: cursorNoTarget,
	}
}

func (c *listCursor[T]) HasNext() bool {
	return c.next != c.list.root
}

func (c *listCursor[T]) HasPrev() bool {
	return c.prev != c.list.root
}

func (c *listCursor[T]) NextIndex() int64 {
	return c.pos
}

func (c *listCursor[T]) PrevIndex() int64 {
	return c.pos - 1
}

func (c *listCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return *new(T), c.list.reject(ErrLinkedListNoSuchElement, "cursor next", zap.Int64("pos", c.pos))
	}
	c.lastReturned = c.next
	c.prev = c.next
	c.next = c.next.next
	c.pos++
	c.target = cursorHasTarget
	return c.lastReturned.value, nil
}

func (c *listCursor[T]) Prev() (T, error) {
	if !c.HasPrev() {
		return *new(T), c.list.reject(ErrLinkedListNoSuchElement, "cursor prev", zap.Int64("pos", c.pos))
	}
	c.lastReturned = c.prev
	c.next = c.prev
	c.prev = c.prev.prev
	c.pos--
	c.target = cursorHasTarget
	return c.lastReturned.value, nil
}

func (c *listCursor[T]) Remove() error {
	if c.target != cursorHasTarget {
		return c.list.reject(ErrLinkedListIllegalState, "cursor remove", zap.Int64("pos", c.pos))
	}
	e := c.lastReturned
	if e == c.prev {
		// Moved forward, the cursor steps back with the removed element.
		c.prev = e.prev
		c.pos--
	} else {
		c.next = e.next
	}
	c.list.unlink(e)
	c.lastReturned = nil
	c.target = cursorNoTarget
	return nil
}

func (c *listCursor[T]) Set(v T) error {
	if c.target != cursorHasTarget {
		return c.list.reject(ErrLinkedListIllegalState, "cursor set", zap.Int64("pos", c.pos))
	}
	c.lastReturned.value = v
	return nil
}

func (c *listCursor[T]) Add(v T) {
	c.prev = c.list.linkBefore(v, c.next)
	c.pos++
	c.lastReturned = nil
	c.target = cursorNoTarget
}

// descendingIterator walks from the tail to the head by reversing a cursor
// which starts after the tail.
type descendingIterator[T comparable] struct {
	cursor *listCursor[T]
}

func (it *descendingIterator[T]) HasNext() bool {
	return it.cursor.HasPrev()
}

func (it *descendingIterator[T]) Next() (T, error) {
	return it.cursor.Prev()
}

func (it *descendingIterator[T]) Remove() error {
	return it.cursor.Remove()
}

func (l *doublyLinkedList[T]) DescendingIterator() Iterator[T] {
	return &descendingIterator[T]{
		cursor: newListCursor(l, l.len),
	}
}
