package list

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

// The list is a ring closed by the root sentinel. The root never holds
// a value, root.next is the head and root.prev is the tail. Both point
// back to root itself when the list is empty, so none of the link
// operations has to branch on a nil neighbour.
//
//	      +------------------------------------------+
//	      v                                          |
//	+------+      +------+      +------+      +------+
//	| root |<---->|  e0  |<---->|  e1  |<---->|  e2  |
//	+------+      +------+      +------+      +------+
//	      ^                                          |
//	      +------------------------------------------+

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

type doublyLinkedList[T comparable] struct {
	root    *nodeElement[T]
	len     int64
	equalFn func(a, b T) bool
	logger  xlog.XLogger
}

type LinkedListOption[T comparable] func(l *doublyLinkedList[T])

// WithLinkedListEqualFn replaces the == comparison used by searching and Equal.
func WithLinkedListEqualFn[T comparable](fn func(a, b T) bool) LinkedListOption[T] {
	return func(l *doublyLinkedList[T]) {
		if fn == nil {
			return
		}
		l.equalFn = fn
	}
}

// WithLinkedListLogger logs the rejected operations at debug level.
func WithLinkedListLogger[T comparable](logger xlog.XLogger) LinkedListOption[T] {
	return func(l *doublyLinkedList[T]) {
		if logger == nil {
			return
		}
		l.logger = logger
	}
}

func NewLinkedList[T comparable](opts ...LinkedListOption[T]) LinkedList[T] {
	l := new(doublyLinkedList[T]).init()
	for _, o := range opts {
		if o != nil {
			o(l)
		}
	}
	if l.equalFn == nil {
		l.equalFn = func(a, b T) bool {
			return a == b
		}
	}
	if l.logger == nil {
		l.logger = xlog.NewNopXLogger()
	}
	return l
}

// NewLinkedListFrom appends the values of seq in order.
func NewLinkedListFrom[T comparable](seq iter.Seq[T], opts ...LinkedListOption[T]) LinkedList[T] {
	l := NewLinkedList[T](opts...)
	l.AppendSeq(seq)
	return l
}

func NewLinkedListOf[T comparable](values ...T) LinkedList[T] {
	l := NewLinkedList[T]()
	l.AppendValues(values...)
	return l
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &nodeElement[T]{}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) getRootHead() *nodeElement[T] {
	return l.root.next
}

func (l *doublyLinkedList[T]) getRootTail() *nodeElement[T] {
	return l.root.prev
}

// linkBefore links a new node holding v right before at.
// at may be the root, it appends then.
func (l *doublyLinkedList[T]) linkBefore(v T, at *nodeElement[T]) *nodeElement[T] {
	e := newNodeElement(v)
	e.next = at
	e.prev = at.prev
	at.prev.next = e
	at.prev = e
	l.len++
	return e
}

// unlink detaches e from the ring. e must not be the root.
func (l *doublyLinkedList[T]) unlink(e *nodeElement[T]) T {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.release() // avoid memory leaks
	l.len--
	return e.value
}

func (l *doublyLinkedList[T]) reject(err error, msg string, fields ...zap.Field) error {
	err = infra.WrapErrorStackWithMessage(err, msg)
	l.logger.Debug("[linked-list] operation rejected",
		append(fields, zap.Int64("len", l.len), zap.Error(err))...,
	)
	return err
}

func (l *doublyLinkedList[T]) checkIndex(op string, idx, upper int64) error {
	if idx < 0 || idx >= upper {
		return l.reject(ErrLinkedListIndexOutOfRange,
			fmt.Sprintf("%s index %d out of [0, %d)", op, idx, upper),
			zap.Int64("idx", idx),
		)
	}
	return nil
}

// nodeAt walks from the closer end. idx has to be checked before.
func (l *doublyLinkedList[T]) nodeAt(idx int64) *nodeElement[T] {
	iterator := l.root
	if idx < l.len/2 {
		for i := int64(0); i <= idx; i++ {
			iterator = iterator.next
		}
		return iterator
	}
	for i := l.len; i > idx; i-- {
		iterator = iterator.prev
	}
	return iterator
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

func (l *doublyLinkedList[T]) PushFront(v T) {
	l.linkBefore(v, l.getRootHead())
}

func (l *doublyLinkedList[T]) PushBack(v T) {
	l.linkBefore(v, l.root)
}

func (l *doublyLinkedList[T]) Front() (T, error) {
	if l.len == 0 {
		return *new(T), l.reject(ErrLinkedListIsEmpty, "front")
	}
	return l.getRootHead().value, nil
}

func (l *doublyLinkedList[T]) Back() (T, error) {
	if l.len == 0 {
		return *new(T), l.reject(ErrLinkedListIsEmpty, "back")
	}
	return l.getRootTail().value, nil
}

func (l *doublyLinkedList[T]) PopFront() (T, error) {
	if l.len == 0 {
		return *new(T), l.reject(ErrLinkedListIsEmpty, "pop front")
	}
	return l.unlink(l.getRootHead()), nil
}

func (l *doublyLinkedList[T]) PopBack() (T, error) {
	if l.len == 0 {
		return *new(T), l.reject(ErrLinkedListIsEmpty, "pop back")
	}
	return l.unlink(l.getRootTail()), nil
}

func (l *doublyLinkedList[T]) Get(idx int64) (T, error) {
	if err := l.checkIndex("get", idx, l.len); err != nil {
		return *new(T), err
	}
	return l.nodeAt(idx).value, nil
}

func (l *doublyLinkedList[T]) Set(idx int64, v T) (T, error) {
	if err := l.checkIndex("set", idx, l.len); err != nil {
		return *new(T), err
	}
	e := l.nodeAt(idx)
	old := e.value
	e.value = v
	return old, nil
}

func (l *doublyLinkedList[T]) Insert(idx int64, v T) error {
	if err := l.checkIndex("insert", idx, l.len+1); err != nil {
		return err
	}
	if idx == l.len {
		l.linkBefore(v, l.root)
		return nil
	}
	l.linkBefore(v, l.nodeAt(idx))
	return nil
}

func (l *doublyLinkedList[T]) RemoveAt(idx int64) (T, error) {
	if err := l.checkIndex("remove", idx, l.len); err != nil {
		return *new(T), err
	}
	return l.unlink(l.nodeAt(idx)), nil
}

func (l *doublyLinkedList[T]) Clear() {
	for l.len > 0 {
		l.unlink(l.getRootTail())
	}
}

func (l *doublyLinkedList[T]) Cursor(idx int64) (ListCursor[T], error) {
	if err := l.checkIndex("cursor", idx, l.len+1); err != nil {
		return nil, err
	}
	return newListCursor(l, idx), nil
}

// Verify is the invariant checker. All violations are combined.
func (l *doublyLinkedList[T]) Verify() error {
	var merr error
	forward, iterator := int64(0), l.root
	for forward <= l.len {
		next := iterator.next
		if next == nil {
			merr = multierr.Append(merr, fmt.Errorf("forward step %d nil next: %w", forward, ErrLinkedListBrokenLink))
			break
		} else if next == l.root {
			break
		}
		if next.prev != iterator {
			merr = multierr.Append(merr, fmt.Errorf("forward step %d: %w", forward, ErrLinkedListBrokenLink))
		}
		iterator = next
		forward++
	}
	backward, iterator := int64(0), l.root
	for backward <= l.len {
		prev := iterator.prev
		if prev == nil {
			merr = multierr.Append(merr, fmt.Errorf("backward step %d nil prev: %w", backward, ErrLinkedListBrokenLink))
			break
		} else if prev == l.root {
			break
		}
		if prev.next != iterator {
			merr = multierr.Append(merr, fmt.Errorf("backward step %d: %w", backward, ErrLinkedListBrokenLink))
		}
		iterator = prev
		backward++
	}
	if forward != l.len || backward != l.len {
		merr = multierr.Append(merr, fmt.Errorf("len %d, forward %d, backward %d: %w",
			l.len, forward, backward, ErrLinkedListSizeMismatch))
	}
	if merr != nil {
		return infra.WrapErrorStackWithMessage(merr, "[linked-list] verify")
	}
	return nil
}
