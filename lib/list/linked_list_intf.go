package list

import (
	"errors"
	"iter"
)

// Note that the doubly linked list is not thread safe.
// A cursor is only valid as long as the list is mutated through
// that cursor alone. It is the caller's precondition, not detected.

var (
	ErrLinkedListIsEmpty         = errors.New("[linked-list] there is no element")
	ErrLinkedListIndexOutOfRange = errors.New("[linked-list] index out of range")
	ErrLinkedListNoSuchElement   = errors.New("[linked-list] no such element")
	ErrLinkedListIllegalState    = errors.New("[linked-list] cursor has no element to operate on")
	ErrLinkedListBrokenLink      = errors.New("[linked-list] broken node link")
	ErrLinkedListSizeMismatch    = errors.New("[linked-list] size mismatch")
)

// Iterator is a one direction iterator which is able to remove
// the element returned by the latest Next.
type Iterator[T comparable] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
}

// ListCursor is a movable position between two elements.
// The cursor at index i sits before the element i, so NextIndex returns i
// and PrevIndex returns i-1.
type ListCursor[T comparable] interface {
	Iterator[T]
	HasPrev() bool
	// Prev moves the cursor backward and returns the element it passed over.
	Prev() (T, error)
	NextIndex() int64
	PrevIndex() int64
	// Set replaces the element returned by the latest Next or Prev.
	// It fails if Add or Remove has been called after that move.
	Set(v T) error
	// Add inserts v right before the element which would be returned by Next.
	// A following Next is unaffected, a following Prev returns v.
	Add(v T)
}

// Deque is the double-ended queue view of the linked list.
// The Peek and Poll families report emptiness by the boolean
// instead of an error.
type Deque[T comparable] interface {
	Offer(v T) bool
	OfferFirst(v T) bool
	OfferLast(v T) bool
	Peek() (T, bool)
	PeekFirst() (T, bool)
	PeekLast() (T, bool)
	Poll() (T, bool)
	PollFirst() (T, bool)
	PollLast() (T, bool)
	// Element is Front.
	Element() (T, error)
	// RemoveHead is PopFront.
	RemoveHead() (T, error)
	// Push and Pop work on the back end, so the deque is used as a stack.
	Push(v T)
	Pop() (T, error)
	DescendingIterator() Iterator[T]
}

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	Deque[T]
	Len() int64
	IsEmpty() bool
	// PushFront inserts the value v at the front of list l.
	PushFront(v T)
	// PushBack inserts the value v at the back of list l.
	PushBack(v T)
	// Front returns the first value or ErrLinkedListIsEmpty.
	Front() (T, error)
	// Back returns the last value or ErrLinkedListIsEmpty.
	Back() (T, error)
	PopFront() (T, error)
	PopBack() (T, error)
	Get(idx int64) (T, error)
	// Set replaces the value at idx and returns the old one.
	Set(idx int64, v T) (T, error)
	// Insert inserts v before the element at idx. idx == Len() appends.
	Insert(idx int64, v T) error
	RemoveAt(idx int64) (T, error)
	// Remove removes the first occurrence of v.
	Remove(v T) bool
	RemoveFirstOccurrence(v T) bool
	RemoveLastOccurrence(v T) bool
	IndexOf(v T) int64
	LastIndexOf(v T) int64
	Contains(v T) bool
	Clear()
	// Cursor returns a cursor positioned before the element at idx.
	// idx == Len() positions it after the last element.
	Cursor(idx int64) (ListCursor[T], error)

	AppendValues(values ...T)
	AppendSeq(seq iter.Seq[T])
	InsertAll(idx int64, values ...T) error
	ToSlice() []T
	// CopyTo copies the elements into dst if it is large enough and resets
	// the slot right after the last copied element to the zero value.
	// Otherwise, a new slice with exact length is allocated.
	// The returned slice always has length Len().
	CopyTo(dst []T) []T
	// Foreach traverses the list l and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, v T) error) error
	// ReverseForeach iterates the list in reverse order, idx counts from the back.
	ReverseForeach(fn func(idx int64, v T))
	All() iter.Seq2[int64, T]
	Backward() iter.Seq2[int64, T]
	Equal(other LinkedList[T]) bool
	// Clone returns a deep copy, the nodes are never shared.
	Clone() LinkedList[T]
	// Verify walks the ring in both directions and reports every broken invariant.
	Verify() error
	String() string
}
