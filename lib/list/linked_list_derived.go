package list

import (
	"fmt"
	"iter"
	"strings"
)

// Derived operations. They only go through the list primitives and cursors,
// none of them relinks nodes by itself.

const renderSeparator = " ==> "

func (l *doublyLinkedList[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		idx := int64(0)
		for iterator := l.getRootHead(); iterator != l.root; iterator = iterator.next {
			if !yield(idx, iterator.value) {
				return
			}
			idx++
		}
	}
}

// Backward yields the elements from the tail, paired with their positions
// in descending order.
func (l *doublyLinkedList[T]) Backward() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		idx := l.len - 1
		for iterator := l.getRootTail(); iterator != l.root; iterator = iterator.prev {
			if !yield(idx, iterator.value) {
				return
			}
			idx--
		}
	}
}

func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil {
		return nil
	}
	for idx, v := range l.All() {
		if err := fn(idx, v); err != nil {
			return err
		}
	}
	return nil
}

func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, v T)) {
	if fn == nil {
		return
	}
	idx := int64(0)
	for _, v := range l.Backward() {
		fn(idx, v)
		idx++
	}
}

func (l *doublyLinkedList[T]) IndexOf(v T) int64 {
	for idx, x := range l.All() {
		if l.equalFn(x, v) {
			return idx
		}
	}
	return -1
}

func (l *doublyLinkedList[T]) LastIndexOf(v T) int64 {
	for idx, x := range l.Backward() {
		if l.equalFn(x, v) {
			return idx
		}
	}
	return -1
}

func (l *doublyLinkedList[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

func (l *doublyLinkedList[T]) Remove(v T) bool {
	return l.RemoveFirstOccurrence(v)
}

func (l *doublyLinkedList[T]) RemoveFirstOccurrence(v T) bool {
	return removeFirstMatch[T](newListCursor(l, 0), v, l.equalFn)
}

func (l *doublyLinkedList[T]) RemoveLastOccurrence(v T) bool {
	return removeFirstMatch[T](l.DescendingIterator(), v, l.equalFn)
}

func removeFirstMatch[T comparable](it Iterator[T], v T, equalFn func(a, b T) bool) bool {
	for it.HasNext() {
		x, err := it.Next()
		if err != nil {
			return false
		}
		if equalFn(x, v) {
			return it.Remove() == nil
		}
	}
	return false
}

func (l *doublyLinkedList[T]) AppendValues(values ...T) {
	for _, v := range values {
		l.PushBack(v)
	}
}

func (l *doublyLinkedList[T]) AppendSeq(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	for v := range seq {
		l.PushBack(v)
	}
}

// InsertAll inserts values before the element at idx and keeps their order.
func (l *doublyLinkedList[T]) InsertAll(idx int64, values ...T) error {
	c, err := l.Cursor(idx)
	if err != nil {
		return err
	}
	for _, v := range values {
		c.Add(v)
	}
	return nil
}

func (l *doublyLinkedList[T]) ToSlice() []T {
	return l.CopyTo(make([]T, l.len))
}

func (l *doublyLinkedList[T]) CopyTo(dst []T) []T {
	if int64(len(dst)) < l.len {
		dst = make([]T, l.len)
	} else if int64(len(dst)) > l.len {
		dst[l.len] = *new(T)
	}
	for idx, v := range l.All() {
		dst[idx] = v
	}
	return dst[:l.len]
}

func (l *doublyLinkedList[T]) Equal(other LinkedList[T]) bool {
	if other == nil {
		return false
	}
	if dl, ok := other.(*doublyLinkedList[T]); ok {
		if dl == nil {
			return false
		} else if dl == l {
			return true
		}
	}
	if l.len != other.Len() {
		return false
	}
	c, err := other.Cursor(0)
	if err != nil {
		return false
	}
	for _, v := range l.All() {
		x, err := c.Next()
		if err != nil || !l.equalFn(v, x) {
			return false
		}
	}
	return !c.HasNext()
}

func (l *doublyLinkedList[T]) Clone() LinkedList[T] {
	cp := NewLinkedList[T](
		WithLinkedListEqualFn[T](l.equalFn),
		WithLinkedListLogger[T](l.logger),
	)
	for _, v := range l.All() {
		cp.PushBack(v)
	}
	return cp
}

func (l *doublyLinkedList[T]) String() string {
	builder := strings.Builder{}
	for idx, v := range l.All() {
		if idx > 0 {
			_, _ = builder.WriteString(renderSeparator)
		}
		_, _ = fmt.Fprint(&builder, v)
	}
	return builder.String()
}
