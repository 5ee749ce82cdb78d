package list

func (l *doublyLinkedList[T]) Offer(v T) bool {
	return l.OfferLast(v)
}

func (l *doublyLinkedList[T]) OfferFirst(v T) bool {
	l.PushFront(v)
	return true
}

func (l *doublyLinkedList[T]) OfferLast(v T) bool {
	l.PushBack(v)
	return true
}

func (l *doublyLinkedList[T]) Peek() (T, bool) {
	return l.PeekFirst()
}

func (l *doublyLinkedList[T]) PeekFirst() (T, bool) {
	if l.len == 0 {
		return *new(T), false
	}
	return l.getRootHead().value, true
}

func (l *doublyLinkedList[T]) PeekLast() (T, bool) {
	if l.len == 0 {
		return *new(T), false
	}
	return l.getRootTail().value, true
}

func (l *doublyLinkedList[T]) Poll() (T, bool) {
	return l.PollFirst()
}

func (l *doublyLinkedList[T]) PollFirst() (T, bool) {
	if l.len == 0 {
		return *new(T), false
	}
	return l.unlink(l.getRootHead()), true
}

func (l *doublyLinkedList[T]) PollLast() (T, bool) {
	if l.len == 0 {
		return *new(T), false
	}
	return l.unlink(l.getRootTail()), true
}

func (l *doublyLinkedList[T]) Element() (T, error) {
	return l.Front()
}

func (l *doublyLinkedList[T]) RemoveHead() (T, error) {
	return l.PopFront()
}

func (l *doublyLinkedList[T]) Push(v T) {
	l.PushBack(v)
}

func (l *doublyLinkedList[T]) Pop() (T, error) {
	return l.PopBack()
}
