package list

type nodeElement[T comparable] struct {
	prev, next *nodeElement[T]
	value      T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func newNodeElement[T comparable](v T) *nodeElement[T] {
	return &nodeElement[T]{
		value: v,
	}
}

// release drops the relations of a detached node.
func (e *nodeElement[T]) release() {
	e.next = nil
	e.prev = nil
}
