package Queues

// circArrQ is a FIFO queue over a ring buffer. The tree package uses it for level-order walks.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, max(initCap, 1))}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize the ring to newLen>sz, unrolling it so that head is 0.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(max(u.sz*3/2, u.sz+4))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}
