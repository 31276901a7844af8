package Queues

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
