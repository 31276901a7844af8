package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_All(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, err := q.Pop(); err == nil {
		t.Error("pop of an empty queue succeeded")
	} else if e := new(EmptyQueueError); !errors.As(err, &e) {
		t.Errorf("pop error is %v", err)
	}
	next := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < round; i++ {
			q.Push(round*1000 + i)
		}
		for i := 0; i < round/2; i++ {
			v, err := q.Pop()
			if err != nil {
				t.Fatal(err)
			}
			if v < next {
				t.Fatalf("popped %v after %v", v, next)
			}
			next = v
		}
	}
	var popped uint
	sz := q.Size()
	for prev := next; !q.Empty(); popped++ {
		v, _ := q.Pop()
		if v <= prev {
			t.Fatalf("popped %v after %v", v, prev)
		}
		prev = v
	}
	if popped != sz || q.Size() != 0 {
		t.Errorf("popped %d values, want %d", popped, sz)
	}
}
