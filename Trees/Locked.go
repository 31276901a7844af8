package Trees

import "sync"

// Locked guards an AVLTree with a single writer lock. Point queries share the read lock; every mutation,
// and any structural operation run through Update, excludes all readers.
type Locked[T any] struct {
	mu sync.RWMutex
	t  *AVLTree[T]
}

// NewLocked takes over t; t mustn't be used directly afterwards.
func NewLocked[T any](t *AVLTree[T]) *Locked[T] {
	return &Locked[T]{t: t}
}

func (u *Locked[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *Locked[T]) Delete(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Delete(v)
}

func (u *Locked[T]) Find(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Find(v)
}

func (u *Locked[T]) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

// Update runs f with exclusive access to the tree, e.g. to Split it or Join another tree into it.
// f mustn't retain the tree.
func (u *Locked[T]) Update(f func(*AVLTree[T])) {
	u.mu.Lock()
	defer u.mu.Unlock()
	f(u.t)
}
