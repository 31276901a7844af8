package Trees

import "fmt"

// rebalance restores the AVL property at the subtree n after the height of one of its
// children changed by at most one level (two for the unwind of a join). The children must already be valid
// AVL trees. Calling it on a balanced subtree only refreshes the cached height and size.
// Time: O(1)
func rebalance[T any](n **node[T]) {
	cur := *n
	cur.fix()
	switch b := balance(cur); {
	case b > 1:
		if balance(cur.l) >= 0 {
			rotateRight(n)
		} else {
			rotateLeftRight(n)
		}
	case b < -1:
		if balance(cur.r) <= 0 {
			rotateLeft(n)
		} else {
			rotateRightLeft(n)
		}
	}
}

// popMin detaches the left-most node of the non-empty subtree n, rebalancing along the left spine.
// The returned node keeps no children.
// Time: O(D)
func popMin[T any](n **node[T]) *node[T] {
	cur := *n
	if cur.l == nil {
		*n = cur.r
		cur.detach()
		return cur
	}
	m := popMin(&cur.l)
	rebalance(n)
	return m
}

// popMax mirrors popMin on the right spine.
// Time: O(D)
func popMax[T any](n **node[T]) *node[T] {
	cur := *n
	if cur.r == nil {
		*n = cur.l
		cur.detach()
		return cur
	}
	m := popMax(&cur.r)
	rebalance(n)
	return m
}

// leftMost node of n, nil if n is empty.
func leftMost[T any](n *node[T]) *node[T] {
	if n != nil {
		for n.l != nil {
			n = n.l
		}
	}
	return n
}

// rightMost node of n, nil if n is empty. This is the only way the maximum is obtained;
// it's never cached on the handle.
func rightMost[T any](n *node[T]) *node[T] {
	if n != nil {
		for n.r != nil {
			n = n.r
		}
	}
	return n
}

// inOrder walks n with an explicit stack so the call depth stays constant.
// f returning false stops the walk. st is reused as the stack buffer and returned.
func inOrder[T any](n *node[T], f func(T) bool, st []*node[T]) []*node[T] {
	for st = st[:0]; n != nil; n = n.l {
		st = append(st, n)
	}
	for len(st) > 0 {
		n, st = st[len(st)-1], st[:len(st)-1]
		if !f(n.v) {
			break
		}
		for n = n.r; n != nil; n = n.l {
			st = append(st, n)
		}
	}
	return st
}

// verify checks every structural invariant of the subtree n: cached heights and sizes, the
// balance bound, and strict in-order ordering under cmp. lo and hi bound the allowed values when non-nil.
// Returns the first violation found.
func verify[T any](n *node[T], cmp func(T, T) int, lo, hi *T) error {
	if n == nil {
		return nil
	}
	if lo != nil && cmp(*lo, n.v) >= 0 {
		return fmt.Errorf("value %v is not greater than ancestor %v", n.v, *lo)
	}
	if hi != nil && cmp(n.v, *hi) >= 0 {
		return fmt.Errorf("value %v is not less than ancestor %v", n.v, *hi)
	}
	if err := verify(n.l, cmp, lo, &n.v); err != nil {
		return err
	}
	if err := verify(n.r, cmp, &n.v, hi); err != nil {
		return err
	}
	if h := 1 + max(height(n.l), height(n.r)); n.h != h {
		return fmt.Errorf("node %v caches height %d, want %d", n.v, n.h, h)
	}
	if sz := size(n.l) + size(n.r) + 1; n.sz != sz {
		return fmt.Errorf("node %v caches size %d, want %d", n.v, n.sz, sz)
	}
	if b := balance(n); b > 1 || b < -1 {
		return fmt.Errorf("node %v has balance factor %d", n.v, b)
	}
	return nil
}
