package Trees

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/avl-utils/Queues"
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by keeping the heights of the two subtrees of
// every node within 1 of each other, so the height D of the tree is less
// than 1.44*log2(n+2). Values are opaque to the tree: they're ordered only
// through cmp and released only through del.
// Besides point operations, two trees can be joined and a tree can be split
// around a pivot; both only touch the nodes along one spine and move nodes
// between handles instead of copying values.
// The tree isn't safe for concurrent use, see Locked.
// The zero value is meaningless; create trees with New or one of its variants.
type AVLTree[T any] struct {
	root  *node[T]
	cmp   func(a, b T) int
	del   func(T) // may be nil.
	spine uint    // nodes visited by the last join into this tree.
}

// New returns an empty tree ordered by cmp. del is called exactly once on every value
// removed from the tree by Delete or Clear; it can be nil.
func New[T any](cmp func(a, b T) int, del func(T)) *AVLTree[T] {
	if cmp == nil {
		panic("Trees: nil comparison function")
	}
	return &AVLTree[T]{cmp: cmp, del: del}
}

// NewOrdered returns an empty tree using the natural ordering of T.
func NewOrdered[T constraints.Ordered](del func(T)) *AVLTree[T] {
	return New(cmp.Compare[T], del)
}

// Comparable values order themselves. Compare returns a negative number when the receiver is less
// than o, zero when they're equal, and a positive number otherwise.
type Comparable[T any] interface {
	Compare(o T) int
}

// Releaser values hold resources that must be released once they leave a tree.
type Releaser interface {
	Release()
}

// NewComparable returns an empty tree over values that order themselves. Values that also
// implement Releaser are released when removed.
func NewComparable[T Comparable[T]]() *AVLTree[T] {
	return New(func(a, b T) int {
		return a.Compare(b)
	}, func(v T) {
		if r, ok := any(v).(Releaser); ok {
			r.Release()
		}
	})
}

// FromComparator returns an empty tree ordered by a gods comparator, e.g. utils.StringComparator.
func FromComparator[T any](c utils.Comparator, del func(T)) *AVLTree[T] {
	if c == nil {
		panic("Trees: nil comparator")
	}
	return New(func(a, b T) int {
		return c(a, b)
	}, del)
}

// Collect builds a tree ordered by a gods comparator from values in any order. The values are sorted with
// utils.Sort and built bottom up like Build; of equal values only the first one kept by the sort is stored,
// the others are passed to del as they're owned by the tree once handed over.
// Time: O(n log n).
func Collect[T any](vs []T, c utils.Comparator, del func(T)) *AVLTree[T] {
	if len(vs) == 0 {
		return FromComparator(c, del)
	}
	is := make([]interface{}, len(vs))
	for i, v := range vs {
		is[i] = v
	}
	utils.Sort(is, c)
	sorted := make([]T, 0, len(is))
	for _, v := range is {
		if t := v.(T); len(sorted) > 0 && c(sorted[len(sorted)-1], t) == 0 {
			if del != nil {
				del(t)
			}
		} else {
			sorted = append(sorted, t)
		}
	}
	return Build(sorted, func(a, b T) int {
		return c(a, b)
	}, del, false)
}

// Build builds an AVLTree using the given sorted slice recursively. This is faster than
// repeatedly calling Insert. The given slice must be sorted in ascending order and mustn't
// contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic with InvalidOrderError
// if the conditions are broken. Otherwise, it is up to the user to ensure the conditions are met, otherwise
// the tree will be corrupt.
// The values are moved into the tree; the slice itself isn't retained.
// Time: O(n).
func Build[T any](sli []T, cmp func(a, b T) int, del func(T), safe bool) *AVLTree[T] {
	u := New(cmp, del)
	if safe {
		for i := 1; i < len(sli); i++ {
			if cmp(sli[i-1], sli[i]) >= 0 {
				panic(InvalidOrderError[T]{"Build", sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:])}
		n.fix()
		return n
	}
	u.root = build(sli)
	return u
}

func (u *AVLTree[T]) release(v T) {
	if u.del != nil {
		u.del(v)
	}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() uint {
	return size(u.root)
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() int {
	return height(u.root)
}

// insert the value v to the subtree n recursively. n is passed by reference.
// A failed insertion happens when the value is already in u, in which case it returns false
// and nothing on the path is touched.
func (u *AVLTree[T]) insert(n **node[T], v T) bool {
	cur := *n
	if cur == nil {
		*n = &node[T]{v: v, h: 1, sz: 1}
		return true
	}
	inserted := false
	if c := u.cmp(v, cur.v); c < 0 {
		inserted = u.insert(&cur.l, v)
	} else if c > 0 {
		inserted = u.insert(&cur.r, v)
	} else {
		return false
	}
	if inserted {
		rebalance(n)
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive.
// On a failed insertion v stays owned by the caller; del isn't called on it.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

// delete the value equal to v from the subtree n recursively. When the node has two children, its
// in-order successor node is unlinked and moved into its place; values are never copied between nodes.
func (u *AVLTree[T]) delete(n **node[T], v T) bool {
	cur := *n
	if cur == nil {
		return false
	}
	if c := u.cmp(v, cur.v); c < 0 {
		if !u.delete(&cur.l, v) {
			return false
		}
	} else if c > 0 {
		if !u.delete(&cur.r, v) {
			return false
		}
	} else {
		if cur.l == nil {
			*n = cur.r
		} else if cur.r == nil {
			*n = cur.l
		} else {
			s := popMin(&cur.r)
			s.l, s.r = cur.l, cur.r
			*n = s
		}
		cur.detach()
		u.release(cur.v)
		if *n == nil {
			return true
		}
	}
	rebalance(n)
	return true
}

// Delete [Tree.Delete]. Recursive.
// del is called on the stored value, not on v. Deleting an absent value is a no-op.
// Time: O(D)
func (u *AVLTree[T]) Delete(v T) bool {
	return u.delete(&u.root, v)
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Find(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur.v, true
		}
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	if n := leftMost(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]. The maximum is derived from the right spine on every call, an empty tree
// has none.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	if n := rightMost(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// KLargest [Tree.KLargest]
// Returns (x,true) if 1<=k<=Size(), otherwise (zero,false).
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) KLargest(k uint) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	cur := u.root
	for {
		if ls := size(cur.l); k <= ls {
			cur = cur.l
		} else if k == ls+1 {
			return cur.v, true
		} else {
			k -= ls + 1
			cur = cur.r
		}
	}
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) RankOf(v T) uint {
	var ra uint
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			ra += size(cur.l) + 1
			cur = cur.r
		} else {
			return ra + size(cur.l) + 1
		}
	}
	return 0
}

// Clear [Tree.Clear]. Nodes are torn down level by level, each value is passed to del exactly once.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) Clear() {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node[T]](u.Size()/2 + 1)
	q.Push(u.root)
	u.root = nil
	for !q.Empty() {
		n, _ := q.Pop()
		l, r := n.detach()
		if l != nil {
			q.Push(l)
		}
		if r != nil {
			q.Push(r)
		}
		u.release(n.v)
	}
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	return verify(u.root, u.cmp, nil, nil) != nil
}

// Dump the tree level by level, one line per level, each node printed as value/height.
func (u *AVLTree[T]) Dump() string {
	var sb strings.Builder
	if u.root == nil {
		return sb.String()
	}
	q := Queues.MakeArrayQueue[*node[T]](u.Size()/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		for i, w := uint(0), q.Size(); i < w; i++ {
			n, _ := q.Pop()
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v/%d", n.v, n.h)
			if n.l != nil {
				q.Push(n.l)
			}
			if n.r != nil {
				q.Push(n.r)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
