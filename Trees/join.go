package Trees

// join the subtrees l and r through the detached node k, every value in l being less than k.v and every
// value in r greater. Only the spine of the taller side down to the height of the shorter side is visited.
// Recursive.
// Time: O(|height(l)-height(r)|+1)
func (u *AVLTree[T]) join(l, k, r *node[T]) *node[T] {
	switch hl, hr := height(l), height(r); {
	case hl > hr+1:
		return u.joinRight(l, k, r)
	case hr > hl+1:
		return u.joinLeft(l, k, r)
	default:
		u.spine++
		k.l, k.r = l, r
		k.fix()
		return k
	}
}

// joinRight descends the right spine of l, which is at least 2 taller than r, until the remaining
// right subtree is at most 1 taller than r, hangs k there with r as its right child, and rebalances on the
// way back up. Each level the subtree grows by at most one, so a single rotation or double rotation per
// level restores the balance.
func (u *AVLTree[T]) joinRight(l, k, r *node[T]) *node[T] {
	u.spine++
	if height(l.r) <= height(r)+1 {
		k.l, k.r = l.r, r
		k.fix()
		l.r = k
	} else {
		l.r = u.joinRight(l.r, k, r)
	}
	rebalance(&l)
	return l
}

// joinLeft mirrors joinRight for a taller r.
func (u *AVLTree[T]) joinLeft(l, k, r *node[T]) *node[T] {
	u.spine++
	if height(r.l) <= height(l)+1 {
		k.l, k.r = l, r.l
		k.fix()
		r.l = k
	} else {
		r.l = u.joinLeft(l, k, r.l)
	}
	rebalance(&r)
	return r
}

// checkJoin panics with InvalidOrderError unless max(l) < pivot < min(r). Either bound is skipped when
// the corresponding side is empty or has no pivot. The spine nodes walked are added to u.spine.
func (u *AVLTree[T]) checkJoin(op string, l *node[T], pivot *T, r *node[T]) {
	var lm, rm *node[T]
	for n := l; n != nil; n = n.r {
		u.spine++
		lm = n
	}
	for n := r; n != nil; n = n.l {
		u.spine++
		rm = n
	}
	switch {
	case pivot == nil:
		if lm != nil && rm != nil && u.cmp(lm.v, rm.v) >= 0 {
			panic(InvalidOrderError[T]{op, lm.v, rm.v})
		}
	case lm != nil && u.cmp(lm.v, *pivot) >= 0:
		panic(InvalidOrderError[T]{op, lm.v, *pivot})
	case rm != nil && u.cmp(*pivot, rm.v) >= 0:
		panic(InvalidOrderError[T]{op, *pivot, rm.v})
	}
}

// JoinWith joins l, pivot and r into one tree. Every value in l must be less than pivot, which must be less
// than every value in r.
// If safe==true, the ordering is checked first and JoinWith panics with InvalidOrderError before touching either
// tree. Otherwise, it is up to the caller to ensure the ordering, otherwise the joined tree will be corrupt.
// The nodes of r are moved into l, r is left empty and l is returned. The tree takes the ownership of pivot.
// l and r must be different handles and should share the same ordering; l's comparison function and
// deleter are kept.
// Time: O(|l.Height()-r.Height()|+1) if safe==false, O(D) if safe==true.
func JoinWith[T any](l, r *AVLTree[T], pivot T, safe bool) *AVLTree[T] {
	if l == r {
		panic("Trees: JoinWith of a tree with itself")
	}
	l.spine = 0
	if safe {
		l.checkJoin("JoinWith", l.root, &pivot, r.root)
	}
	l.root = l.join(l.root, &node[T]{v: pivot, h: 1, sz: 1}, r.root)
	r.root = nil
	return l
}

// Join joins l and r into one tree. Every value in l must be less than every value in r; with safe==true this is
// checked and Join panics with InvalidOrderError before touching either tree. The left-most node of r is unlinked
// and reused as the connecting pivot, so no node is allocated. The nodes of r are moved into l, r is left empty
// and l is returned.
// Time: O(D), unlinking the pivot walks the left spine of r.
func Join[T any](l, r *AVLTree[T], safe bool) *AVLTree[T] {
	if l == r {
		panic("Trees: Join of a tree with itself")
	}
	l.spine = 0
	if safe {
		l.checkJoin("Join", l.root, nil, r.root)
	}
	if r.root != nil {
		k := popMin(&r.root)
		l.root = l.join(l.root, k, r.root)
		r.root = nil
	}
	return l
}
