package Trees

// split the subtree n around v, which must be in n. Every node on the root-to-pivot path is detached and
// joined back as the connecting node of the side it belongs to; the node holding v is returned detached.
// Recursive.
// Time: O(D^2) in the worst case, one join per level each costing up to O(D).
func (u *AVLTree[T]) split(n *node[T], v T) (less, pivot, greater *node[T]) {
	l, r := n.detach()
	switch c := u.cmp(v, n.v); {
	case c < 0:
		ll, p, lr := u.split(l, v)
		return ll, p, u.join(lr, n, r)
	case c > 0:
		rl, p, rr := u.split(r, v)
		return u.join(l, n, rl), p, rr
	default:
		return l, n, r
	}
}

// Split partitions u into the values less than v and the values greater than v. The stored value equal to v
// is handed back as pivot; its ownership moves to the caller and del isn't called on it, so
// JoinWith(less, greater, pivot, false) rebuilds the original tree.
// All the nodes of u are moved into the two returned trees, which share u's ordering and deleter; u is left empty.
// If v isn't in u, Split returns a *PivotNotFoundError and u is untouched.
// Time: O(D^2)
func (u *AVLTree[T]) Split(v T) (less *AVLTree[T], pivot T, greater *AVLTree[T], err error) {
	if !u.Has(v) {
		return nil, pivot, nil, &PivotNotFoundError[T]{v}
	}
	less, greater = New(u.cmp, u.del), New(u.cmp, u.del)
	l, p, g := u.split(u.root, v)
	u.root, less.root, greater.root = nil, l, g
	return less, p.v, greater, nil
}
