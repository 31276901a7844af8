package Trees

// A node in the AVLTree.
// A node is owned by exactly one parent slot or tree root at a time; nil is the empty subtree.
type node[T any] struct {
	v    T
	l, r *node[T]
	h    int  // height of the subtree rooting at this node, 1 for a leaf.
	sz   uint // number of nodes in the subtree rooting at this node.
}

// height of n, 0 for the empty subtree. Never walks the children.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.h
}

func size[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	return n.sz
}

// balance factor of n: height(l)-height(r).
func balance[T any](n *node[T]) int {
	return height(n.l) - height(n.r)
}

// fix recomputes the cached height and size of n from its children.
// Time: O(1)
func (n *node[T]) fix() {
	n.h = 1 + max(height(n.l), height(n.r))
	n.sz = size(n.l) + size(n.r) + 1
}

// detach n from its children and turn it into a single leaf.
func (n *node[T]) detach() (l, r *node[T]) {
	l, r = n.l, n.r
	n.l, n.r, n.h, n.sz = nil, nil, 1, 1
	return
}

// rotateLeft performs a left rotation on the subtree n, promoting its right child.
// n is passed by reference in order to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **node[T]) {
	r := *n
	rc := r.r
	if rc == nil {
		panic("Trees: rotateLeft without right child")
	}
	r.r = rc.l
	rc.l = r
	r.fix()
	rc.fix()
	*n = rc
}

// rotateRight performs a right rotation on the subtree n, promoting its left child.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **node[T]) {
	r := *n
	lc := r.l
	if lc == nil {
		panic("Trees: rotateRight without left child")
	}
	r.l = lc.r
	lc.r = r
	r.fix()
	lc.fix()
	*n = lc
}

// rotateLeftRight is the double rotation for a left child that is right heavy.
// The grandchild n.l.r becomes the root in a single restructuring step:
// (a (b x (c y z)) w) turns into (c (b x y) (a z w)).
// Time: O(1); Space: O(1)
func rotateLeftRight[T any](n **node[T]) {
	a := *n
	b := a.l
	if b == nil || b.r == nil {
		panic("Trees: rotateLeftRight without left-right grandchild")
	}
	c := b.r
	b.r, a.l = c.l, c.r
	c.l, c.r = b, a
	b.fix()
	a.fix()
	c.fix()
	*n = c
}

// rotateRightLeft mirrors rotateLeftRight for a right child that is left heavy.
// Time: O(1); Space: O(1)
func rotateRightLeft[T any](n **node[T]) {
	a := *n
	b := a.r
	if b == nil || b.l == nil {
		panic("Trees: rotateRightLeft without right-left grandchild")
	}
	c := b.l
	b.l, a.r = c.r, c.l
	c.l, c.r = a, b
	a.fix()
	b.fix()
	c.fix()
	*n = c
}
