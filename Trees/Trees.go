package Trees

// Tree represents an ordered set implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and should not be used.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if an equal
	//value is already present, in which case the tree is unchanged.
	Insert(v T) bool
	//Delete the value equal to v from the Tree. Returning true if it existed.
	Delete(v T) bool
	//Find the stored value equal to v.
	Find(v T) (T, bool)
	//Has element v. Cheaper than Find when the stored value isn't needed.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//KLargest find the k-th element in ascending order.
	//1<=k<=Size().
	KLargest(k uint) (T, bool)
	//RankOf v in the tree according to in-order.
	//1<=r<=Size(), 0 if v isn't present.
	RankOf(v T) uint
	//Size of the tree.
	Size() uint
	//Height of the tree, 0 when empty.
	Height() int
	//Clear removes every element, releasing each of them exactly once.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when cached
	//heights or sizes are stale, a node is out of balance, or the in-order
	//sequence isn't strictly increasing.
	Corrupt() bool
}

var _ Tree[int] = (*AVLTree[int])(nil)
