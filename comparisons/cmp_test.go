package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/avl-utils/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares Trees.AVLTree with other ordered containers on the same random keys, and with
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap as the unordered baseline for lookups.
const (
	elementNum = 1 << 16
	keyRange   = elementNum * 4
)

var keys = func() []int {
	r := rand.New(rand.NewSource(0))
	ks := make([]int, elementNum)
	for i := range ks {
		ks[i] = r.Intn(keyRange)
	}
	return ks
}()

var sideEff bool

func BenchmarkAVLTree_Insert(b *testing.B) {
	for range b.N {
		t := Trees.NewOrdered[int](nil)
		for _, k := range keys {
			t.Insert(k)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, k := range keys {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, k := range keys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkGodsAVL_Insert(b *testing.B) {
	for range b.N {
		t := avltree.NewWithIntComparator()
		for _, k := range keys {
			t.Put(k, struct{}{})
		}
	}
}

func BenchmarkGodsRB_Insert(b *testing.B) {
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			t.Put(k, struct{}{})
		}
	}
}

func BenchmarkAVLTree_Find(b *testing.B) {
	t := Trees.NewOrdered[int](nil)
	for _, k := range keys {
		t.Insert(k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			_, sideEff = t.Find(k)
		}
	}
}

func BenchmarkBTree_Find(b *testing.B) {
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff = t.Has(k)
		}
	}
}

func BenchmarkLLRB_Find(b *testing.B) {
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			sideEff = t.Has(llrb.Int(k))
		}
	}
}

func BenchmarkHaxMap_Find(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			_, sideEff = m.Get(k)
		}
	}
}

func BenchmarkHashMap_Find(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			_, sideEff = m.Get(k)
		}
	}
}

// splitting at the median and joining back against the btree equivalent, which has to move elements.
func BenchmarkAVLTree_SplitJoin(b *testing.B) {
	t := Trees.NewOrdered[int](nil)
	for _, k := range keys {
		t.Insert(k)
	}
	b.ResetTimer()
	for range b.N {
		m, _ := t.KLargest(t.Size() / 2)
		l, p, g, _ := t.Split(m)
		t = Trees.JoinWith(l, g, p, false)
	}
}

func BenchmarkBTree_SplitJoin(b *testing.B) {
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for range b.N {
		m, _ := t.Max()
		var moved []int
		t.AscendGreaterOrEqual(m/2, func(i int) bool {
			moved = append(moved, i)
			return true
		})
		g := btree.NewOrderedG[int](32)
		for _, k := range moved {
			t.Delete(k)
			g.ReplaceOrInsert(k)
		}
		g.Ascend(func(i int) bool {
			t.ReplaceOrInsert(i)
			return true
		})
	}
}

// the engine must agree with the btree on membership.
func TestAgreement(t *testing.T) {
	a := Trees.NewOrdered[int](nil)
	o := btree.NewOrderedG[int](32)
	for _, k := range keys {
		a.Insert(k)
		o.ReplaceOrInsert(k)
	}
	if int(a.Size()) != o.Len() {
		t.Fatalf("tree size is %d, want %d", a.Size(), o.Len())
	}
	for k := 0; k < keyRange; k += 7 {
		if a.Has(k) != o.Has(k) {
			t.Errorf("membership of key %v disagrees", k)
		}
	}
}
