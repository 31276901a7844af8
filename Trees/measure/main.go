package main

import (
	"cmp"
	"fmt"
	"math"
	"testing"

	"github.com/g-m-twostay/avl-utils/Trees"
)

// measures how the cost of JoinWith grows with the height difference of the two trees, and the
// cost of a Split followed by the JoinWith that undoes it, as the tree grows.
const (
	bLeftH    = 20
	bNumSteps = 16
)

var (
	rightH int
	splitN int
)

func perfect(lo, h int) *Trees.AVLTree[int] {
	s := make([]int, 1<<h-1)
	for i := range s {
		s[i] = lo + i
	}
	return Trees.Build(s, cmp.Compare[int], nil, false)
}

func BenchmarkJoin(b *testing.B) {
	for range b.N {
		b.StopTimer()
		l, r := perfect(0, bLeftH), perfect(1<<bLeftH, rightH)
		b.StartTimer()
		Trees.JoinWith(l, r, 1<<bLeftH-1, false)
	}
}

func BenchmarkSplitJoin(b *testing.B) {
	tree := perfect(0, 1)
	for i := 1; i < splitN; i++ {
		tree.Insert(i)
	}
	b.ResetTimer()
	for i := range b.N {
		l, p, g, err := tree.Split(i % splitN)
		if err != nil {
			b.Fatal(err)
		}
		tree = Trees.JoinWith(l, g, p, false)
	}
}

func stats(ns []float64) (avg, stddev float64) {
	for _, v := range ns {
		avg += v
	}
	avg /= float64(len(ns))
	for _, v := range ns {
		a := v - avg
		stddev += a * a
	}
	return avg, math.Sqrt(stddev / float64(len(ns)))
}

func main() {
	testing.Init()
	var js []float64
	fmt.Println("height difference, ns/op")
	for rightH = bLeftH; rightH > 0; rightH-- {
		br := testing.Benchmark(BenchmarkJoin)
		js = append(js, float64(br.NsPerOp()))
		fmt.Printf("%d, %d\n", bLeftH-rightH, br.NsPerOp())
	}
	avg, sd := stats(js)
	fmt.Printf("join average: %fns/op, stddev: %fns/op\n", avg, sd)

	var ss []float64
	fmt.Println("size, ns/op")
	for i := 1; i <= bNumSteps; i++ {
		splitN = 1 << i
		br := testing.Benchmark(BenchmarkSplitJoin)
		ss = append(ss, float64(br.NsPerOp()))
		fmt.Printf("%d, %d\n", splitN, br.NsPerOp())
	}
	avg, sd = stats(ss)
	fmt.Printf("split+join average: %fns/op, stddev: %fns/op\n", avg, sd)
}
