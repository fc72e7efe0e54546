package algokit

import (
	"math/rand"
	"testing"
)

func generateBenchValues(n int) []int {
	rng := rand.New(rand.NewSource(42))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(1 << 20)
	}
	return values
}

// --- RangeTree ---

func benchRangeTreeBuild(b *testing.B, n int) {
	b.Helper()
	values := generateBenchValues(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(values, sumMerge, 0)
	}
}

func BenchmarkRangeTreeBuild1K(b *testing.B)   { benchRangeTreeBuild(b, 1_000) }
func BenchmarkRangeTreeBuild100K(b *testing.B) { benchRangeTreeBuild(b, 100_000) }

func benchRangeTreeQuery(b *testing.B, n int) {
	b.Helper()
	values := generateBenchValues(n)
	tree := New(values, sumMerge, 0)
	rng := rand.New(rand.NewSource(7))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := rng.Intn(n)
		r := l + rng.Intn(n-l)
		if _, err := tree.Query(l, r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRangeTreeQuery1K(b *testing.B)   { benchRangeTreeQuery(b, 1_000) }
func BenchmarkRangeTreeQuery100K(b *testing.B) { benchRangeTreeQuery(b, 100_000) }

func benchRangeTreeUpdate(b *testing.B, n int) {
	b.Helper()
	values := generateBenchValues(n)
	tree := New(values, sumMerge, 0)
	rng := rand.New(rand.NewSource(7))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.Update(rng.Intn(n), i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRangeTreeUpdate1K(b *testing.B)   { benchRangeTreeUpdate(b, 1_000) }
func BenchmarkRangeTreeUpdate100K(b *testing.B) { benchRangeTreeUpdate(b, 100_000) }

// --- DisjointSet ---

func BenchmarkDisjointSetUnionFind(b *testing.B) {
	n := 100_000
	rng := rand.New(rand.NewSource(42))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := NewDisjointSet(n)
		for j := 0; j < n; j++ {
			d.Union(rng.Intn(n), rng.Intn(n))
		}
	}
}

// --- LCA ---

func BenchmarkLCAQuery(b *testing.B) {
	n := 100_000
	rng := rand.New(rand.NewSource(42))
	edges := make([][2]int, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, [2]int{rng.Intn(v), v})
	}
	l, err := NewLCA(n, edges, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Query(rng.Intn(n), rng.Intn(n)); err != nil {
			b.Fatal(err)
		}
	}
}
