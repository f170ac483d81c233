package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mene/search"
)

func benchProblem(n, goals int) search.Problem {
	rng := rand.New(rand.NewSource(7))
	weights := make([]int64, n)
	covers := make([][]int, n)
	for i := range weights {
		weights[i] = int64(1 + rng.Intn(5))
		for g := 0; g < goals; g++ {
			if rng.Intn(4) == 0 {
				covers[i] = append(covers[i], g)
			}
		}
	}

	return search.Problem{Weights: weights, Oracle: cover(goals, covers)}
}

func BenchmarkSolve(b *testing.B) {
	p := benchProblem(24, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Solve(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAggregate_Resolve(b *testing.B) {
	p := benchProblem(24, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Aggregate(p); err != nil {
			b.Fatal(err)
		}
	}
}
