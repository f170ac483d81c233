package search_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mene/search"
)

// cover builds a set-cover oracle: covers[e] lists the goals element e meets.
func cover(goals int, covers [][]int) search.Oracle {
	return search.OracleFunc(func(chosen []bool) int {
		met := make([]bool, goals)
		for e, ok := range chosen {
			if !ok {
				continue
			}
			for _, g := range covers[e] {
				met[g] = true
			}
		}
		n := 0
		for _, ok := range met {
			if !ok {
				n++
			}
		}
		return n
	})
}

func TestSolve_WeightedCover(t *testing.T) {
	p := search.Problem{
		Weights: []int64{3, 1, 1, 2},
		Oracle:  cover(3, [][]int{{0, 1}, {0}, {1}, {2}}),
	}
	out, err := search.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, search.Optimal, out.Status)
	assert.True(t, out.Found)
	assert.Equal(t, []int{1, 2, 3}, out.Best.Elements)
	assert.Equal(t, search.Objective{Unsatisfied: 0, Weight: 4}, out.Best.Objective)

	agg, err := search.Aggregate(p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, agg.Union)
	assert.Equal(t, []int{1, 2, 3}, agg.Intersection)
}

func TestAggregate_Ties(t *testing.T) {
	p := search.Problem{
		Weights: []int64{1, 1, 2},
		Oracle:  cover(2, [][]int{{0}, {0}, {1}}),
	}
	for _, strat := range []search.Strategy{search.StrategyResolve, search.StrategyEnumerate} {
		agg, err := search.Aggregate(p, search.WithStrategy(strat))
		require.NoError(t, err)
		assert.Equal(t, search.Optimal, agg.Status)
		assert.Equal(t, []int{0, 1, 2}, agg.Union)
		assert.Equal(t, []int{2}, agg.Intersection)
		assert.Equal(t, int64(3), agg.Witness.Objective.Weight)
	}

	en, err := search.Enumerate(p)
	require.NoError(t, err)
	require.Len(t, en.Solutions, 2)
	assert.Equal(t, []int{0, 2}, en.Solutions[0].Elements)
	assert.Equal(t, []int{1, 2}, en.Solutions[1].Elements)
	assert.Equal(t, search.Objective{Weight: 3}, en.Objective)
}

func TestSolve_PrimaryObjectiveFirst(t *testing.T) {
	// goal 2 is unreachable; the cheapest cover of the rest still wins
	p := search.Problem{
		Weights: []int64{5, 1},
		Oracle:  cover(3, [][]int{{0, 1}, {0}}),
	}
	out, err := search.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, search.Optimal, out.Status)
	assert.Equal(t, []int{0}, out.Best.Elements)
	assert.Equal(t, 1, out.Best.Objective.Unsatisfied)

	p.RequireAll = true
	out, err = search.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, search.Infeasible, out.Status)
	assert.False(t, out.Found)
}

func TestSolve_ZeroWeightPadding(t *testing.T) {
	p := search.Problem{
		Weights: []int64{1, 0, 0},
		Oracle:  cover(2, [][]int{{0}, {1}, nil}),
	}
	agg, err := search.Aggregate(p)
	require.NoError(t, err)
	// element 2 covers nothing and is never part of an optimum
	assert.Equal(t, []int{0, 1}, agg.Union)
	assert.Equal(t, []int{0, 1}, agg.Intersection)

	en, err := search.Enumerate(p)
	require.NoError(t, err)
	assert.Len(t, en.Solutions, 1)
}

func TestSolve_Constraints(t *testing.T) {
	p := search.Problem{
		Weights: []int64{1, 1, 2},
		Oracle:  cover(2, [][]int{{0}, {0}, {1}}),
	}
	out, err := search.Solve(p, search.WithForbidden(0))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out.Best.Elements)

	out, err = search.Solve(p, search.WithForced(0), search.WithForbidden(0))
	require.NoError(t, err)
	assert.Equal(t, search.Infeasible, out.Status)

	out, err = search.Solve(p, search.WithForbidden(2))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Best.Objective.Unsatisfied)
}

func TestSolve_Errors(t *testing.T) {
	_, err := search.Solve(search.Problem{Weights: []int64{1}})
	assert.ErrorIs(t, err, search.ErrNilOracle)

	orc := cover(1, [][]int{{0}})
	_, err = search.Solve(search.Problem{Weights: []int64{-1}, Oracle: orc})
	assert.ErrorIs(t, err, search.ErrNegativeWeight)

	p := search.Problem{Weights: []int64{1}, Oracle: orc}
	_, err = search.Solve(p, search.WithForced(3))
	assert.ErrorIs(t, err, search.ErrElementRange)
	for _, opt := range []search.Option{
		search.WithNodeLimit(-1),
		search.WithTimeLimit(-1),
		search.WithMaxSolutions(0),
		search.WithWorkers(0),
		search.WithMemo(-1),
		search.WithMode(search.Mode(9)),
	} {
		_, err = search.Solve(p, opt)
		assert.ErrorIs(t, err, search.ErrOptionViolation)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.Solve(p, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = search.Aggregate(p, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = search.Enumerate(p, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnumerate_Limit(t *testing.T) {
	p := search.Problem{
		Weights: []int64{1, 1, 1, 1, 1},
		Oracle:  cover(1, [][]int{{0}, {0}, {0}, {0}, {0}}),
	}
	en, err := search.Enumerate(p, search.WithMaxSolutions(3))
	require.ErrorIs(t, err, search.ErrEnumerationLimit)
	assert.Len(t, en.Solutions, 3)

	_, err = search.Aggregate(p, search.WithStrategy(search.StrategyEnumerate), search.WithMaxSolutions(3))
	assert.ErrorIs(t, err, search.ErrEnumerationLimit)

	en, err = search.Enumerate(p, search.WithMaxSolutions(5))
	require.NoError(t, err)
	assert.Len(t, en.Solutions, 5)
}

func TestSolve_TimeLimitIncomplete(t *testing.T) {
	n := 10
	weights := make([]int64, n)
	covers := make([][]int, n)
	for i := range weights {
		weights[i] = int64(1 + i%2)
		covers[i] = []int{i % 3}
	}
	fast := cover(3, covers)
	slow := search.OracleFunc(func(chosen []bool) int {
		time.Sleep(2 * time.Millisecond)
		return fast.Unsatisfied(chosen)
	})
	p := search.Problem{Weights: weights, Oracle: slow}

	out, err := search.Solve(p, search.WithTimeLimit(time.Millisecond), search.WithMemo(0))
	require.NoError(t, err)
	assert.Equal(t, search.Incomplete, out.Status)
	assert.True(t, out.Found, "greedy incumbent survives the deadline")
	assert.Equal(t, 0, out.Best.Objective.Unsatisfied)

	agg, err := search.Aggregate(p, search.WithTimeLimit(time.Millisecond), search.WithMemo(0))
	require.NoError(t, err)
	assert.Equal(t, search.Incomplete, agg.Status)
}

func TestSolve_NodeLimitIncomplete(t *testing.T) {
	n := 12
	weights := make([]int64, n)
	covers := make([][]int, n)
	for i := range weights {
		weights[i] = int64(1 + i%3)
		covers[i] = []int{i % 4, (i + 1) % 4}
	}
	p := search.Problem{Weights: weights, Oracle: cover(4, covers)}

	out, err := search.Solve(p, search.WithNodeLimit(1))
	require.NoError(t, err)
	assert.Equal(t, search.Incomplete, out.Status)
	assert.True(t, out.Found, "greedy incumbent survives the cut")

	agg, err := search.Aggregate(p, search.WithNodeLimit(1))
	require.NoError(t, err)
	assert.Equal(t, search.Incomplete, agg.Status)

	full, err := search.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, search.Optimal, full.Status)
	assert.False(t, out.Best.Objective.Less(full.Best.Objective))
}

func TestSatisfy_Accept(t *testing.T) {
	// any cover of goal 0 whose size is even
	p := search.Problem{
		Weights: []int64{1, 1, 1},
		Oracle:  cover(1, [][]int{{0}, {0}, {0}}),
		Accept: func(chosen []bool) bool {
			n := 0
			for _, ok := range chosen {
				if ok {
					n++
				}
			}
			return n%2 == 0
		},
	}
	out, err := search.Solve(p, search.WithMode(search.Satisfy))
	require.NoError(t, err)
	assert.Equal(t, search.Optimal, out.Status)
	assert.Len(t, out.Best.Elements, 2)

	en, err := search.Enumerate(p, search.WithMode(search.Satisfy))
	require.NoError(t, err)
	assert.Len(t, en.Solutions, 3) // {0,1} {0,2} {1,2}

	agg, err := search.Aggregate(p, search.WithMode(search.Satisfy))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, agg.Union)
	assert.Empty(t, agg.Intersection)

	p.Accept = func([]bool) bool { return false }
	out, err = search.Solve(p, search.WithMode(search.Satisfy))
	require.NoError(t, err)
	assert.Equal(t, search.Infeasible, out.Status)
}

func TestPhases(t *testing.T) {
	p := search.Problem{Weights: []int64{1, 1}, Oracle: cover(1, [][]int{{0}, {0}})}
	var seen []search.Phase
	_, err := search.Enumerate(p, search.WithOnPhase(func(ph search.Phase) { seen = append(seen, ph) }))
	require.NoError(t, err)
	assert.Equal(t, []search.Phase{
		search.PhaseInit, search.PhaseFeasibilityChecked, search.PhaseOptimumFound,
		search.PhaseEnumerating, search.PhaseDone,
	}, seen)

	seen = nil
	p.RequireAll = true
	p.Oracle = cover(2, [][]int{{0}, {0}})
	_, err = search.Solve(p, search.WithOnPhase(func(ph search.Phase) { seen = append(seen, ph) }))
	require.NoError(t, err)
	assert.Equal(t, []search.Phase{search.PhaseInit, search.PhaseFeasibilityChecked, search.PhaseInfeasible}, seen)
	assert.Equal(t, "infeasible", search.Infeasible.String())
	assert.Equal(t, "enumerating", search.PhaseEnumerating.String())
}

// brute returns every irredundant lexicographic optimum by exhaustive search.
func brute(weights []int64, orc search.Oracle) [][]int {
	n := len(weights)
	all := make([]bool, n)
	for i := range all {
		all[i] = true
	}
	goal := orc.Unsatisfied(all)
	best := int64(-1)
	var sols [][]int
	for m := 0; m < 1<<n; m++ {
		mask := make([]bool, n)
		var w int64
		var elems []int
		for i := 0; i < n; i++ {
			if m&(1<<i) != 0 {
				mask[i] = true
				w += weights[i]
				elems = append(elems, i)
			}
		}
		if orc.Unsatisfied(mask) != goal {
			continue
		}
		redundant := false
		for _, i := range elems {
			if weights[i] != 0 {
				continue
			}
			mask[i] = false
			if orc.Unsatisfied(mask) == goal {
				redundant = true
			}
			mask[i] = true
		}
		if redundant {
			continue
		}
		switch {
		case best < 0 || w < best:
			best = w
			sols = [][]int{elems}
		case w == best:
			sols = append(sols, elems)
		}
	}

	return sols
}

func TestAggregate_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 40; iter++ {
		n, goals := 7, 4
		weights := make([]int64, n)
		covers := make([][]int, n)
		for i := range weights {
			weights[i] = int64(rng.Intn(4))
			for g := 0; g < goals; g++ {
				if rng.Intn(3) == 0 {
					covers[i] = append(covers[i], g)
				}
			}
		}
		orc := cover(goals, covers)
		want := brute(weights, orc)
		union, inter := map[int]int{}, []int{}
		for _, s := range want {
			for _, x := range s {
				union[x]++
			}
		}
		wantUnion := []int{}
		for x, c := range union {
			wantUnion = append(wantUnion, x)
			if c == len(want) {
				inter = append(inter, x)
			}
		}
		sort.Ints(wantUnion)
		sort.Ints(inter)

		p := search.Problem{Weights: weights, Oracle: orc}
		en, err := search.Enumerate(p)
		require.NoError(t, err)
		assert.Len(t, en.Solutions, len(want), "iteration %d", iter)

		for _, strat := range []search.Strategy{search.StrategyResolve, search.StrategyEnumerate} {
			agg, err := search.Aggregate(p, search.WithStrategy(strat), search.WithWorkers(3))
			require.NoError(t, err)
			assert.Equal(t, wantUnion, agg.Union, "iteration %d strategy %d", iter, strat)
			assert.Equal(t, inter, agg.Intersection, "iteration %d strategy %d", iter, strat)
			assert.Subset(t, agg.Union, agg.Intersection)
		}
	}
}
