// Package search: public entry points and union/intersection aggregation.
//
// Solve runs one constrained branch and bound. Enumerate proves the optimum
// first (Minimize) and then collects every subset at that value. Aggregate
// derives union and intersection of all optima either by folding an
// enumeration or by re-solving once per undecided element:
//
//   - forced inclusion of e still reaching the optimum puts e in the union;
//   - forced exclusion of e missing the optimum puts e in the intersection;
//   - every witness found on the way decides its members for the union and
//     its non-members for the intersection, so most re-solves are skipped.
//
// All engines of one call share a single budget.

package search

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mene/internal/ctxlog"
)

// Solve finds one optimal subset.
//
// The outcome is Optimal with a witness, Infeasible when constraints or
// RequireAll rule every subset out, or Incomplete when the budget ran out
// (Best then holds the incumbent if Found). Cancellation of the context is
// returned as an error.
func Solve(p Problem, opts ...Option) (Outcome, error) {
	if err := p.validate(); err != nil {
		return Outcome{}, err
	}
	o, err := buildOptions(&p, opts)
	if err != nil {
		return Outcome{}, err
	}
	if err = o.Ctx.Err(); err != nil {
		return Outcome{}, err
	}
	b := newBudget(o)
	out := solve(&p, memoize(p.Oracle, o.MemoSize), &o, b, true)
	if err = b.err(); err != nil {
		return Outcome{}, err
	}
	out.Nodes = b.nodes.Load()
	ctxlog.FromContext(o.Ctx).Debug("search: solve finished",
		"status", out.Status.String(), "weight", out.Best.Objective.Weight,
		"unsatisfied", out.Best.Objective.Unsatisfied, "nodes", out.Nodes)

	return out, nil
}

// solve runs one constrained search on a shared budget. phases reports
// state transitions through o.OnPhase.
func solve(p *Problem, oracle Oracle, o *Options, b *budget, phases bool) Outcome {
	on := func(ph Phase) {
		if phases {
			o.OnPhase(ph)
		}
	}
	on(PhaseInit)
	e, ok := newEngine(p, oracle, o, b)
	on(PhaseFeasibilityChecked)
	if !ok {
		on(PhaseInfeasible)
		return Outcome{Status: Infeasible}
	}

	e.seedIncumbent()
	e.run()

	switch {
	case e.cut:
		return Outcome{Status: Incomplete, Best: e.best, Found: e.found}
	case !e.found:
		on(PhaseInfeasible)
		return Outcome{Status: Infeasible}
	default:
		on(PhaseOptimumFound)
		return Outcome{Status: Optimal, Best: e.best, Found: true}
	}
}

// Enumerate returns every optimal subset. In Minimize mode the optimum is
// proven first and then every irredundant subset of that value is collected;
// in Satisfy mode every accepted subset reaching the primary optimum is
// collected. More than MaxSolutions results is ErrEnumerationLimit, returned
// together with the partial enumeration.
func Enumerate(p Problem, opts ...Option) (Enumeration, error) {
	if err := p.validate(); err != nil {
		return Enumeration{}, err
	}
	o, err := buildOptions(&p, opts)
	if err != nil {
		return Enumeration{}, err
	}
	if err = o.Ctx.Err(); err != nil {
		return Enumeration{}, err
	}
	b := newBudget(o)
	oracle := memoize(p.Oracle, o.MemoSize)
	en, overflow := enumerate(&p, oracle, &o, b)
	en.Nodes = b.nodes.Load()
	if err = b.err(); err != nil {
		return Enumeration{}, err
	}
	o.OnPhase(PhaseDone)
	if overflow {
		en.Solutions = en.Solutions[:o.MaxSolutions]
		return en, ErrEnumerationLimit
	}

	return en, nil
}

// enumerate collects optima; overflow reports that the cap was exceeded.
func enumerate(p *Problem, oracle Oracle, o *Options, b *budget) (Enumeration, bool) {
	var bound int64
	var obj Objective
	if o.Mode == Minimize {
		base := solve(p, oracle, o, b, true)
		if base.Status != Optimal {
			en := Enumeration{Status: base.Status, Objective: base.Best.Objective}
			if base.Found {
				en.Solutions = []Solution{base.Best}
			}
			return en, false
		}
		bound = base.Best.Objective.Weight
		obj = base.Best.Objective
	}

	e, ok := newEngine(p, oracle, o, b)
	if !ok {
		return Enumeration{Status: Infeasible}, false
	}
	o.OnPhase(PhaseEnumerating)
	e.collect = true
	e.bound = bound
	e.run()

	en := Enumeration{Status: Optimal, Objective: obj, Solutions: e.sols}
	if o.Mode == Satisfy {
		en.Objective = Objective{Unsatisfied: e.goal}
		if len(e.sols) == 0 {
			en.Status = Infeasible
		}
	}
	if e.cut {
		en.Status = Incomplete
	}
	sortSolutions(en.Solutions)

	return en, e.overflow
}

// Aggregate computes one witness plus the union and intersection of all
// optimal subsets, using the configured Strategy.
func Aggregate(p Problem, opts ...Option) (Aggregation, error) {
	if err := p.validate(); err != nil {
		return Aggregation{}, err
	}
	o, err := buildOptions(&p, opts)
	if err != nil {
		return Aggregation{}, err
	}
	if err = o.Ctx.Err(); err != nil {
		return Aggregation{}, err
	}
	b := newBudget(o)
	oracle := memoize(p.Oracle, o.MemoSize)

	var agg Aggregation
	if o.Strategy == StrategyEnumerate {
		en, overflow := enumerate(&p, oracle, &o, b)
		if overflow {
			return Aggregation{}, ErrEnumerationLimit
		}
		agg = fold(en)
	} else {
		agg = aggregateResolve(&p, oracle, &o, b)
	}
	if err = b.err(); err != nil {
		return Aggregation{}, err
	}
	agg.Nodes = b.nodes.Load()
	o.OnPhase(PhaseDone)
	ctxlog.FromContext(o.Ctx).Debug("search: aggregate finished",
		"status", agg.Status.String(), "union", len(agg.Union),
		"intersection", len(agg.Intersection), "nodes", agg.Nodes)

	return agg, nil
}

// fold turns an enumeration into union and intersection.
func fold(en Enumeration) Aggregation {
	agg := Aggregation{Status: en.Status, Union: []int{}, Intersection: []int{}}
	if len(en.Solutions) == 0 {
		return agg
	}
	agg.Witness = en.Solutions[0]
	count := make(map[int]int)
	for _, s := range en.Solutions {
		for _, x := range s.Elements {
			count[x]++
		}
	}
	for x, c := range count {
		agg.Union = append(agg.Union, x)
		if c == len(en.Solutions) {
			agg.Intersection = append(agg.Intersection, x)
		}
	}
	sort.Ints(agg.Union)
	sort.Ints(agg.Intersection)

	return agg
}

// knowledge is what the re-solves of one Aggregate call learn together.
type knowledge struct {
	mu         sync.Mutex
	inUnion    map[int]bool
	refuted    map[int]bool // shown non-essential by some witness
	essential  map[int]bool
	incomplete bool
}

// witness folds an optimal solution into the shared knowledge.
func (k *knowledge) witness(s Solution, candidates []int) {
	in := make(map[int]bool, len(s.Elements))
	for _, x := range s.Elements {
		in[x] = true
		k.inUnion[x] = true
	}
	for _, x := range candidates {
		if !in[x] {
			k.refuted[x] = true
		}
	}
}

func aggregateResolve(p *Problem, oracle Oracle, o *Options, b *budget) Aggregation {
	base := solve(p, oracle, o, b, true)
	if base.Status != Optimal {
		agg := Aggregation{Status: base.Status, Union: []int{}, Intersection: []int{}}
		if base.Found {
			agg.Witness = base.Best
		}
		return agg
	}
	opt := base.Best.Objective
	same := func(a Objective) bool {
		if o.Mode == Satisfy {
			return a.Unsatisfied == opt.Unsatisfied
		}
		return a == opt
	}

	candidates := base.Best.Elements
	k := &knowledge{inUnion: map[int]bool{}, refuted: map[int]bool{}, essential: map[int]bool{}}
	k.witness(base.Best, candidates)

	forbidden := make(map[int]bool, len(o.Forbidden))
	for _, x := range o.Forbidden {
		forbidden[x] = true
	}

	// sub-solve with one extra constraint on x
	check := func(x int, exclude bool) {
		k.mu.Lock()
		skip := (exclude && k.refuted[x]) || (!exclude && k.inUnion[x])
		k.mu.Unlock()
		if skip {
			return
		}
		sub := *o
		if exclude {
			sub.Forbidden = append(append([]int{}, o.Forbidden...), x)
		} else {
			sub.Forced = append(append([]int{}, o.Forced...), x)
		}
		out := solve(p, oracle, &sub, b, false)

		k.mu.Lock()
		defer k.mu.Unlock()
		switch {
		case out.Status == Incomplete:
			k.incomplete = true
		case out.Status == Optimal && same(out.Best.Objective):
			k.witness(out.Best, candidates)
		case exclude:
			k.essential[x] = true
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(o.Workers)
	for _, x := range candidates {
		g.Go(func() error { check(x, true); return nil })
	}
	inWitness := make(map[int]bool, len(candidates))
	for _, x := range candidates {
		inWitness[x] = true
	}
	for x := range p.Weights {
		if inWitness[x] || forbidden[x] {
			continue
		}
		g.Go(func() error { check(x, false); return nil })
	}
	_ = g.Wait()

	agg := Aggregation{Status: Optimal, Witness: base.Best, Union: []int{}, Intersection: []int{}}
	for x := range k.inUnion {
		agg.Union = append(agg.Union, x)
	}
	for _, x := range candidates {
		if k.essential[x] && !k.refuted[x] {
			agg.Intersection = append(agg.Intersection, x)
		}
	}
	sort.Ints(agg.Union)
	sort.Ints(agg.Intersection)
	if k.incomplete {
		agg.Status = Incomplete
	}

	return agg
}

// sortSolutions orders solutions by element lists, lexicographically.
func sortSolutions(sols []Solution) {
	sort.Slice(sols, func(i, j int) bool {
		a, c := sols[i].Elements, sols[j].Elements
		for k := 0; k < len(a) && k < len(c); k++ {
			if a[k] != c[k] {
				return a[k] < c[k]
			}
		}
		return len(a) < len(c)
	})
}
