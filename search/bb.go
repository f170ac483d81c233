// Branch-and-bound over element inclusion.
//
// The engine decides elements one at a time in a fixed order (cheapest first
// in Minimize mode, index order in Satisfy mode), trying inclusion before
// exclusion so cheap feasible subsets surface early and tighten the bound.
//
// Invariants maintained along the DFS path:
//   - chosen = forced ∪ included decisions.
//   - avail  = chosen ∪ undecided (every element not excluded or forbidden).
//   - weight = Σ Weights over chosen.
//   - unsat(avail) == goal, otherwise the node was pruned.

package search

import (
	"sort"
)

// engine holds all data of one constrained solve.
type engine struct {
	p      *Problem
	oracle Oracle
	mode   Mode
	b      *budget

	n       int
	allowed []bool
	forced  []bool
	order   []int   // undecided elements in branch order
	sufMin  []int64 // sufMin[i] = min weight over order[i:]

	chosen []bool
	avail  []bool
	weight int64
	goal   int

	// incumbent
	best  Solution
	found bool

	// enumeration: collect every solution with weight == bound
	collect  bool
	bound    int64
	sols     []Solution
	maxSols  int
	overflow bool

	halt bool
	cut  bool // stopped by the budget
}

// newEngine prepares an engine; ok is false when the constraints contradict
// each other or the goal cannot be met under RequireAll.
func newEngine(p *Problem, oracle Oracle, o *Options, b *budget) (e *engine, ok bool) {
	n := len(p.Weights)
	e = &engine{
		p:       p,
		oracle:  oracle,
		mode:    o.Mode,
		b:       b,
		n:       n,
		allowed: make([]bool, n),
		forced:  make([]bool, n),
		chosen:  make([]bool, n),
		avail:   make([]bool, n),
		maxSols: o.MaxSolutions,
	}
	for i := range e.allowed {
		e.allowed[i] = true
	}
	for _, i := range o.Forbidden {
		e.allowed[i] = false
	}
	for _, i := range o.Forced {
		if !e.allowed[i] {
			return e, false
		}
		e.forced[i] = true
	}

	for i := 0; i < n; i++ {
		e.avail[i] = e.allowed[i]
		if e.forced[i] {
			e.chosen[i] = true
			e.weight += p.Weights[i]
		} else if e.allowed[i] {
			e.order = append(e.order, i)
		}
	}
	if e.mode == Minimize {
		sort.SliceStable(e.order, func(a, c int) bool {
			return p.Weights[e.order[a]] < p.Weights[e.order[c]]
		})
	}
	e.sufMin = make([]int64, len(e.order)+1)
	e.sufMin[len(e.order)] = 0
	for i := len(e.order) - 1; i >= 0; i-- {
		w := p.Weights[e.order[i]]
		if i == len(e.order)-1 || w < e.sufMin[i+1] {
			e.sufMin[i] = w
		} else {
			e.sufMin[i] = e.sufMin[i+1]
		}
	}

	e.goal = e.unsat(e.avail)
	if p.RequireAll && e.goal > 0 {
		return e, false
	}

	return e, true
}

func (e *engine) unsat(mask []bool) int { return e.oracle.Unsatisfied(mask) }

// snapshot captures the current chosen set.
func (e *engine) snapshot() Solution {
	elems := make([]int, 0)
	for i, ok := range e.chosen {
		if ok {
			elems = append(elems, i)
		}
	}

	return Solution{Elements: elems, Objective: Objective{Unsatisfied: e.goal, Weight: e.weight}}
}

// irredundant reports whether no zero-weight chosen element is padding.
func (e *engine) irredundant() bool {
	for i, ok := range e.chosen {
		if !ok || e.p.Weights[i] != 0 {
			continue
		}
		e.chosen[i] = false
		u := e.unsat(e.chosen)
		e.chosen[i] = true
		if u == e.goal {
			return false
		}
	}

	return true
}

// prune reports whether a partial weight can no longer lead to a kept solution.
func (e *engine) prune(w int64) bool {
	if e.mode == Satisfy {
		return false
	}
	if e.collect {
		return w > e.bound
	}

	return e.found && w >= e.best.Objective.Weight
}

// record handles a complete solution at the current node.
func (e *engine) record() {
	switch {
	case e.collect:
		if e.mode == Minimize && e.weight != e.bound {
			return
		}
		e.sols = append(e.sols, e.snapshot())
		if len(e.sols) > e.maxSols {
			e.overflow = true
			e.halt = true
		}
	case e.mode == Satisfy:
		e.best = e.snapshot()
		e.found = true
		e.halt = true
	case !e.found || e.weight < e.best.Objective.Weight:
		e.best = e.snapshot()
		e.found = true
	}
}

// seedIncumbent runs a greedy reduction from every allowed element, dropping
// the heaviest first, and keeps the inclusion-minimal result as incumbent.
func (e *engine) seedIncumbent() {
	cur := make([]bool, e.n)
	copy(cur, e.avail)
	for k := len(e.order) - 1; k >= 0; k-- {
		i := e.order[k]
		cur[i] = false
		if e.unsat(cur) != e.goal {
			cur[i] = true
		}
	}

	saved, savedW := e.chosen, e.weight
	e.chosen = cur
	e.weight = 0
	for i, ok := range cur {
		if ok {
			e.weight += e.p.Weights[i]
		}
	}
	if e.mode == Satisfy {
		if e.p.Accept == nil || e.p.Accept(cur) {
			e.record()
		}
	} else if e.irredundant() {
		e.record()
	}
	e.chosen, e.weight = saved, savedW
}

// dfs explores decisions on order[i:]; u is unsat(chosen).
func (e *engine) dfs(i, u int) {
	if e.halt {
		return
	}
	if e.b.tick() {
		e.cut, e.halt = true, true
		return
	}

	if e.mode == Minimize {
		if u == e.goal {
			if e.irredundant() {
				e.record()
			}
			// supersets are heavier or padded
			return
		}
		if i == len(e.order) || e.prune(e.weight+e.sufMin[i]) {
			return
		}
	} else if i == len(e.order) {
		if u == e.goal && (e.p.Accept == nil || e.p.Accept(e.chosen)) {
			e.record()
		}
		return
	}

	x := e.order[i]
	w := e.p.Weights[x]

	// include
	e.chosen[x] = true
	e.weight += w
	if !e.prune(e.weight) {
		e.dfs(i+1, e.unsat(e.chosen))
	}
	e.chosen[x] = false
	e.weight -= w
	if e.halt {
		return
	}

	// exclude
	e.avail[x] = false
	if e.unsat(e.avail) == e.goal {
		e.dfs(i+1, u)
	}
	e.avail[x] = true
}

// run performs one complete solve from the root.
func (e *engine) run() {
	e.dfs(0, e.unsat(e.chosen))
}
