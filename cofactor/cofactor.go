// Package cofactor: problem preparation and entry points.
//
// A cofactor problem keeps only candidates that can matter: present in the
// network, outside the base scope and structurally upstream of a missing
// target. The oracle counts targets still missing once the chosen candidates
// join the seeds; it is monotone, so the search core applies unchanged.
//
// Complexity:
//
//   - Oracle call: one scope expansion, O(|C| + Σ|reaction sides|)
//   - Search:      exponential in the kept candidates in the worst case

package cofactor

import (
	"errors"
	"sort"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/ctxlog"
	"github.com/katalvlaran/mene/scope"
	"github.com/katalvlaran/mene/search"
)

// instance is one prepared cofactor problem over a filtered candidate universe.
type instance struct {
	net   *core.Network
	eng   *scope.Engine
	seeds []int

	unprod  []string // targets outside the base scope, sorted
	missing []int    // the unprod targets present in the network

	cands []core.Candidate
	idx   []int // compound index of cands[i]
}

func prepare(net *core.Network, seeds, targets []string, opts []Option) (*instance, Options, error) {
	if net == nil {
		return nil, Options{}, core.ErrNetworkNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, o, err
	}
	eng, err := scope.NewEngine(net)
	if err != nil {
		return nil, o, err
	}

	in := &instance{net: net, eng: eng, unprod: []string{}}
	in.seeds, _ = net.CompoundIndices(seeds)
	base := eng.Reach(in.seeds, nil)
	for _, id := range core.NewSpeciesSet(targets...).IDs() {
		c, ok := net.CompoundIndex(id)
		if ok && base[c] {
			continue
		}
		in.unprod = append(in.unprod, id)
		if ok {
			in.missing = append(in.missing, c)
		}
	}

	cands := o.Candidates
	if cands == nil {
		cands = core.DefaultCandidates(net)
	} else {
		cands = append([]core.Candidate{}, cands...)
		core.SortCandidates(cands)
	}
	up, _ := scope.Upstream(net, in.missing)
	for i, cd := range cands {
		if i > 0 && cands[i-1].ID == cd.ID {
			continue // lowest weight of a repeated id wins
		}
		c, ok := net.CompoundIndex(cd.ID)
		if !ok || base[c] || !up[c] {
			continue
		}
		in.cands = append(in.cands, cd)
		in.idx = append(in.idx, c)
	}

	ctxlog.FromContext(o.Ctx).Debug("cofactor: problem prepared",
		"network", net.Name(), "unproducible", len(in.unprod),
		"candidates", len(cands), "kept", len(in.cands))

	return in, o, nil
}

// Unsatisfied implements search.Oracle: unproducible targets still missing
// once the chosen candidates are added to the seeds.
func (in *instance) Unsatisfied(chosen []bool) int {
	return in.eng.Unmet(in.with(chosen), nil, in.missing)
}

// with returns the seed indices extended by the chosen candidates.
func (in *instance) with(chosen []bool) []int {
	out := make([]int, len(in.seeds), len(in.seeds)+len(in.idx))
	copy(out, in.seeds)
	for i, ok := range chosen {
		if ok {
			out = append(out, in.idx[i])
		}
	}

	return out
}

func (in *instance) problem() search.Problem {
	w := make([]int64, len(in.cands))
	for i, cd := range in.cands {
		w[i] = cd.Weight
	}

	return search.Problem{Weights: w, Oracle: in}
}

// pick maps element indices back to candidates.
func (in *instance) pick(elems []int) []core.Candidate {
	out := make([]core.Candidate, 0, len(elems))
	for _, e := range elems {
		out = append(out, in.cands[e])
	}
	core.SortCandidates(out)

	return out
}

// solution evaluates one chosen set against the targets.
func (in *instance) solution(status search.Status, elems []int) Solution {
	mask := make([]bool, len(in.cands))
	sol := Solution{
		Status:            status,
		Chosen:            in.pick(elems),
		StillUnproducible: []string{},
		NewlyProducible:   []string{},
	}
	for _, e := range elems {
		mask[e] = true
		sol.Objective.Weight += in.cands[e].Weight
	}
	reach := in.eng.Reach(in.with(mask), nil)
	for _, id := range in.unprod {
		if c, ok := in.net.CompoundIndex(id); ok && reach[c] {
			sol.NewlyProducible = append(sol.NewlyProducible, id)
		} else {
			sol.StillUnproducible = append(sol.StillUnproducible, id)
		}
	}
	sol.Objective.Unsatisfied = len(sol.StillUnproducible)

	return sol
}

// SolveOptimal returns one optimal cofactor set. Which of several tied optima
// is returned is unspecified; use Union and Intersection for stable answers.
func SolveOptimal(net *core.Network, seeds, targets []string, opts ...Option) (*Solution, error) {
	in, o, err := prepare(net, seeds, targets, opts)
	if err != nil {
		return nil, err
	}
	out, err := search.Solve(in.problem(), o.searchOptions()...)
	if err != nil {
		return nil, err
	}
	sol := in.solution(out.Status, out.Best.Elements)

	return &sol, nil
}

// Union returns the cofactors of at least one optimum, sorted by id.
func Union(net *core.Network, seeds, targets []string, opts ...Option) ([]core.Candidate, search.Status, error) {
	res, err := Run(net, seeds, targets, opts...)
	if err != nil {
		return nil, 0, err
	}

	return res.Union, res.Status, nil
}

// Intersection returns the cofactors of every optimum, sorted by id.
func Intersection(net *core.Network, seeds, targets []string, opts ...Option) ([]core.Candidate, search.Status, error) {
	res, err := Run(net, seeds, targets, opts...)
	if err != nil {
		return nil, 0, err
	}

	return res.Intersection, res.Status, nil
}

// Run computes one optimum together with the union and intersection of all
// optima.
func Run(net *core.Network, seeds, targets []string, opts ...Option) (*Result, error) {
	in, o, err := prepare(net, seeds, targets, opts)
	if err != nil {
		return nil, err
	}
	agg, err := search.Aggregate(in.problem(), o.searchOptions()...)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Solution:     in.solution(agg.Status, agg.Witness.Elements),
		Union:        in.pick(agg.Union),
		Intersection: in.pick(agg.Intersection),
	}
	ctxlog.FromContext(o.Ctx).Debug("cofactor: run finished",
		"status", agg.Status.String(), "chosen", len(res.Chosen),
		"union", len(res.Union), "intersection", len(res.Intersection))

	return res, nil
}

// EnumerateAll returns every optimal cofactor set, sorted. More than
// MaxSolutions optima fails with search.ErrEnumerationLimit, returned with
// the first MaxSolutions sets.
func EnumerateAll(net *core.Network, seeds, targets []string, opts ...Option) (*Enumeration, error) {
	in, o, err := prepare(net, seeds, targets, opts)
	if err != nil {
		return nil, err
	}
	en, err := search.Enumerate(in.problem(), o.searchOptions()...)
	if err != nil && !errors.Is(err, search.ErrEnumerationLimit) {
		return nil, err
	}

	out := &Enumeration{Status: en.Status, Solutions: make([][]core.Candidate, 0, len(en.Solutions))}
	for _, s := range en.Solutions {
		out.Solutions = append(out.Solutions, in.pick(s.Elements))
	}
	sort.SliceStable(out.Solutions, func(i, j int) bool {
		return lessCandidates(out.Solutions[i], out.Solutions[j])
	})
	if len(en.Solutions) > 0 {
		out.Objective = in.solution(en.Status, en.Solutions[0].Elements).Objective
	}

	return out, err
}

func lessCandidates(a, b []core.Candidate) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k].ID != b[k].ID {
			return a[k].ID < b[k].ID
		}
	}

	return len(a) < len(b)
}
