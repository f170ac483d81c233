// Package pathway: per-target path problems.
//
// The search universe of a target is its activable, structurally upstream
// reactions. The oracle reports 1 while the target is out of reach through
// the chosen reactions alone. Non-minimal mode runs the search in Satisfy
// order and filters complete subsets with the liveness and connectivity
// check; minimal mode minimizes the reaction count. Every stage of one
// target draws on a single deadline.

package pathway

import (
	"errors"
	"time"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/ctxlog"
	"github.com/katalvlaran/mene/producibility"
	"github.com/katalvlaran/mene/scope"
	"github.com/katalvlaran/mene/search"
)

// instance is the path problem of one producible target. Search elements are
// positions in rxns, the activable reactions upstream of the target.
type instance struct {
	net    *core.Network
	eng    *scope.Engine
	o      Options
	seeds  []int
	target int
	rxns   []int

	// deadline is shared by every search of this target; zero means none.
	deadline time.Time
}

func prepare(net *core.Network, seeds []string, target string, opts []Option) (*instance, error) {
	if net == nil {
		return nil, core.ErrNetworkNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = producibility.Require(net, "pathway", seeds, []string{target}, scope.WithContext(o.Ctx)); err != nil {
		return nil, err
	}
	eng, err := scope.NewEngine(net)
	if err != nil {
		return nil, err
	}

	in := &instance{net: net, eng: eng, o: o}
	if o.TimeLimit > 0 {
		in.deadline = time.Now().Add(o.TimeLimit)
	}
	in.seeds, _ = net.CompoundIndices(seeds)
	in.target, _ = net.CompoundIndex(target)
	fired := eng.Fired(in.seeds, nil)
	_, up := scope.Upstream(net, []int{in.target})
	for r := range fired {
		if fired[r] && up[r] {
			in.rxns = append(in.rxns, r)
		}
	}
	ctxlog.FromContext(o.Ctx).Debug("pathway: problem prepared",
		"target", target, "reactions", len(in.rxns), "minimal", o.Minimal)

	return in, nil
}

// allowed expands a search mask into a reaction mask.
func (in *instance) allowed(chosen []bool) []bool {
	m := make([]bool, in.net.NumReactions())
	for i, ok := range chosen {
		if ok {
			m[in.rxns[i]] = true
		}
	}

	return m
}

// Unsatisfied implements search.Oracle: 1 while the target is out of reach.
func (in *instance) Unsatisfied(chosen []bool) int {
	return in.eng.Unmet(in.seeds, in.allowed(chosen), []int{in.target})
}

// accept keeps live, connected paths.
func (in *instance) accept(chosen []bool) bool {
	allowed := in.allowed(chosen)
	fired := in.eng.Fired(in.seeds, allowed)
	for r, ok := range allowed {
		if ok && !fired[r] {
			return false
		}
	}

	return connected(in.net, in.target, allowed)
}

func (in *instance) problem() search.Problem {
	w := make([]int64, len(in.rxns))
	for i := range w {
		w[i] = 1
	}
	p := search.Problem{Weights: w, Oracle: in, RequireAll: true}
	if !in.o.Minimal {
		p.Accept = in.accept
	}

	return p
}

func (in *instance) searchOptions() []search.Option {
	mode := search.Satisfy
	if in.o.Minimal {
		mode = search.Minimize
	}

	return []search.Option{
		search.WithContext(in.o.Ctx),
		search.WithMode(mode),
		search.WithTimeLimit(in.remaining()),
		search.WithNodeLimit(in.o.NodeLimit),
		search.WithMaxSolutions(in.o.MaxSolutions),
		search.WithWorkers(in.o.Workers),
		search.WithStrategy(in.o.Strategy),
	}
}

// remaining is the time left before the target deadline. A spent deadline
// yields the shortest positive limit so the next search stops at its first node.
func (in *instance) remaining() time.Duration {
	if in.deadline.IsZero() {
		return 0
	}
	if d := time.Until(in.deadline); d > 0 {
		return d
	}

	return time.Nanosecond
}

// ids maps search elements to sorted reaction ids.
func (in *instance) ids(elems []int) []string {
	mask := make([]bool, len(in.rxns))
	for _, e := range elems {
		mask[e] = true
	}

	return in.net.ReactionIDs(in.allowed(mask))
}

// one finds a single path: a least one in minimal mode, otherwise an
// inclusion-minimal one.
func (in *instance) one() ([]string, search.Status, error) {
	out, err := search.Solve(in.problem(), in.searchOptions()...)
	if err != nil {
		return nil, 0, err
	}

	return in.ids(out.Best.Elements), out.Status, nil
}

// aggregate returns union and intersection of all paths.
func (in *instance) aggregate() (union, inter []string, status search.Status, err error) {
	if in.o.Minimal {
		agg, err := search.Aggregate(in.problem(), in.searchOptions()...)
		if err != nil {
			return nil, nil, 0, err
		}
		return in.ids(agg.Union), in.ids(agg.Intersection), agg.Status, nil
	}

	all := make([]int, len(in.rxns))
	for i := range all {
		all[i] = i
	}
	var essential []int
	mask := make([]bool, len(in.rxns))
	for i := range mask {
		mask[i] = true
	}
	for i := range in.rxns {
		if err = in.o.Ctx.Err(); err != nil {
			return nil, nil, 0, err
		}
		mask[i] = false
		if in.Unsatisfied(mask) > 0 {
			essential = append(essential, i)
		}
		mask[i] = true
	}

	return in.ids(all), in.ids(essential), search.Optimal, nil
}

// enumerate lists every path, failing with search.ErrEnumerationLimit past
// the cap (the partial list is returned alongside).
func (in *instance) enumerate() ([][]string, search.Status, error) {
	en, err := search.Enumerate(in.problem(), in.searchOptions()...)
	if err != nil && !errors.Is(err, search.ErrEnumerationLimit) {
		return nil, 0, err
	}
	out := make([][]string, 0, len(en.Solutions))
	for _, s := range en.Solutions {
		out = append(out, in.ids(s.Elements))
	}

	return out, en.Status, err
}

// SolveOne returns one path to target; in minimal mode a shortest one.
func SolveOne(net *core.Network, seeds []string, target string, opts ...Option) (*Path, error) {
	in, err := prepare(net, seeds, target, opts)
	if err != nil {
		return nil, err
	}
	one, status, err := in.one()
	if err != nil {
		return nil, err
	}

	return &Path{Target: target, Status: status, OnePath: one}, nil
}

// Union returns every reaction of at least one path to target.
func Union(net *core.Network, seeds []string, target string, opts ...Option) ([]string, search.Status, error) {
	in, err := prepare(net, seeds, target, opts)
	if err != nil {
		return nil, 0, err
	}
	union, _, status, err := in.aggregate()

	return union, status, err
}

// Intersection returns the reactions present in every path to target.
func Intersection(net *core.Network, seeds []string, target string, opts ...Option) ([]string, search.Status, error) {
	in, err := prepare(net, seeds, target, opts)
	if err != nil {
		return nil, 0, err
	}
	_, inter, status, err := in.aggregate()

	return inter, status, err
}

// EnumerateAll lists every path to target, bounded by WithMaxSolutions.
func EnumerateAll(net *core.Network, seeds []string, target string, opts ...Option) ([][]string, search.Status, error) {
	in, err := prepare(net, seeds, target, opts)
	if err != nil {
		return nil, 0, err
	}

	return in.enumerate()
}

// Analyze computes one path, union and intersection for target, plus every
// path when WithEnumeration is set.
func Analyze(net *core.Network, seeds []string, target string, opts ...Option) (*Path, error) {
	in, err := prepare(net, seeds, target, opts)
	if err != nil {
		return nil, err
	}

	p := &Path{Target: target}
	if p.OnePath, p.Status, err = in.one(); err != nil {
		return nil, err
	}
	union, inter, status, err := in.aggregate()
	if err != nil {
		return nil, err
	}
	p.Union, p.Intersection = union, inter
	p.Status = worst(p.Status, status)
	if in.o.Enumerate {
		if p.All, status, err = in.enumerate(); err != nil {
			return p, err
		}
		p.Status = worst(p.Status, status)
	}
	ctxlog.FromContext(in.o.Ctx).Debug("pathway: target analyzed",
		"target", target, "status", p.Status.String(), "one", len(p.OnePath),
		"union", len(p.Union), "intersection", len(p.Intersection))

	return p, nil
}

// worst keeps Incomplete over Infeasible over Optimal.
func worst(a, b search.Status) search.Status {
	rank := func(s search.Status) int {
		switch s {
		case search.Incomplete:
			return 2
		case search.Infeasible:
			return 1
		default:
			return 0
		}
	}
	if rank(b) > rank(a) {
		return b
	}

	return a
}
