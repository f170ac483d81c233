package pathway

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/ctxlog"
	"github.com/katalvlaran/mene/producibility"
	"github.com/katalvlaran/mene/scope"
	"github.com/katalvlaran/mene/search"
)

// Run classifies targets, then analyzes every producible one concurrently.
// Results do not depend on scheduling: each target is analyzed on its own
// and the merged lists are sorted. The first failing target cancels the rest.
func Run(net *core.Network, seeds, targets []string, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, core.ErrNetworkNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	cl, err := producibility.Classify(net, seeds, targets, scope.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	log := ctxlog.FromContext(o.Ctx)
	log.Debug("pathway: targets classified",
		"producible", len(cl.Producible), "unproducible", len(cl.Unproducible))

	paths := make([]*Path, len(cl.Producible))
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	sub := append(append([]Option{}, opts...), WithContext(ctx))
	for i, t := range cl.Producible {
		g.Go(func() error {
			p, err := Analyze(net, seeds, t, sub...)
			if err != nil {
				return fmt.Errorf("pathway: target %q: %w", t, err)
			}
			paths[i] = p
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Status:       search.Optimal,
		Unproducible: cl.Unproducible,
		Targets:      make(map[string]*Path, len(paths)),
	}
	var one, union, inter []string
	for _, p := range paths {
		res.Targets[p.Target] = p
		res.Status = worst(res.Status, p.Status)
		one = append(one, p.OnePath...)
		union = append(union, p.Union...)
		inter = append(inter, p.Intersection...)
	}
	res.OnePath, res.Union, res.Intersection = merge(one), merge(union), merge(inter)

	return res, nil
}

// merge sorts ids and drops repeats; the result is never nil.
func merge(ids []string) []string {
	sort.Strings(ids)
	out := make([]string, 0, len(ids))
	for i, id := range ids {
		if i == 0 || ids[i-1] != id {
			out = append(out, id)
		}
	}

	return out
}
