package scope

import (
	"sort"

	"github.com/katalvlaran/mene/core"
)

// Scope expands net from seeds and classifies the seeds.
//
// A seed is produced when some fired reaction outputs it, non-produced when
// it appears in the network but nothing fired outputs it, and absent when no
// reaction mentions it. Absent seeds are not part of the scope.
func Scope(net *core.Network, seeds []string, opts ...Option) (*Result, error) {
	x, err := expand(net, seeds, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Scope:            net.CompoundIDs(x.avail),
		ProducedSeeds:    []string{},
		NonProducedSeeds: []string{},
		AbsentSeeds:      []string{},
		Activable:        firedIDs(x),
	}
	for _, id := range uniqueSorted(seeds) {
		c, ok := net.CompoundIndex(id)
		switch {
		case !ok:
			res.AbsentSeeds = append(res.AbsentSeeds, id)
		case x.produced[c]:
			res.ProducedSeeds = append(res.ProducedSeeds, id)
		default:
			res.NonProducedSeeds = append(res.NonProducedSeeds, id)
		}
	}

	return res, nil
}

// Activation returns the reactions that fire when net is expanded from seeds.
func Activation(net *core.Network, seeds []string, opts ...Option) ([]string, error) {
	x, err := expand(net, seeds, opts)
	if err != nil {
		return nil, err
	}

	return firedIDs(x), nil
}

func firedIDs(x *expander) []string {
	out := make([]string, 0)
	for r := 0; r < x.net.NumReactions(); r++ {
		if x.fired(r) {
			out = append(out, x.net.ReactionID(r))
		}
	}

	return out
}

// uniqueSorted returns a sorted copy of ids without duplicates.
func uniqueSorted(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
