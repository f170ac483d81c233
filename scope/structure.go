package scope

import (
	"sort"

	"github.com/katalvlaran/mene/core"
)

// FindDeadEnds reports, over the whole network and ignoring seeds, the
// compounds that no reaction can produce and those that no reaction can
// consume. Both sides of a reversible reaction count as produced and consumed.
func FindDeadEnds(net *core.Network) (*DeadEnds, error) {
	if net == nil {
		return nil, core.ErrNetworkNil
	}
	produced := make([]bool, net.NumCompounds())
	consumed := make([]bool, net.NumCompounds())
	for r := 0; r < net.NumReactions(); r++ {
		for _, c := range net.Products(r) {
			produced[c] = true
		}
		for _, c := range net.Reactants(r) {
			consumed[c] = true
		}
		if net.Reversible(r) {
			for _, c := range net.Reactants(r) {
				produced[c] = true
			}
			for _, c := range net.Products(r) {
				consumed[c] = true
			}
		}
	}

	res := &DeadEnds{NeverProduced: []string{}, NeverConsumed: []string{}}
	for c := 0; c < net.NumCompounds(); c++ {
		if !produced[c] {
			res.NeverProduced = append(res.NeverProduced, net.CompoundID(c))
		}
		if !consumed[c] {
			res.NeverConsumed = append(res.NeverConsumed, net.CompoundID(c))
		}
	}

	return res, nil
}

// ExchangeSeeds returns the compounds made available by boundary reactions:
// the products of reactions without reactants, and the reactants of
// reversible reactions without products.
func ExchangeSeeds(net *core.Network) ([]string, error) {
	if net == nil {
		return nil, core.ErrNetworkNil
	}
	set := make(map[string]struct{})
	for _, r := range net.Reactions() {
		if len(r.Reactants) == 0 {
			for _, c := range r.Products {
				set[c] = struct{}{}
			}
		}
		if r.Reversible && len(r.Products) == 0 {
			for _, c := range r.Reactants {
				set[c] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)

	return out, nil
}

// Upstream walks the network backwards from targets, ignoring seeds, and
// returns the compounds from which some target is structurally reachable
// together with the reactions on those walks. A reversible reaction is
// followed from whichever side holds the compound. Targets are included.
func Upstream(net *core.Network, targets []int) (compounds, reactions []bool) {
	compounds = make([]bool, net.NumCompounds())
	reactions = make([]bool, net.NumReactions())
	queue := make([]int, 0, len(targets))
	push := func(cs []int) {
		for _, c := range cs {
			if !compounds[c] {
				compounds[c] = true
				queue = append(queue, c)
			}
		}
	}
	push(targets)
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		for _, r := range net.ProducersOf(c) {
			reactions[r] = true
			push(net.Reactants(r))
		}
		for _, r := range net.ConsumersOf(c) {
			if net.Reversible(r) {
				reactions[r] = true
				push(net.Products(r))
			}
		}
	}

	return compounds, reactions
}
