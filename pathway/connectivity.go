package pathway

import "github.com/katalvlaran/mene/core"

// connected reports whether every reaction flagged in allowed lies on a
// backward walk from target through allowed reactions only.
func connected(net *core.Network, target int, allowed []bool) bool {
	seenC := make([]bool, net.NumCompounds())
	seenR := make([]bool, net.NumReactions())
	seenC[target] = true
	queue := []int{target}
	visit := func(r int, inputs []int) {
		seenR[r] = true
		for _, c := range inputs {
			if !seenC[c] {
				seenC[c] = true
				queue = append(queue, c)
			}
		}
	}
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		for _, r := range net.ProducersOf(c) {
			if allowed[r] {
				visit(r, net.Reactants(r))
			}
		}
		for _, r := range net.ConsumersOf(c) {
			if allowed[r] && net.Reversible(r) {
				visit(r, net.Products(r))
			}
		}
	}
	for r, ok := range allowed {
		if ok && !seenR[r] {
			return false
		}
	}

	return true
}
