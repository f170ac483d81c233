package scope

import (
	"sort"

	"github.com/katalvlaran/mene/core"
)

// Incremental expands net from seeds and records the round at which each
// compound first becomes available. Seeds present in the network are round 0.
//
// When targets is non-empty, every target must be reachable: otherwise the
// call fails with a *core.PreconditionError listing the blocking targets and
// no rounds are reported.
func Incremental(net *core.Network, seeds, targets []string, opts ...Option) (*Steps, error) {
	x, err := expand(net, seeds, opts)
	if err != nil {
		return nil, err
	}

	var blocking []string
	for _, id := range uniqueSorted(targets) {
		c, ok := net.CompoundIndex(id)
		if !ok || !x.avail[c] {
			blocking = append(blocking, id)
		}
	}
	if len(blocking) > 0 {
		return nil, &core.PreconditionError{Op: "incremental scope", Targets: blocking}
	}

	st := &Steps{
		StepOf: make(map[string]int),
		ByStep: make(map[int][]string),
	}
	for c, ok := range x.avail {
		if !ok {
			continue
		}
		id, k := net.CompoundID(c), x.round[c]
		st.StepOf[id] = k
		st.ByStep[k] = append(st.ByStep[k], id)
		if k > st.Rounds {
			st.Rounds = k
		}
	}
	for k := range st.ByStep {
		sort.Strings(st.ByStep[k])
	}

	return st, nil
}
