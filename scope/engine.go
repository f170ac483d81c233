package scope

import "github.com/katalvlaran/mene/core"

// Engine is a reachability oracle over dense indices. It holds no mutable
// state, so one Engine may serve any number of goroutines.
type Engine struct {
	net *core.Network
}

// NewEngine wraps net.
func NewEngine(net *core.Network) (*Engine, error) {
	if net == nil {
		return nil, core.ErrNetworkNil
	}

	return &Engine{net: net}, nil
}

// Network returns the wrapped network.
func (e *Engine) Network() *core.Network { return e.net }

// Reach returns the availability mask reached from seeds using only the
// reactions flagged in allowed (nil = all).
func (e *Engine) Reach(seeds []int, allowed []bool) []bool {
	x := newExpander(e.net, allowed)
	x.start(seeds)
	_ = x.run()

	return x.avail
}

// Unmet counts the targets not reached from seeds using only the reactions
// flagged in allowed (nil = all). It stops expanding once every target is in.
func (e *Engine) Unmet(seeds []int, allowed []bool, targets []int) int {
	x := newExpander(e.net, allowed)
	x.stopWhen(targets)
	if x.done {
		return 0
	}
	x.start(seeds)
	_ = x.run()

	return x.wantLeft
}

// Fired returns the mask of reactions that fire from seeds within allowed.
func (e *Engine) Fired(seeds []int, allowed []bool) []bool {
	x := newExpander(e.net, allowed)
	x.start(seeds)
	_ = x.run()
	out := make([]bool, e.net.NumReactions())
	for r := range out {
		out[r] = x.fired(r)
	}

	return out
}
