// Package scope computes the forward expansion of a metabolic network.
//
// The expander saturates from the seeds with one missing-reactant counter per
// reaction direction: a compound becoming available decrements the counter of
// every reaction that consumes it, and a direction whose counter reaches zero
// fires. A reversible reaction keeps a second counter over its products.
// The round of a compound is one more than the latest round among the inputs
// of the first reaction producing it; seeds are round 0.
//
// Complexity:
//
//   - Time:   O(|C| + Σ|reaction sides|) (each reference is decremented once)
//   - Memory: O(|C| + |R|)
package scope

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mene/core"
)

// ctxCheckMask sets how often the expansion polls for cancellation.
const ctxCheckMask = 1023

// expander encapsulates the mutable state of one saturation run.
type expander struct {
	net     *core.Network
	ctx     context.Context
	allowed []bool // nil: every reaction
	onFire  func(r int, backward bool, round int)

	avail    []bool
	round    []int
	produced []bool // output of some fired reaction
	missFwd  []int
	missRev  []int
	firedFwd []bool
	firedRev []bool
	queue    []int

	want     []bool // optional early-exit targets
	wantLeft int
	done     bool
}

// newExpander allocates state for net restricted to allowed (nil = all).
func newExpander(net *core.Network, allowed []bool) *expander {
	nc, nr := net.NumCompounds(), net.NumReactions()
	x := &expander{
		net:      net,
		allowed:  allowed,
		avail:    make([]bool, nc),
		round:    make([]int, nc),
		produced: make([]bool, nc),
		missFwd:  make([]int, nr),
		missRev:  make([]int, nr),
		firedFwd: make([]bool, nr),
		firedRev: make([]bool, nr),
		queue:    make([]int, 0, nc),
	}
	for r := 0; r < nr; r++ {
		x.missFwd[r] = len(net.Reactants(r))
		x.missRev[r] = len(net.Products(r))
	}

	return x
}

// ok reports whether reaction r takes part in this expansion.
func (x *expander) ok(r int) bool { return x.allowed == nil || x.allowed[r] }

// stopWhen makes run return as soon as every compound in targets is available.
func (x *expander) stopWhen(targets []int) {
	x.want = make([]bool, len(x.avail))
	for _, c := range targets {
		if !x.want[c] {
			x.want[c] = true
			x.wantLeft++
		}
	}
	x.done = x.wantLeft == 0
}

// makeAvailable marks c available at round k and queues it.
func (x *expander) makeAvailable(c, k int) {
	if x.avail[c] {
		return
	}
	x.avail[c] = true
	x.round[c] = k
	x.queue = append(x.queue, c)
	if x.want != nil && x.want[c] {
		x.wantLeft--
		if x.wantLeft == 0 {
			x.done = true
		}
	}
}

// start queues the seeds at round 0 and fires every unconditional reaction.
func (x *expander) start(seeds []int) {
	for _, c := range seeds {
		x.makeAvailable(c, 0)
	}
	for r := range x.missFwd {
		if !x.ok(r) {
			continue
		}
		if x.missFwd[r] == 0 {
			x.fire(r, false)
		}
		if x.net.Reversible(r) && x.missRev[r] == 0 {
			x.fire(r, true)
		}
	}
}

// fire makes the outputs of r available one round after its latest input.
func (x *expander) fire(r int, backward bool) {
	in, out := x.net.Reactants(r), x.net.Products(r)
	if backward {
		in, out = out, in
		x.firedRev[r] = true
	} else {
		x.firedFwd[r] = true
	}
	k := 0
	for _, c := range in {
		if x.round[c] > k {
			k = x.round[c]
		}
	}
	k++
	if x.onFire != nil {
		x.onFire(r, backward, k)
	}
	for _, c := range out {
		x.produced[c] = true
		x.makeAvailable(c, k)
	}
}

// run drains the queue until saturation, early exit or cancellation.
func (x *expander) run() error {
	for head := 0; head < len(x.queue) && !x.done; head++ {
		if x.ctx != nil && head&ctxCheckMask == 0 {
			select {
			case <-x.ctx.Done():
				return x.ctx.Err()
			default:
			}
		}
		c := x.queue[head]
		for _, r := range x.net.ConsumersOf(c) {
			if !x.ok(r) {
				continue
			}
			x.missFwd[r]--
			if x.missFwd[r] == 0 {
				x.fire(r, false)
			}
		}
		for _, r := range x.net.ProducersOf(c) {
			if !x.ok(r) || !x.net.Reversible(r) {
				continue
			}
			x.missRev[r]--
			if x.missRev[r] == 0 {
				x.fire(r, true)
			}
		}
	}

	return nil
}

// fired reports whether reaction r fired in either direction.
func (x *expander) fired(r int) bool { return x.firedFwd[r] || x.firedRev[r] }

// expand is the shared entry point of the id-based API: it validates inputs,
// applies options and runs a full saturation from seeds.
func expand(net *core.Network, seeds []string, opts []Option) (*expander, error) {
	if net == nil {
		return nil, core.ErrNetworkNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var allowed []bool
	if o.Reactions != nil {
		allowed = make([]bool, net.NumReactions())
		for _, id := range o.Reactions {
			r, ok := net.ReactionIndex(id)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrReactionNotFound, id)
			}
			allowed[r] = true
		}
	}

	x := newExpander(net, allowed)
	x.ctx = o.Ctx
	x.onFire = func(r int, backward bool, k int) { o.OnFire(net.ReactionID(r), backward, k) }
	idx, _ := net.CompoundIndices(seeds)
	x.start(idx)
	if err = x.run(); err != nil {
		return nil, err
	}

	return x, nil
}
