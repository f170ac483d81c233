package search

import (
	"context"
	"sync/atomic"
	"time"
)

// budgetCheckMask sets how often the clock and context are polled. The first
// node always polls, so a limit spent before the search starts cuts at once.
const budgetCheckMask = 255

// budget is shared by every engine of one public call, so time and node
// limits bound the whole call, re-solves included.
type budget struct {
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	nodeLimit   int64

	nodes     atomic.Int64
	exhausted atomic.Bool
	cancelled atomic.Bool
}

func newBudget(o Options) *budget {
	b := &budget{ctx: o.Ctx, nodeLimit: o.NodeLimit}
	if o.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(o.TimeLimit)
	}

	return b
}

// tick accounts one node and reports whether the search must stop.
func (b *budget) tick() bool {
	if b.exhausted.Load() {
		return true
	}
	n := b.nodes.Add(1)
	if b.nodeLimit > 0 && n > b.nodeLimit {
		b.exhausted.Store(true)
		return true
	}
	if n != 1 && n&budgetCheckMask != 0 {
		return false
	}
	if b.useDeadline && time.Now().After(b.deadline) {
		b.exhausted.Store(true)
		return true
	}
	if b.ctx.Err() != nil {
		b.cancelled.Store(true)
		b.exhausted.Store(true)
		return true
	}

	return false
}

// err returns the context error when the stop came from cancellation.
func (b *budget) err() error {
	if b.cancelled.Load() {
		return b.ctx.Err()
	}

	return nil
}
