// Package scope computes what a metabolic network can make from a set of
// seed compounds (network expansion), together with its variants.
//
// What
//
//   - Scope:       the fixpoint of repeated reaction firing from the seeds,
//     with the seeds split into produced, non-produced and absent.
//   - Activation:  reactions that become ready at some point of the expansion.
//   - Incremental: the expansion round at which each compound first appears
//     (seeds are round 0); refuses to run while a target is unreachable.
//   - Labelled:    which seed labels each scope compound depends on.
//   - FindDeadEnds: compounds no reaction produces or no reaction consumes
//     (structural, seed independent).
//   - ExchangeSeeds: compounds made available by boundary reactions.
//   - Engine:      an allocation-light reachability oracle over compound and
//     reaction indices, used by the cofactor and pathway solvers.
//
// Algorithm
//
// Worklist saturation. Every reaction keeps a counter of reactants not yet
// processed; a reversible reaction keeps a mirrored counter on its products.
// Newly available compounds enter a FIFO queue; popping a compound decrements
// the counters of the reactions that reference it, and a reaction whose counter
// reaches zero fires, making its outputs available. Reactions without reactants
// fire unconditionally at start.
//
// Because the queue is FIFO and seeds enter first, compounds are processed in
// non-decreasing round order, so the round recorded on first arrival equals
// 1 + the largest round among the inputs of the first reaction producing it.
//
// Complexity (R = |reactions|, C = |compounds|, A = total reaction sides)
//
//   - Time:   O(C + R + A), each compound popped once, each counter touched once per reference
//   - Memory: O(C + R)
//
// Options
//
//   - WithContext(ctx):          cancellation, checked every 1024 pops.
//   - WithReactionSubset(ids):   expand inside a sub-network.
//   - WithOnFire(fn):            hook called each time a reaction fires.
//
// Errors
//
//   - core.ErrNetworkNil          nil network.
//   - ErrReactionNotFound         WithReactionSubset named an unknown reaction.
//   - ErrOptionViolation          invalid option.
//   - *core.PreconditionError     Incremental with unreachable targets.
//   - ctx.Err()                   cancellation.
package scope
