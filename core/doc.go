// Package core defines the immutable metabolic network model shared by every
// mene analysis: reactions over compounds, the species sets used as seeds and
// targets, and weighted cofactor candidates.
//
// A Network N = (C, R) is a directed hypergraph. Each Reaction consumes a set of
// reactant compounds and produces a set of product compounds; a reversible
// reaction may also fire from its product side.
//
//   - Reactions with no reactants are unconditional sources (exchange reactions).
//   - Compounds are never declared on their own: C is exactly the set of ids
//     mentioned by some reaction.
//   - Duplicate compound ids inside one side of a reaction are collapsed.
//
// Building
//
//	b := core.NewBuilder(core.WithName("toy"))
//	_ = b.AddReaction("R_1", []string{"A", "B"}, []string{"C"})
//	_ = b.AddReaction("R_2", nil, []string{"A"}, core.WithReversible(true))
//	net, err := b.Build()
//
// Once built, a Network never changes. All accessors are safe for concurrent
// use without locking, so one Network may back any number of parallel queries.
//
// Index view
//
// Algorithms work on dense integer indices rather than ids. Compounds and
// reactions are numbered in ascending id order, so every index-based result
// maps back to a deterministic, sorted id list:
//
//	Reactants(r), Products(r)   compound indices of reaction r
//	ConsumersOf(c)              reactions listing c as a reactant
//	ProducersOf(c)              reactions listing c as a product
//
// Errors
//
//   - ErrEmptyReactionID       reaction id is "".
//   - ErrEmptyCompoundID       a reactant or product id is "".
//   - ErrDuplicateReaction     the same reaction id was added twice.
//   - ErrBuilderSealed         AddReaction after Build.
//   - ErrNetworkNil            nil *Network passed to an algorithm.
//   - ErrInfeasiblePrecondition / *PreconditionError
//     raised by analyses that refuse to run while targets are unproducible.
package core
