// Package cofactor finds the cheapest sets of extra seed compounds that make
// unproducible targets producible.
//
// Given seeds that leave some targets outside the scope, a cofactor set C is
// chosen from weighted candidates so that scope(network, seeds ∪ C) covers as
// many targets as possible, and among those choices has the least total
// weight. Ties are common, so besides one optimum the package reports the
// union (cofactors in at least one optimum) and the intersection (cofactors in
// every optimum).
//
// Candidates
//
// When no candidates are given, every network compound is a candidate,
// weighted by the number of reaction sides referencing it. Before searching,
// candidates that cannot matter are dropped:
//
//   - ids absent from the network (an absent seed never enters the scope);
//   - compounds already in the base scope;
//   - compounds from which no unproducible target is structurally reachable.
//
// API
//
//	SolveOptimal  one optimum, the still-unproducible and newly producible targets
//	Union         cofactors of at least one optimum
//	Intersection  cofactors of every optimum
//	EnumerateAll  every optimum, bounded by WithMaxSolutions
//	Run           everything above except the enumeration, in one call
//
// Budgets (WithTimeLimit, WithNodeLimit, WithContext) bound the search. An
// exhausted budget is not an error: the result carries search.Incomplete.
// Exceeding the enumeration cap is: search.ErrEnumerationLimit.
package cofactor
