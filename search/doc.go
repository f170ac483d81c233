// Package search is the minimal-subset engine shared by the cofactor and
// pathway solvers: exact branch-and-bound over subsets of a weighted element
// universe, guided by a monotone reachability oracle.
//
// Problem
//
// Elements 0..n-1 carry non-negative weights. The Oracle reports, for a subset
// given as a mask, how many goals remain unsatisfied; adding elements never
// increases that count. The objective is lexicographic:
//
//	(1) Unsatisfied goals, then (2) total weight.
//
// Because the oracle is monotone, the primary optimum is known up front: it is
// the count obtained with every allowed element. The search therefore only
// minimizes weight among subsets reaching that count. An optimal subset must
// also be irredundant: a zero-weight element whose removal keeps the primary
// optimum is padding, not part of a distinct optimum.
//
// Modes
//
//   - Minimize: lexicographic, as above.
//   - Satisfy:  any subset reaching the primary optimum that passes the
//     optional Accept predicate; weight is reported but not compared.
//
// State machine
//
//	Init → FeasibilityChecked → { Infeasible | OptimumFound → Enumerating → Done }
//
// Every outcome is tagged Optimal, Infeasible or Incomplete. Incomplete means a
// time, node or context budget ran out before optimality was proven; the best
// incumbent, if any, is still returned.
//
// Aggregation
//
// Union (brave) and intersection (cautious) of all optima are computed by
// per-element re-solves: an element is essential iff forbidding it makes the
// optimum worse or infeasible, and it belongs to the union iff forcing it in
// still attains the optimum. Every witness found on the way answers other
// elements for free. StrategyEnumerate instead enumerates all optima (bounded
// by WithMaxSolutions) and folds them.
//
// Pruning (per node)
//
//   - Feasibility: if chosen ∪ undecided cannot reach the primary optimum, cut.
//   - Weight:      weight(chosen) + cheapest undecided weight ≥ incumbent, cut
//     (strictly greater while enumerating ties).
//   - Incumbent:   a greedy inclusion-minimal subset seeds the bound before DFS.
//
// Concurrency
//
// Re-solves of Aggregate run on a bounded errgroup pool; their shared
// knowledge (witnessed union members, refuted essentials) is mutex-guarded.
// The oracle must be safe for concurrent use.
//
// Errors
//
//   - ErrNilOracle, ErrNegativeWeight, ErrElementRange: invalid problem.
//   - ErrOptionViolation:   invalid option.
//   - ErrEnumerationLimit:  more optima than WithMaxSolutions allows.
//   - ctx.Err():            caller cancellation.
package search
