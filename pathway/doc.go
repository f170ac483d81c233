// Package pathway finds the reaction subsets through which a network
// produces a target from the seeds.
//
// A production path for target t is a set P of reactions such that expanding
// the seeds with only the reactions of P reaches t. Two modes exist:
//
//   - default:  any path. Paths are connected (every reaction of P leads to t
//     within P) and live (every reaction of P fires within P).
//   - minimal:  paths of least cardinality (WithMinimal).
//
// For each target the package reports one path, the union of all paths
// (reactions usable for t) and their intersection (reactions t cannot do
// without). In default mode union and intersection are exact closed forms:
//
//	union        = activable reactions ∩ reactions structurally upstream of t
//	intersection = { r : t ∉ scope(network \ r, seeds) }
//
// In minimal mode both come from the search core, as does enumeration in
// either mode (bounded by WithMaxSolutions).
//
// Preconditions
//
// Searching a path to an unproducible target is refused: SolveOne, Analyze,
// Union, Intersection and EnumerateAll return *core.PreconditionError. Run
// takes several targets, reports the unproducible ones and analyzes the rest
// in parallel on an errgroup pool.
package pathway
