// Package report turns analysis results into plain, keyed records with
// stable field names, and encodes them as JSON or YAML.
//
// Records do not depend on input ordering: every id list is sorted and free
// of repeats, and an empty list is encoded as [] rather than null. Cofactor
// pairs are encoded as two-element arrays, [id, weight].
//
//	scope        {scope, producedSeeds, nonProducedSeeds, absentSeeds}
//	activation   {activatableReactions}
//	check        {producibleTargets, unproducibleTargets}
//	dead-ends    {neverProduced, neverConsumed}
//	cofactor     {stillUnproducible, chosen, intersection, union, newlyProducible}
//	pathway      {unproducibleTargets, onePath, unionPath, intersectionPath}
//	incremental  {stepOf, byStep}
//	labelled     {labelledScope, compoundLabels}
//	seeds        {seeds}
//
// Search-backed records add a status ("optimal", "incomplete", ...) so a
// budget-limited answer is never mistaken for a proven one.
package report
