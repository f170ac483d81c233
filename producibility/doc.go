// Package producibility classifies targets as producible or unproducible from
// a seed set.
//
// A target is producible iff it belongs to scope(network, seeds). Classify runs
// the expansion once; Require turns any unproducible target into a
// *core.PreconditionError, which is how the optimization packages refuse to
// search for something that cannot exist.
package producibility
