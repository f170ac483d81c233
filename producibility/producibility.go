package producibility

import (
	"sort"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/scope"
)

// Classification splits targets by producibility. Both lists are sorted.
type Classification struct {
	Producible   []string
	Unproducible []string
}

// Classify expands net from seeds once and partitions targets.
// Targets absent from the network are unproducible.
func Classify(net *core.Network, seeds, targets []string, opts ...scope.Option) (*Classification, error) {
	res, err := scope.Scope(net, seeds, opts...)
	if err != nil {
		return nil, err
	}
	in := make(map[string]struct{}, len(res.Scope))
	for _, id := range res.Scope {
		in[id] = struct{}{}
	}

	cl := &Classification{Producible: []string{}, Unproducible: []string{}}
	seen := make(map[string]struct{}, len(targets))
	for _, id := range targets {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := in[id]; ok {
			cl.Producible = append(cl.Producible, id)
		} else {
			cl.Unproducible = append(cl.Unproducible, id)
		}
	}
	sort.Strings(cl.Producible)
	sort.Strings(cl.Unproducible)

	return cl, nil
}

// Require fails with a *core.PreconditionError naming op when some target is
// unproducible from seeds.
func Require(net *core.Network, op string, seeds, targets []string, opts ...scope.Option) error {
	cl, err := Classify(net, seeds, targets, opts...)
	if err != nil {
		return err
	}
	if len(cl.Unproducible) > 0 {
		return &core.PreconditionError{Op: op, Targets: cl.Unproducible}
	}

	return nil
}
