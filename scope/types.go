package scope

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for scope computations.
var (
	// ErrReactionNotFound is returned when a reaction subset names an unknown id.
	ErrReactionNotFound = errors.New("scope: reaction not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scope: invalid option supplied")
)

// Option configures an expansion via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of an expansion.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// Reactions, when non-nil, restricts the expansion to these reaction ids.
	Reactions []string

	// OnFire is called each time a reaction fires, with the round of its outputs.
	// backward reports a reversible reaction firing from its product side.
	OnFire func(reactionID string, backward bool, round int)

	err error
}

// DefaultOptions returns background context, the whole network and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnFire: func(string, bool, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReactionSubset restricts the expansion to the given reactions.
// An empty, non-nil subset is valid and leaves only the seeds.
func WithReactionSubset(ids []string) Option {
	return func(o *Options) {
		if ids == nil {
			o.err = fmt.Errorf("%w: nil reaction subset", ErrOptionViolation)
			return
		}
		o.Reactions = append([]string{}, ids...)
	}
}

// WithOnFire registers a callback invoked whenever a reaction fires.
func WithOnFire(fn func(reactionID string, backward bool, round int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFire = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the outcome of Scope.
type Result struct {
	// Scope lists every seed present in the network and every produced compound.
	Scope []string

	// ProducedSeeds are seeds output by at least one fired reaction.
	ProducedSeeds []string

	// NonProducedSeeds are seeds present in the network that no fired reaction outputs.
	NonProducedSeeds []string

	// AbsentSeeds are seeds no reaction mentions.
	AbsentSeeds []string

	// Activable lists the reactions that fired, in either direction.
	Activable []string
}

// Steps is the outcome of Incremental.
type Steps struct {
	// StepOf maps each scope compound to the round it first became available.
	StepOf map[string]int

	// ByStep groups compounds by round; each list is sorted.
	ByStep map[int][]string

	// Rounds is the largest round reached.
	Rounds int
}

// LabelledResult is the outcome of Labelled.
type LabelledResult struct {
	// ByLabel maps a seed label to the compounds depending on it, sorted.
	ByLabel map[string][]string

	// LabelsOf maps a compound to the labels it depends on, sorted.
	LabelsOf map[string][]string
}

// DeadEnds is the outcome of FindDeadEnds.
type DeadEnds struct {
	NeverProduced []string
	NeverConsumed []string
}
