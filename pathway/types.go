package pathway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mene/search"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("pathway: invalid option supplied")

// Option configures a pathway query via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a pathway query.
type Options struct {
	// Ctx allows cancellation and carries the logger.
	Ctx context.Context

	// Minimal restricts paths to those of least cardinality.
	Minimal bool

	// Enumerate makes Analyze and Run also list every path.
	Enumerate bool

	TimeLimit    time.Duration
	NodeLimit    int64
	MaxSolutions int

	// Workers bounds both the per-target pool of Run and the concurrent
	// re-solves inside one target.
	Workers  int
	Strategy search.Strategy

	err error
}

// DefaultOptions returns non-minimal paths without enumeration.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxSolutions: search.DefaultMaxSolutions,
		Workers:      search.DefaultWorkers,
		Strategy:     search.StrategyResolve,
	}
}

// WithContext sets a custom context for cancellation and logging.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinimal toggles cardinality-minimal paths.
func WithMinimal(minimal bool) Option {
	return func(o *Options) { o.Minimal = minimal }
}

// WithEnumeration toggles listing every path in Analyze and Run.
func WithEnumeration(enumerate bool) Option {
	return func(o *Options) { o.Enumerate = enumerate }
}

// WithTimeLimit bounds the wall-clock time of each target's analysis (0 = none).
// One deadline is shared by every search stage of the target.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithNodeLimit bounds the search nodes of each search call (0 = none).
func WithNodeLimit(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithMaxSolutions caps enumeration per target.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSolutions must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSolutions = n
	}
}

// WithWorkers sets the degree of parallelism.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects how minimal-mode union and intersection are computed.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Path is the analysis of one target. Reaction lists are sorted.
type Path struct {
	Target string
	Status search.Status

	OnePath      []string
	Union        []string
	Intersection []string

	// All lists every path when enumeration was requested.
	All [][]string
}

// Result is the outcome of Run. OnePath, Union and Intersection merge the
// per-target answers: a reaction set producing every producible target,
// every reaction usable for some target, and every reaction essential for
// some target.
type Result struct {
	Status       search.Status
	Unproducible []string

	OnePath      []string
	Union        []string
	Intersection []string

	// Targets holds the per-target analyses, keyed by target id.
	Targets map[string]*Path
}
