package cofactor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/search"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("cofactor: invalid option supplied")

// Option configures a cofactor search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a cofactor search.
type Options struct {
	// Ctx allows cancellation and carries the logger.
	Ctx context.Context

	// Candidates is the cofactor universe; nil means core.DefaultCandidates.
	Candidates []core.Candidate

	// Budget and aggregation settings forwarded to the search core.
	TimeLimit    time.Duration
	NodeLimit    int64
	MaxSolutions int
	Workers      int
	Strategy     search.Strategy

	err error
}

// DefaultOptions mirrors search.DefaultOptions with default candidates.
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

// WithCandidates sets the candidate universe. A negative weight is rejected.
func WithCandidates(cs []core.Candidate) Option {
	return func(o *Options) {
		for _, c := range cs {
			if c.Weight < 0 {
				o.err = fmt.Errorf("%w: candidate %q has weight %d", ErrOptionViolation, c.ID, c.Weight)
				return
			}
		}
		o.Candidates = append([]core.Candidate{}, cs...)
	}
}

// WithTimeLimit bounds the wall-clock time of one call (0 = none).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithNodeLimit bounds the number of search nodes of one call (0 = none).
func WithNodeLimit(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithMaxSolutions caps EnumerateAll.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSolutions must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSolutions = n
	}
}

// WithWorkers bounds the concurrent re-solves of Union and Intersection.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects how Union and Intersection are computed.
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

// searchOptions translates o for the search core.
func (o Options) searchOptions() []search.Option {
	return []search.Option{
		search.WithContext(o.Ctx),
		search.WithTimeLimit(o.TimeLimit),
		search.WithNodeLimit(o.NodeLimit),
		search.WithMaxSolutions(o.MaxSolutions),
		search.WithWorkers(o.Workers),
		search.WithStrategy(o.Strategy),
	}
}

// Solution is one optimal cofactor set and its effect on the targets.
type Solution struct {
	Status search.Status

	// Chosen are the added cofactors, sorted by id.
	Chosen []core.Candidate

	// StillUnproducible are targets outside scope(seeds ∪ Chosen), sorted.
	StillUnproducible []string

	// NewlyProducible are targets unproducible from seeds alone but inside
	// scope(seeds ∪ Chosen), sorted.
	NewlyProducible []string

	// Objective is (len(StillUnproducible), total weight of Chosen).
	Objective search.Objective
}

// Result is the outcome of Run.
type Result struct {
	Solution

	// Union lists cofactors of at least one optimum, Intersection those of
	// every optimum; both sorted by id.
	Union        []core.Candidate
	Intersection []core.Candidate
}

// Enumeration is the outcome of EnumerateAll.
type Enumeration struct {
	Status    search.Status
	Objective search.Objective
	Solutions [][]core.Candidate
}
