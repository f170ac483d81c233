package search

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for search.
var (
	// ErrNilOracle is returned when a Problem has no oracle.
	ErrNilOracle = errors.New("search: oracle is nil")

	// ErrNegativeWeight is returned when an element weight is negative.
	ErrNegativeWeight = errors.New("search: negative element weight")

	// ErrElementRange is returned when a forced or forbidden element is out of range.
	ErrElementRange = errors.New("search: element index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrEnumerationLimit is returned when more optimal solutions exist than
	// the enumeration cap allows.
	ErrEnumerationLimit = errors.New("search: enumeration limit exceeded")
)

// Mode selects the objective.
type Mode int

const (
	// Minimize compares (unsatisfied, weight) lexicographically.
	Minimize Mode = iota

	// Satisfy accepts any subset reaching the primary optimum.
	Satisfy
)

// Status tags a search outcome.
type Status int

const (
	// Optimal means the reported objective is proven best.
	Optimal Status = iota

	// Infeasible means no subset satisfies the constraints.
	Infeasible

	// Incomplete means the budget ran out before a proof.
	Incomplete
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Incomplete:
		return "incomplete"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Phase is a step of the search state machine.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseFeasibilityChecked
	PhaseInfeasible
	PhaseOptimumFound
	PhaseEnumerating
	PhaseDone
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseFeasibilityChecked:
		return "feasibility-checked"
	case PhaseInfeasible:
		return "infeasible"
	case PhaseOptimumFound:
		return "optimum-found"
	case PhaseEnumerating:
		return "enumerating"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Strategy selects how Aggregate computes union and intersection.
type Strategy int

const (
	// StrategyResolve re-solves once per undecided element.
	StrategyResolve Strategy = iota

	// StrategyEnumerate folds a full (capped) enumeration of optima.
	StrategyEnumerate
)

// Objective is the lexicographic value of a subset.
type Objective struct {
	Unsatisfied int
	Weight      int64
}

// Less reports whether o is strictly better than p.
func (o Objective) Less(p Objective) bool {
	if o.Unsatisfied != p.Unsatisfied {
		return o.Unsatisfied < p.Unsatisfied
	}

	return o.Weight < p.Weight
}

// Oracle counts unsatisfied goals for the subset flagged in chosen.
// It must be monotone (supersets never score higher), must not retain or
// modify chosen, and must be safe for concurrent use.
type Oracle interface {
	Unsatisfied(chosen []bool) int
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(chosen []bool) int

// Unsatisfied implements Oracle.
func (f OracleFunc) Unsatisfied(chosen []bool) int { return f(chosen) }

// Problem describes one subset search.
type Problem struct {
	// Weights holds one non-negative weight per element.
	Weights []int64

	// Oracle scores subsets.
	Oracle Oracle

	// Accept, in Satisfy mode, filters complete subsets. Nil accepts all.
	Accept func(chosen []bool) bool

	// RequireAll makes any subset with unsatisfied goals infeasible.
	RequireAll bool
}

func (p *Problem) validate() error {
	if p.Oracle == nil {
		return ErrNilOracle
	}
	for i, w := range p.Weights {
		if w < 0 {
			return fmt.Errorf("%w: element %d has weight %d", ErrNegativeWeight, i, w)
		}
	}

	return nil
}

// Solution is one subset with its objective. Elements are sorted.
type Solution struct {
	Elements  []int
	Objective Objective
}

// Outcome is the result of Solve.
type Outcome struct {
	Status Status

	// Best is the witness: the optimum when Optimal, the incumbent when
	// Incomplete and Found.
	Best  Solution
	Found bool

	// Nodes counts explored search nodes.
	Nodes int64
}

// Enumeration is the result of Enumerate.
type Enumeration struct {
	Status    Status
	Objective Objective
	Solutions []Solution
	Nodes     int64
}

// Aggregation is the result of Aggregate: one witness plus union and intersection
// over all optima. Under Incomplete, Union and Intersection hold only proven
// members.
type Aggregation struct {
	Status       Status
	Witness      Solution
	Union        []int
	Intersection []int
	Nodes        int64
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	Ctx          context.Context
	Mode         Mode
	TimeLimit    time.Duration
	NodeLimit    int64
	MaxSolutions int
	Workers      int
	Strategy     Strategy
	Forced       []int
	Forbidden    []int
	MemoSize     int
	OnPhase      func(Phase)

	err error
}

// Defaults.
const (
	DefaultMaxSolutions = 1000
	DefaultWorkers      = 4
	DefaultMemoSize     = 1 << 16
)

// DefaultOptions returns Minimize mode with no budget, a cap of
// DefaultMaxSolutions optima and memoization enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Mode:         Minimize,
		MaxSolutions: DefaultMaxSolutions,
		Workers:      DefaultWorkers,
		Strategy:     StrategyResolve,
		MemoSize:     DefaultMemoSize,
		OnPhase:      func(Phase) {},
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

// WithMode selects Minimize or Satisfy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Minimize && m != Satisfy {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithTimeLimit bounds wall-clock time; 0 disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithNodeLimit bounds explored nodes; 0 disables the limit.
func WithNodeLimit(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithMaxSolutions caps enumeration; exceeding it is ErrEnumerationLimit.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSolutions must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSolutions = n
	}
}

// WithWorkers bounds the re-solve pool of Aggregate.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects how Aggregate computes union and intersection.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithForced makes every returned subset contain these elements.
func WithForced(elems ...int) Option {
	return func(o *Options) { o.Forced = append(o.Forced, elems...) }
}

// WithForbidden makes every returned subset avoid these elements.
func WithForbidden(elems ...int) Option {
	return func(o *Options) { o.Forbidden = append(o.Forbidden, elems...) }
}

// WithMemo sets how many oracle answers are cached; 0 disables caching.
func WithMemo(size int) Option {
	return func(o *Options) {
		if size < 0 {
			o.err = fmt.Errorf("%w: MemoSize cannot be negative (%d)", ErrOptionViolation, size)
			return
		}
		o.MemoSize = size
	}
}

// WithOnPhase registers a hook called on every state transition.
func WithOnPhase(fn func(Phase)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

func buildOptions(p *Problem, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	n := len(p.Weights)
	for _, e := range append(append([]int{}, o.Forced...), o.Forbidden...) {
		if e < 0 || e >= n {
			return o, fmt.Errorf("%w: %d not in [0,%d)", ErrElementRange, e, n)
		}
	}

	return o, nil
}
