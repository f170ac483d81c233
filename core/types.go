// SPDX-License-Identifier: MIT
// File: types.go
// Role: Network, Reaction, builder options and sentinel errors.
// Determinism:
//   - Compounds and reactions are indexed in ascending id order.
// Concurrency:
//   - Network is immutable after Build; no locks are needed for reads.

package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for network construction and use.
var (
	// ErrEmptyReactionID indicates a reaction was added with an empty id.
	ErrEmptyReactionID = errors.New("core: reaction ID is empty")

	// ErrEmptyCompoundID indicates a reactant or product id is empty.
	ErrEmptyCompoundID = errors.New("core: compound ID is empty")

	// ErrDuplicateReaction indicates the same reaction id was added twice.
	ErrDuplicateReaction = errors.New("core: duplicate reaction ID")

	// ErrBuilderSealed indicates AddReaction was called after Build.
	ErrBuilderSealed = errors.New("core: builder already built")

	// ErrNetworkNil is returned by algorithms given a nil network.
	ErrNetworkNil = errors.New("core: network is nil")

	// ErrInfeasiblePrecondition indicates an analysis was requested while some
	// targets are unproducible from the seeds.
	ErrInfeasiblePrecondition = errors.New("core: infeasible precondition")
)

// PreconditionError lists the targets that block an analysis from starting.
// It unwraps to ErrInfeasiblePrecondition.
type PreconditionError struct {
	// Op names the refused analysis, e.g. "incremental scope".
	Op string

	// Targets are the unproducible targets, sorted.
	Targets []string
}

// Error implements error.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%v: %s: unproducible targets [%s]",
		ErrInfeasiblePrecondition, e.Op, strings.Join(e.Targets, ", "))
}

// Unwrap exposes ErrInfeasiblePrecondition to errors.Is.
func (e *PreconditionError) Unwrap() error { return ErrInfeasiblePrecondition }

// Reaction is an immutable reaction record.
//
// Reactants and Products are sorted and free of duplicates. A reaction with
// no reactants fires unconditionally.
type Reaction struct {
	// ID uniquely identifies the reaction within its Network.
	ID string

	// Reactants are the compound ids consumed by the forward direction.
	Reactants []string

	// Products are the compound ids produced by the forward direction.
	Products []string

	// Reversible reports whether the reaction may also fire products → reactants.
	Reversible bool
}

// Network is an immutable reaction network with a dense index view.
type Network struct {
	name string

	reactions   []Reaction
	reactionIdx map[string]int

	compounds   []string
	compoundIdx map[string]int

	lhs       [][]int // reaction → reactant compound indices
	rhs       [][]int // reaction → product compound indices
	consumers [][]int // compound → reactions listing it as reactant
	producers [][]int // compound → reactions listing it as product
}

// BuilderOption configures a Builder.
type BuilderOption func(b *Builder)

// WithName attaches a descriptive name (usually the model id) to the network.
func WithName(name string) BuilderOption {
	return func(b *Builder) { b.name = name }
}

// ReactionOption configures a single reaction when added.
type ReactionOption func(r *Reaction)

// WithReversible marks a reaction as reversible (or not).
func WithReversible(reversible bool) ReactionOption {
	return func(r *Reaction) { r.Reversible = reversible }
}

// Builder accumulates reactions and produces an immutable Network.
// A Builder is not safe for concurrent use.
type Builder struct {
	name      string
	reactions []Reaction
	seen      map[string]struct{}
	sealed    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{seen: make(map[string]struct{})}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddReaction registers a reaction. Reactant and product lists are copied,
// deduplicated and sorted.
func (b *Builder) AddReaction(id string, reactants, products []string, opts ...ReactionOption) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if id == "" {
		return ErrEmptyReactionID
	}
	if _, dup := b.seen[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateReaction, id)
	}
	lhs, err := normalizeIDs(reactants)
	if err != nil {
		return fmt.Errorf("%w: reactant of %q", err, id)
	}
	rhs, err := normalizeIDs(products)
	if err != nil {
		return fmt.Errorf("%w: product of %q", err, id)
	}

	r := Reaction{ID: id, Reactants: lhs, Products: rhs}
	for _, opt := range opts {
		opt(&r)
	}
	b.seen[id] = struct{}{}
	b.reactions = append(b.reactions, r)

	return nil
}

// Len reports how many reactions have been added so far.
func (b *Builder) Len() int { return len(b.reactions) }

// Build seals the builder and returns the indexed Network.
func (b *Builder) Build() (*Network, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true

	reactions := make([]Reaction, len(b.reactions))
	copy(reactions, b.reactions)
	sort.Slice(reactions, func(i, j int) bool { return reactions[i].ID < reactions[j].ID })

	return index(b.name, reactions), nil
}

// index assigns dense indices and builds adjacency in O(total references).
func index(name string, reactions []Reaction) *Network {
	n := &Network{
		name:        name,
		reactions:   reactions,
		reactionIdx: make(map[string]int, len(reactions)),
	}

	set := make(map[string]struct{})
	for i, r := range reactions {
		n.reactionIdx[r.ID] = i
		for _, c := range r.Reactants {
			set[c] = struct{}{}
		}
		for _, c := range r.Products {
			set[c] = struct{}{}
		}
	}
	n.compounds = make([]string, 0, len(set))
	for c := range set {
		n.compounds = append(n.compounds, c)
	}
	sort.Strings(n.compounds)
	n.compoundIdx = make(map[string]int, len(n.compounds))
	for i, c := range n.compounds {
		n.compoundIdx[c] = i
	}

	n.lhs = make([][]int, len(reactions))
	n.rhs = make([][]int, len(reactions))
	n.consumers = make([][]int, len(n.compounds))
	n.producers = make([][]int, len(n.compounds))
	for ri, r := range reactions {
		n.lhs[ri] = make([]int, len(r.Reactants))
		for k, c := range r.Reactants {
			ci := n.compoundIdx[c]
			n.lhs[ri][k] = ci
			n.consumers[ci] = append(n.consumers[ci], ri)
		}
		n.rhs[ri] = make([]int, len(r.Products))
		for k, c := range r.Products {
			ci := n.compoundIdx[c]
			n.rhs[ri][k] = ci
			n.producers[ci] = append(n.producers[ci], ri)
		}
	}

	return n
}

// normalizeIDs copies, deduplicates and sorts ids, rejecting empty ones.
func normalizeIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, ErrEmptyCompoundID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}
