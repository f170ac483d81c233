// SPDX-License-Identifier: MIT
// File: species.go
// Role: seed/target species sets and weighted cofactor candidates.
// Determinism:
//   - IDs, DefaultCandidates and SortCandidates yield ascending id order.
// Concurrency:
//   - Value types; safe to share once built.

package core

import "sort"

// Species is a compound id with an optional provenance label.
type Species struct {
	ID    string
	Label string
}

// SpeciesSet is an ordered collection of species, used for seeds and targets.
type SpeciesSet []Species

// NewSpeciesSet wraps plain ids; each label defaults to the id itself.
func NewSpeciesSet(ids ...string) SpeciesSet {
	out := make(SpeciesSet, 0, len(ids))
	for _, id := range ids {
		out = append(out, Species{ID: id, Label: id})
	}

	return out
}

// IDs returns the distinct ids, sorted.
func (s SpeciesSet) IDs() []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, sp := range s {
		if _, ok := seen[sp.ID]; ok {
			continue
		}
		seen[sp.ID] = struct{}{}
		out = append(out, sp.ID)
	}
	sort.Strings(out)

	return out
}

// LabelOf returns the label of every id; unlabelled species use their id.
// When an id is listed twice the first label wins.
func (s SpeciesSet) LabelOf() map[string]string {
	out := make(map[string]string, len(s))
	for _, sp := range s {
		if _, ok := out[sp.ID]; ok {
			continue
		}
		if sp.Label == "" {
			out[sp.ID] = sp.ID
		} else {
			out[sp.ID] = sp.Label
		}
	}

	return out
}

// Candidate is a cofactor candidate: a compound id with a non-negative weight.
type Candidate struct {
	ID     string
	Weight int64
}

// DefaultCandidates returns every network compound as a candidate weighted by
// the number of reaction sides referencing it, sorted by id.
func DefaultCandidates(n *Network) []Candidate {
	out := make([]Candidate, n.NumCompounds())
	for c := range out {
		out[c] = Candidate{ID: n.compounds[c], Weight: int64(n.Occurrences(c))}
	}

	return out
}

// SortCandidates orders candidates by id, then weight.
func SortCandidates(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].ID == cs[j].ID {
			return cs[i].Weight < cs[j].Weight
		}

		return cs[i].ID < cs[j].ID
	})
}
