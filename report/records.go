package report

import (
	"encoding/json"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/mene/core"
)

// ScopeRecord is the scope query record.
type ScopeRecord struct {
	Scope            []string `json:"scope" yaml:"scope"`
	ProducedSeeds    []string `json:"producedSeeds" yaml:"producedSeeds"`
	NonProducedSeeds []string `json:"nonProducedSeeds" yaml:"nonProducedSeeds"`
	AbsentSeeds      []string `json:"absentSeeds" yaml:"absentSeeds"`
}

// ActivationRecord is the activation query record.
type ActivationRecord struct {
	ActivatableReactions []string `json:"activatableReactions" yaml:"activatableReactions"`
}

// CheckRecord is the producibility check record.
type CheckRecord struct {
	ProducibleTargets   []string `json:"producibleTargets" yaml:"producibleTargets"`
	UnproducibleTargets []string `json:"unproducibleTargets" yaml:"unproducibleTargets"`
}

// DeadEndRecord is the dead-end query record.
type DeadEndRecord struct {
	NeverProduced []string `json:"neverProduced" yaml:"neverProduced"`
	NeverConsumed []string `json:"neverConsumed" yaml:"neverConsumed"`
}

// CofactorRecord is the cofactor query record.
type CofactorRecord struct {
	Status            string         `json:"status" yaml:"status"`
	StillUnproducible []string       `json:"stillUnproducible" yaml:"stillUnproducible"`
	Chosen            []WeightedID   `json:"chosen" yaml:"chosen"`
	Intersection      []WeightedID   `json:"intersection" yaml:"intersection"`
	Union             []WeightedID   `json:"union" yaml:"union"`
	NewlyProducible   []string       `json:"newlyProducible" yaml:"newlyProducible"`
	AllSolutions      [][]WeightedID `json:"allSolutions,omitempty" yaml:"allSolutions,omitempty"`
}

// PathwayRecord is the pathway query record. With several targets the path
// lists merge the per-target answers kept under Targets.
type PathwayRecord struct {
	Status              string                 `json:"status" yaml:"status"`
	UnproducibleTargets []string               `json:"unproducibleTargets" yaml:"unproducibleTargets"`
	OnePath             []string               `json:"onePath" yaml:"onePath"`
	UnionPath           []string               `json:"unionPath" yaml:"unionPath"`
	IntersectionPath    []string               `json:"intersectionPath" yaml:"intersectionPath"`
	Targets             map[string]TargetPaths `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// TargetPaths is the pathway answer for one target.
type TargetPaths struct {
	Status           string     `json:"status" yaml:"status"`
	OnePath          []string   `json:"onePath" yaml:"onePath"`
	UnionPath        []string   `json:"unionPath" yaml:"unionPath"`
	IntersectionPath []string   `json:"intersectionPath" yaml:"intersectionPath"`
	AllPaths         [][]string `json:"allPaths,omitempty" yaml:"allPaths,omitempty"`
}

// IncrementalRecord is the incremental scope record.
type IncrementalRecord struct {
	StepOf map[string]int   `json:"stepOf" yaml:"stepOf"`
	ByStep map[int][]string `json:"byStep" yaml:"byStep"`
}

// LabelledRecord is the labelled scope record.
type LabelledRecord struct {
	LabelledScope  map[string][]string `json:"labelledScope" yaml:"labelledScope"`
	CompoundLabels map[string][]string `json:"compoundLabels" yaml:"compoundLabels"`
}

// SeedRecord lists exchange-reaction seeds.
type SeedRecord struct {
	Seeds []string `json:"seeds" yaml:"seeds"`
}

// WeightedID is a cofactor with its weight, encoded as [id, weight].
type WeightedID struct {
	ID     string
	Weight int64
}

// MarshalJSON implements json.Marshaler.
func (w WeightedID) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{w.ID, w.Weight})
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *WeightedID) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("report: weighted id needs 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &w.ID); err != nil {
		return err
	}

	return json.Unmarshal(pair[1], &w.Weight)
}

// MarshalYAML implements yaml.Marshaler.
func (w WeightedID) MarshalYAML() (any, error) {
	return []any{w.ID, w.Weight}, nil
}

// ids returns a sorted, repeat-free, non-nil copy of in.
func ids(in []string) []string {
	set := treeset.NewWithStringComparator()
	for _, id := range in {
		set.Add(id)
	}
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}

	return out
}

// weighted orders candidates by id; a repeated id keeps its first weight.
func weighted(cs []core.Candidate) []WeightedID {
	tree := redblacktree.NewWithStringComparator()
	for _, c := range cs {
		if _, found := tree.Get(c.ID); !found {
			tree.Put(c.ID, c.Weight)
		}
	}
	out := make([]WeightedID, 0, tree.Size())
	it := tree.Iterator()
	for it.Next() {
		out = append(out, WeightedID{ID: it.Key().(string), Weight: it.Value().(int64)})
	}

	return out
}

// idMap normalizes every list of a string-keyed map.
func idMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = ids(v)
	}

	return out
}
