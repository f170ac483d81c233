package report

import (
	"github.com/katalvlaran/mene/cofactor"
	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/pathway"
	"github.com/katalvlaran/mene/producibility"
	"github.com/katalvlaran/mene/scope"
)

// FromScope builds the scope record.
func FromScope(r *scope.Result) ScopeRecord {
	return ScopeRecord{
		Scope:            ids(r.Scope),
		ProducedSeeds:    ids(r.ProducedSeeds),
		NonProducedSeeds: ids(r.NonProducedSeeds),
		AbsentSeeds:      ids(r.AbsentSeeds),
	}
}

// FromActivation builds the activation record.
func FromActivation(reactions []string) ActivationRecord {
	return ActivationRecord{ActivatableReactions: ids(reactions)}
}

// FromClassification builds the producibility check record.
func FromClassification(c *producibility.Classification) CheckRecord {
	return CheckRecord{
		ProducibleTargets:   ids(c.Producible),
		UnproducibleTargets: ids(c.Unproducible),
	}
}

// FromDeadEnds builds the dead-end record.
func FromDeadEnds(d *scope.DeadEnds) DeadEndRecord {
	return DeadEndRecord{NeverProduced: ids(d.NeverProduced), NeverConsumed: ids(d.NeverConsumed)}
}

// FromCofactor builds the cofactor record; all may be nil.
func FromCofactor(r *cofactor.Result, all *cofactor.Enumeration) CofactorRecord {
	rec := CofactorRecord{
		Status:            r.Status.String(),
		StillUnproducible: ids(r.StillUnproducible),
		Chosen:            weighted(r.Chosen),
		Intersection:      weighted(r.Intersection),
		Union:             weighted(r.Union),
		NewlyProducible:   ids(r.NewlyProducible),
	}
	if all != nil {
		rec.AllSolutions = make([][]WeightedID, 0, len(all.Solutions))
		for _, s := range all.Solutions {
			rec.AllSolutions = append(rec.AllSolutions, weighted(s))
		}
	}

	return rec
}

// FromPathway builds the pathway record.
func FromPathway(r *pathway.Result) PathwayRecord {
	rec := PathwayRecord{
		Status:              r.Status.String(),
		UnproducibleTargets: ids(r.Unproducible),
		OnePath:             ids(r.OnePath),
		UnionPath:           ids(r.Union),
		IntersectionPath:    ids(r.Intersection),
	}
	if len(r.Targets) > 0 {
		rec.Targets = make(map[string]TargetPaths, len(r.Targets))
		for t, p := range r.Targets {
			tp := TargetPaths{
				Status:           p.Status.String(),
				OnePath:          ids(p.OnePath),
				UnionPath:        ids(p.Union),
				IntersectionPath: ids(p.Intersection),
			}
			for _, path := range p.All {
				tp.AllPaths = append(tp.AllPaths, ids(path))
			}
			rec.Targets[t] = tp
		}
	}

	return rec
}

// FromSteps builds the incremental scope record.
func FromSteps(s *scope.Steps) IncrementalRecord {
	rec := IncrementalRecord{
		StepOf: make(map[string]int, len(s.StepOf)),
		ByStep: make(map[int][]string, len(s.ByStep)),
	}
	for id, k := range s.StepOf {
		rec.StepOf[id] = k
	}
	for k, v := range s.ByStep {
		rec.ByStep[k] = ids(v)
	}

	return rec
}

// FromLabelled builds the labelled scope record.
func FromLabelled(l *scope.LabelledResult) LabelledRecord {
	return LabelledRecord{LabelledScope: idMap(l.ByLabel), CompoundLabels: idMap(l.LabelsOf)}
}

// FromSeeds builds the seed record.
func FromSeeds(seeds []string) SeedRecord {
	return SeedRecord{Seeds: ids(seeds)}
}

// Weighted exposes the [id, weight] form of candidates for callers that
// assemble records themselves.
func Weighted(cs []core.Candidate) []WeightedID { return weighted(cs) }
