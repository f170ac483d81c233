// Package mene is a toolkit for network expansion over metabolic networks:
// what a set of seed compounds can produce, which targets stay out of reach,
// which cofactors would restore them and which reactions produce them.
//
// 🚀 What is mene?
//
//	A deterministic, concurrency-safe analysis library plus the mene CLI:
//		• Network model: immutable reactions over compounds, reversible or not
//		• Scope: forward expansion, rounds, activable reactions, labels
//		• Producibility: split targets into producible and unproducible
//		• Cofactors: cheapest candidate sets restoring unproducible targets
//		• Pathways: one, union, intersection and all producing reaction sets
//		• Loaders: SBML, YAML, TOML and a plain reaction text, gzip aware
//
// Under the hood, everything is organized in subpackages:
//
//	core/          Network, Builder, species sets, cofactor candidates
//	scope/         expansion engine, incremental and labelled scope, dead ends
//	producibility/ Classify, Require
//	search/        lexicographic branch and bound, enumeration, union/intersection
//	cofactor/      cofactor completion over search
//	pathway/       producing reaction sets over search, one worker per target
//	loader/        network, species and candidate readers
//	report/        result records and their JSON/YAML encoding
//	cmd/mene       the command-line front end
//
// Quick ASCII example:
//
//	  S ──R_3──▶ d ──R_4──▶ e ──R_5──▶ T3
//	                         │
//	                c ──R_1──┴──▶ T2
//
// With seed S, T3 is producible through R_3, R_4 and R_5, while T2 waits on
// the cofactor c.
//
//	go install github.com/katalvlaran/mene/cmd/mene@latest
package mene
