// Package testnet holds small deterministic reaction networks shared by tests.
package testnet

import "github.com/katalvlaran/mene/core"

// Rxn is a compact reaction literal for fixtures.
type Rxn struct {
	ID         string
	Reactants  []string
	Products   []string
	Reversible bool
}

// Build assembles a network from literals and panics on invalid input.
func Build(name string, rxns ...Rxn) *core.Network {
	b := core.NewBuilder(core.WithName(name))
	for _, r := range rxns {
		if err := b.AddReaction(r.ID, r.Reactants, r.Products, core.WithReversible(r.Reversible)); err != nil {
			panic(err)
		}
	}
	net, err := b.Build()
	if err != nil {
		panic(err)
	}

	return net
}

// Toy ids.
const (
	SeedS   = "M_S_c"
	SeedL   = "M_l_c"
	SeedFoo = "M_foo_c"

	TargetT1 = "M_T1_c"
	TargetT2 = "M_T2_c"
	TargetT3 = "M_T3_c"
)

// ToySeeds are the seeds of the toy network; M_foo_c is absent from it.
func ToySeeds() []string { return []string{SeedS, SeedL, SeedFoo} }

// ToyTargets are the targets of the toy network.
func ToyTargets() []string { return []string{TargetT1, TargetT2, TargetT3} }

// Toy is an eleven-reaction network where M_T3_c is producible from the
// seeds, M_T1_c is never produced and M_T2_c needs the missing M_c_c.
//
//	R_boundary : -> M_S_b
//	R_import_S : M_S_b -> M_S_c
//	R_3        : M_S_c -> M_d_c
//	R_4        : M_d_c -> M_e_c
//	R_5        : M_e_c -> M_T3_c
//	R_6        : M_S_c -> M_f_c
//	R_7        : M_d_c -> M_g_c + M_i_c
//	R_1        : M_c_c + M_e_c -> M_T2_c
//	R_2        : M_T1_c + M_h_c -> M_j_c
//	R_8        : M_T1_c + M_T2_c + M_T3_c -> M_biomass_c
//	R_9        : M_k_c -> M_l_c
func Toy() *core.Network {
	return Build("toy",
		Rxn{ID: "R_boundary", Products: []string{"M_S_b"}},
		Rxn{ID: "R_import_S", Reactants: []string{"M_S_b"}, Products: []string{"M_S_c"}},
		Rxn{ID: "R_3", Reactants: []string{"M_S_c"}, Products: []string{"M_d_c"}},
		Rxn{ID: "R_4", Reactants: []string{"M_d_c"}, Products: []string{"M_e_c"}},
		Rxn{ID: "R_5", Reactants: []string{"M_e_c"}, Products: []string{"M_T3_c"}},
		Rxn{ID: "R_6", Reactants: []string{"M_S_c"}, Products: []string{"M_f_c"}},
		Rxn{ID: "R_7", Reactants: []string{"M_d_c"}, Products: []string{"M_g_c", "M_i_c"}},
		Rxn{ID: "R_1", Reactants: []string{"M_c_c", "M_e_c"}, Products: []string{"M_T2_c"}},
		Rxn{ID: "R_2", Reactants: []string{"M_T1_c", "M_h_c"}, Products: []string{"M_j_c"}},
		Rxn{ID: "R_8", Reactants: []string{"M_T1_c", "M_T2_c", "M_T3_c"}, Products: []string{"M_biomass_c"}},
		Rxn{ID: "R_9", Reactants: []string{"M_k_c"}, Products: []string{"M_l_c"}},
	)
}

// Ladder is a five-reaction network whose expansion from {A, C} takes four
// rounds: B and D at 1, E at 2, F at 3, G and H at 4.
func Ladder() *core.Network {
	return Build("ladder",
		Rxn{ID: "R1", Reactants: []string{"A"}, Products: []string{"B"}},
		Rxn{ID: "R2", Reactants: []string{"C"}, Products: []string{"D"}},
		Rxn{ID: "R3", Reactants: []string{"B", "D"}, Products: []string{"E"}},
		Rxn{ID: "R4", Reactants: []string{"E"}, Products: []string{"F"}},
		Rxn{ID: "R5", Reactants: []string{"F"}, Products: []string{"G", "H"}},
	)
}

// Diamond has two equally short routes from S to T and one long one:
//
//	S -> X -> T   (Ra, Rb)
//	S -> Y -> T   (Rc, Rd)
//	S -> P -> Q -> T (Re, Rf, Rg)
func Diamond() *core.Network {
	return Build("diamond",
		Rxn{ID: "Ra", Reactants: []string{"S"}, Products: []string{"X"}},
		Rxn{ID: "Rb", Reactants: []string{"X"}, Products: []string{"T"}},
		Rxn{ID: "Rc", Reactants: []string{"S"}, Products: []string{"Y"}},
		Rxn{ID: "Rd", Reactants: []string{"Y"}, Products: []string{"T"}},
		Rxn{ID: "Re", Reactants: []string{"S"}, Products: []string{"P"}},
		Rxn{ID: "Rf", Reactants: []string{"P"}, Products: []string{"Q"}},
		Rxn{ID: "Rg", Reactants: []string{"Q"}, Products: []string{"T"}},
	)
}
