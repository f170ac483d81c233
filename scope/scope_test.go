package scope_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/testnet"
	"github.com/katalvlaran/mene/scope"
)

var toyScope = []string{
	"M_S_b", "M_S_c", "M_T3_c", "M_d_c", "M_e_c", "M_f_c", "M_g_c", "M_i_c", "M_l_c",
}

func TestScope_Toy(t *testing.T) {
	res, err := scope.Scope(testnet.Toy(), testnet.ToySeeds())
	require.NoError(t, err)

	assert.Equal(t, toyScope, res.Scope)
	assert.Equal(t, []string{"M_S_c"}, res.ProducedSeeds)
	assert.Equal(t, []string{"M_l_c"}, res.NonProducedSeeds)
	assert.Equal(t, []string{"M_foo_c"}, res.AbsentSeeds)
	assert.Equal(t, []string{"R_3", "R_4", "R_5", "R_6", "R_7", "R_boundary", "R_import_S"}, res.Activable)
}

func TestActivation_Toy(t *testing.T) {
	acti, err := scope.Activation(testnet.Toy(), testnet.ToySeeds())
	require.NoError(t, err)
	assert.NotContains(t, acti, "R_1")
	assert.NotContains(t, acti, "R_9")
	assert.Len(t, acti, 7)
}

func TestScope_Errors(t *testing.T) {
	_, err := scope.Scope(nil, nil)
	assert.ErrorIs(t, err, core.ErrNetworkNil)

	net := testnet.Toy()
	_, err = scope.Scope(net, nil, scope.WithReactionSubset([]string{"R_nope"}))
	assert.ErrorIs(t, err, scope.ErrReactionNotFound)

	_, err = scope.Scope(net, nil, scope.WithReactionSubset(nil))
	assert.ErrorIs(t, err, scope.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = scope.Scope(net, testnet.ToySeeds(), scope.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScope_EmptySeeds(t *testing.T) {
	res, err := scope.Scope(testnet.Toy(), nil)
	require.NoError(t, err)
	// the boundary reaction still fires
	assert.Equal(t, []string{"M_S_b", "M_S_c", "M_T3_c", "M_d_c", "M_e_c", "M_f_c", "M_g_c", "M_i_c"}, res.Scope)
	assert.Empty(t, res.ProducedSeeds)
}

func TestScope_ReactionSubset(t *testing.T) {
	res, err := scope.Scope(testnet.Toy(), []string{"M_S_c"},
		scope.WithReactionSubset([]string{"R_3", "R_4", "R_5"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"M_S_c", "M_T3_c", "M_d_c", "M_e_c"}, res.Scope)
	assert.Equal(t, []string{"M_S_c"}, res.NonProducedSeeds)

	res, err = scope.Scope(testnet.Toy(), []string{"M_S_c"}, scope.WithReactionSubset([]string{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"M_S_c"}, res.Scope)
	assert.Empty(t, res.Activable)
}

func TestScope_Reversible(t *testing.T) {
	net := testnet.Build("rev",
		testnet.Rxn{ID: "R1", Reactants: []string{"A"}, Products: []string{"B"}, Reversible: true},
		testnet.Rxn{ID: "R2", Reactants: []string{"A", "X"}, Products: []string{"C"}},
		testnet.Rxn{ID: "R_up", Reactants: []string{"X"}, Reversible: true},
	)
	res, err := scope.Scope(net, []string{"B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "X"}, res.Scope)
	assert.Equal(t, []string{"R1", "R2", "R_up"}, res.Activable)
	// B yields A backward, then R1 fires forward and regenerates B
	assert.Equal(t, []string{"B"}, res.ProducedSeeds)

	res, err = scope.Scope(net, []string{"C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "X"}, res.Scope)
	assert.Equal(t, []string{"C"}, res.NonProducedSeeds)
}

func TestScope_OnFireRounds(t *testing.T) {
	rounds := map[string]int{}
	_, err := scope.Scope(testnet.Ladder(), []string{"A", "C"},
		scope.WithOnFire(func(id string, backward bool, round int) {
			assert.False(t, backward)
			rounds[id] = round
		}))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"R1": 1, "R2": 1, "R3": 2, "R4": 3, "R5": 4}, rounds)
}

// randomNetwork builds a reproducible random network over n compounds.
func randomNetwork(rng *rand.Rand, n, m int) *core.Network {
	b := core.NewBuilder()
	pick := func(k int) []string {
		out := make([]string, 0, k)
		for i := 0; i < k; i++ {
			out = append(out, fmt.Sprintf("c%d", rng.Intn(n)))
		}
		return out
	}
	for r := 0; r < m; r++ {
		_ = b.AddReaction(fmt.Sprintf("r%d", r), pick(rng.Intn(3)), pick(1+rng.Intn(2)),
			core.WithReversible(rng.Intn(5) == 0))
	}
	net, _ := b.Build()

	return net
}

func TestScope_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		net := randomNetwork(rng, 25, 40)
		small := []string{fmt.Sprintf("c%d", rng.Intn(25))}
		large := append(append([]string{}, small...), fmt.Sprintf("c%d", rng.Intn(25)), fmt.Sprintf("c%d", rng.Intn(25)))

		s1, err := scope.Scope(net, small)
		require.NoError(t, err)
		s2, err := scope.Scope(net, large)
		require.NoError(t, err)
		// monotonicity
		assert.Subset(t, s2.Scope, s1.Scope)

		// idempotence
		again, err := scope.Scope(net, append(append([]string{}, s1.Scope...), small...))
		require.NoError(t, err)
		assert.Equal(t, s1.Scope, again.Scope)
	}
}

func TestEngine(t *testing.T) {
	net := testnet.Toy()
	e, err := scope.NewEngine(net)
	require.NoError(t, err)
	assert.Same(t, net, e.Network())

	seeds, _ := net.CompoundIndices(testnet.ToySeeds())
	targets, _ := net.CompoundIndices(testnet.ToyTargets())
	assert.Equal(t, 2, e.Unmet(seeds, nil, targets))
	assert.Equal(t, 0, e.Unmet(seeds, nil, nil))

	avail := e.Reach(seeds, nil)
	assert.Equal(t, toyScope, net.CompoundIDs(avail))

	c, _ := net.CompoundIndex("M_c_c")
	t1, _ := net.CompoundIndex("M_T1_c")
	assert.Equal(t, 0, e.Unmet(append(seeds, c, t1), nil, targets))

	fired := e.Fired(seeds, nil)
	assert.Len(t, net.ReactionIDs(fired), 7)

	_, err = scope.NewEngine(nil)
	assert.ErrorIs(t, err, core.ErrNetworkNil)
}
