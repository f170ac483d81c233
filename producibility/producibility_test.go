package producibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/testnet"
	"github.com/katalvlaran/mene/producibility"
	"github.com/katalvlaran/mene/scope"
)

func TestClassify_Toy(t *testing.T) {
	cl, err := producibility.Classify(testnet.Toy(), testnet.ToySeeds(), testnet.ToyTargets())
	require.NoError(t, err)
	assert.Equal(t, []string{"M_T3_c"}, cl.Producible)
	assert.Equal(t, []string{"M_T1_c", "M_T2_c"}, cl.Unproducible)
}

func TestClassify_MatchesScope(t *testing.T) {
	net := testnet.Toy()
	res, err := scope.Scope(net, testnet.ToySeeds())
	require.NoError(t, err)

	all := append(net.Compounds(), "M_absent_c")
	cl, err := producibility.Classify(net, testnet.ToySeeds(), all)
	require.NoError(t, err)
	assert.Equal(t, res.Scope, cl.Producible)
	assert.Contains(t, cl.Unproducible, "M_absent_c")
	assert.Len(t, cl.Producible, len(res.Scope))
}

func TestClassify_Duplicates(t *testing.T) {
	cl, err := producibility.Classify(testnet.Toy(), testnet.ToySeeds(), []string{"M_T3_c", "M_T3_c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"M_T3_c"}, cl.Producible)
	assert.Empty(t, cl.Unproducible)
}

func TestRequire(t *testing.T) {
	net := testnet.Toy()
	assert.NoError(t, producibility.Require(net, "pathway", testnet.ToySeeds(), []string{"M_T3_c"}))

	err := producibility.Require(net, "pathway", testnet.ToySeeds(), testnet.ToyTargets())
	require.ErrorIs(t, err, core.ErrInfeasiblePrecondition)
	var pe *core.PreconditionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "pathway", pe.Op)
	assert.Equal(t, []string{"M_T1_c", "M_T2_c"}, pe.Targets)

	_, err = producibility.Classify(nil, nil, nil)
	assert.ErrorIs(t, err, core.ErrNetworkNil)
}
