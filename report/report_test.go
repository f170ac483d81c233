package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mene/cofactor"
	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/testnet"
	"github.com/katalvlaran/mene/pathway"
	"github.com/katalvlaran/mene/producibility"
	"github.com/katalvlaran/mene/report"
	"github.com/katalvlaran/mene/scope"
)

func TestScopeRecord_JSON(t *testing.T) {
	res, err := scope.Scope(testnet.Toy(), testnet.ToySeeds())
	require.NoError(t, err)
	b, err := report.Marshal(report.JSON, report.FromScope(res))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"scope": ["M_S_b","M_S_c","M_T3_c","M_d_c","M_e_c","M_f_c","M_g_c","M_i_c","M_l_c"],
		"producedSeeds": ["M_S_c"],
		"nonProducedSeeds": ["M_l_c"],
		"absentSeeds": ["M_foo_c"]
	}`, string(b))
}

func TestCheckAndDeadEnds(t *testing.T) {
	net := testnet.Toy()
	cl, err := producibility.Classify(net, testnet.ToySeeds(), testnet.ToyTargets())
	require.NoError(t, err)
	b, err := report.Marshal(report.JSON, report.FromClassification(cl))
	require.NoError(t, err)
	assert.JSONEq(t, `{"producibleTargets":["M_T3_c"],"unproducibleTargets":["M_T1_c","M_T2_c"]}`, string(b))

	de, err := scope.FindDeadEnds(net)
	require.NoError(t, err)
	rec := report.FromDeadEnds(de)
	assert.Equal(t, de.NeverProduced, rec.NeverProduced)

	b, err = report.Marshal(report.JSON, report.FromActivation(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"activatableReactions":[]}`, string(b))
}

func TestCofactorRecord(t *testing.T) {
	res, err := cofactor.Run(testnet.Toy(), testnet.ToySeeds(), testnet.ToyTargets())
	require.NoError(t, err)
	b, err := report.Marshal(report.JSON, report.FromCofactor(res, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "optimal",
		"stillUnproducible": [],
		"chosen": [["M_T1_c",2],["M_c_c",1]],
		"intersection": [["M_T1_c",2],["M_c_c",1]],
		"union": [["M_T1_c",2],["M_c_c",1]],
		"newlyProducible": ["M_T1_c","M_T2_c"]
	}`, string(b))

	y, err := report.Marshal(report.YAML, report.FromCofactor(res, &cofactor.Enumeration{
		Solutions: [][]core.Candidate{res.Chosen},
	}))
	require.NoError(t, err)
	var back map[string]any
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, []any{[]any{"M_T1_c", 2}, []any{"M_c_c", 1}}, back["chosen"])
	assert.Len(t, back["allSolutions"], 1)
}

func TestWeightedID_RoundTrip(t *testing.T) {
	in := report.Weighted([]core.Candidate{{ID: "b", Weight: 3}, {ID: "a", Weight: 0}, {ID: "b", Weight: 9}})
	assert.Equal(t, []report.WeightedID{{ID: "a", Weight: 0}, {ID: "b", Weight: 3}}, in)

	var out []report.WeightedID
	require.NoError(t, json.Unmarshal([]byte(`[["x",4]]`), &out))
	assert.Equal(t, []report.WeightedID{{ID: "x", Weight: 4}}, out)
	assert.Error(t, json.Unmarshal([]byte(`[["x"]]`), &out))
}

func TestPathwayRecord(t *testing.T) {
	res, err := pathway.Run(testnet.Toy(), testnet.ToySeeds(), testnet.ToyTargets())
	require.NoError(t, err)
	rec := report.FromPathway(res)
	assert.Equal(t, "optimal", rec.Status)
	assert.Equal(t, []string{"M_T1_c", "M_T2_c"}, rec.UnproducibleTargets)
	assert.Equal(t, []string{"R_3", "R_4", "R_5"}, rec.IntersectionPath)
	assert.Equal(t, []string{"R_3", "R_4", "R_5", "R_boundary", "R_import_S"}, rec.UnionPath)
	require.Contains(t, rec.Targets, testnet.TargetT3)

	b, err := report.Marshal(report.JSON, rec)
	require.NoError(t, err)
	for _, key := range []string{`"unproducibleTargets"`, `"onePath"`, `"unionPath"`, `"intersectionPath"`} {
		assert.Contains(t, string(b), key)
	}
	assert.NotContains(t, string(b), "allPaths")
}

func TestIncrementalRecord(t *testing.T) {
	steps, err := scope.Incremental(testnet.Ladder(), []string{"A", "C"}, []string{"H"})
	require.NoError(t, err)
	b, err := report.Marshal(report.YAML, report.FromSteps(steps))
	require.NoError(t, err)
	var back report.IncrementalRecord
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, 4, back.StepOf["H"])
	assert.Equal(t, []string{"G", "H"}, back.ByStep[4])
	assert.Equal(t, []string{"A", "C"}, back.ByStep[0])
}

func TestLabelledAndSeeds(t *testing.T) {
	lr, err := scope.Labelled(testnet.Ladder(), core.NewSpeciesSet("A", "C"))
	require.NoError(t, err)
	rec := report.FromLabelled(lr)
	assert.Equal(t, []string{"A", "C"}, rec.CompoundLabels["E"])

	s := report.FromSeeds([]string{"b", "a", "b"})
	assert.Equal(t, []string{"a", "b"}, s.Seeds)
}

func TestFormats(t *testing.T) {
	for in, want := range map[string]report.Format{"json": report.JSON, "": report.JSON, "YAML": report.YAML, "yml": report.YAML} {
		f, err := report.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}
	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)

	var sb strings.Builder
	err = report.Encode(&sb, report.Format("csv"), report.SeedRecord{})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
