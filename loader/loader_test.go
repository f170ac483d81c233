package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/testnet"
	"github.com/katalvlaran/mene/loader"
)

func TestLoadNetwork_Formats(t *testing.T) {
	want := testnet.Toy().Reactions()
	for _, name := range []string{"toy.xml", "toy.yaml", "toy.toml", "toy.rxn"} {
		t.Run(name, func(t *testing.T) {
			net, err := loader.LoadNetwork(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, "toy", net.Name())
			assert.Equal(t, want, net.Reactions())
			assert.Equal(t, 16, net.NumCompounds())
		})
	}
}

func TestLoadNetwork_Gzip(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "toy.xml"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "toy.sbml.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	net, err := loader.LoadNetwork(path)
	require.NoError(t, err)
	assert.Equal(t, 11, net.NumReactions())

	format, gz := loader.DetectFormat(path)
	assert.Equal(t, loader.FormatSBML, format)
	assert.True(t, gz)
}

func TestLoadNetwork_Reversible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rev.rxn")
	require.NoError(t, os.WriteFile(path, []byte("R1: A <=> B\nR2: B -> C # trailing comment"), 0o600))
	net, err := loader.LoadNetwork(path)
	require.NoError(t, err)
	r, ok := net.Reaction("R1")
	require.True(t, ok)
	assert.True(t, r.Reversible)
	r, _ = net.Reaction("R2")
	assert.False(t, r.Reversible)
	assert.Equal(t, []string{"C"}, r.Products)
}

func TestLoadNetwork_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		kind error
		line int
	}{
		{"missing", "testdata/nope.xml", loader.ErrResourceNotFound, 0},
		{"no reactions", "testdata/no_reactions.xml", loader.ErrMalformedInput, 0},
		{"broken xml", "testdata/broken.xml", loader.ErrMalformedInput, -1},
		{"broken rxn", "testdata/broken.rxn", loader.ErrMalformedInput, 2},
		{"unknown yaml key", "testdata/unknown_key.yaml", loader.ErrMalformedInput, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadNetwork(tt.path)
			require.ErrorIs(t, err, tt.kind)
			var le *loader.Error
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.path, le.Path)
			switch {
			case tt.line > 0:
				assert.Equal(t, tt.line, le.Line)
			case tt.line < 0:
				assert.Positive(t, le.Line)
			}
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestLoadNetwork_DuplicateReaction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.rxn")
	require.NoError(t, os.WriteFile(path, []byte("R1: A -> B\n\nR1: B -> C\n"), 0o600))
	_, err := loader.LoadNetwork(path)
	require.ErrorIs(t, err, loader.ErrMalformedInput)
	assert.True(t, errors.Is(err, core.ErrDuplicateReaction))
	var le *loader.Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
}

func TestLoadSpecies(t *testing.T) {
	seeds, err := loader.LoadSpecies("testdata/toy_seeds.xml")
	require.NoError(t, err)
	assert.Equal(t, []string{"M_S_c", "M_foo_c", "M_l_c"}, seeds.IDs())
	assert.Equal(t, "M_S_c", seeds.LabelOf()["M_S_c"])

	named, err := loader.LoadSpecies("testdata/toy_seeds.xml", loader.WithSpeciesLabelsFromName())
	require.NoError(t, err)
	labels := named.LabelOf()
	assert.Equal(t, "medium", labels["M_S_c"])
	assert.Equal(t, "M_foo_c", labels["M_foo_c"])

	text, err := loader.LoadSpecies("testdata/toy_seeds.txt")
	require.NoError(t, err)
	assert.Equal(t, seeds.IDs(), text.IDs())
	assert.Equal(t, "medium", text.LabelOf()["M_S_c"])

	targets := []string{"M_T1_c", "M_T2_c", "M_T3_c"}
	for _, name := range []string{"toy_targets.xml", "toy_targets.yaml", "toy_targets.toml"} {
		set, err := loader.LoadSpecies(filepath.Join("testdata", name))
		require.NoError(t, err, name)
		assert.Equal(t, targets, set.IDs(), name)
	}
	yml, _ := loader.LoadSpecies("testdata/toy_targets.yaml")
	assert.Equal(t, "final", yml.LabelOf()["M_T3_c"])

	// a network file has no species list in TOML form
	_, err = loader.LoadSpecies("testdata/toy.toml")
	assert.ErrorIs(t, err, loader.ErrMalformedInput)
	_, err = loader.LoadSpecies("testdata/no_such_seeds.xml")
	assert.ErrorIs(t, err, loader.ErrResourceNotFound)
}

func TestLoadCandidates(t *testing.T) {
	cs, err := loader.LoadCandidates("testdata/cofactors.txt", loader.WithSuffix("_m"))
	require.NoError(t, err)
	assert.Equal(t, []core.Candidate{{ID: "c_c_m", Weight: 1}, {ID: "T1_c_m", Weight: 1}}, cs)

	cs, err = loader.LoadCandidates("testdata/cofactors_weighted.tsv", loader.WithWeighted(), loader.WithSuffix("_c"))
	require.NoError(t, err)
	assert.Equal(t, []core.Candidate{
		{ID: "c_c", Weight: 1},
		{ID: "T1_c", Weight: 2},
		{ID: "co__45__A_c", Weight: 7},
	}, cs)

	_, err = loader.LoadCandidates("testdata/cofactors_bad.tsv", loader.WithWeighted())
	require.ErrorIs(t, err, loader.ErrMalformedInput)
	var le *loader.Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Line)

	_, err = loader.LoadCandidates("testdata/cofactors_weighted.tsv")
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Line)
}

func TestEncodeID(t *testing.T) {
	tests := map[string]string{
		"glc-D":      "glc__45__D",
		"10fthf":     "_10fthf",
		"a.b:c":      "a__46__b__58__c",
		"plain_id":   "plain_id",
		"(R)-x+y'":   "__40__R__41____45__x__43__y__39__",
		"":           "",
		"co/a|b=c#*": "co__47__a__124__b__61__c__35____42__",
	}
	for in, want := range tests {
		assert.Equal(t, want, loader.EncodeID(in), in)
	}
}
