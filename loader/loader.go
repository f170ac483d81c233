package loader

import (
	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/ctxlog"
)

// LoadNetwork reads a reaction network from path.
func LoadNetwork(path string, opts ...Option) (*core.Network, error) {
	o := buildOptions(opts)
	src, err := open(path, o)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var net *core.Network
	switch src.format {
	case FormatYAML, FormatTOML:
		net, err = readStructuredNetwork(src)
	case FormatText:
		net, err = readTextNetwork(src)
	default:
		net, err = readSBMLNetwork(src)
	}
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(o.Ctx).Debug("loader: network read",
		"path", path, "format", src.format.String(),
		"reactions", net.NumReactions(), "compounds", net.NumCompounds())

	return net, nil
}

// LoadSpecies reads a seed or target set from path.
func LoadSpecies(path string, opts ...Option) (core.SpeciesSet, error) {
	o := buildOptions(opts)
	src, err := open(path, o)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var set core.SpeciesSet
	switch src.format {
	case FormatYAML, FormatTOML:
		set, err = readStructuredSpecies(src)
	case FormatText:
		set, err = readTextSpecies(src)
	default:
		set, err = readSBMLSpecies(src, o)
	}
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(o.Ctx).Debug("loader: species read",
		"path", path, "format", src.format.String(), "species", len(set))

	return set, nil
}

// LoadCandidates reads a cofactor list from path. The format is always the
// line-oriented text form, whatever the extension.
func LoadCandidates(path string, opts ...Option) ([]core.Candidate, error) {
	o := buildOptions(opts)
	src, err := open(path, o)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	cs, err := readCandidates(src, o)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(o.Ctx).Debug("loader: cofactors read",
		"path", path, "weighted", o.Weighted, "candidates", len(cs))

	return cs, nil
}
