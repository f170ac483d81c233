package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mene/core"
)

// networkDoc is the YAML/TOML network schema.
type networkDoc struct {
	Name      string        `yaml:"name" toml:"name"`
	Reactions []reactionDoc `yaml:"reactions" toml:"reactions"`
}

type reactionDoc struct {
	ID         string   `yaml:"id" toml:"id"`
	Reactants  []string `yaml:"reactants" toml:"reactants"`
	Products   []string `yaml:"products" toml:"products"`
	Reversible bool     `yaml:"reversible" toml:"reversible"`
}

// speciesDoc is the YAML/TOML species schema.
type speciesDoc struct {
	Species []speciesEntry `yaml:"species" toml:"species"`
}

type speciesEntry struct {
	ID    string `yaml:"id" toml:"id"`
	Label string `yaml:"label" toml:"label"`
}

// decodeStructured fills v from YAML or TOML, rejecting unknown keys.
func decodeStructured(src *source, v any) error {
	switch src.format {
	case FormatYAML:
		dec := yaml.NewDecoder(src)
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return malformed(src.path, 0, "yaml: empty document")
			}
			return malformed(src.path, 0, "yaml: %v", err)
		}
	default:
		dec := toml.NewDecoder(src)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			var de *toml.DecodeError
			if errors.As(err, &de) {
				row, _ := de.Position()
				return malformed(src.path, row, "toml: %v", de)
			}
			return malformed(src.path, 0, "toml: %v", err)
		}
	}

	return nil
}

func readStructuredNetwork(src *source) (*core.Network, error) {
	var doc networkDoc
	if err := decodeStructured(src, &doc); err != nil {
		return nil, err
	}
	if doc.Reactions == nil {
		return nil, malformed(src.path, 0, "%s: missing reactions", src.format)
	}
	name := doc.Name
	if name == "" {
		name = baseName(src.path)
	}

	b := core.NewBuilder(core.WithName(name))
	for i, rx := range doc.Reactions {
		if err := b.AddReaction(rx.ID, rx.Reactants, rx.Products, core.WithReversible(rx.Reversible)); err != nil {
			return nil, invalid(src.path, 0, fmt.Sprintf("%s: reaction #%d", src.format, i+1), err)
		}
	}

	return b.Build()
}

func readStructuredSpecies(src *source) (core.SpeciesSet, error) {
	var doc speciesDoc
	if err := decodeStructured(src, &doc); err != nil {
		return nil, err
	}
	if doc.Species == nil {
		return nil, malformed(src.path, 0, "%s: missing species", src.format)
	}
	out := make(core.SpeciesSet, 0, len(doc.Species))
	for i, sp := range doc.Species {
		if sp.ID == "" {
			return nil, malformed(src.path, 0, "%s: species #%d without id", src.format, i+1)
		}
		if sp.Label == "" {
			sp.Label = sp.ID
		}
		out = append(out, core.Species{ID: sp.ID, Label: sp.Label})
	}

	return out, nil
}

// baseName strips directories and every extension from path.
func baseName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}

	return name
}
