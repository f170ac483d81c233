package loader

import (
	"encoding/xml"
	"errors"
	"io"

	"github.com/katalvlaran/mene/core"
)

// SBML subset. Tags carry no namespace so any SBML level or version matches.
type sbmlDoc struct {
	XMLName xml.Name   `xml:"sbml"`
	Model   *sbmlModel `xml:"model"`
}

type sbmlModel struct {
	ID        string            `xml:"id,attr"`
	Species   *sbmlSpeciesList  `xml:"listOfSpecies"`
	Reactions *sbmlReactionList `xml:"listOfReactions"`
}

type sbmlSpeciesList struct {
	Species []sbmlSpecies `xml:"species"`
}

type sbmlSpecies struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type sbmlReactionList struct {
	Reactions []sbmlReaction `xml:"reaction"`
}

type sbmlReaction struct {
	ID         string       `xml:"id,attr"`
	Reversible string       `xml:"reversible,attr"`
	Reactants  *sbmlRefList `xml:"listOfReactants"`
	Products   *sbmlRefList `xml:"listOfProducts"`
}

type sbmlRefList struct {
	Refs []sbmlRef `xml:"speciesReference"`
}

type sbmlRef struct {
	Species string `xml:"species,attr"`
}

func (l *sbmlRefList) ids() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.Refs))
	for _, r := range l.Refs {
		out = append(out, r.Species)
	}

	return out
}

func decodeSBML(path string, r io.Reader) (*sbmlModel, error) {
	var doc sbmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		var se *xml.SyntaxError
		if errors.As(err, &se) {
			return nil, malformed(path, se.Line, "sbml: %s", se.Msg)
		}
		return nil, malformed(path, 0, "sbml: %v", err)
	}
	if doc.Model == nil {
		return nil, malformed(path, 0, "sbml: missing model")
	}

	return doc.Model, nil
}

// readSBMLNetwork builds a network from model/listOfReactions.
func readSBMLNetwork(src *source) (*core.Network, error) {
	m, err := decodeSBML(src.path, src)
	if err != nil {
		return nil, err
	}
	if m.Reactions == nil {
		return nil, malformed(src.path, 0, "sbml: missing listOfReactions")
	}
	name := m.ID
	if name == "" {
		name = baseName(src.path)
	}

	b := core.NewBuilder(core.WithName(name))
	for _, rx := range m.Reactions.Reactions {
		err = b.AddReaction(rx.ID, rx.Reactants.ids(), rx.Products.ids(),
			core.WithReversible(rx.Reversible == "true"))
		if err != nil {
			return nil, invalid(src.path, 0, "sbml", err)
		}
	}

	return b.Build()
}

// readSBMLSpecies lists model/listOfSpecies.
func readSBMLSpecies(src *source, o Options) (core.SpeciesSet, error) {
	m, err := decodeSBML(src.path, src)
	if err != nil {
		return nil, err
	}
	if m.Species == nil {
		return nil, malformed(src.path, 0, "sbml: missing listOfSpecies")
	}
	out := make(core.SpeciesSet, 0, len(m.Species.Species))
	for _, sp := range m.Species.Species {
		if sp.ID == "" {
			return nil, malformed(src.path, 0, "sbml: species without id")
		}
		label := sp.ID
		if o.LabelsFromName && sp.Name != "" {
			label = sp.Name
		}
		out = append(out, core.Species{ID: sp.ID, Label: label})
	}

	return out, nil
}
