package loader

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/mene/core"
)

// Reaction text grammar:
//
//	R_1: A + B -> C        # comment
//	R_2: C <=> D           reversible
//	R_src: -> A            source
var rxnLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `<=>|->`},
	{Name: "Ident", Pattern: `[\w.\[\]']+`},
	{Name: "Punct", Pattern: `[:+]`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

type rxnFile struct {
	Lines []*rxnLine `( @@? EOL )*`
}

type rxnLine struct {
	Pos       lexer.Position
	ID        string   `@Ident ":"`
	Reactants []string `( @Ident ( "+" @Ident )* )?`
	Arrow     string   `@Arrow`
	Products  []string `( @Ident ( "+" @Ident )* )?`
}

var parseRxn = participle.MustBuild[rxnFile](
	participle.Lexer(rxnLexer),
	participle.Elide("Whitespace", "Comment"),
)

func readTextNetwork(src *source) (*core.Network, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, &Error{Path: src.path, Err: err}
	}
	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	file, err := parseRxn.ParseString(src.path, text)
	if err != nil {
		var pe participle.Error
		if errors.As(err, &pe) {
			return nil, malformed(src.path, pe.Position().Line, "reaction text: %s", pe.Message())
		}
		return nil, malformed(src.path, 0, "reaction text: %v", err)
	}

	b := core.NewBuilder(core.WithName(baseName(src.path)))
	for _, ln := range file.Lines {
		if ln == nil {
			continue
		}
		err = b.AddReaction(ln.ID, ln.Reactants, ln.Products, core.WithReversible(ln.Arrow == "<=>"))
		if err != nil {
			return nil, invalid(src.path, ln.Pos.Line, "reaction text", err)
		}
	}

	return b.Build()
}

// lines calls fn for every non-blank, non-comment line with its 1-based number.
func lines(src *source, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(src)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return &Error{Path: src.path, Line: n, Err: err}
	}

	return nil
}

// readTextSpecies reads "id" or "id<TAB>label" lines.
func readTextSpecies(src *source) (core.SpeciesSet, error) {
	out := core.SpeciesSet{}
	err := lines(src, func(n int, line string) error {
		id, label, _ := strings.Cut(line, "\t")
		id, label = strings.TrimSpace(id), strings.TrimSpace(label)
		if id == "" {
			return malformed(src.path, n, "species line without id")
		}
		if label == "" {
			label = id
		}
		out = append(out, core.Species{ID: id, Label: label})
		return nil
	})

	return out, err
}

// readCandidates reads cofactor lines; unweighted ids get weight 1.
func readCandidates(src *source, o Options) ([]core.Candidate, error) {
	out := []core.Candidate{}
	err := lines(src, func(n int, line string) error {
		id, rest, tabbed := strings.Cut(line, "\t")
		id = strings.TrimSpace(id)
		switch {
		case id == "":
			return malformed(src.path, n, "cofactor line without id")
		case o.Weighted && !tabbed:
			return malformed(src.path, n, "cofactor %q has no tab-separated weight column", id)
		case !o.Weighted && tabbed:
			return malformed(src.path, n, "tab-separated cofactor line in an unweighted list")
		}
		w := int64(1)
		if o.Weighted {
			field, _, _ := strings.Cut(rest, "\t")
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil || v < 0 {
				return malformed(src.path, n, "cofactor %q has invalid weight %q", id, field)
			}
			w = v
		}
		out = append(out, core.Candidate{ID: EncodeID(id) + o.Suffix, Weight: w})
		return nil
	})

	return out, err
}

// encodedChars are replaced by "__<code>__" in SBML identifiers.
var encodedChars = []rune{'-', '|', '/', '(', ')', '\'', '=', '#', '*', '.', ':', '!', '+'}

// EncodeID turns a free-form compound name into the SBML identifier form:
// every character of encodedChars becomes "__<decimal code>__" and a leading
// digit gets an underscore prefix.
func EncodeID(s string) string {
	var sb strings.Builder
	for _, r := range s {
		enc := false
		for _, c := range encodedChars {
			if r == c {
				enc = true
				break
			}
		}
		if enc {
			sb.WriteString("__")
			sb.WriteString(strconv.Itoa(int(r)))
			sb.WriteString("__")
		} else {
			sb.WriteRune(r)
		}
	}
	out := sb.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}

	return out
}
