package loader

import (
	"context"
	"path/filepath"
	"strings"
)

// Format selects a file syntax.
type Format int

const (
	// FormatAuto detects the syntax from the file extension.
	FormatAuto Format = iota
	FormatSBML
	FormatYAML
	FormatTOML
	FormatText
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatSBML:
		return "sbml"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatText:
		return "text"
	default:
		return "auto"
	}
}

// Option configures a load via functional arguments.
type Option func(*Options)

// Options holds load parameters.
type Options struct {
	// Ctx carries the logger.
	Ctx context.Context

	// Format forces a syntax; FormatAuto detects it.
	Format Format

	// LabelsFromName takes SBML species labels from the name attribute.
	LabelsFromName bool

	// Weighted expects "id<TAB>weight" cofactor lines.
	Weighted bool

	// Suffix is appended to every encoded cofactor id.
	Suffix string
}

// DefaultOptions returns extension detection and unweighted cofactors.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context whose logger reports progress.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFormat forces a file syntax.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}

// WithSpeciesLabelsFromName labels SBML species by their name attribute,
// falling back to the id when the name is empty.
func WithSpeciesLabelsFromName() Option {
	return func(o *Options) { o.LabelsFromName = true }
}

// WithWeighted reads cofactor files as "id<TAB>weight" lines.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithSuffix appends s to every cofactor id after encoding.
func WithSuffix(s string) Option {
	return func(o *Options) { o.Suffix = s }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// DetectFormat maps a path to a Format and reports whether it is gzipped.
func DetectFormat(path string) (Format, bool) {
	name := strings.ToLower(filepath.Base(path))
	gz := strings.HasSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".gz")
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return FormatYAML, gz
	case ".toml":
		return FormatTOML, gz
	case ".rxn", ".txt", ".tsv":
		return FormatText, gz
	default:
		return FormatSBML, gz
	}
}
