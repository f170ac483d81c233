package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mene/cofactor"
	"github.com/katalvlaran/mene/core"
	"github.com/katalvlaran/mene/internal/archive"
	"github.com/katalvlaran/mene/loader"
	"github.com/katalvlaran/mene/pathway"
	"github.com/katalvlaran/mene/producibility"
	"github.com/katalvlaran/mene/report"
	"github.com/katalvlaran/mene/scope"
)

const statusOK = "ok"

// inputs holds the file flags shared by the analysis commands.
type inputs struct {
	network string
	seeds   string
	targets string
}

func (in *inputs) bindNetwork(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.network, "network", "d", "", "metabolic network (SBML, YAML, TOML or reaction text, optionally .gz)")
	_ = cmd.MarkFlagRequired("network")
}

func (in *inputs) bindSeeds(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.seeds, "seeds", "s", "", "seed compounds")
	_ = cmd.MarkFlagRequired("seeds")
}

func (in *inputs) bindTargets(cmd *cobra.Command, required bool) {
	cmd.Flags().StringVarP(&in.targets, "targets", "t", "", "target compounds")
	if required {
		_ = cmd.MarkFlagRequired("targets")
	}
}

// paths lists the non-empty input files, for the archive.
func (in *inputs) paths(extra ...string) []string {
	out := make([]string, 0, 3+len(extra))
	for _, p := range append([]string{in.network, in.seeds, in.targets}, extra...) {
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// loaded is the parsed form of inputs.
type loaded struct {
	net     *core.Network
	seeds   core.SpeciesSet
	targets core.SpeciesSet
}

func (in *inputs) load(ctx context.Context, opts ...loader.Option) (*loaded, error) {
	opts = append([]loader.Option{loader.WithContext(ctx)}, opts...)
	var (
		l   loaded
		err error
	)
	if l.net, err = loader.LoadNetwork(in.network, opts...); err != nil {
		return nil, err
	}
	if in.seeds != "" {
		if l.seeds, err = loader.LoadSpecies(in.seeds, opts...); err != nil {
			return nil, err
		}
	}
	if in.targets != "" {
		if l.targets, err = loader.LoadSpecies(in.targets, opts...); err != nil {
			return nil, err
		}
	}

	return &l, nil
}

// simple builds a command whose record is fully determined by its inputs.
func simple(a *app, use, short string, in *inputs, compute func(ctx context.Context, l *loaded) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()
			l, err := in.load(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := compute(cmd.Context(), l)
			if err != nil {
				return err
			}

			return a.emit(cmd, in.paths(), statusOK, started, rec)
		},
	}
}

func newScopeCmd(a *app) *cobra.Command {
	in := &inputs{}
	cmd := simple(a, "scope", "Compounds reachable from the seeds", in,
		func(ctx context.Context, l *loaded) (any, error) {
			r, err := scope.Scope(l.net, l.seeds.IDs(), scope.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			return report.FromScope(r), nil
		})
	in.bindNetwork(cmd)
	in.bindSeeds(cmd)

	return cmd
}

func newScopeIncCmd(a *app) *cobra.Command {
	in := &inputs{}
	cmd := simple(a, "scope-inc", "Expansion round at which each compound becomes reachable", in,
		func(ctx context.Context, l *loaded) (any, error) {
			st, err := scope.Incremental(l.net, l.seeds.IDs(), l.targets.IDs(), scope.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			return report.FromSteps(st), nil
		})
	in.bindNetwork(cmd)
	in.bindSeeds(cmd)
	in.bindTargets(cmd, false)

	return cmd
}

func newActivationCmd(a *app) *cobra.Command {
	in := &inputs{}
	cmd := simple(a, "acti", "Reactions that can fire from the seeds", in,
		func(ctx context.Context, l *loaded) (any, error) {
			rs, err := scope.Activation(l.net, l.seeds.IDs(), scope.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			return report.FromActivation(rs), nil
		})
	in.bindNetwork(cmd)
	in.bindSeeds(cmd)

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	in := &inputs{}
	cmd := simple(a, "check", "Split targets into producible and unproducible", in,
		func(ctx context.Context, l *loaded) (any, error) {
			c, err := producibility.Classify(l.net, l.seeds.IDs(), l.targets.IDs(), scope.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			return report.FromClassification(c), nil
		})
	in.bindNetwork(cmd)
	in.bindSeeds(cmd)
	in.bindTargets(cmd, true)

	return cmd
}

func newDeadCmd(a *app) *cobra.Command {
	in := &inputs{}
	cmd := simple(a, "dead", "Compounds never produced or never consumed", in,
		func(_ context.Context, l *loaded) (any, error) {
			d, err := scope.FindDeadEnds(l.net)
			if err != nil {
				return nil, err
			}
			return report.FromDeadEnds(d), nil
		})
	in.bindNetwork(cmd)

	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	in := &inputs{}
	cmd := simple(a, "seed", "Compounds supplied by exchange reactions", in,
		func(_ context.Context, l *loaded) (any, error) {
			seeds, err := scope.ExchangeSeeds(l.net)
			if err != nil {
				return nil, err
			}
			return report.FromSeeds(seeds), nil
		})
	in.bindNetwork(cmd)

	return cmd
}

func newLabelCmd(a *app) *cobra.Command {
	in := &inputs{}
	var fromName bool
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Scope with the seed labels contributing to each compound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()
			var opts []loader.Option
			if fromName {
				opts = append(opts, loader.WithSpeciesLabelsFromName())
			}
			l, err := in.load(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			res, err := scope.Labelled(l.net, l.seeds, scope.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			return a.emit(cmd, in.paths(), statusOK, started, report.FromLabelled(res))
		},
	}
	in.bindNetwork(cmd)
	in.bindSeeds(cmd)
	cmd.Flags().BoolVar(&fromName, "labels-from-name", false, "label SBML seeds with their name attribute")

	return cmd
}

func newCofactorCmd(a *app) *cobra.Command {
	in := &inputs{}
	var (
		candidates string
		weighted   bool
		suffix     string
		enumerate  bool
	)
	cmd := &cobra.Command{
		Use:   "cof",
		Short: "Cheapest cofactor sets restoring unproducible targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()
			ctx := cmd.Context()
			l, err := in.load(ctx)
			if err != nil {
				return err
			}

			opts := []cofactor.Option{
				cofactor.WithContext(ctx),
				cofactor.WithTimeLimit(a.cfg.Search.TimeLimit),
				cofactor.WithNodeLimit(a.cfg.Search.NodeLimit),
				cofactor.WithMaxSolutions(a.cfg.Search.MaxSolutions),
				cofactor.WithWorkers(a.cfg.Workers),
			}
			if candidates != "" {
				lopts := []loader.Option{loader.WithContext(ctx), loader.WithSuffix(suffix)}
				if weighted {
					lopts = append(lopts, loader.WithWeighted())
				}
				cs, err := loader.LoadCandidates(candidates, lopts...)
				if err != nil {
					return err
				}
				opts = append(opts, cofactor.WithCandidates(cs))
			}

			seeds, targets := l.seeds.IDs(), l.targets.IDs()
			res, err := cofactor.Run(l.net, seeds, targets, opts...)
			if err != nil {
				return err
			}
			var all *cofactor.Enumeration
			if enumerate {
				if all, err = cofactor.EnumerateAll(l.net, seeds, targets, opts...); err != nil {
					return err
				}
			}
			a.logger.Info("cofactor search finished",
				"status", res.Status.String(),
				"chosen", len(res.Chosen),
				"stillUnproducible", len(res.StillUnproducible))

			return a.emit(cmd, in.paths(candidates), res.Status.String(), started, report.FromCofactor(res, all))
		},
	}
	in.bindNetwork(cmd)
	in.bindSeeds(cmd)
	in.bindTargets(cmd, true)
	f := cmd.Flags()
	f.StringVarP(&candidates, "cofactors", "c", "", "candidate cofactor file (default: every network compound, weighted by occurrences)")
	f.BoolVarP(&weighted, "weighted", "w", false, "candidate file has a tab-separated weight column")
	f.StringVar(&suffix, "suffix", "", "suffix appended to candidate ids, e.g. _c")
	f.BoolVarP(&enumerate, "enumerate", "e", false, "also list every optimal cofactor set")

	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	in := &inputs{}
	var minimal, enumerate bool
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Reactions producing each target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			started := time.Now()
			ctx := cmd.Context()
			l, err := in.load(ctx)
			if err != nil {
				return err
			}

			res, err := pathway.Run(l.net, l.seeds.IDs(), l.targets.IDs(),
				pathway.WithContext(ctx),
				pathway.WithMinimal(minimal),
				pathway.WithEnumeration(enumerate),
				pathway.WithTimeLimit(a.cfg.Search.TimeLimit),
				pathway.WithNodeLimit(a.cfg.Search.NodeLimit),
				pathway.WithMaxSolutions(a.cfg.Search.MaxSolutions),
				pathway.WithWorkers(a.cfg.Workers),
			)
			if err != nil {
				return err
			}
			a.logger.Info("pathway search finished",
				"status", res.Status.String(),
				"targets", len(res.Targets),
				"unproducible", len(res.Unproducible))

			return a.emit(cmd, in.paths(), res.Status.String(), started, report.FromPathway(res))
		},
	}
	in.bindNetwork(cmd)
	in.bindSeeds(cmd)
	in.bindTargets(cmd, true)
	cmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "minimize the number of reactions")
	cmd.Flags().BoolVarP(&enumerate, "enumerate", "e", false, "list every path per target")

	return cmd
}

// errNoArchive is returned by history when no archive is configured.
var errNoArchive = errors.New("no archive configured (use --archive or archive.path)")

// historyRecord is one archived run as listed by history.
type historyRecord struct {
	ID         string   `json:"id" yaml:"id"`
	Command    string   `json:"command" yaml:"command"`
	Inputs     []string `json:"inputs" yaml:"inputs"`
	Status     string   `json:"status" yaml:"status"`
	StartedAt  string   `json:"startedAt" yaml:"startedAt"`
	DurationMS int64    `json:"durationMs" yaml:"durationMs"`
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Archive.Path == "" {
				return errNoArchive
			}
			st, err := archive.Open(a.cfg.Archive.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := make([]historyRecord, 0, len(entries))
			for _, e := range entries {
				out = append(out, historyRecord{
					ID:         e.ID,
					Command:    e.Command,
					Inputs:     e.Inputs,
					Status:     e.Status,
					StartedAt:  e.StartedAt.Format(time.RFC3339),
					DurationMS: e.Duration.Milliseconds(),
				})
			}
			f, err := report.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}

			return report.Encode(a.stdout, f, out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to list (0 = all)")

	return cmd
}
