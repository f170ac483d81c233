package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mene/internal/archive"
	"github.com/katalvlaran/mene/internal/config"
	"github.com/katalvlaran/mene/internal/ctxlog"
	"github.com/katalvlaran/mene/internal/logging"
	"github.com/katalvlaran/mene/report"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	output  string

	cfg    *config.Config
	logger *slog.Logger

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "mene",
		Short: "Metabolic network expansion and producibility analysis",
		Long: `mene computes what a metabolic network can produce from a set of seed
compounds, which targets are out of reach, the cheapest cofactors that
restore them and the reactions that produce each target.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: mene.{yaml,toml,json} in . or $HOME/.config/mene)")
	pf.StringVarP(&a.output, "output", "o", "", "write the record to this file instead of stdout")
	pf.String("log-level", "info", "log level: debug, info, warn, error, off")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("format", "json", "record format: json or yaml")
	pf.Duration("time-limit", 0, "search time limit per call (0 = none)")
	pf.Int64("node-limit", 0, "search node limit per call (0 = none)")
	pf.Int("max-solutions", 1000, "maximum number of enumerated solutions")
	pf.Int("workers", 0, "parallel workers (default: number of CPUs)")
	pf.String("archive", "", "record finished runs in this SQLite file")

	bind := map[string]string{
		config.KeyLogLevel:     "log-level",
		config.KeyLogFormat:    "log-format",
		config.KeyOutputFormat: "format",
		config.KeyTimeLimit:    "time-limit",
		config.KeyNodeLimit:    "node-limit",
		config.KeyMaxSolutions: "max-solutions",
		config.KeyWorkers:      "workers",
		config.KeyArchivePath:  "archive",
	}
	for key, flag := range bind {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newScopeCmd(a),
		newScopeIncCmd(a),
		newActivationCmd(a),
		newCheckCmd(a),
		newDeadCmd(a),
		newSeedCmd(a),
		newLabelCmd(a),
		newCofactorCmd(a),
		newPathCmd(a),
		newHistoryCmd(a),
	)

	return root
}

// setup resolves the configuration and installs the logger in the command
// context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(a.stderr, logging.LevelFromString(cfg.Log.Level), logging.Format(cfg.Log.Format))
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), a.logger))
	a.logger.Debug("config resolved",
		"workers", cfg.Workers,
		"timeLimit", cfg.Search.TimeLimit,
		"nodeLimit", cfg.Search.NodeLimit,
		"maxSolutions", cfg.Search.MaxSolutions)

	return nil
}

// emit writes rec in the configured format and archives the run when an
// archive is configured.
func (a *app) emit(cmd *cobra.Command, inputs []string, status string, started time.Time, rec any) error {
	f, err := report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	data, err := report.Marshal(f, rec)
	if err != nil {
		return err
	}
	if a.output != "" {
		if err := os.WriteFile(a.output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", a.output, err)
		}
	} else if _, err := a.stdout.Write(data); err != nil {
		return err
	}

	return a.archive(cmd, inputs, status, started, rec)
}

func (a *app) archive(cmd *cobra.Command, inputs []string, status string, started time.Time, rec any) error {
	if a.cfg.Archive.Path == "" {
		return nil
	}
	payload, err := report.Marshal(report.JSON, rec)
	if err != nil {
		return err
	}
	st, err := archive.Open(a.cfg.Archive.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.Record(cmd.Context(), archive.Entry{
		Command:   cmd.Name(),
		Inputs:    inputs,
		Status:    status,
		StartedAt: started,
		Duration:  time.Since(started),
		Payload:   payload,
	})
	if err != nil {
		return err
	}
	a.logger.Info("run archived", "id", id, "command", cmd.Name(), "path", a.cfg.Archive.Path)

	return nil
}
