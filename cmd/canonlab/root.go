package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/canonlab/internal/config"
	"github.com/katalvlaran/canonlab/internal/metrics"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath  string
	logLevel    string
	logFormat   string
	metricsFile string
	catalogPath string
	inputFormat string
	output      string

	cfg      config.Config
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "canonlab",
		Short:         "Symmetry classes and canonical forms of molecules and graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.finish()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus text metrics to this file")
	pf.StringVar(&a.inputFormat, "format", "", "input format (molfile, sdf, graph-yaml); inferred from the file name when empty")
	pf.StringVarP(&a.output, "output", "o", "text", "output format: text, json or yaml")

	root.AddCommand(
		newCanonCmd(a),
		newOrbitsCmd(a),
		newCatalogCmd(a),
		newFixtureCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup loads the configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = a.metricsFile
	}
	if flags.Lookup("catalog") != nil && flags.Changed("catalog") {
		cfg.Catalog.Path = a.catalogPath
		cfg.Catalog.InMemory = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch a.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}

	a.cfg = cfg
	if a.logger, err = cfg.Logger(a.stderr); err != nil {
		return err
	}
	a.recorder = metrics.NewRecorder()
	a.logger.Debug("configuration loaded", slog.String("path", a.configPath))

	return nil
}

func (a *app) finish() error {
	if a.cfg.Metrics.File == "" || a.recorder == nil {
		return nil
	}
	if err := a.recorder.WriteFile(a.cfg.Metrics.File); err != nil {
		return err
	}
	a.logger.Debug("metrics written", slog.String("file", a.cfg.Metrics.File))

	return nil
}

// emit writes v as JSON or YAML, or calls text for the text format.
func (a *app) emit(v any, text func(w io.Writer) error) error {
	switch a.output {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(a.stdout)
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, strings.TrimRight(string(data), "\n")+"\n")
			return err
		},
	}
}
