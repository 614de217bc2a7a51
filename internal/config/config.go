// Package config loads the canonlab command configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/catalog"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full command configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SearchConfig mirrors the automorphism options exposed to users.
type SearchConfig struct {
	Worksize            int  `yaml:"worksize"`
	DegreeFirst         bool `yaml:"degree_first"`
	ReverseDegree       bool `yaml:"reverse_degree"`
	SortedNeighbourhood bool `yaml:"sorted_neighbourhood"`
}

// CatalogConfig locates the certificate catalog.
type CatalogConfig struct {
	Path       string `yaml:"path"`
	InMemory   bool   `yaml:"in_memory"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus text file written after a run.
type MetricsConfig struct {
	// File is the output path; empty disables metrics output.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Worksize:    automorphism.DefaultWorksize,
			DegreeFirst: true,
		},
		Catalog: CatalogConfig{
			Path:       "canonlab.db",
			SyncWrites: true,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML from r into cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}

	return cfg.Validate()
}

// Validate checks value domains.
func (c Config) Validate() error {
	if c.Search.Worksize < 1 {
		return fmt.Errorf("%w: search.worksize %d < 1", ErrInvalid, c.Search.Worksize)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if !c.Catalog.InMemory && c.Catalog.Path == "" {
		return fmt.Errorf("%w: catalog.path is empty", ErrInvalid)
	}

	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SearchOptions converts the search section to automorphism options.
func (c Config) SearchOptions() []automorphism.Option {
	opts := []automorphism.Option{
		automorphism.WithWorksize(c.Search.Worksize),
		automorphism.WithDegreeFirst(c.Search.DegreeFirst),
	}
	if c.Search.ReverseDegree {
		opts = append(opts, automorphism.WithReverseDegreeRefinement())
	}
	if c.Search.SortedNeighbourhood {
		opts = append(opts, automorphism.WithSortedNeighbourhoodRefinement())
	}

	return opts
}

// CatalogConfig converts the catalog section.
func (c Config) CatalogConfig(logger *slog.Logger) catalog.Config {
	return catalog.Config{
		Path:       c.Catalog.Path,
		InMemory:   c.Catalog.InMemory,
		SyncWrites: c.Catalog.SyncWrites,
		Logger:     logger,
	}
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
	}
}

// Logger builds the configured slog logger writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
