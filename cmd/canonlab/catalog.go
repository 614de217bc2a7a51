package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/canonlab/catalog"
)

type catalogResult struct {
	Name      string         `json:"name" yaml:"name"`
	Hash      string         `json:"hash" yaml:"hash"`
	Found     bool           `json:"found" yaml:"found"`
	Duplicate bool           `json:"duplicate,omitempty" yaml:"duplicate,omitempty"`
	Entry     *catalog.Entry `json:"entry,omitempty" yaml:"entry,omitempty"`
}

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Maintain the catalog of canonical certificates",
	}
	cmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog directory (overrides catalog.path)")

	cmd.AddCommand(
		newCatalogAddCmd(a),
		newCatalogLookupCmd(a),
		newCatalogListCmd(a),
		newCatalogCountCmd(a),
		newCatalogCompactCmd(a),
	)

	return cmd
}

func (a *app) openCatalog(readOnly bool) (*catalog.Catalog, error) {
	cfg := a.cfg.CatalogConfig(a.logger)
	cfg.ReadOnly = readOnly && !cfg.InMemory

	return catalog.Open(cfg)
}

// withCatalog opens the catalog for the duration of fn.
func (a *app) withCatalog(readOnly bool, fn func(*catalog.Catalog) error) (err error) {
	c, err := a.openCatalog(readOnly)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(c)
}

func newCatalogAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add FILE...",
		Short: "Add structures; isomorphic duplicates report the existing entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.load(args)
			if err != nil {
				return err
			}
			var results []catalogResult
			err = a.withCatalog(false, func(c *catalog.Catalog) error {
				return a.forEach(cmd.Context(), items, func(s structure) error {
					r, err := a.canonicalize(cmd.Context(), s)
					if err != nil {
						return err
					}
					res, err := c.Add(r.Name, r.cert)
					if err != nil {
						return err
					}
					a.recorder.ObserveCatalogAdd(res.Duplicate)
					entry := res.Entry
					results = append(results, catalogResult{
						Name: r.Name, Hash: r.Hash, Found: res.Duplicate, Duplicate: res.Duplicate, Entry: &entry,
					})
					return nil
				})
			})
			if err != nil {
				return err
			}

			return a.emit(results, func(w io.Writer) error {
				for _, r := range results {
					if r.Duplicate {
						fmt.Fprintf(w, "%s\tduplicate of %s\n", r.Name, r.Entry.Name)
						continue
					}
					fmt.Fprintf(w, "%s\tadded %s\n", r.Name, r.Hash)
				}
				return nil
			})
		},
	}
}

func newCatalogLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup FILE...",
		Short: "Report catalog entries isomorphic to the given structures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.load(args)
			if err != nil {
				return err
			}
			var results []catalogResult
			err = a.withCatalog(true, func(c *catalog.Catalog) error {
				return a.forEach(cmd.Context(), items, func(s structure) error {
					r, err := a.canonicalize(cmd.Context(), s)
					if err != nil {
						return err
					}
					out := catalogResult{Name: r.Name, Hash: r.Hash}
					e, err := c.Lookup(r.cert)
					switch {
					case errors.Is(err, catalog.ErrNotFound):
					case err != nil:
						return err
					default:
						out.Found, out.Entry = true, &e
					}
					results = append(results, out)
					return nil
				})
			})
			if err != nil {
				return err
			}

			return a.emit(results, func(w io.Writer) error {
				for _, r := range results {
					if !r.Found {
						fmt.Fprintf(w, "%s\tnot found\n", r.Name)
						continue
					}
					fmt.Fprintf(w, "%s\tmatches %s (added %s)\n", r.Name, r.Entry.Name, r.Entry.Added.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}

func newCatalogListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var entries []catalog.Entry
			err := a.withCatalog(true, func(c *catalog.Catalog) error {
				return c.Entries(func(e catalog.Entry) bool {
					entries = append(entries, e)
					return true
				})
			})
			if err != nil {
				return err
			}

			return a.emit(entries, func(w io.Writer) error {
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", e.Hash, e.Name, e.Order, e.Size)
				}
				fmt.Fprintf(w, "%d entries\n", len(entries))
				return nil
			})
		},
	}
}

func newCatalogCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var n int
			err := a.withCatalog(true, func(c *catalog.Catalog) (err error) {
				n, err = c.Count()
				return err
			})
			if err != nil {
				return err
			}

			return a.emit(map[string]int{"count": n}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, n)
				return err
			})
		},
	}
}

func newCatalogCompactCmd(a *app) *cobra.Command {
	var ratio float64
	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Run value-log garbage collection",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.withCatalog(false, func(c *catalog.Catalog) error {
				if err := c.Compact(ratio); err != nil {
					return err
				}
				a.logger.Info("catalog compacted", slog.Float64("discard_ratio", ratio))
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&ratio, "discard-ratio", 0.5, "minimum garbage fraction of a value-log file to rewrite")

	return cmd
}
