package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newCanonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "canon FILE...",
		Short: "Print canonical order, symmetry classes and certificate hash",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.load(args)
			if err != nil {
				return err
			}
			var reports []report
			err = a.forEach(cmd.Context(), items, func(s structure) error {
				r, err := a.canonicalize(cmd.Context(), s)
				if err != nil {
					return err
				}
				reports = append(reports, r)
				return nil
			})
			if err != nil {
				return err
			}

			return a.emit(reports, func(w io.Writer) error {
				for _, r := range reports {
					fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Hash)
					if r.Formula != "" {
						fmt.Fprintf(w, "  formula: %s\n", r.Formula)
					}
					fmt.Fprintf(w, "  order:   %s\n", strings.Join(r.Order, " "))
					writeClasses(w, r)
				}
				return nil
			})
		},
	}
}

func newOrbitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orbits FILE...",
		Short: "Print symmetry classes without canonical labelling",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.load(args)
			if err != nil {
				return err
			}
			var reports []report
			err = a.forEach(cmd.Context(), items, func(s structure) error {
				r, err := a.orbits(cmd.Context(), s)
				if err != nil {
					return err
				}
				reports = append(reports, r)
				return nil
			})
			if err != nil {
				return err
			}

			return a.emit(reports, func(w io.Writer) error {
				for _, r := range reports {
					fmt.Fprintf(w, "%s\n", r.Name)
					writeClasses(w, r)
				}
				return nil
			})
		},
	}
}

func writeClasses(w io.Writer, r report) {
	groups := classGroups(r)
	fmt.Fprintf(w, "  classes: %d\n", len(groups))
	for _, g := range groups {
		fmt.Fprintf(w, "    %s\n", strings.Join(g, " "))
	}
}
