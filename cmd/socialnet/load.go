package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the input files and report what was accepted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				return printLoadSummary(cmd.OutOrStdout(), d)
			})
		},
	}
}

func printLoadSummary(w io.Writer, d *Deps) error {
	s := d.Load

	fmt.Fprintf(w, "People (%s): %d added, %d duplicates, %d rejected\n",
		s.PeopleFile, s.People.Added, s.People.Duplicates, len(s.People.Errors))
	for _, e := range s.People.Errors {
		fmt.Fprintf(w, "  %s\n", e.Error())
	}

	if s.Relations != nil {
		fmt.Fprintf(w, "Relations (%s): %d added, %d duplicates, %d unresolved, %d self, %d rejected\n",
			s.RelationsFile, s.Relations.Added, s.Relations.Duplicates, s.Relations.Unresolved,
			s.Relations.SelfLoops, len(s.Relations.Errors))
		for _, e := range s.Relations.Errors {
			fmt.Fprintf(w, "  %s\n", e.Error())
		}
	}

	_, err := fmt.Fprintf(w, "Registry: %d people, %d relations\n", d.Registry.Len(), d.Registry.RelationCount())
	return err
}
