package main

import (
	"github.com/spf13/cobra"
)

func newPeopleCmd() *cobra.Command {
	var p printer

	cmd := &cobra.Command{
		Use:   "people",
		Short: "Print every person in ID order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.validate(); err != nil {
				return err
			}
			p.stdout = cmd.OutOrStdout()
			return withDeps(cmd.Context(), func(d *Deps) error {
				p.resolveOutput(d.Config.Data)
				return p.people(d.Registry.People())
			})
		},
	}

	addPrinterFlags(cmd, &p)
	return cmd
}
