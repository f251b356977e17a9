package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/services"
	"github.com/ersonp/social-core/internal/infrastructure/config"
)

// queryCmd builds a command that runs one query through the printer.
func queryCmd(use, short string, posArgs cobra.PositionalArgs, run func(*printer, *Deps, []string) error) *cobra.Command {
	var p printer

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  posArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.validate(); err != nil {
				return err
			}
			p.stdout = cmd.OutOrStdout()
			return withDeps(cmd.Context(), func(d *Deps) error {
				p.resolveOutput(d.Config.Data)
				err := run(&p, d, args)
				if errors.Is(err, entities.ErrEmptyResult) {
					fmt.Fprintln(cmd.OutOrStdout(), "No people found.")
					return nil
				}
				return err
			})
		},
	}

	addPrinterFlags(cmd, &p)
	return cmd
}

func newFriendsCmd() *cobra.Command {
	return queryCmd("friends <surname>", "List the friends of everyone with a surname", cobra.ExactArgs(1),
		func(p *printer, d *Deps, args []string) error {
			result, err := d.QueryHandler.HandleFriends(args[0])
			if err != nil {
				return err
			}
			return p.sections("friend_of", friendSections(result), result)
		})
}

func newCityCmd() *cobra.Command {
	return queryCmd("city <city>", "List everyone born in a city", cobra.ExactArgs(1),
		func(p *printer, d *Deps, args []string) error {
			people, err := d.QueryHandler.HandleCity(args[0])
			if err != nil {
				return err
			}
			return p.people(people)
		})
}

func newBornCmd() *cobra.Command {
	return queryCmd("born <from-year> <to-year>", "List everyone born between two years (inclusive)", cobra.ExactArgs(2),
		func(p *printer, d *Deps, args []string) error {
			people, err := d.QueryHandler.HandleDateRange(args[0], args[1])
			if err != nil {
				return err
			}
			return p.people(people)
		})
}

func newResidentialCmd() *cobra.Command {
	return queryCmd("residential [seed-file]", "List everyone born where each seed person was born", cobra.MaximumNArgs(1),
		func(p *printer, d *Deps, args []string) error {
			results, err := d.QueryHandler.HandleResidential(seedFilePath(d.Config.Data, args))
			if err != nil {
				return err
			}
			return p.sections("seed", residentialSections(results), residentialJSON(results))
		})
}

func newMoviesCmd() *cobra.Command {
	return queryCmd("movies [title]", "Group people by favourite movie, or list the fans of one movie", cobra.MaximumNArgs(1),
		func(p *printer, d *Deps, args []string) error {
			if len(args) == 1 {
				people, err := d.QueryHandler.HandleMovie(args[0])
				if err != nil {
					return err
				}
				return p.people(people)
			}

			groups := d.QueryHandler.HandleMovies()
			if len(groups) == 0 {
				return entities.ErrEmptyResult
			}
			return p.sections("film", movieSections(groups), groups)
		})
}

// seedFilePath returns the seed file named on the command line, or the
// configured one, resolved into the data directory.
func seedFilePath(data config.DataConfig, args []string) string {
	seedFile := data.SeedsFile
	if len(args) == 1 {
		seedFile = args[0]
	}
	return data.Resolve(seedFile)
}

func friendSections(result []services.PersonFriends) []section {
	sections := make([]section, 0, len(result))
	for _, pf := range result {
		sections = append(sections, section{
			key:    pf.Person.ID,
			title:  fmt.Sprintf("Friends of %s (%s):", pf.Person.FullName(), pf.Person.ID),
			people: pf.Friends,
		})
	}
	return sections
}

func residentialSections(results []services.SeedResult) []section {
	sections := make([]section, 0, len(results))
	for _, r := range results {
		title := fmt.Sprintf("Born in %s, like %s:", r.Birthplace, r.SeedID)
		if r.Err != nil {
			title = fmt.Sprintf("Seed %s: not found", r.SeedID)
		}
		sections = append(sections, section{key: r.SeedID, title: title, people: r.CoResidents})
	}
	return sections
}

type seedJSON struct {
	services.SeedResult
	Error string `json:"error,omitempty"`
}

func residentialJSON(results []services.SeedResult) []seedJSON {
	out := make([]seedJSON, 0, len(results))
	for _, r := range results {
		s := seedJSON{SeedResult: r}
		if r.Err != nil {
			s.Error = r.Err.Error()
		}
		out = append(out, s)
	}
	return out
}

func movieSections(groups []services.MovieGroup) []section {
	sections := make([]section, 0, len(groups))
	for _, g := range groups {
		sections = append(sections, section{
			key:    g.Title,
			title:  fmt.Sprintf("%s (%d):", g.Title, len(g.People)),
			people: g.People,
		})
	}
	return sections
}
