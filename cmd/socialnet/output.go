package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/infrastructure/config"
	"github.com/ersonp/social-core/internal/infrastructure/parsers"
)

// section is one titled group of people in a grouped query result.
type section struct {
	key    string
	title  string
	people []entities.Person
}

// printer renders query results to stdout or to a file.
type printer struct {
	format string
	output string
	stdout io.Writer
}

func addPrinterFlags(cmd *cobra.Command, p *printer) {
	cmd.Flags().StringVarP(&p.format, "format", "f", formatBasic, "Output format (basic, more, csv, json)")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "Output file (default: stdout)")
}

func (p *printer) validate() error {
	if !contains(validFormats, p.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", p.format, validFormats)
	}
	return nil
}

// resolveOutput places a bare --output file name in the data directory.
func (p *printer) resolveOutput(data config.DataConfig) {
	p.output = data.Resolve(p.output)
}

// write opens the destination and hands it to fn.
func (p *printer) write(fn func(io.Writer) error) (err error) {
	w := p.stdout
	if w == nil {
		w = os.Stdout
	}

	if p.output != "" {
		if dir := filepath.Dir(p.output); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}

		var f *os.File
		f, err = os.OpenFile(p.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := fn(w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

func (p *printer) people(people []entities.Person) error {
	return p.write(func(w io.Writer) error {
		return formatPeople(w, p.format, people)
	})
}

// sections prints grouped results. value is what the json format encodes.
func (p *printer) sections(keyColumn string, sections []section, value any) error {
	return p.write(func(w io.Writer) error {
		return formatSections(w, p.format, keyColumn, sections, value)
	})
}

func formatPeople(w io.Writer, format string, people []entities.Person) error {
	switch format {
	case formatJSON:
		return formatJSONValue(w, people)
	case formatCSV:
		return formatCSVRows(w, nil, []section{{people: people}})
	case formatMore:
		return formatTable(w, moreHeader, people, moreRow)
	default:
		return formatTable(w, basicHeader, people, basicRow)
	}
}

func formatSections(w io.Writer, format, keyColumn string, sections []section, value any) error {
	switch format {
	case formatJSON:
		return formatJSONValue(w, value)
	case formatCSV:
		return formatCSVRows(w, []string{keyColumn}, sections)
	}

	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", s.title); err != nil {
			return err
		}
		if len(s.people) == 0 {
			if _, err := fmt.Fprintln(w, "  (none)"); err != nil {
				return err
			}
			continue
		}
		if err := formatPeople(w, format, s.people); err != nil {
			return err
		}
	}
	return nil
}

func formatJSONValue(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// formatCSVRows writes people in the same layout the people file is read in,
// so the output can be loaded again. A non-empty prefix adds leading key
// columns filled from each section's key.
func formatCSVRows(w io.Writer, prefix []string, sections []section) error {
	writer := csv.NewWriter(w)

	header := append(append([]string{}, prefix...), parsers.PersonColumns...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, s := range sections {
		for i := range s.people {
			row := personRecord(&s.people[i])
			if len(prefix) > 0 {
				row = append([]string{s.key}, row...)
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

var (
	basicHeader = []string{"ID", "NAME", "SURNAME"}
	moreHeader  = []string{"ID", "NAME", "SURNAME", "BIRTHDATE", "GENDER", "BIRTHPLACE", "HOME", "STUDIED AT", "WORKPLACES", "FILMS", "GROUP"}
)

func basicRow(p *entities.Person) []string {
	return []string{p.ID, p.FirstName, p.LastName}
}

func moreRow(p *entities.Person) []string {
	return personRecord(p)
}

func formatTable(w io.Writer, header []string, people []entities.Person, row func(*entities.Person) []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for i := range people {
		if _, err := fmt.Fprintln(tw, strings.Join(row(&people[i]), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func personRecord(p *entities.Person) []string {
	birthDate := ""
	if !p.BirthDate.IsZero() {
		birthDate = p.BirthDate.Format(birthDateLayout)
	}
	return []string{
		p.ID,
		p.FirstName,
		p.LastName,
		birthDate,
		p.Gender,
		p.Birthplace,
		p.Residence,
		strings.Join(p.Education, parsers.ListSeparator),
		strings.Join(p.Workplaces, parsers.ListSeparator),
		strings.Join(p.FavoriteMovies, parsers.ListSeparator),
		p.GroupCode,
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
