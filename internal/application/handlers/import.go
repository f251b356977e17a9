package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/services"
	"github.com/ersonp/social-core/internal/infrastructure/parsers"
)

// ImportError represents a record rejected before it reached the registry.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Field   string // Which field has the error
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format string // "json", "csv", or "auto"
}

// PeopleImportResult combines rejected rows with the registry outcome.
type PeopleImportResult struct {
	services.PersonBatchResult
	Errors []ImportError
}

// RelationsImportResult combines rejected rows with the registry outcome.
type RelationsImportResult struct {
	services.RelationBatchResult
	Errors []ImportError
}

// ImportHandler reads people and relation files into the registry.
type ImportHandler struct {
	service     *services.IngestService
	dateLayouts []string
}

// NewImportHandler creates a new import handler. Birth dates are parsed with
// the first matching layout.
func NewImportHandler(service *services.IngestService, dateLayouts []string) *ImportHandler {
	return &ImportHandler{
		service:     service,
		dateLayouts: dateLayouts,
	}
}

// HandlePeople imports people from a file.
func (h *ImportHandler) HandlePeople(ctx context.Context, filePath string, opts ImportOptions) (*PeopleImportResult, error) {
	parser, err := parserFor(filePath, opts.Format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raw, err := parser.ParsePeople(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	people, importErrors := h.convertPeople(raw)

	batch, err := h.service.AddPeople(ctx, people)
	if err != nil {
		return nil, fmt.Errorf("adding people: %w", err)
	}

	return &PeopleImportResult{PersonBatchResult: *batch, Errors: importErrors}, nil
}

// HandleRelations imports relations from a file.
func (h *ImportHandler) HandleRelations(ctx context.Context, filePath string, opts ImportOptions) (*RelationsImportResult, error) {
	parser, err := parserFor(filePath, opts.Format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raw, err := parser.ParseRelations(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	relations, importErrors := convertRelations(raw)

	batch, err := h.service.AddRelations(ctx, relations)
	if err != nil {
		return nil, fmt.Errorf("adding relations: %w", err)
	}

	return &RelationsImportResult{RelationBatchResult: *batch, Errors: importErrors}, nil
}

func parserFor(filePath, format string) (parsers.Parser, error) {
	var parser parsers.Parser
	if format == "" || format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}
	return parser, nil
}

// convertPeople validates raw rows and converts them to domain values.
func (h *ImportHandler) convertPeople(raw []parsers.RawPerson) ([]entities.Person, []ImportError) {
	people := make([]entities.Person, 0, len(raw))
	var errs []ImportError

	for i := range raw {
		r := &raw[i]
		lineNum := r.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		if r.Err != nil {
			errs = append(errs, ImportError{Line: lineNum, Field: "row", Message: r.Err.Error()})
			continue
		}

		if strings.TrimSpace(r.ID) == "" {
			errs = append(errs, ImportError{Line: lineNum, Field: "idperson", Message: "missing required field: idperson"})
			continue
		}

		birthDate, err := h.parseDate(r.BirthDate)
		if err != nil {
			errs = append(errs, ImportError{
				Line:    lineNum,
				Field:   "birthdate",
				Value:   r.BirthDate,
				Message: fmt.Sprintf("invalid birthdate %q (layouts: %s)", r.BirthDate, strings.Join(h.dateLayouts, ", ")),
			})
			continue
		}

		people = append(people, entities.NewPerson(entities.Person{
			ID:             r.ID,
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			BirthDate:      birthDate,
			Gender:         r.Gender,
			Birthplace:     r.Birthplace,
			Residence:      r.Residence,
			Education:      r.Education,
			Workplaces:     r.Workplaces,
			FavoriteMovies: r.Movies,
			GroupCode:      r.GroupCode,
		}))
	}

	return people, errs
}

func (h *ImportHandler) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range h.dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matches %q", value)
}

func convertRelations(raw []parsers.RawRelation) ([]entities.Relation, []ImportError) {
	relations := make([]entities.Relation, 0, len(raw))
	var errs []ImportError

	for i := range raw {
		r := &raw[i]
		lineNum := r.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		if r.Err != nil {
			errs = append(errs, ImportError{Line: lineNum, Field: "row", Message: r.Err.Error()})
			continue
		}

		if r.Friend1 == "" || r.Friend2 == "" {
			errs = append(errs, ImportError{Line: lineNum, Field: "friend", Message: "relation needs two person IDs"})
			continue
		}
		relations = append(relations, entities.NewRelation(r.Friend1, r.Friend2))
	}

	return relations, errs
}
