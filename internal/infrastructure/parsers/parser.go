// Package parsers reads people, relations, and residential seed lists from
// CSV, JSON, and plain-text files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// Column names of the people CSV header, in file order.
var PersonColumns = []string{
	"idperson", "name", "lastname", "birthdate", "gender",
	"birthplace", "home", "studiedat", "workplaces", "films", "groupcode",
}

// Column names of the relations CSV header.
var RelationColumns = []string{"friend1", "friend2"}

// ListSeparator separates the values of list fields inside one CSV cell.
const ListSeparator = ";"

// RawPerson is a person record as read from a file, before validation.
type RawPerson struct {
	ID         string   `json:"idperson"`
	FirstName  string   `json:"name"`
	LastName   string   `json:"lastname"`
	BirthDate  string   `json:"birthdate"`
	Gender     string   `json:"gender"`
	Birthplace string   `json:"birthplace"`
	Residence  string   `json:"home"`
	Education  []string `json:"studiedat"`
	Workplaces []string `json:"workplaces"`
	Movies     []string `json:"films"`
	GroupCode  string   `json:"groupcode"`
	LineNum    int      `json:"-"` // Line number in source file (set by parser)
	// Err is set when the row could not be split into fields. The other
	// fields are then empty.
	Err error `json:"-"`
}

// RawRelation is a relation record as read from a file.
type RawRelation struct {
	Friend1 string `json:"friend1"`
	Friend2 string `json:"friend2"`
	LineNum int    `json:"-"`
	Err     error  `json:"-"`
}

// PersonParser parses people from a reader.
type PersonParser interface {
	ParsePeople(r io.Reader) ([]RawPerson, error)
}

// RelationParser parses relations from a reader.
type RelationParser interface {
	ParseRelations(r io.Reader) ([]RawRelation, error)
}

// Parser handles both record kinds for one format.
type Parser interface {
	PersonParser
	RelationParser
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
// Files without a known extension are read as CSV, the native format.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv", ".txt", "":
		return &CSVParser{}
	default:
		return nil
	}
}

// SplitList splits a list cell on ListSeparator, trimming each value and
// dropping empty ones.
func SplitList(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return []string{}
	}
	parts := strings.Split(cell, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
