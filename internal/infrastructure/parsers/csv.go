package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadHeader is returned when a file does not start with the expected header.
var ErrBadHeader = errors.New("file data is not in required format")

// CSVParser parses comma separated files whose first line is a header.
type CSVParser struct{}

// ParsePeople reads people rows. The header must name exactly PersonColumns.
func (p *CSVParser) ParsePeople(r io.Reader) ([]RawPerson, error) {
	reader := newReader(r)
	if err := readHeader(reader, PersonColumns); err != nil {
		return nil, err
	}

	var people []RawPerson
	err := readRecords(reader, func(lineNum int, rowErr error) {
		people = append(people, RawPerson{LineNum: lineNum, Err: rowErr})
	}, func(record []string, lineNum int) {
		people = append(people, RawPerson{
			ID:         getColumn(record, 0),
			FirstName:  getColumn(record, 1),
			LastName:   getColumn(record, 2),
			BirthDate:  getColumn(record, 3),
			Gender:     getColumn(record, 4),
			Birthplace: getColumn(record, 5),
			Residence:  getColumn(record, 6),
			Education:  SplitList(getColumn(record, 7)),
			Workplaces: SplitList(getColumn(record, 8)),
			Movies:     SplitList(getColumn(record, 9)),
			GroupCode:  getColumn(record, 10),
			LineNum:    lineNum,
		})
	})
	if err != nil {
		return nil, err
	}
	return people, nil
}

// ParseRelations reads "friend1,friend2" rows.
func (p *CSVParser) ParseRelations(r io.Reader) ([]RawRelation, error) {
	reader := newReader(r)
	if err := readHeader(reader, RelationColumns); err != nil {
		return nil, err
	}

	var relations []RawRelation
	err := readRecords(reader, func(lineNum int, rowErr error) {
		relations = append(relations, RawRelation{LineNum: lineNum, Err: rowErr})
	}, func(record []string, lineNum int) {
		relations = append(relations, RawRelation{
			Friend1: getColumn(record, 0),
			Friend2: getColumn(record, 1),
			LineNum: lineNum,
		})
	})
	if err != nil {
		return nil, err
	}
	return relations, nil
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	// Short rows are reported per line during validation, not here.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// readHeader reads the header row and checks it matches want exactly.
func readHeader(reader *csv.Reader, want []string) error {
	header, err := reader.Read()
	if err == io.EOF {
		return fmt.Errorf("empty file: %w", ErrBadHeader)
	}
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}

	if len(header) != len(want) {
		return fmt.Errorf("expected header %q: %w", strings.Join(want, ","), ErrBadHeader)
	}
	for i, col := range header {
		if strings.TrimSpace(col) != want[i] {
			return fmt.Errorf("expected header %q: %w", strings.Join(want, ","), ErrBadHeader)
		}
	}
	return nil
}

// readRecords calls fn for every data row. encoding/csv skips blank lines.
// A row that cannot be split (for example a bare quote) goes to bad and
// reading resumes on the next line; any other read error stops the file.
func readRecords(reader *csv.Reader, bad func(lineNum int, err error), fn func(record []string, lineNum int)) error {
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			bad(parseErr.StartLine, fmt.Errorf("malformed row (column %d): %w", parseErr.Column, parseErr.Err))
			continue
		}
		if err != nil {
			return fmt.Errorf("reading CSV: %w", err)
		}
		lineNum, _ := reader.FieldPos(0)
		fn(record, lineNum)
	}
}

// getColumn safely retrieves a trimmed column value from a record.
func getColumn(record []string, idx int) string {
	if idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
