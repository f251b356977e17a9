package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses arrays of records in JSON format.
type JSONParser struct{}

// ParsePeople reads a JSON array of people.
func (p *JSONParser) ParsePeople(r io.Reader) ([]RawPerson, error) {
	var people []RawPerson
	if err := json.NewDecoder(r).Decode(&people); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range people {
		people[i].LineNum = i + 1
	}
	return people, nil
}

// ParseRelations reads a JSON array of {"friend1","friend2"} objects.
func (p *JSONParser) ParseRelations(r io.Reader) ([]RawRelation, error) {
	var relations []RawRelation
	if err := json.NewDecoder(r).Decode(&relations); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	for i := range relations {
		relations[i].LineNum = i + 1
	}
	return relations, nil
}
