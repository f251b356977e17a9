package entities

import "errors"

// Expected, recoverable outcomes of registry and query operations.
// Callers compare with errors.Is.
var (
	// ErrAlreadyExists is returned for a duplicate person ID or a duplicate
	// undirected relation.
	ErrAlreadyExists = errors.New("already exists")
	// ErrPersonNotFound is returned when an ID does not resolve to a person.
	ErrPersonNotFound = errors.New("person not found")
	// ErrEmptyResult is returned when a query matches nobody.
	ErrEmptyResult = errors.New("no matching people")
	// ErrSelfRelation is returned when both relation endpoints are the same ID.
	ErrSelfRelation = errors.New("relation endpoints must differ")
)
