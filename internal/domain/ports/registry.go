package ports

import "github.com/ersonp/social-core/internal/domain/entities"

// Registry defines the in-memory store of people and their relations.
// The query and ingest services depend on this interface only.
type Registry interface {
	// AddPerson inserts p keeping people ordered by ID.
	// Returns entities.ErrAlreadyExists if the ID is taken.
	AddPerson(p entities.Person) error

	// FindByID returns the person with the given ID or entities.ErrPersonNotFound.
	FindByID(id string) (entities.Person, error)

	// ExistsByID reports whether a person with the given ID is registered.
	ExistsByID(id string) bool

	// AddRelation records an undirected relation between two registered people.
	// Unresolved endpoints take precedence over duplicates.
	AddRelation(idA, idB string) error

	// People returns every person in ID order.
	People() []entities.Person

	// Relations returns every relation in insertion order.
	Relations() []entities.Relation

	// Len returns the number of registered people.
	Len() int

	// RelationCount returns the number of stored relations.
	RelationCount() int
}
