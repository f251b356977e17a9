package mocks

import (
	"github.com/ersonp/social-core/internal/domain/entities"
)

// Registry is a mock implementation of ports.Registry.
// Err, when set, is returned by every mutating call and by FindByID.
type Registry struct {
	Persons   []entities.Person
	Rels      []entities.Relation
	Err       error
	AddCalls  int
	FindCalls int
}

// AddPerson records p unless Err is set.
func (m *Registry) AddPerson(p entities.Person) error {
	m.AddCalls++
	if m.Err != nil {
		return m.Err
	}
	m.Persons = append(m.Persons, p)
	return nil
}

// FindByID does a linear scan.
func (m *Registry) FindByID(id string) (entities.Person, error) {
	m.FindCalls++
	if m.Err != nil {
		return entities.Person{}, m.Err
	}
	for i := range m.Persons {
		if m.Persons[i].ID == id {
			return m.Persons[i], nil
		}
	}
	return entities.Person{}, entities.ErrPersonNotFound
}

// ExistsByID reports whether FindByID succeeds.
func (m *Registry) ExistsByID(id string) bool {
	_, err := m.FindByID(id)
	return err == nil
}

// AddRelation records the relation unless Err is set.
func (m *Registry) AddRelation(idA, idB string) error {
	m.AddCalls++
	if m.Err != nil {
		return m.Err
	}
	m.Rels = append(m.Rels, entities.NewRelation(idA, idB))
	return nil
}

// People returns the recorded people as given.
func (m *Registry) People() []entities.Person {
	return m.Persons
}

// Relations returns the recorded relations as given.
func (m *Registry) Relations() []entities.Relation {
	return m.Rels
}

// Len returns the number of recorded people.
func (m *Registry) Len() int {
	return len(m.Persons)
}

// RelationCount returns the number of recorded relations.
func (m *Registry) RelationCount() int {
	return len(m.Rels)
}
