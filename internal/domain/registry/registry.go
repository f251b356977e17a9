// Package registry provides the in-memory store of people and friendships.
//
// People are kept in a slice sorted by ID; the sorted slice is the only index
// and lookups are binary searches over it. Relations are append-only and
// deduplicated by their normalised endpoint pair.
package registry

import (
	"fmt"
	"sync"

	"github.com/ersonp/social-core/internal/domain/entities"
)

// Registry implements ports.Registry.
type Registry struct {
	mu        sync.RWMutex
	people    []entities.Person
	relations []entities.Relation
	edges     map[entities.RelationKey]struct{}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		edges: make(map[entities.RelationKey]struct{}),
	}
}

// AddPerson inserts p at its ordered position.
func (r *Registry) AddPerson(p entities.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, found := r.search(p.ID)
	if found {
		return fmt.Errorf("person %s: %w", p.ID, entities.ErrAlreadyExists)
	}

	r.people = append(r.people, entities.Person{})
	copy(r.people[i+1:], r.people[i:])
	r.people[i] = entities.NewPerson(p)
	return nil
}

// FindByID returns the person with the given ID.
func (r *Registry) FindByID(id string) (entities.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(id)
}

func (r *Registry) findLocked(id string) (entities.Person, error) {
	i, found := r.search(id)
	if !found {
		return entities.Person{}, fmt.Errorf("person %s: %w", id, entities.ErrPersonNotFound)
	}
	return r.people[i].Clone(), nil
}

// ExistsByID reports whether id is registered.
func (r *Registry) ExistsByID(id string) bool {
	_, err := r.FindByID(id)
	return err == nil
}

// AddRelation records an undirected relation between idA and idB.
func (r *Registry) AddRelation(idA, idB string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.findLocked(idA); err != nil {
		return err
	}
	if _, err := r.findLocked(idB); err != nil {
		return err
	}

	rel := entities.NewRelation(idA, idB)
	if rel.IsSelfLoop() {
		return fmt.Errorf("relation %s-%s: %w", idA, idB, entities.ErrSelfRelation)
	}

	key := rel.Key()
	if _, dup := r.edges[key]; dup {
		return fmt.Errorf("relation %s-%s: %w", idA, idB, entities.ErrAlreadyExists)
	}

	r.edges[key] = struct{}{}
	r.relations = append(r.relations, rel)
	return nil
}

// People returns a copy of the people slice in ID order.
func (r *Registry) People() []entities.Person {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Person, len(r.people))
	for i := range r.people {
		out[i] = r.people[i].Clone()
	}
	return out
}

// Relations returns a copy of the relations in insertion order.
func (r *Registry) Relations() []entities.Relation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Relation, len(r.relations))
	copy(out, r.relations)
	return out
}

// Len returns the number of people.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.people)
}

// RelationCount returns the number of relations.
func (r *Registry) RelationCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.relations)
}

// search is an iterative binary search over [lo, hi) for the first person
// not ordered before id. It returns that position and whether the person
// there has the same ID. Callers must hold the lock.
func (r *Registry) search(id string) (int, bool) {
	target := entities.Person{ID: id}
	lo, hi := 0, len(r.people)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if r.people[mid].Compare(target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(r.people) && r.people[lo].Equal(target)
}
