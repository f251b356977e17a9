// Package entities contains core domain data structures.
package entities

import (
	"slices"
	"strings"
	"time"
)

// Person is a single registered individual. Values are never mutated after
// construction; the registry hands out copies.
type Person struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	BirthDate      time.Time `json:"birth_date"`
	Gender         string    `json:"gender"`
	Birthplace     string    `json:"birthplace"`
	Residence      string    `json:"residence"`
	Education      []string  `json:"education"`
	Workplaces     []string  `json:"workplaces"`
	FavoriteMovies []string  `json:"favorite_movies"`
	GroupCode      string    `json:"group_code"`
}

// NewPerson builds a Person, cloning the list fields so later changes to the
// caller's slices cannot leak into the registry. Favourite movies behave as a
// set: empty titles and repeats are dropped, first-seen order is kept.
func NewPerson(p Person) Person {
	p.Education = slices.Clone(p.Education)
	p.Workplaces = slices.Clone(p.Workplaces)
	p.FavoriteMovies = uniqueTitles(p.FavoriteMovies)
	return p
}

// Clone returns a copy of p that shares no list storage with it.
func (p Person) Clone() Person {
	p.Education = slices.Clone(p.Education)
	p.Workplaces = slices.Clone(p.Workplaces)
	p.FavoriteMovies = slices.Clone(p.FavoriteMovies)
	return p
}

func uniqueTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	seen := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// BirthYear returns the year component of the birth date.
func (p Person) BirthYear() int {
	return p.BirthDate.Year()
}

// Equal reports whether both values describe the same person (same ID).
func (p Person) Equal(other Person) bool {
	return p.ID == other.ID
}

// Compare orders people by ID using plain string comparison.
func (p Person) Compare(other Person) int {
	return strings.Compare(p.ID, other.ID)
}

// FullName returns "FirstName LastName".
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
