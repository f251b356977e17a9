package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/ports"
)

// PersonFriends pairs a person with their direct friends.
type PersonFriends struct {
	Person  entities.Person   `json:"person"`
	Friends []entities.Person `json:"friends"`
}

// SeedResult is the outcome of one residential seed.
// Err is set to entities.ErrPersonNotFound when the seed ID is unknown.
type SeedResult struct {
	SeedID      string            `json:"seed_id"`
	Birthplace  string            `json:"birthplace,omitempty"`
	CoResidents []entities.Person `json:"co_residents"`
	Err         error             `json:"-"`
}

// MovieGroup lists everyone who named Title as a favourite movie.
type MovieGroup struct {
	Title  string            `json:"title"`
	People []entities.Person `json:"people"`
}

// QueryService runs read-only queries over the registry.
type QueryService struct {
	registry ports.Registry
	logger   zerolog.Logger
}

// NewQueryService creates a new query service.
func NewQueryService(registry ports.Registry, logger zerolog.Logger) *QueryService {
	return &QueryService{
		registry: registry,
		logger:   logger.With().Str("component", "query").Logger(),
	}
}

// FriendsBySurname returns every person whose last name equals surname,
// each with the people they are related to. People come in ID order and
// friends in relation insertion order.
func (s *QueryService) FriendsBySurname(surname string) ([]PersonFriends, error) {
	matches := s.filter(func(p *entities.Person) bool { return p.LastName == surname })
	if len(matches) == 0 {
		return nil, fmt.Errorf("surname %q: %w", surname, entities.ErrEmptyResult)
	}

	relations := s.registry.Relations()
	result := make([]PersonFriends, 0, len(matches))
	for i := range matches {
		friends, err := s.friendsOf(matches[i].ID, relations)
		if err != nil {
			return nil, err
		}
		result = append(result, PersonFriends{Person: matches[i], Friends: friends})
	}
	return result, nil
}

func (s *QueryService) friendsOf(id string, relations []entities.Relation) ([]entities.Person, error) {
	friends := []entities.Person{}
	for _, rel := range relations {
		otherID, ok := rel.Other(id)
		if !ok {
			continue
		}
		friend, err := s.registry.FindByID(otherID)
		if err != nil {
			// Relations only reference registered people.
			return nil, fmt.Errorf("resolving friend of %s: %w", id, err)
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

// ByCity returns everyone born in city, in ID order.
func (s *QueryService) ByCity(city string) ([]entities.Person, error) {
	matches := s.filter(func(p *entities.Person) bool { return p.Birthplace == city })
	if len(matches) == 0 {
		return nil, fmt.Errorf("city %q: %w", city, entities.ErrEmptyResult)
	}
	return matches, nil
}

// ByDateRange returns everyone whose birth year lies in [from, to].
// The result is in ID order. An inverted range matches nobody.
func (s *QueryService) ByDateRange(from, to int) ([]entities.Person, error) {
	matches := s.filter(func(p *entities.Person) bool {
		year := p.BirthYear()
		return from <= year && year <= to
	})
	if len(matches) == 0 {
		return nil, fmt.Errorf("born between %d and %d: %w", from, to, entities.ErrEmptyResult)
	}
	return matches, nil
}

// ByResidentialSeed resolves each seed ID and lists everyone born in the
// seed's birthplace, the seed included. Unknown seeds are reported in their
// SeedResult and never stop the batch. Output follows seed order.
func (s *QueryService) ByResidentialSeed(seedIDs []string) []SeedResult {
	results := make([]SeedResult, 0, len(seedIDs))
	for _, id := range seedIDs {
		seed, err := s.registry.FindByID(id)
		if err != nil {
			s.logger.Warn().Str("seed_id", id).Msg("residential seed not found")
			results = append(results, SeedResult{SeedID: id, CoResidents: []entities.Person{}, Err: err})
			continue
		}

		coResidents, err := s.ByCity(seed.Birthplace)
		if errors.Is(err, entities.ErrEmptyResult) {
			coResidents = []entities.Person{}
		}
		results = append(results, SeedResult{
			SeedID:      id,
			Birthplace:  seed.Birthplace,
			CoResidents: coResidents,
		})
	}
	return results
}

// GroupByFavoriteMovie buckets people by each favourite movie they list.
// Buckets come in first-seen order while scanning people in ID order, so the
// grouping is stable for a given registry state. The grouping is rebuilt on
// every call.
func (s *QueryService) GroupByFavoriteMovie() []MovieGroup {
	var groups []MovieGroup
	index := make(map[string]int)

	for _, p := range s.registry.People() {
		for _, title := range p.FavoriteMovies {
			i, ok := index[title]
			if !ok {
				i = len(groups)
				index[title] = i
				groups = append(groups, MovieGroup{Title: title})
			}
			groups[i].People = append(groups[i].People, p)
		}
	}
	return groups
}

// BySharedMovie returns everyone who lists title as a favourite movie.
func (s *QueryService) BySharedMovie(title string) ([]entities.Person, error) {
	for _, g := range s.GroupByFavoriteMovie() {
		if g.Title == title {
			return g.People, nil
		}
	}
	return nil, fmt.Errorf("movie %q: %w", title, entities.ErrEmptyResult)
}

func (s *QueryService) filter(keep func(*entities.Person) bool) []entities.Person {
	people := s.registry.People()
	matches := make([]entities.Person, 0, len(people))
	for i := range people {
		if keep(&people[i]) {
			matches = append(matches, people[i])
		}
	}
	return matches
}
