package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/mocks"
	"github.com/ersonp/social-core/internal/domain/registry"
)

func born(year int) time.Time {
	return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
}

// newExampleRegistry builds the two-person registry used throughout the
// query tests.
func newExampleRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.AddPerson(entities.Person{
		ID: "1", FirstName: "Ane", LastName: "Smith", Birthplace: "Bilbao",
		BirthDate: born(1990), FavoriteMovies: []string{"Matrix"},
	}))
	require.NoError(t, reg.AddPerson(entities.Person{
		ID: "2", FirstName: "Jon", LastName: "Smith", Birthplace: "Madrid",
		BirthDate: born(1985), FavoriteMovies: []string{"Matrix", "Heat"},
	}))
	require.NoError(t, reg.AddRelation("1", "2"))
	return reg
}

func personIDs(people []entities.Person) []string {
	out := make([]string, len(people))
	for i := range people {
		out[i] = people[i].ID
	}
	return out
}

func TestQueryService_FriendsBySurname(t *testing.T) {
	svc := NewQueryService(newExampleRegistry(t), zerolog.Nop())

	result, err := svc.FriendsBySurname("Smith")
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "1", result[0].Person.ID)
	assert.Equal(t, []string{"2"}, personIDs(result[0].Friends))
	assert.Equal(t, "2", result[1].Person.ID)
	assert.Equal(t, []string{"1"}, personIDs(result[1].Friends))
}

func TestQueryService_FriendsBySurname_NeighbourOrder(t *testing.T) {
	reg := registry.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, reg.AddPerson(entities.Person{ID: id, LastName: "X"}))
	}
	require.NoError(t, reg.AddRelation("d", "a"))
	require.NoError(t, reg.AddRelation("b", "c"))
	require.NoError(t, reg.AddRelation("a", "b"))

	svc := NewQueryService(reg, zerolog.Nop())
	result, err := svc.FriendsBySurname("X")
	require.NoError(t, err)

	assert.Equal(t, []string{"d", "b"}, personIDs(result[0].Friends), "relation insertion order")
	assert.Equal(t, []string{"c", "a"}, personIDs(result[1].Friends))
}

func TestQueryService_FriendsBySurname_NoFriends(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.AddPerson(entities.Person{ID: "1", LastName: "Lonely"}))

	svc := NewQueryService(reg, zerolog.Nop())
	result, err := svc.FriendsBySurname("Lonely")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Empty(t, result[0].Friends)
}

func TestQueryService_FriendsBySurname_CaseSensitive(t *testing.T) {
	svc := NewQueryService(newExampleRegistry(t), zerolog.Nop())

	_, err := svc.FriendsBySurname("smith")
	require.ErrorIs(t, err, entities.ErrEmptyResult)
}

func TestQueryService_ByCity(t *testing.T) {
	svc := NewQueryService(newExampleRegistry(t), zerolog.Nop())

	result, err := svc.ByCity("Bilbao")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, personIDs(result))

	_, err = svc.ByCity("Paris")
	require.ErrorIs(t, err, entities.ErrEmptyResult)
}

func TestQueryService_ByDateRange(t *testing.T) {
	svc := NewQueryService(newExampleRegistry(t), zerolog.Nop())

	tests := []struct {
		name     string
		from, to int
		expected []string
	}{
		{name: "both inclusive", from: 1985, to: 1990, expected: []string{"1", "2"}},
		{name: "single year", from: 1990, to: 1990, expected: []string{"1"}},
		{name: "lower bound only", from: 1980, to: 1985, expected: []string{"2"}},
		{name: "no match", from: 2000, to: 2010},
		{name: "inverted range", from: 1990, to: 1985},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.ByDateRange(tt.from, tt.to)
			if tt.expected == nil {
				require.ErrorIs(t, err, entities.ErrEmptyResult)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, personIDs(result))
		})
	}
}

func TestQueryService_ByDateRange_IDOrderNotYearOrder(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.AddPerson(entities.Person{ID: "a", BirthDate: born(2000)}))
	require.NoError(t, reg.AddPerson(entities.Person{ID: "b", BirthDate: born(1990)}))
	require.NoError(t, reg.AddPerson(entities.Person{ID: "c", BirthDate: born(1995)}))

	svc := NewQueryService(reg, zerolog.Nop())
	result, err := svc.ByDateRange(1990, 2000)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, personIDs(result))
}

func TestQueryService_ByResidentialSeed(t *testing.T) {
	reg := newExampleRegistry(t)
	require.NoError(t, reg.AddPerson(entities.Person{ID: "3", Birthplace: "Bilbao"}))
	require.NoError(t, reg.AddPerson(entities.Person{ID: "4", Birthplace: ""}))

	svc := NewQueryService(reg, zerolog.Nop())
	results := svc.ByResidentialSeed([]string{"3", "missing", "2"})
	require.Len(t, results, 3)

	assert.Equal(t, "3", results[0].SeedID)
	assert.Equal(t, "Bilbao", results[0].Birthplace)
	assert.Equal(t, []string{"1", "3"}, personIDs(results[0].CoResidents))
	assert.NoError(t, results[0].Err)

	assert.Equal(t, "missing", results[1].SeedID)
	require.ErrorIs(t, results[1].Err, entities.ErrPersonNotFound)
	assert.Empty(t, results[1].CoResidents)

	assert.Equal(t, "2", results[2].SeedID)
	assert.Equal(t, "Madrid", results[2].Birthplace)
	assert.Equal(t, []string{"2"}, personIDs(results[2].CoResidents))
}

func TestQueryService_ByResidentialSeed_Empty(t *testing.T) {
	svc := NewQueryService(newExampleRegistry(t), zerolog.Nop())
	assert.Empty(t, svc.ByResidentialSeed(nil))
}

func TestQueryService_ByResidentialSeed_CityWithNoMatches(t *testing.T) {
	// A mock whose FindByID yields a person that People() does not list.
	reg := &mocks.Registry{Persons: []entities.Person{{ID: "ghost", Birthplace: "Nowhere"}}}
	svc := NewQueryService(&ghostRegistry{Registry: reg}, zerolog.Nop())

	results := svc.ByResidentialSeed([]string{"ghost"})
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "Nowhere", results[0].Birthplace)
	assert.NotNil(t, results[0].CoResidents)
	assert.Empty(t, results[0].CoResidents)
}

type ghostRegistry struct {
	*mocks.Registry
}

func (g *ghostRegistry) People() []entities.Person { return nil }

func TestQueryService_GroupByFavoriteMovie(t *testing.T) {
	svc := NewQueryService(newExampleRegistry(t), zerolog.Nop())

	groups := svc.GroupByFavoriteMovie()
	require.Len(t, groups, 2)
	assert.Equal(t, "Matrix", groups[0].Title)
	assert.Equal(t, []string{"1", "2"}, personIDs(groups[0].People))
	assert.Equal(t, "Heat", groups[1].Title)
	assert.Equal(t, []string{"2"}, personIDs(groups[1].People))

	assert.Equal(t, groups, svc.GroupByFavoriteMovie(), "stable across calls")
}

func TestQueryService_GroupByFavoriteMovie_EmptyRegistry(t *testing.T) {
	svc := NewQueryService(registry.New(), zerolog.Nop())
	assert.Empty(t, svc.GroupByFavoriteMovie())
}

func TestQueryService_BySharedMovie(t *testing.T) {
	svc := NewQueryService(newExampleRegistry(t), zerolog.Nop())

	result, err := svc.BySharedMovie("Matrix")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, personIDs(result))

	result, err = svc.BySharedMovie("Heat")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, personIDs(result))

	_, err = svc.BySharedMovie("Alien")
	require.ErrorIs(t, err, entities.ErrEmptyResult)
}

func TestQueryService_FriendsBySurname_DanglingRelation(t *testing.T) {
	reg := &mocks.Registry{
		Persons: []entities.Person{{ID: "1", LastName: "Smith"}},
		Rels:    []entities.Relation{entities.NewRelation("1", "gone")},
	}
	svc := NewQueryService(reg, zerolog.Nop())

	_, err := svc.FriendsBySurname("Smith")
	require.ErrorIs(t, err, entities.ErrPersonNotFound)
}
