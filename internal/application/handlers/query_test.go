package handlers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/registry"
	"github.com/ersonp/social-core/internal/domain/services"
)

func newQueryHandler(t *testing.T) *QueryHandler {
	t.Helper()
	reg := registry.New()
	people := []entities.Person{
		{ID: "p1", FirstName: "Ann", LastName: "Lee", Birthplace: "Oslo", BirthDate: time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC), FavoriteMovies: []string{"Heat"}},
		{ID: "p2", FirstName: "Bo", LastName: "Kim", Birthplace: "Rome", BirthDate: time.Date(1999, 7, 14, 0, 0, 0, 0, time.UTC), FavoriteMovies: []string{"Heat", "Up"}},
		{ID: "p3", FirstName: "Cy", LastName: "Lee", Birthplace: "Oslo", BirthDate: time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, p := range people {
		require.NoError(t, reg.AddPerson(entities.NewPerson(p)))
	}
	require.NoError(t, reg.AddRelation("p1", "p2"))
	return NewQueryHandler(services.NewQueryService(reg, zerolog.Nop()))
}

func ids(people []entities.Person) []string {
	out := make([]string, len(people))
	for i := range people {
		out[i] = people[i].ID
	}
	return out
}

func TestQueryHandler_HandleFriends(t *testing.T) {
	handler := newQueryHandler(t)

	result, err := handler.HandleFriends("Lee")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, []string{"p2"}, ids(result[0].Friends))
	assert.Empty(t, result[1].Friends)

	_, err = handler.HandleFriends("Nobody")
	assert.ErrorIs(t, err, entities.ErrEmptyResult)
}

func TestQueryHandler_HandleCity(t *testing.T) {
	handler := newQueryHandler(t)

	result, err := handler.HandleCity("Oslo")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, ids(result))
}

func TestQueryHandler_HandleDateRange(t *testing.T) {
	handler := newQueryHandler(t)

	tests := []struct {
		name    string
		from    string
		to      string
		want    []string
		wantErr string
	}{
		{name: "inclusive", from: "1990", to: "1999", want: []string{"p1", "p2"}},
		{name: "whitespace", from: " 2000 ", to: "2010", want: []string{"p3"}},
		{name: "bad from", from: "abc", to: "2000", wantErr: "invalid year"},
		{name: "bad to", from: "1990", to: "", wantErr: "invalid year"},
		{name: "inverted", from: "2000", to: "1990", wantErr: entities.ErrEmptyResult.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handler.HandleDateRange(tt.from, tt.to)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

func TestQueryHandler_HandleResidential(t *testing.T) {
	handler := newQueryHandler(t)
	path := writeFile(t, t.TempDir(), "residential.txt", "p2\n\nghost\np1\n")

	results, err := handler.HandleResidential(path)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "p2", results[0].SeedID)
	assert.Equal(t, []string{"p2"}, ids(results[0].CoResidents))
	assert.ErrorIs(t, results[1].Err, entities.ErrPersonNotFound)
	assert.Equal(t, []string{"p1", "p3"}, ids(results[2].CoResidents))

	_, err = handler.HandleResidential(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestQueryHandler_HandleMovies(t *testing.T) {
	handler := newQueryHandler(t)

	groups := handler.HandleMovies()
	require.Len(t, groups, 2)
	assert.Equal(t, "Heat", groups[0].Title)
	assert.Equal(t, []string{"p1", "p2"}, ids(groups[0].People))
	assert.Equal(t, "Up", groups[1].Title)

	people, err := handler.HandleMovie("Up")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, ids(people))

	_, err = handler.HandleMovie("Alien")
	assert.ErrorIs(t, err, entities.ErrEmptyResult)
}
