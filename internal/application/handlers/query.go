package handlers

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/services"
	"github.com/ersonp/social-core/internal/infrastructure/parsers"
)

// QueryHandler adapts command-line input to the query service.
type QueryHandler struct {
	queryService *services.QueryService
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// HandleFriends returns the friends of everyone with the given surname.
func (h *QueryHandler) HandleFriends(surname string) ([]services.PersonFriends, error) {
	return h.queryService.FriendsBySurname(surname)
}

// HandleCity returns everyone born in city.
func (h *QueryHandler) HandleCity(city string) ([]entities.Person, error) {
	return h.queryService.ByCity(city)
}

// HandleDateRange parses both years and returns everyone born between them.
func (h *QueryHandler) HandleDateRange(from, to string) ([]entities.Person, error) {
	fromYear, err := parseYear(from)
	if err != nil {
		return nil, err
	}
	toYear, err := parseYear(to)
	if err != nil {
		return nil, err
	}
	return h.queryService.ByDateRange(fromYear, toYear)
}

// HandleResidential reads seed IDs from filePath and runs the residential query.
func (h *QueryHandler) HandleResidential(filePath string) ([]services.SeedResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer file.Close()

	seeds, err := parsers.ParseSeeds(file)
	if err != nil {
		return nil, err
	}
	return h.queryService.ByResidentialSeed(seeds), nil
}

// HandleMovies returns every favourite-movie group.
func (h *QueryHandler) HandleMovies() []services.MovieGroup {
	return h.queryService.GroupByFavoriteMovie()
}

// HandleMovie returns everyone who lists title as a favourite.
func (h *QueryHandler) HandleMovie(title string) ([]entities.Person, error) {
	return h.queryService.BySharedMovie(title)
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: must be a number", s)
	}
	return year, nil
}
