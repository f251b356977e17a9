package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/ports"
)

// PersonBatchResult counts the outcomes of a batch of AddPerson calls.
type PersonBatchResult struct {
	BatchID    string `json:"batch_id"`
	Added      int    `json:"added"`
	Duplicates int    `json:"duplicates"`
}

// RelationBatchResult counts the outcomes of a batch of AddRelation calls.
type RelationBatchResult struct {
	BatchID    string `json:"batch_id"`
	Added      int    `json:"added"`
	Duplicates int    `json:"duplicates"`
	Unresolved int    `json:"unresolved"`
	SelfLoops  int    `json:"self_loops"`
}

// IngestService feeds batches of records into the registry.
// A rejected record is counted, never fatal to the rest of the batch.
type IngestService struct {
	registry ports.Registry
	logger   zerolog.Logger
}

// NewIngestService creates a new ingest service.
func NewIngestService(registry ports.Registry, logger zerolog.Logger) *IngestService {
	return &IngestService{
		registry: registry,
		logger:   logger.With().Str("component", "ingest").Logger(),
	}
}

// AddPeople adds every person in order. It stops early only when ctx is
// cancelled, returning the counts so far together with ctx.Err().
func (s *IngestService) AddPeople(ctx context.Context, people []entities.Person) (*PersonBatchResult, error) {
	result := &PersonBatchResult{BatchID: uuid.New().String()}
	log := s.logger.With().Str("batch_id", result.BatchID).Logger()

	for i := range people {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := s.registry.AddPerson(people[i])
		switch {
		case err == nil:
			result.Added++
		case errors.Is(err, entities.ErrAlreadyExists):
			result.Duplicates++
			log.Debug().Str("person_id", people[i].ID).Msg("duplicate person skipped")
		default:
			return result, err
		}
	}

	log.Info().
		Int("added", result.Added).
		Int("duplicates", result.Duplicates).
		Msg("people batch ingested")
	return result, nil
}

// AddRelations adds every relation in order, with the same cancellation
// behaviour as AddPeople.
func (s *IngestService) AddRelations(ctx context.Context, relations []entities.Relation) (*RelationBatchResult, error) {
	result := &RelationBatchResult{BatchID: uuid.New().String()}
	log := s.logger.With().Str("batch_id", result.BatchID).Logger()

	for _, rel := range relations {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := s.registry.AddRelation(rel.PersonA, rel.PersonB)
		switch {
		case err == nil:
			result.Added++
		case errors.Is(err, entities.ErrPersonNotFound):
			result.Unresolved++
			log.Debug().Str("a", rel.PersonA).Str("b", rel.PersonB).Msg("relation endpoint not found")
		case errors.Is(err, entities.ErrAlreadyExists):
			result.Duplicates++
			log.Debug().Str("a", rel.PersonA).Str("b", rel.PersonB).Msg("duplicate relation skipped")
		case errors.Is(err, entities.ErrSelfRelation):
			result.SelfLoops++
			log.Debug().Str("a", rel.PersonA).Msg("self relation skipped")
		default:
			return result, err
		}
	}

	log.Info().
		Int("added", result.Added).
		Int("duplicates", result.Duplicates).
		Int("unresolved", result.Unresolved).
		Int("self_loops", result.SelfLoops).
		Msg("relations batch ingested")
	return result, nil
}
