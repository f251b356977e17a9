package mocks

import (
	"context"

	"github.com/ersonp/social-core/internal/domain/entities"
)

// SnapshotWriter is a mock implementation of ports.SnapshotWriter.
type SnapshotWriter struct {
	People    []entities.Person
	Relations []entities.Relation
	Err       error
	SchemaErr error
	Closed    bool
}

// EnsureSchema returns SchemaErr.
func (m *SnapshotWriter) EnsureSchema(_ context.Context) error {
	return m.SchemaErr
}

// SaveSnapshot records the arguments unless Err is set.
func (m *SnapshotWriter) SaveSnapshot(_ context.Context, people []entities.Person, relations []entities.Relation) (*entities.SnapshotInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.People = people
	m.Relations = relations
	return &entities.SnapshotInfo{ID: "snapshot-1", People: len(people), Relations: len(relations)}, nil
}

// Close marks the writer closed.
func (m *SnapshotWriter) Close() error {
	m.Closed = true
	return nil
}
