package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/ports"
)

// ExportHandler writes the registry to a snapshot store.
type ExportHandler struct {
	registry ports.Registry
	writer   ports.SnapshotWriter
}

// NewExportHandler creates a new export handler.
func NewExportHandler(registry ports.Registry, writer ports.SnapshotWriter) *ExportHandler {
	return &ExportHandler{
		registry: registry,
		writer:   writer,
	}
}

// Handle exports every person and relation.
func (h *ExportHandler) Handle(ctx context.Context) (*entities.SnapshotInfo, error) {
	if err := h.writer.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensuring snapshot schema: %w", err)
	}

	info, err := h.writer.SaveSnapshot(ctx, h.registry.People(), h.registry.Relations())
	if err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	return info, nil
}
