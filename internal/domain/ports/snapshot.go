package ports

import (
	"context"

	"github.com/ersonp/social-core/internal/domain/entities"
)

// SnapshotWriter exports the registry contents to an external store.
type SnapshotWriter interface {
	// EnsureSchema creates the target schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// SaveSnapshot replaces any previous snapshot with people and relations.
	SaveSnapshot(ctx context.Context, people []entities.Person, relations []entities.Relation) (*entities.SnapshotInfo, error)

	// Close releases the underlying connection.
	Close() error
}
