package repository

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

import (
	"context"

	"github.com/fastygo/catalog/domain"
)

// SnapshotStore persists the whole catalog as one document.
//
// Load returns the current snapshot, creating and persisting an empty one
// when nothing has been stored yet. Save replaces the stored snapshot in
// full; a concurrent Load observes either the previous or the new snapshot.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snapshot *domain.Snapshot) error
}

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
