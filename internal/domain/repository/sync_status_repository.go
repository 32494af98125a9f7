package repository

import (
	"context"
	"time"

	"etsysync/internal/domain/entity"
)

type SyncStatusRepository interface {
	// Get returns nil (no error) when no status document exists yet.
	Get(ctx context.Context, storeID string) (*entity.SyncStatus, error)
	Set(ctx context.Context, status *entity.SyncStatus) error
	// AcquireLease atomically claims the store for syncing until the given
	// time. Returns a Conflict error when another sync holds the lease.
	AcquireLease(ctx context.Context, storeID string, until time.Time) error
	ReleaseLease(ctx context.Context, storeID string) error
}
