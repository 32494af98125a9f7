package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/pkg/errors"
)

type firestoreSyncStatusRepository struct {
	client *firestore.Client
}

func NewFirestoreSyncStatusRepository(client *firestore.Client) repository.SyncStatusRepository {
	return &firestoreSyncStatusRepository{
		client: client,
	}
}

func (r *firestoreSyncStatusRepository) Get(ctx context.Context, storeID string) (*entity.SyncStatus, error) {
	doc, err := r.client.Collection("sync_status").Doc(storeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get sync status", err)
	}

	var syncStatus entity.SyncStatus
	if err := doc.DataTo(&syncStatus); err != nil {
		return nil, errors.Internal("Failed to parse sync status data", err)
	}

	return &syncStatus, nil
}

func (r *firestoreSyncStatusRepository) Set(ctx context.Context, syncStatus *entity.SyncStatus) error {
	_, err := r.client.Collection("sync_status").Doc(syncStatus.StoreID).Set(ctx, syncStatus)
	if err != nil {
		return errors.Internal("Failed to save sync status", err)
	}

	return nil
}

// AcquireLease claims the store for one orchestration. The read and write
// run in a single Firestore transaction so two concurrent triggers cannot
// both win.
func (r *firestoreSyncStatusRepository) AcquireLease(ctx context.Context, storeID string, until time.Time) error {
	ref := r.client.Collection("sync_status").Doc(storeID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		now := time.Now()
		if err == nil {
			var current entity.SyncStatus
			if derr := doc.DataTo(&current); derr != nil {
				return derr
			}
			if current.LockedUntil.After(now) {
				return errors.Conflict("Sync already in progress for this store")
			}
			return tx.Update(ref, []firestore.Update{
				{Path: "lockedUntil", Value: until},
			})
		}

		return tx.Set(ref, &entity.SyncStatus{
			StoreID:     storeID,
			Status:      entity.SyncStatusPending,
			LockedUntil: until,
		})
	})

	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to acquire sync lease", err)
	}

	return nil
}

func (r *firestoreSyncStatusRepository) ReleaseLease(ctx context.Context, storeID string) error {
	_, err := r.client.Collection("sync_status").Doc(storeID).Update(ctx, []firestore.Update{
		{Path: "lockedUntil", Value: time.Time{}},
	})
	if err != nil {
		return errors.Internal("Failed to release sync lease", err)
	}

	return nil
}
