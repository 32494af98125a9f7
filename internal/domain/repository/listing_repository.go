package repository

import (
	"context"

	"etsysync/internal/domain/entity"
)

type ListingRepository interface {
	// Save upserts a single listing, keyed by its Etsy listing id.
	Save(ctx context.Context, storeID string, listing *entity.StoredListing) error
	// SaveAll upserts listings in ordered chunks below the store's batch
	// ceiling. Chunks already committed stay committed if a later one fails.
	SaveAll(ctx context.Context, storeID string, listings []*entity.StoredListing) error
	GetByID(ctx context.Context, storeID string, listingID int64) (*entity.StoredListing, error)
	List(ctx context.Context, storeID string, state string, limit, offset int) ([]*entity.StoredListing, int64, error)
	ListAll(ctx context.Context, storeID string) ([]*entity.StoredListing, error)
}
