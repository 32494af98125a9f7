package usecase

import (
	"context"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
)

// ListingUseCase serves the read-only local mirror. Listings are only ever
// written by the sync pipeline.
type ListingUseCase struct {
	listingRepo repository.ListingRepository
	storeRepo   repository.StoreRepository
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	storeRepo repository.StoreRepository,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		storeRepo:   storeRepo,
	}
}

func (uc *ListingUseCase) ListListings(ctx context.Context, ownerID, storeID, state string, limit, offset int) ([]*entity.StoredListing, int64, error) {
	if _, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID); err != nil {
		return nil, 0, err
	}
	return uc.listingRepo.List(ctx, storeID, state, limit, offset)
}

func (uc *ListingUseCase) GetListing(ctx context.Context, ownerID, storeID string, listingID int64) (*entity.StoredListing, error) {
	if _, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID); err != nil {
		return nil, err
	}
	return uc.listingRepo.GetByID(ctx, storeID, listingID)
}
