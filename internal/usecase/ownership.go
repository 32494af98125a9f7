package usecase

import (
	"context"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/pkg/errors"
)

func requireOwnedStore(ctx context.Context, storeRepo repository.StoreRepository, ownerID, storeID string) (*entity.Store, error) {
	store, err := storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't have access to this store", nil)
	}
	return store, nil
}
