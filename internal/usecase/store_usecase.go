package usecase

import (
	"context"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/internal/infrastructure/etsy"
	"etsysync/pkg/errors"
)

type StoreUseCase struct {
	storeRepo  repository.StoreRepository
	statusRepo repository.SyncStatusRepository
	etsyClient EtsyClient
}

func NewStoreUseCase(
	storeRepo repository.StoreRepository,
	statusRepo repository.SyncStatusRepository,
	etsyClient EtsyClient,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:  storeRepo,
		statusRepo: statusRepo,
		etsyClient: etsyClient,
	}
}

type ConnectStoreInput struct {
	ShopID      int64
	ShopName    string
	APIKey      string
	AccessToken string
}

// ConnectStore registers the caller's Etsy shop. One store per user; the
// first sync-status document is seeded as pending so the scheduler picks
// the store up on its next sweep.
func (uc *StoreUseCase) ConnectStore(ctx context.Context, ownerID string, input ConnectStoreInput) (*entity.Store, error) {
	if existing, err := uc.storeRepo.GetByOwnerID(ctx, ownerID); err == nil && existing != nil {
		return nil, errors.Conflict("A store is already connected for this account")
	}

	store := &entity.Store{
		OwnerID:     ownerID,
		ShopID:      input.ShopID,
		ShopName:    input.ShopName,
		APIKey:      input.APIKey,
		AccessToken: input.AccessToken,
		Active:      true,
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	status := &entity.SyncStatus{
		StoreID: store.ID,
		OwnerID: ownerID,
		Status:  entity.SyncStatusPending,
	}
	if err := uc.statusRepo.Set(ctx, status); err != nil {
		return nil, err
	}

	return store, nil
}

func (uc *StoreUseCase) GetStore(ctx context.Context, ownerID, storeID string) (*entity.Store, error) {
	return requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID)
}

type UpdateStoreInput struct {
	ShopName    string
	APIKey      string
	AccessToken string
	Active      *bool
}

func (uc *StoreUseCase) UpdateStore(ctx context.Context, ownerID, storeID string, input UpdateStoreInput) (*entity.Store, error) {
	store, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	if input.ShopName != "" {
		store.ShopName = input.ShopName
	}
	if input.APIKey != "" {
		store.APIKey = input.APIKey
	}
	if input.AccessToken != "" {
		store.AccessToken = input.AccessToken
	}
	if input.Active != nil {
		store.Active = *input.Active
	}

	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (uc *StoreUseCase) DisconnectStore(ctx context.Context, ownerID, storeID string) error {
	store, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID)
	if err != nil {
		return err
	}
	return uc.storeRepo.Delete(ctx, store.ID)
}

func (uc *StoreUseCase) GetShippingProfiles(ctx context.Context, ownerID, storeID string) ([]etsy.ShippingProfile, error) {
	store, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID)
	if err != nil {
		return nil, err
	}
	if !store.HasCredentials() {
		return nil, errors.BadRequest("Store credentials are missing", nil)
	}

	creds := etsy.Credentials{APIKey: store.APIKey, AccessToken: store.AccessToken}
	return uc.etsyClient.GetShippingProfiles(ctx, creds, store.ShopID)
}

func (uc *StoreUseCase) GetShopSections(ctx context.Context, ownerID, storeID string) ([]etsy.ShopSection, error) {
	store, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID)
	if err != nil {
		return nil, err
	}
	if !store.HasCredentials() {
		return nil, errors.BadRequest("Store credentials are missing", nil)
	}

	creds := etsy.Credentials{APIKey: store.APIKey, AccessToken: store.AccessToken}
	return uc.etsyClient.GetShopSections(ctx, creds, store.ShopID)
}
