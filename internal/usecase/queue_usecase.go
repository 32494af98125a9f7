package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/internal/infrastructure/etsy"
	"etsysync/pkg/errors"
	"etsysync/pkg/logger"
)

type QueueUseCase struct {
	queueRepo  repository.QueueRepository
	storeRepo  repository.StoreRepository
	etsyClient EtsyClient
}

func NewQueueUseCase(
	queueRepo repository.QueueRepository,
	storeRepo repository.StoreRepository,
	etsyClient EtsyClient,
) *QueueUseCase {
	return &QueueUseCase{
		queueRepo:  queueRepo,
		storeRepo:  storeRepo,
		etsyClient: etsyClient,
	}
}

type EnqueueProductInput struct {
	StoreID string
	Draft   entity.ProductDraft
}

func (uc *QueueUseCase) Enqueue(ctx context.Context, ownerID string, input EnqueueProductInput) (*entity.QueueItem, error) {
	store, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, input.StoreID)
	if err != nil {
		return nil, err
	}

	maxPos, err := uc.queueRepo.MaxPosition(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	item := &entity.QueueItem{
		ID:       uuid.NewString(),
		StoreID:  store.ID,
		OwnerID:  ownerID,
		Draft:    input.Draft,
		Status:   entity.QueueStatusPending,
		Position: maxPos + 1,
	}

	if err := uc.queueRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *QueueUseCase) List(ctx context.Context, ownerID, storeID string) ([]*entity.QueueItem, error) {
	if _, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID); err != nil {
		return nil, err
	}
	return uc.queueRepo.List(ctx, storeID)
}

// Retry resets a failed item to pending, clears its error, and moves it to
// the front of the queue. Items in any other state cannot be retried.
func (uc *QueueUseCase) Retry(ctx context.Context, ownerID, itemID string) (*entity.QueueItem, error) {
	item, err := uc.getOwnedItem(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if item.Status != entity.QueueStatusFailed {
		return nil, errors.BadRequest("Only failed items can be retried", nil)
	}

	minPos, err := uc.queueRepo.MinPosition(ctx, item.StoreID)
	if err != nil {
		return nil, err
	}

	item.Status = entity.QueueStatusPending
	item.Position = minPos - 1
	item.Error = ""

	if err := uc.queueRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *QueueUseCase) Remove(ctx context.Context, ownerID, itemID string) error {
	item, err := uc.getOwnedItem(ctx, ownerID, itemID)
	if err != nil {
		return err
	}
	return uc.queueRepo.Delete(ctx, item.ID)
}

func (uc *QueueUseCase) Clear(ctx context.Context, ownerID, storeID string) error {
	if _, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID); err != nil {
		return err
	}
	return uc.queueRepo.Clear(ctx, storeID)
}

// ProcessNext pops the first pending item and publishes it to Etsy.
// Returns nil when the queue has no pending items. A publish failure is
// recorded on the item, not surfaced as a request error.
func (uc *QueueUseCase) ProcessNext(ctx context.Context, ownerID, storeID string) (*entity.QueueItem, error) {
	store, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID)
	if err != nil {
		return nil, err
	}
	if !store.HasCredentials() {
		return nil, errors.BadRequest("Store credentials are missing", nil)
	}

	item, err := uc.queueRepo.NextPending(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	item.Status = entity.QueueStatusProcessing
	if err := uc.queueRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	creds := etsy.Credentials{APIKey: store.APIKey, AccessToken: store.AccessToken}
	draft := etsy.ListingDraft{
		Title:             item.Draft.Title,
		Description:       item.Draft.Description,
		Price:             item.Draft.Price,
		Quantity:          item.Draft.Quantity,
		Tags:              item.Draft.Tags,
		Materials:         item.Draft.Materials,
		ShippingProfileID: item.Draft.ShippingProfileID,
		ShopSectionID:     item.Draft.ShopSectionID,
		WhoMade:           "i_did",
		WhenMade:          "made_to_order",
	}

	listingID, err := uc.etsyClient.CreateListing(ctx, creds, store.ShopID, draft)
	if err != nil {
		item.Status = entity.QueueStatusFailed
		item.Error = err.Error()
		if uerr := uc.queueRepo.Update(ctx, item); uerr != nil {
			return nil, uerr
		}
		return item, nil
	}

	for _, imageURL := range item.Draft.ImageURLs {
		if err := uc.etsyClient.UploadListingImage(ctx, creds, store.ShopID, listingID, imageURL); err != nil {
			logger.Warn("Image upload failed for listing %d: %v", listingID, err)
		}
	}

	item.Status = entity.QueueStatusCompleted
	item.EtsyListingID = listingID
	item.Error = ""
	item.UpdatedAt = time.Now()

	if err := uc.queueRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *QueueUseCase) getOwnedItem(ctx context.Context, ownerID, itemID string) (*entity.QueueItem, error) {
	item, err := uc.queueRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, errors.Forbidden("You don't have access to this queue item", nil)
	}
	return item, nil
}
