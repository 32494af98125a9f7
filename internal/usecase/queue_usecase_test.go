package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etsysync/internal/domain/entity"
	"etsysync/pkg/errors"
)

func newQueueFixture(stores []*entity.Store, items ...*entity.QueueItem) (*QueueUseCase, *fakeQueueRepo, *fakeEtsyClient) {
	queueRepo := newFakeQueueRepo(items...)
	client := &fakeEtsyClient{}
	uc := NewQueueUseCase(queueRepo, newFakeStoreRepo(stores...), client)
	return uc, queueRepo, client
}

func queuedItem(id string, position int64, status string) *entity.QueueItem {
	return &entity.QueueItem{
		ID:       id,
		StoreID:  "store-1",
		OwnerID:  "user-1",
		Status:   status,
		Position: position,
		Draft: entity.ProductDraft{
			Title:    "Queued product " + id,
			Price:    15,
			Quantity: 1,
		},
	}
}

func TestEnqueueAppendsToTail(t *testing.T) {
	store := connectedStore("store-1", "user-1")
	uc, queueRepo, _ := newQueueFixture([]*entity.Store{store},
		queuedItem("a", 1, entity.QueueStatusPending),
		queuedItem("b", 2, entity.QueueStatusPending),
	)

	item, err := uc.Enqueue(context.Background(), "user-1", EnqueueProductInput{
		StoreID: "store-1",
		Draft:   entity.ProductDraft{Title: "New product", Price: 20, Quantity: 2},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, entity.QueueStatusPending, item.Status)
	assert.Equal(t, int64(3), item.Position)

	items, _ := queueRepo.List(context.Background(), "store-1")
	assert.Len(t, items, 3)
}

func TestRetryMovesFailedItemToFront(t *testing.T) {
	store := connectedStore("store-1", "user-1")
	failed := queuedItem("c", 5, entity.QueueStatusFailed)
	failed.Error = "listing rejected"
	uc, queueRepo, _ := newQueueFixture([]*entity.Store{store},
		queuedItem("a", 2, entity.QueueStatusPending),
		queuedItem("b", 3, entity.QueueStatusPending),
		failed,
	)

	item, err := uc.Retry(context.Background(), "user-1", "c")

	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusPending, item.Status)
	assert.Equal(t, int64(1), item.Position)
	assert.Empty(t, item.Error)

	next, err := queueRepo.NextPending(context.Background(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, "c", next.ID)
}

func TestRetryRejectsNonFailedItem(t *testing.T) {
	store := connectedStore("store-1", "user-1")
	uc, _, _ := newQueueFixture([]*entity.Store{store}, queuedItem("a", 1, entity.QueueStatusPending))

	_, err := uc.Retry(context.Background(), "user-1", "a")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestProcessNextPublishesInOrder(t *testing.T) {
	store := connectedStore("store-1", "user-1")
	first := queuedItem("a", 1, entity.QueueStatusPending)
	first.Draft.ImageURLs = []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}
	uc, queueRepo, client := newQueueFixture([]*entity.Store{store},
		first,
		queuedItem("b", 2, entity.QueueStatusPending),
	)
	client.createID = 777

	item, err := uc.ProcessNext(context.Background(), "user-1", "store-1")

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "a", item.ID)
	assert.Equal(t, entity.QueueStatusCompleted, item.Status)
	assert.Equal(t, int64(777), item.EtsyListingID)
	assert.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, client.uploaded)

	next, err := queueRepo.NextPending(context.Background(), "store-1")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "b", next.ID)
}

func TestProcessNextRecordsPublishFailureOnItem(t *testing.T) {
	store := connectedStore("store-1", "user-1")
	uc, queueRepo, client := newQueueFixture([]*entity.Store{store}, queuedItem("a", 1, entity.QueueStatusPending))
	client.createErr = fmt.Errorf("etsy: create listing: status 400")

	item, err := uc.ProcessNext(context.Background(), "user-1", "store-1")

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, entity.QueueStatusFailed, item.Status)
	assert.Contains(t, item.Error, "status 400")

	stored, err := queueRepo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, entity.QueueStatusFailed, stored.Status)
}

func TestProcessNextEmptyQueue(t *testing.T) {
	store := connectedStore("store-1", "user-1")
	uc, _, _ := newQueueFixture([]*entity.Store{store})

	item, err := uc.ProcessNext(context.Background(), "user-1", "store-1")

	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestQueueOwnershipChecks(t *testing.T) {
	store := connectedStore("store-1", "user-1")
	uc, _, _ := newQueueFixture([]*entity.Store{store}, queuedItem("a", 1, entity.QueueStatusFailed))

	_, err := uc.Retry(context.Background(), "user-2", "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.Clear(context.Background(), "user-2", "store-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
