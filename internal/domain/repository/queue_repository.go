package repository

import (
	"context"

	"etsysync/internal/domain/entity"
)

type QueueRepository interface {
	Create(ctx context.Context, item *entity.QueueItem) error
	GetByID(ctx context.Context, id string) (*entity.QueueItem, error)
	// List returns items for a store ordered by position ascending.
	List(ctx context.Context, storeID string) ([]*entity.QueueItem, error)
	// NextPending returns the first pending item in position order, or nil.
	NextPending(ctx context.Context, storeID string) (*entity.QueueItem, error)
	Update(ctx context.Context, item *entity.QueueItem) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context, storeID string) error
	// MinPosition and MaxPosition bound the current ordering for a store;
	// both return 0 when the queue is empty.
	MinPosition(ctx context.Context, storeID string) (int64, error)
	MaxPosition(ctx context.Context, storeID string) (int64, error)
}
