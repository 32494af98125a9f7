package repository

import (
	"context"

	"etsysync/internal/domain/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error)
	ListActive(ctx context.Context) ([]*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id string) error
}
