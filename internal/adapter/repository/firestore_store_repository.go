package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/pkg/errors"
)

type firestoreStoreRepository struct {
	client *firestore.Client
}

func NewFirestoreStoreRepository(client *firestore.Client) repository.StoreRepository {
	return &firestoreStoreRepository{
		client: client,
	}
}

func (r *firestoreStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	if store.ID == "" {
		doc := r.client.Collection("stores").NewDoc()
		store.ID = doc.ID
	}

	now := time.Now()
	if store.CreatedAt.IsZero() {
		store.CreatedAt = now
	}
	store.UpdatedAt = now

	_, err := r.client.Collection("stores").Doc(store.ID).Set(ctx, store)
	if err != nil {
		return errors.Internal("Failed to create store", err)
	}

	return nil
}

func (r *firestoreStoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	doc, err := r.client.Collection("stores").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Store", err)
		}
		return nil, errors.Internal("Failed to get store", err)
	}

	var store entity.Store
	if err := doc.DataTo(&store); err != nil {
		return nil, errors.Internal("Failed to parse store data", err)
	}

	return &store, nil
}

func (r *firestoreStoreRepository) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error) {
	iter := r.client.Collection("stores").Where("ownerId", "==", ownerID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Store", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query store by owner", err)
	}

	var store entity.Store
	if err := doc.DataTo(&store); err != nil {
		return nil, errors.Internal("Failed to parse store data", err)
	}

	return &store, nil
}

func (r *firestoreStoreRepository) ListActive(ctx context.Context) ([]*entity.Store, error) {
	iter := r.client.Collection("stores").Where("active", "==", true).Documents(ctx)

	var stores []*entity.Store
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate stores", err)
		}

		var store entity.Store
		if err := doc.DataTo(&store); err != nil {
			return nil, errors.Internal("Failed to parse store data", err)
		}
		stores = append(stores, &store)
	}

	return stores, nil
}

func (r *firestoreStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	store.UpdatedAt = time.Now()

	_, err := r.client.Collection("stores").Doc(store.ID).Set(ctx, store)
	if err != nil {
		return errors.Internal("Failed to update store", err)
	}

	return nil
}

func (r *firestoreStoreRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("stores").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete store", err)
	}

	return nil
}
