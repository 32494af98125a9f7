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

type firestoreQueueRepository struct {
	client *firestore.Client
}

func NewFirestoreQueueRepository(client *firestore.Client) repository.QueueRepository {
	return &firestoreQueueRepository{
		client: client,
	}
}

func (r *firestoreQueueRepository) Create(ctx context.Context, item *entity.QueueItem) error {
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	_, err := r.client.Collection("product_queue").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to create queue item", err)
	}

	return nil
}

func (r *firestoreQueueRepository) GetByID(ctx context.Context, id string) (*entity.QueueItem, error) {
	doc, err := r.client.Collection("product_queue").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Queue item", err)
		}
		return nil, errors.Internal("Failed to get queue item", err)
	}

	var item entity.QueueItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse queue item data", err)
	}

	return &item, nil
}

func (r *firestoreQueueRepository) List(ctx context.Context, storeID string) ([]*entity.QueueItem, error) {
	iter := r.client.Collection("product_queue").
		Where("storeId", "==", storeID).
		OrderBy("position", firestore.Asc).
		Documents(ctx)

	var items []*entity.QueueItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate queue items", err)
		}

		var item entity.QueueItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse queue item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *firestoreQueueRepository) NextPending(ctx context.Context, storeID string) (*entity.QueueItem, error) {
	iter := r.client.Collection("product_queue").
		Where("storeId", "==", storeID).
		Where("status", "==", entity.QueueStatusPending).
		OrderBy("position", firestore.Asc).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to query next pending item", err)
	}

	var item entity.QueueItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse queue item data", err)
	}

	return &item, nil
}

func (r *firestoreQueueRepository) Update(ctx context.Context, item *entity.QueueItem) error {
	item.UpdatedAt = time.Now()

	_, err := r.client.Collection("product_queue").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to update queue item", err)
	}

	return nil
}

func (r *firestoreQueueRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("product_queue").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete queue item", err)
	}

	return nil
}

func (r *firestoreQueueRepository) Clear(ctx context.Context, storeID string) error {
	iter := r.client.Collection("product_queue").Where("storeId", "==", storeID).Documents(ctx)

	batch := r.client.Batch()
	count := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate queue items", err)
		}

		batch.Delete(doc.Ref)
		count++
	}

	if count == 0 {
		return nil
	}
	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to clear queue", err)
	}

	return nil
}

func (r *firestoreQueueRepository) MinPosition(ctx context.Context, storeID string) (int64, error) {
	return r.boundaryPosition(ctx, storeID, firestore.Asc)
}

func (r *firestoreQueueRepository) MaxPosition(ctx context.Context, storeID string) (int64, error) {
	return r.boundaryPosition(ctx, storeID, firestore.Desc)
}

func (r *firestoreQueueRepository) boundaryPosition(ctx context.Context, storeID string, dir firestore.Direction) (int64, error) {
	iter := r.client.Collection("product_queue").
		Where("storeId", "==", storeID).
		OrderBy("position", dir).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Internal("Failed to query queue position", err)
	}

	var item entity.QueueItem
	if err := doc.DataTo(&item); err != nil {
		return 0, errors.Internal("Failed to parse queue item data", err)
	}

	return item.Position, nil
}
