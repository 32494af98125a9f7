package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/pkg/errors"
)

type firestoreAnalyticsRepository struct {
	client *firestore.Client
}

func NewFirestoreAnalyticsRepository(client *firestore.Client) repository.AnalyticsRepository {
	return &firestoreAnalyticsRepository{
		client: client,
	}
}

func (r *firestoreAnalyticsRepository) Get(ctx context.Context, storeID string) (*entity.StoreAnalytics, error) {
	doc, err := r.client.Collection("store_analytics").Doc(storeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Store analytics", err)
		}
		return nil, errors.Internal("Failed to get store analytics", err)
	}

	var analytics entity.StoreAnalytics
	if err := doc.DataTo(&analytics); err != nil {
		return nil, errors.Internal("Failed to parse store analytics data", err)
	}

	return &analytics, nil
}

func (r *firestoreAnalyticsRepository) Set(ctx context.Context, analytics *entity.StoreAnalytics) error {
	analytics.UpdatedAt = time.Now()

	_, err := r.client.Collection("store_analytics").Doc(analytics.StoreID).Set(ctx, analytics)
	if err != nil {
		return errors.Internal("Failed to save store analytics", err)
	}

	return nil
}
