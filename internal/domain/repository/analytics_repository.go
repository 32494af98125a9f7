package repository

import (
	"context"

	"etsysync/internal/domain/entity"
)

type AnalyticsRepository interface {
	Get(ctx context.Context, storeID string) (*entity.StoreAnalytics, error)
	Set(ctx context.Context, analytics *entity.StoreAnalytics) error
}
