package repository

import (
	"context"

	"etsysync/internal/domain/entity"
)

type LearningRepository interface {
	SaveSample(ctx context.Context, sample *entity.TitleTagSample) error
}
