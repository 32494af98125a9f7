package repository

import (
	"context"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/pkg/errors"
)

type firestoreLearningRepository struct {
	client *firestore.Client
}

func NewFirestoreLearningRepository(client *firestore.Client) repository.LearningRepository {
	return &firestoreLearningRepository{
		client: client,
	}
}

// SaveSample upserts one title/tag sample keyed by listing id, so re-syncs
// refresh the corpus instead of growing it.
func (r *firestoreLearningRepository) SaveSample(ctx context.Context, sample *entity.TitleTagSample) error {
	if sample.CapturedAt.IsZero() {
		sample.CapturedAt = time.Now()
	}

	docID := strconv.FormatInt(sample.ListingID, 10)
	_, err := r.client.Collection("learning_samples").
		Doc(sample.StoreID).
		Collection("samples").
		Doc(docID).
		Set(ctx, sample)
	if err != nil {
		return errors.Internal("Failed to save learning sample", err)
	}

	return nil
}
