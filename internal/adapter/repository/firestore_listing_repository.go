package repository

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/pkg/errors"
)

// Firestore batches hard-cap at 500 writes; stay one below.
const defaultChunkSize = 499

type firestoreListingRepository struct {
	client    *firestore.Client
	chunkSize int
}

func NewFirestoreListingRepository(client *firestore.Client, chunkSize int) repository.ListingRepository {
	if chunkSize <= 0 || chunkSize > defaultChunkSize {
		chunkSize = defaultChunkSize
	}
	return &firestoreListingRepository{
		client:    client,
		chunkSize: chunkSize,
	}
}

func (r *firestoreListingRepository) listings(storeID string) *firestore.CollectionRef {
	return r.client.Collection("stores").Doc(storeID).Collection("listings")
}

func (r *firestoreListingRepository) Save(ctx context.Context, storeID string, listing *entity.StoredListing) error {
	docID := strconv.FormatInt(listing.ListingID, 10)
	_, err := r.listings(storeID).Doc(docID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to save listing", err)
	}

	return nil
}

// SaveAll commits listings in ordered chunks, one batch per chunk. There is
// no cross-chunk transaction: a failure mid-way leaves earlier chunks
// committed, so callers must treat a failed pass as partially applied.
func (r *firestoreListingRepository) SaveAll(ctx context.Context, storeID string, listings []*entity.StoredListing) error {
	for _, chunk := range chunkListings(listings, r.chunkSize) {
		batch := r.client.Batch()
		for _, listing := range chunk {
			docID := strconv.FormatInt(listing.ListingID, 10)
			batch.Set(r.listings(storeID).Doc(docID), listing)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return errors.Internal("Failed to commit listing batch", err)
		}
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, storeID string, listingID int64) (*entity.StoredListing, error) {
	docID := strconv.FormatInt(listingID, 10)
	doc, err := r.listings(storeID).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.StoredListing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

func (r *firestoreListingRepository) List(ctx context.Context, storeID string, state string, limit, offset int) ([]*entity.StoredListing, int64, error) {
	query := r.listings(storeID).Query
	if state != "" {
		query = query.Where("state", "==", state)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count listings", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("modifiedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var listings []*entity.StoredListing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate listings", err)
		}

		var listing entity.StoredListing
		if err := doc.DataTo(&listing); err != nil {
			return nil, 0, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, total, nil
}

func (r *firestoreListingRepository) ListAll(ctx context.Context, storeID string) ([]*entity.StoredListing, error) {
	iter := r.listings(storeID).Documents(ctx)

	var listings []*entity.StoredListing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listings", err)
		}

		var listing entity.StoredListing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}

// chunkListings partitions listings into ordered slices of at most size.
func chunkListings(listings []*entity.StoredListing, size int) [][]*entity.StoredListing {
	if size <= 0 || len(listings) == 0 {
		return nil
	}

	var chunks [][]*entity.StoredListing
	for start := 0; start < len(listings); start += size {
		end := start + size
		if end > len(listings) {
			end = len(listings)
		}
		chunks = append(chunks, listings[start:end])
	}

	return chunks
}
