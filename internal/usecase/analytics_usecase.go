package usecase

import (
	"context"
	"sort"
	"time"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
)

const topTagLimit = 20

type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	listingRepo   repository.ListingRepository
	storeRepo     repository.StoreRepository
}

func NewAnalyticsUseCase(
	analyticsRepo repository.AnalyticsRepository,
	listingRepo repository.ListingRepository,
	storeRepo repository.StoreRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		analyticsRepo: analyticsRepo,
		listingRepo:   listingRepo,
		storeRepo:     storeRepo,
	}
}

func (uc *AnalyticsUseCase) GetStoreAnalytics(ctx context.Context, ownerID, storeID string) (*entity.StoreAnalytics, error) {
	if _, err := uc.requireOwnedStore(ctx, ownerID, storeID); err != nil {
		return nil, err
	}
	return uc.analyticsRepo.Get(ctx, storeID)
}

// Recompute rebuilds the analytics document from the full listing set.
// An empty listing set short-circuits: nothing is computed or stored.
func (uc *AnalyticsUseCase) Recompute(ctx context.Context, storeID string) (*entity.StoreAnalytics, error) {
	listings, err := uc.listingRepo.ListAll(ctx, storeID)
	if err != nil {
		return nil, err
	}

	analytics := computeAnalytics(storeID, listings)
	if analytics == nil {
		return nil, nil
	}

	if err := uc.analyticsRepo.Set(ctx, analytics); err != nil {
		return nil, err
	}

	return analytics, nil
}

func (uc *AnalyticsUseCase) requireOwnedStore(ctx context.Context, ownerID, storeID string) (*entity.Store, error) {
	return requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID)
}

// computeAnalytics is a pure reduction over the listing set. Ties for the
// most-viewed and most-favorited winners break toward the first listing
// encountered. Returns nil for an empty set.
func computeAnalytics(storeID string, listings []*entity.StoredListing) *entity.StoreAnalytics {
	if len(listings) == 0 {
		return nil
	}

	analytics := &entity.StoreAnalytics{
		StoreID:       storeID,
		TotalListings: len(listings),
		MinPrice:      listings[0].Price,
		MaxPrice:      listings[0].Price,
		UpdatedAt:     time.Now(),
	}

	tagCounts := make(map[string]int)
	var priceSum float64
	var mostViewed, mostFavorited *entity.StoredListing

	for _, listing := range listings {
		switch listing.State {
		case entity.ListingStateActive:
			analytics.ActiveListings++
		case entity.ListingStateInactive:
			analytics.InactiveListings++
		case entity.ListingStateDraft:
			analytics.DraftListings++
		}

		analytics.TotalViews += listing.Views
		analytics.TotalFavorers += listing.NumFavorers

		priceSum += listing.Price
		if listing.Price < analytics.MinPrice {
			analytics.MinPrice = listing.Price
		}
		if listing.Price > analytics.MaxPrice {
			analytics.MaxPrice = listing.Price
		}

		if mostViewed == nil || listing.Views > mostViewed.Views {
			mostViewed = listing
		}
		if mostFavorited == nil || listing.NumFavorers > mostFavorited.NumFavorers {
			mostFavorited = listing
		}

		for _, tag := range listing.Tags {
			tagCounts[tag]++
		}
	}

	analytics.AvgPrice = priceSum / float64(len(listings))
	analytics.MostViewed = &entity.ListingHighlight{
		ListingID: mostViewed.ListingID,
		Title:     mostViewed.Title,
		Count:     mostViewed.Views,
	}
	analytics.MostFavorited = &entity.ListingHighlight{
		ListingID: mostFavorited.ListingID,
		Title:     mostFavorited.Title,
		Count:     mostFavorited.NumFavorers,
	}
	analytics.TopTags = topTags(tagCounts, topTagLimit)

	return analytics
}

func topTags(counts map[string]int, limit int) []entity.TagCount {
	tags := make([]entity.TagCount, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, entity.TagCount{Tag: tag, Count: count})
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})

	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}
