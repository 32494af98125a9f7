package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etsysync/internal/domain/entity"
)

func TestComputeAnalyticsEmptySet(t *testing.T) {
	assert.Nil(t, computeAnalytics("store-1", nil))
	assert.Nil(t, computeAnalytics("store-1", []*entity.StoredListing{}))
}

func TestComputeAnalytics(t *testing.T) {
	listings := []*entity.StoredListing{
		{ListingID: 1, Title: "A", State: entity.ListingStateActive, Price: 10, Views: 100, NumFavorers: 5, Tags: []string{"wood", "rustic"}},
		{ListingID: 2, Title: "B", State: entity.ListingStateActive, Price: 30, Views: 50, NumFavorers: 20, Tags: []string{"wood"}},
		{ListingID: 3, Title: "C", State: entity.ListingStateDraft, Price: 20, Views: 10, NumFavorers: 1, Tags: []string{"rustic"}},
	}

	analytics := computeAnalytics("store-1", listings)
	require.NotNil(t, analytics)

	assert.Equal(t, "store-1", analytics.StoreID)
	assert.Equal(t, 3, analytics.TotalListings)
	assert.Equal(t, 2, analytics.ActiveListings)
	assert.Equal(t, 0, analytics.InactiveListings)
	assert.Equal(t, 1, analytics.DraftListings)
	assert.Equal(t, 160, analytics.TotalViews)
	assert.Equal(t, 26, analytics.TotalFavorers)
	assert.Equal(t, 20.0, analytics.AvgPrice)
	assert.Equal(t, 10.0, analytics.MinPrice)
	assert.Equal(t, 30.0, analytics.MaxPrice)

	require.NotNil(t, analytics.MostViewed)
	assert.Equal(t, int64(1), analytics.MostViewed.ListingID)
	assert.Equal(t, 100, analytics.MostViewed.Count)

	require.NotNil(t, analytics.MostFavorited)
	assert.Equal(t, int64(2), analytics.MostFavorited.ListingID)
	assert.Equal(t, 20, analytics.MostFavorited.Count)

	assert.Equal(t, []entity.TagCount{{Tag: "rustic", Count: 2}, {Tag: "wood", Count: 2}}, analytics.TopTags)
}

func TestComputeAnalyticsHighlightTieBreaksToFirst(t *testing.T) {
	listings := []*entity.StoredListing{
		{ListingID: 7, Title: "First", Views: 40, NumFavorers: 9},
		{ListingID: 8, Title: "Second", Views: 40, NumFavorers: 9},
	}

	analytics := computeAnalytics("store-1", listings)
	require.NotNil(t, analytics)

	assert.Equal(t, int64(7), analytics.MostViewed.ListingID)
	assert.Equal(t, int64(7), analytics.MostFavorited.ListingID)
}

func TestTopTagsCapped(t *testing.T) {
	counts := make(map[string]int)
	for i := 0; i < 30; i++ {
		counts[fmt.Sprintf("tag-%02d", i)] = 30 - i
	}

	tags := topTags(counts, topTagLimit)

	require.Len(t, tags, topTagLimit)
	assert.Equal(t, entity.TagCount{Tag: "tag-00", Count: 30}, tags[0])
	for i := 1; i < len(tags); i++ {
		assert.GreaterOrEqual(t, tags[i-1].Count, tags[i].Count)
	}
}

func TestRecomputeSkipsEmptyStore(t *testing.T) {
	analyticsRepo := newFakeAnalyticsRepo()
	uc := NewAnalyticsUseCase(analyticsRepo, newFakeListingRepo(), newFakeStoreRepo())

	analytics, err := uc.Recompute(context.Background(), "store-1")

	require.NoError(t, err)
	assert.Nil(t, analytics)
	assert.Empty(t, analyticsRepo.saved)
}
