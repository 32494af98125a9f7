package entity

import (
	"time"
)

// TagCount is one entry of the top-tags frequency list.
type TagCount struct {
	Tag   string `json:"tag" firestore:"tag"`
	Count int    `json:"count" firestore:"count"`
}

// ListingHighlight names the single winner for an engagement metric.
type ListingHighlight struct {
	ListingID int64  `json:"listing_id" firestore:"listingId"`
	Title     string `json:"title" firestore:"title"`
	Count     int    `json:"count" firestore:"count"`
}

// StoreAnalytics is derived wholesale from the full listing set after each
// sync. Never hand-edited, never incrementally maintained.
type StoreAnalytics struct {
	StoreID          string            `json:"store_id" firestore:"storeId"`
	TotalListings    int               `json:"total_listings" firestore:"totalListings"`
	ActiveListings   int               `json:"active_listings" firestore:"activeListings"`
	InactiveListings int               `json:"inactive_listings" firestore:"inactiveListings"`
	DraftListings    int               `json:"draft_listings" firestore:"draftListings"`
	TotalViews       int               `json:"total_views" firestore:"totalViews"`
	TotalFavorers    int               `json:"total_favorers" firestore:"totalFavorers"`
	AvgPrice         float64           `json:"avg_price" firestore:"avgPrice"`
	MinPrice         float64           `json:"min_price" firestore:"minPrice"`
	MaxPrice         float64           `json:"max_price" firestore:"maxPrice"`
	MostViewed       *ListingHighlight `json:"most_viewed,omitempty" firestore:"mostViewed,omitempty"`
	MostFavorited    *ListingHighlight `json:"most_favorited,omitempty" firestore:"mostFavorited,omitempty"`
	TopTags          []TagCount        `json:"top_tags" firestore:"topTags"`
	UpdatedAt        time.Time         `json:"updated_at" firestore:"updatedAt"`
}
