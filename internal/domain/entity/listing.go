package entity

import (
	"time"
)

const (
	ListingStateActive   = "active"
	ListingStateInactive = "inactive"
	ListingStateDraft    = "draft"
)

// ListingImage carries the per-resolution URLs Etsy serves for one image.
// AltText and the RGB channels are only written when the source provides
// them; nil pointers are omitted from the stored document.
type ListingImage struct {
	ImageID     int64   `json:"image_id" firestore:"imageId"`
	Rank        int     `json:"rank" firestore:"rank"`
	URL75x75    string  `json:"url_75x75" firestore:"url75x75"`
	URL170x135  string  `json:"url_170x135" firestore:"url170x135"`
	URL570xN    string  `json:"url_570xN" firestore:"url570xN"`
	URLFullxFull string `json:"url_fullxfull" firestore:"urlFullxfull"`
	AltText     *string `json:"alt_text,omitempty" firestore:"altText,omitempty"`
	Red         *int    `json:"red,omitempty" firestore:"red,omitempty"`
	Green       *int    `json:"green,omitempty" firestore:"green,omitempty"`
	Blue        *int    `json:"blue,omitempty" firestore:"blue,omitempty"`
}

// StoredListing is the read-only local mirror of one Etsy listing, keyed
// by ListingID. Re-sync overwrites, never duplicates; the UI never mutates
// it independently.
type StoredListing struct {
	ListingID    int64          `json:"listing_id" firestore:"listingId"`
	Title        string         `json:"title" firestore:"title"`
	Description  string         `json:"description" firestore:"description"`
	Price        float64        `json:"price" firestore:"price"`
	CurrencyCode string         `json:"currency_code" firestore:"currencyCode"`
	State        string         `json:"state" firestore:"state"`
	Quantity     int            `json:"quantity" firestore:"quantity"`
	Views        int            `json:"views" firestore:"views"`
	NumFavorers  int            `json:"num_favorers" firestore:"numFavorers"`
	Tags         []string       `json:"tags" firestore:"tags"`
	Materials    []string       `json:"materials" firestore:"materials"`
	CategoryPath []string       `json:"category_path" firestore:"categoryPath"`
	Images       []ListingImage `json:"images" firestore:"images"`

	ProcessingMin *int `json:"processing_min,omitempty" firestore:"processingMin,omitempty"`
	ProcessingMax *int `json:"processing_max,omitempty" firestore:"processingMax,omitempty"`

	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	ModifiedAt time.Time `json:"modified_at" firestore:"modifiedAt"`
	SyncedAt   time.Time `json:"synced_at" firestore:"syncedAt"`
}
