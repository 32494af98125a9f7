package entity

import (
	"time"
)

const (
	QueueStatusPending    = "pending"
	QueueStatusProcessing = "processing"
	QueueStatusCompleted  = "completed"
	QueueStatusFailed     = "failed"
)

// ProductDraft is the payload of a queued product awaiting publication.
type ProductDraft struct {
	Title             string   `json:"title" firestore:"title"`
	Description       string   `json:"description" firestore:"description"`
	Price             float64  `json:"price" firestore:"price"`
	Quantity          int      `json:"quantity" firestore:"quantity"`
	Tags              []string `json:"tags" firestore:"tags"`
	Materials         []string `json:"materials" firestore:"materials"`
	ShippingProfileID int64    `json:"shipping_profile_id" firestore:"shippingProfileId"`
	ShopSectionID     int64    `json:"shop_section_id,omitempty" firestore:"shopSectionId,omitempty"`
	ImageURLs         []string `json:"image_urls" firestore:"imageUrls"`
}

// QueueItem is a pending product creation, distinct from a synced listing.
// Items drain in Position order; retrying a failed item moves it back to
// pending at the front of the queue.
type QueueItem struct {
	ID            string       `json:"id" firestore:"id"`
	StoreID       string       `json:"store_id" firestore:"storeId"`
	OwnerID       string       `json:"owner_id" firestore:"ownerId"`
	Draft         ProductDraft `json:"draft" firestore:"draft"`
	Status        string       `json:"status" firestore:"status"`
	Position      int64        `json:"position" firestore:"position"`
	EtsyListingID int64        `json:"etsy_listing_id,omitempty" firestore:"etsyListingId,omitempty"`
	Error         string       `json:"error,omitempty" firestore:"error,omitempty"`
	CreatedAt     time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time    `json:"updated_at" firestore:"updatedAt"`
}
