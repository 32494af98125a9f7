package entity

import (
	"time"
)

// TitleTagSample is one record of the title/tag learning corpus, fed
// opportunistically during sync for the AI-assist feature. Writes are
// fire-and-forget; losing one never affects sync bookkeeping.
type TitleTagSample struct {
	ListingID   int64     `json:"listing_id" firestore:"listingId"`
	StoreID     string    `json:"store_id" firestore:"storeId"`
	Title       string    `json:"title" firestore:"title"`
	Tags        []string  `json:"tags" firestore:"tags"`
	Price       float64   `json:"price" firestore:"price"`
	Views       int       `json:"views" firestore:"views"`
	NumFavorers int       `json:"num_favorers" firestore:"numFavorers"`
	CapturedAt  time.Time `json:"captured_at" firestore:"capturedAt"`
}
