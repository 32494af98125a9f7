package entity

import (
	"time"
)

// Store is a connected Etsy seller account. One per user; the OAuth
// handshake happens elsewhere, we only hold the resulting credentials.
type Store struct {
	ID          string    `json:"id" firestore:"id"`
	OwnerID     string    `json:"owner_id" firestore:"ownerId"`
	ShopID      int64     `json:"shop_id" firestore:"shopId"`
	ShopName    string    `json:"shop_name" firestore:"shopName"`
	APIKey      string    `json:"-" firestore:"apiKey"`
	AccessToken string    `json:"-" firestore:"accessToken"`
	Active      bool      `json:"active" firestore:"active"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// HasCredentials reports whether the store can talk to the Etsy API.
func (s *Store) HasCredentials() bool {
	return s.APIKey != "" && s.AccessToken != ""
}
