package entity

import (
	"time"
)

const (
	SyncStatusPending    = "pending"
	SyncStatusInProgress = "in_progress"
	SyncStatusCompleted  = "completed"
	SyncStatusFailed     = "failed"
)

// SyncStatus is the single per-store sync document, overwritten on every
// run. SyncedListings + FailedListings never exceeds TotalListings once
// TotalListings is known.
type SyncStatus struct {
	StoreID         string    `json:"store_id" firestore:"storeId"`
	OwnerID         string    `json:"owner_id" firestore:"ownerId"`
	Status          string    `json:"status" firestore:"status"`
	TotalListings   int       `json:"total_listings" firestore:"totalListings"`
	SyncedListings  int       `json:"synced_listings" firestore:"syncedListings"`
	FailedListings  int       `json:"failed_listings" firestore:"failedListings"`
	LastSync        time.Time `json:"last_sync" firestore:"lastSync"`
	NextSync        time.Time `json:"next_sync" firestore:"nextSync"`
	DurationSeconds float64   `json:"duration_seconds,omitempty" firestore:"durationSeconds,omitempty"`
	Error           string    `json:"error,omitempty" firestore:"error,omitempty"`

	// Lease guarding against concurrent orchestrations for the same store.
	LockedUntil time.Time `json:"-" firestore:"lockedUntil"`
}
