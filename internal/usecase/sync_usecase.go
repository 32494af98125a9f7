package usecase

import (
	"context"
	"time"

	"etsysync/internal/domain/entity"
	"etsysync/internal/domain/repository"
	"etsysync/internal/infrastructure/etsy"
	"etsysync/pkg/errors"
	"etsysync/pkg/logger"
)

// Status counts are flushed after every progressBatchSize records so a
// polling UI sees live progress.
const progressBatchSize = 10

type SyncUseCase struct {
	storeRepo     repository.StoreRepository
	listingRepo   repository.ListingRepository
	statusRepo    repository.SyncStatusRepository
	learningRepo  repository.LearningRepository
	analyticsUC   *AnalyticsUseCase
	etsyClient    EtsyClient
	syncInterval  time.Duration
	leaseDuration time.Duration
}

func NewSyncUseCase(
	storeRepo repository.StoreRepository,
	listingRepo repository.ListingRepository,
	statusRepo repository.SyncStatusRepository,
	learningRepo repository.LearningRepository,
	analyticsUC *AnalyticsUseCase,
	etsyClient EtsyClient,
	syncInterval time.Duration,
) *SyncUseCase {
	if syncInterval <= 0 {
		syncInterval = 24 * time.Hour
	}

	return &SyncUseCase{
		storeRepo:     storeRepo,
		listingRepo:   listingRepo,
		statusRepo:    statusRepo,
		learningRepo:  learningRepo,
		analyticsUC:   analyticsUC,
		etsyClient:    etsyClient,
		syncInterval:  syncInterval,
		leaseDuration: time.Hour,
	}
}

// SyncStore runs the full fetch-transform-persist-aggregate pass for one
// store. Per-record failures are counted, never fatal; only credential or
// fetch-stage errors mark the run failed.
func (uc *SyncUseCase) SyncStore(ctx context.Context, storeID string) (*entity.SyncStatus, error) {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := uc.statusRepo.AcquireLease(ctx, storeID, time.Now().Add(uc.leaseDuration)); err != nil {
		return nil, err
	}
	defer func() {
		if err := uc.statusRepo.ReleaseLease(context.Background(), storeID); err != nil {
			logger.LogSyncError(storeID, "release_lease", err)
		}
	}()

	start := time.Now()

	status := &entity.SyncStatus{
		StoreID: storeID,
		OwnerID: store.OwnerID,
		Status:  entity.SyncStatusInProgress,
	}
	if prior, perr := uc.statusRepo.Get(ctx, storeID); perr == nil && prior != nil {
		status.LastSync = prior.LastSync
		status.NextSync = prior.NextSync
		status.LockedUntil = prior.LockedUntil
	}

	if !store.HasCredentials() {
		return nil, uc.failSync(ctx, status, start, errors.BadRequest("Store credentials are missing", nil))
	}

	if err := uc.statusRepo.Set(ctx, status); err != nil {
		return nil, err
	}

	creds := etsy.Credentials{APIKey: store.APIKey, AccessToken: store.AccessToken}
	rawListings, err := uc.etsyClient.GetAllListings(ctx, creds, store.ShopID)
	if err != nil {
		return nil, uc.failSync(ctx, status, start, errors.Internal("Failed to fetch listings from Etsy", err))
	}

	status.TotalListings = len(rawListings)
	if err := uc.statusRepo.Set(ctx, status); err != nil {
		logger.LogSyncError(storeID, "progress", err)
	}

	now := time.Now()
	for i, raw := range rawListings {
		listing := transformListing(raw, now)

		if err := uc.listingRepo.Save(ctx, storeID, listing); err != nil {
			status.FailedListings++
			logger.LogSyncError(storeID, "persist", err)
		} else {
			status.SyncedListings++
			uc.feedLearningStore(ctx, storeID, listing)
		}

		if (i+1)%progressBatchSize == 0 {
			if err := uc.statusRepo.Set(ctx, status); err != nil {
				logger.LogSyncError(storeID, "progress", err)
			}
		}
	}

	if _, err := uc.analyticsUC.Recompute(ctx, storeID); err != nil {
		logger.LogSyncError(storeID, "analytics", err)
	}

	finished := time.Now()
	status.Status = entity.SyncStatusCompleted
	status.Error = ""
	status.LastSync = finished
	status.NextSync = finished.Add(uc.syncInterval)
	status.DurationSeconds = finished.Sub(start).Seconds()

	if err := uc.statusRepo.Set(ctx, status); err != nil {
		return nil, err
	}

	logger.Info("Sync completed for store %s: %d synced, %d failed of %d in %.1fs",
		storeID, status.SyncedListings, status.FailedListings, status.TotalListings, status.DurationSeconds)

	return status, nil
}

// failSync records a fatal failure verbatim and hands the error back to the
// caller.
func (uc *SyncUseCase) failSync(ctx context.Context, status *entity.SyncStatus, start time.Time, cause error) error {
	status.Status = entity.SyncStatusFailed
	status.Error = cause.Error()
	status.DurationSeconds = time.Since(start).Seconds()

	if err := uc.statusRepo.Set(ctx, status); err != nil {
		logger.LogSyncError(status.StoreID, "record_failure", err)
	}

	return cause
}

// feedLearningStore pushes title/tag data into the learning corpus.
// Fire-and-forget: failures are logged but never counted against the sync.
func (uc *SyncUseCase) feedLearningStore(ctx context.Context, storeID string, listing *entity.StoredListing) {
	sample := &entity.TitleTagSample{
		ListingID:   listing.ListingID,
		StoreID:     storeID,
		Title:       listing.Title,
		Tags:        listing.Tags,
		Price:       listing.Price,
		Views:       listing.Views,
		NumFavorers: listing.NumFavorers,
		CapturedAt:  listing.SyncedAt,
	}
	if err := uc.learningRepo.SaveSample(ctx, sample); err != nil {
		logger.LogSyncError(storeID, "learning", err)
	}
}

// SyncStoreForOwner is the manual-trigger path: the caller must own the
// store.
func (uc *SyncUseCase) SyncStoreForOwner(ctx context.Context, ownerID, storeID string) (*entity.SyncStatus, error) {
	if _, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID); err != nil {
		return nil, err
	}
	return uc.SyncStore(ctx, storeID)
}

// RebuildMirror refetches the full listing set and rewrites the local
// mirror through chunked batch commits, without per-record bookkeeping.
// Chunks committed before a failure stay committed.
func (uc *SyncUseCase) RebuildMirror(ctx context.Context, ownerID, storeID string) (int, error) {
	store, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID)
	if err != nil {
		return 0, err
	}
	if !store.HasCredentials() {
		return 0, errors.BadRequest("Store credentials are missing", nil)
	}

	creds := etsy.Credentials{APIKey: store.APIKey, AccessToken: store.AccessToken}
	rawListings, err := uc.etsyClient.GetAllListings(ctx, creds, store.ShopID)
	if err != nil {
		return 0, errors.Internal("Failed to fetch listings from Etsy", err)
	}

	now := time.Now()
	listings := make([]*entity.StoredListing, len(rawListings))
	for i, raw := range rawListings {
		listings[i] = transformListing(raw, now)
	}

	if err := uc.listingRepo.SaveAll(ctx, storeID, listings); err != nil {
		return 0, err
	}

	if _, err := uc.analyticsUC.Recompute(ctx, storeID); err != nil {
		logger.LogSyncError(storeID, "analytics", err)
	}

	return len(listings), nil
}

// GetSyncStatus returns the per-store status document for polling UIs.
func (uc *SyncUseCase) GetSyncStatus(ctx context.Context, ownerID, storeID string) (*entity.SyncStatus, error) {
	if _, err := requireOwnedStore(ctx, uc.storeRepo, ownerID, storeID); err != nil {
		return nil, err
	}

	status, err := uc.statusRepo.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, errors.NotFound("Sync status", nil)
	}

	return status, nil
}

// needsSync reports whether a store is due: no status record yet, or the
// scheduled next sync time has elapsed.
func needsSync(status *entity.SyncStatus, now time.Time) bool {
	if status == nil {
		return true
	}
	return !now.Before(status.NextSync)
}

// StoreSyncResult is one entry of an auto-sync sweep report.
type StoreSyncResult struct {
	StoreID  string `json:"store_id"`
	ShopName string `json:"shop_name"`
	Synced   bool   `json:"synced"`
	Skipped  bool   `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

// SyncAllStores sweeps every active store and syncs the ones that are due.
// One store's failure is recorded in its result entry and never stops the
// sweep.
func (uc *SyncUseCase) SyncAllStores(ctx context.Context) ([]StoreSyncResult, error) {
	stores, err := uc.storeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]StoreSyncResult, 0, len(stores))
	for _, store := range stores {
		result := StoreSyncResult{StoreID: store.ID, ShopName: store.ShopName}

		status, err := uc.statusRepo.Get(ctx, store.ID)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		if !needsSync(status, time.Now()) {
			result.Skipped = true
			results = append(results, result)
			continue
		}

		if _, err := uc.SyncStore(ctx, store.ID); err != nil {
			result.Error = err.Error()
		} else {
			result.Synced = true
		}
		results = append(results, result)
	}

	return results, nil
}
