package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"etsysync/internal/domain/entity"
	"etsysync/internal/infrastructure/etsy"
	"etsysync/pkg/errors"
)

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	repo := &fakeStoreRepo{stores: make(map[string]*entity.Store)}
	for _, store := range stores {
		repo.stores[store.ID] = store
	}
	return repo
}

func (r *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	if store.ID == "" {
		store.ID = uuid.NewString()
	}
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	store, ok := r.stores[id]
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}
	return store, nil
}

func (r *fakeStoreRepo) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error) {
	for _, store := range r.stores {
		if store.OwnerID == ownerID {
			return store, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *fakeStoreRepo) ListActive(ctx context.Context) ([]*entity.Store, error) {
	var active []*entity.Store
	for _, store := range r.stores {
		if store.Active {
			active = append(active, store)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

func (r *fakeStoreRepo) Update(ctx context.Context, store *entity.Store) error {
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) Delete(ctx context.Context, id string) error {
	delete(r.stores, id)
	return nil
}

type fakeListingRepo struct {
	mu      sync.Mutex
	saved   map[string]map[int64]*entity.StoredListing
	failIDs map[int64]bool
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		saved:   make(map[string]map[int64]*entity.StoredListing),
		failIDs: make(map[int64]bool),
	}
}

func (r *fakeListingRepo) Save(ctx context.Context, storeID string, listing *entity.StoredListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failIDs[listing.ListingID] {
		return errors.Internal("write rejected", nil)
	}
	if r.saved[storeID] == nil {
		r.saved[storeID] = make(map[int64]*entity.StoredListing)
	}
	r.saved[storeID][listing.ListingID] = listing
	return nil
}

func (r *fakeListingRepo) SaveAll(ctx context.Context, storeID string, listings []*entity.StoredListing) error {
	for _, listing := range listings {
		if err := r.Save(ctx, storeID, listing); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, storeID string, listingID int64) (*entity.StoredListing, error) {
	listing, ok := r.saved[storeID][listingID]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (r *fakeListingRepo) List(ctx context.Context, storeID string, state string, limit, offset int) ([]*entity.StoredListing, int64, error) {
	all, _ := r.ListAll(ctx, storeID)
	var matched []*entity.StoredListing
	for _, listing := range all {
		if state == "" || listing.State == state {
			matched = append(matched, listing)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeListingRepo) ListAll(ctx context.Context, storeID string) ([]*entity.StoredListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var listings []*entity.StoredListing
	for _, listing := range r.saved[storeID] {
		listings = append(listings, listing)
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].ListingID < listings[j].ListingID })
	return listings, nil
}

type fakeStatusRepo struct {
	mu       sync.Mutex
	statuses map[string]*entity.SyncStatus
	history  []entity.SyncStatus
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{statuses: make(map[string]*entity.SyncStatus)}
}

func (r *fakeStatusRepo) Get(ctx context.Context, storeID string) (*entity.SyncStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status, ok := r.statuses[storeID]
	if !ok {
		return nil, nil
	}
	copied := *status
	return &copied, nil
}

func (r *fakeStatusRepo) Set(ctx context.Context, status *entity.SyncStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *status
	r.statuses[status.StoreID] = &copied
	r.history = append(r.history, copied)
	return nil
}

func (r *fakeStatusRepo) AcquireLease(ctx context.Context, storeID string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if status, ok := r.statuses[storeID]; ok && status.LockedUntil.After(time.Now()) {
		return errors.Conflict("Sync already in progress for this store")
	}
	status, ok := r.statuses[storeID]
	if !ok {
		status = &entity.SyncStatus{StoreID: storeID, Status: entity.SyncStatusPending}
		r.statuses[storeID] = status
	}
	status.LockedUntil = until
	return nil
}

func (r *fakeStatusRepo) ReleaseLease(ctx context.Context, storeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if status, ok := r.statuses[storeID]; ok {
		status.LockedUntil = time.Time{}
	}
	return nil
}

type fakeAnalyticsRepo struct {
	saved map[string]*entity.StoreAnalytics
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{saved: make(map[string]*entity.StoreAnalytics)}
}

func (r *fakeAnalyticsRepo) Get(ctx context.Context, storeID string) (*entity.StoreAnalytics, error) {
	analytics, ok := r.saved[storeID]
	if !ok {
		return nil, errors.NotFound("Store analytics", nil)
	}
	return analytics, nil
}

func (r *fakeAnalyticsRepo) Set(ctx context.Context, analytics *entity.StoreAnalytics) error {
	r.saved[analytics.StoreID] = analytics
	return nil
}

type fakeLearningRepo struct {
	mu      sync.Mutex
	samples []*entity.TitleTagSample
	err     error
}

func (r *fakeLearningRepo) SaveSample(ctx context.Context, sample *entity.TitleTagSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.samples = append(r.samples, sample)
	return nil
}

type fakeQueueRepo struct {
	items map[string]*entity.QueueItem
}

func newFakeQueueRepo(items ...*entity.QueueItem) *fakeQueueRepo {
	repo := &fakeQueueRepo{items: make(map[string]*entity.QueueItem)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeQueueRepo) Create(ctx context.Context, item *entity.QueueItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeQueueRepo) GetByID(ctx context.Context, id string) (*entity.QueueItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Queue item", nil)
	}
	return item, nil
}

func (r *fakeQueueRepo) List(ctx context.Context, storeID string) ([]*entity.QueueItem, error) {
	var items []*entity.QueueItem
	for _, item := range r.items {
		if item.StoreID == storeID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items, nil
}

func (r *fakeQueueRepo) NextPending(ctx context.Context, storeID string) (*entity.QueueItem, error) {
	items, _ := r.List(ctx, storeID)
	for _, item := range items {
		if item.Status == entity.QueueStatusPending {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeQueueRepo) Update(ctx context.Context, item *entity.QueueItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeQueueRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeQueueRepo) Clear(ctx context.Context, storeID string) error {
	for id, item := range r.items {
		if item.StoreID == storeID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeQueueRepo) MinPosition(ctx context.Context, storeID string) (int64, error) {
	items, _ := r.List(ctx, storeID)
	if len(items) == 0 {
		return 0, nil
	}
	return items[0].Position, nil
}

func (r *fakeQueueRepo) MaxPosition(ctx context.Context, storeID string) (int64, error) {
	items, _ := r.List(ctx, storeID)
	if len(items) == 0 {
		return 0, nil
	}
	return items[len(items)-1].Position, nil
}

type fakeEtsyClient struct {
	listings  []etsy.Listing
	fetchErr  error
	createID  int64
	createErr error
	uploaded  []string
}

func (c *fakeEtsyClient) GetShopListings(ctx context.Context, creds etsy.Credentials, shopID int64, state string, limit, offset int) ([]etsy.Listing, int, error) {
	if c.fetchErr != nil {
		return nil, 0, c.fetchErr
	}
	return c.listings, len(c.listings), nil
}

func (c *fakeEtsyClient) GetAllListings(ctx context.Context, creds etsy.Credentials, shopID int64) ([]etsy.Listing, error) {
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	return c.listings, nil
}

func (c *fakeEtsyClient) CreateListing(ctx context.Context, creds etsy.Credentials, shopID int64, draft etsy.ListingDraft) (int64, error) {
	if c.createErr != nil {
		return 0, c.createErr
	}
	return c.createID, nil
}

func (c *fakeEtsyClient) UploadListingImage(ctx context.Context, creds etsy.Credentials, shopID, listingID int64, imageURL string) error {
	c.uploaded = append(c.uploaded, imageURL)
	return nil
}

func (c *fakeEtsyClient) GetShippingProfiles(ctx context.Context, creds etsy.Credentials, shopID int64) ([]etsy.ShippingProfile, error) {
	return nil, nil
}

func (c *fakeEtsyClient) GetShopSections(ctx context.Context, creds etsy.Credentials, shopID int64) ([]etsy.ShopSection, error) {
	return nil, nil
}
