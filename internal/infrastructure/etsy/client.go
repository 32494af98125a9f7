package etsy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"etsysync/pkg/logger"
)

const defaultBaseURL = "https://openapi.etsy.com/v3/application"

// ClientOptions tunes the REST client. Zero values fall back to the
// defaults the dashboard ships with.
type ClientOptions struct {
	BaseURL        string
	PageSize       int
	PageDelay      time.Duration
	RequestTimeout time.Duration
	HTTPClient     *http.Client
}

// Client talks to the Etsy v3 API. All calls go through the request queue
// and carry an explicit deadline so a hung request cannot stall a sync
// indefinitely.
type Client struct {
	httpClient *http.Client
	queue      RequestQueue
	baseURL    string
	pageSize   int
	pageDelay  time.Duration
	timeout    time.Duration
}

func NewClient(queue RequestQueue, opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	if opts.PageDelay <= 0 {
		opts.PageDelay = 200 * time.Millisecond
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Client{
		httpClient: opts.HTTPClient,
		queue:      queue,
		baseURL:    opts.BaseURL,
		pageSize:   opts.PageSize,
		pageDelay:  opts.PageDelay,
		timeout:    opts.RequestTimeout,
	}
}

// GetShopListings fetches one page of listings.
func (c *Client) GetShopListings(ctx context.Context, creds Credentials, shopID int64, state string, limit, offset int) ([]Listing, int, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	if state != "" {
		params.Set("state", state)
	}

	path := fmt.Sprintf("/shops/%d/listings?%s", shopID, params.Encode())

	var page listingsResponse
	if err := c.get(ctx, creds, path, &page); err != nil {
		return nil, 0, err
	}

	return page.Results, page.Count, nil
}

// GetAllListings walks the listings endpoint at increasing offsets until an
// empty page comes back and returns the concatenation. Any page failure
// aborts the whole fetch; there is no partial-result return.
func (c *Client) GetAllListings(ctx context.Context, creds Credentials, shopID int64) ([]Listing, error) {
	var all []Listing
	offset := 0

	for {
		results, _, err := c.GetShopListings(ctx, creds, shopID, "", c.pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch listings at offset %d: %w", offset, err)
		}
		if len(results) == 0 {
			break
		}

		all = append(all, results...)
		offset += c.pageSize

		// Spacing between pages, independent of the queue's own pacing.
		select {
		case <-time.After(c.pageDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	logger.Debug("Fetched %d listings for shop %d", len(all), shopID)
	return all, nil
}

// CreateListing publishes a draft and returns the new listing id.
func (c *Client) CreateListing(ctx context.Context, creds Credentials, shopID int64, draft ListingDraft) (int64, error) {
	path := fmt.Sprintf("/shops/%d/listings", shopID)

	var created createListingResponse
	if err := c.post(ctx, creds, path, draft, &created); err != nil {
		return 0, err
	}

	return created.ListingID, nil
}

// UploadListingImage attaches an image by URL to an existing listing.
func (c *Client) UploadListingImage(ctx context.Context, creds Credentials, shopID, listingID int64, imageURL string) error {
	path := fmt.Sprintf("/shops/%d/listings/%d/images", shopID, listingID)
	payload := map[string]string{"url": imageURL}

	return c.post(ctx, creds, path, payload, nil)
}

func (c *Client) GetShippingProfiles(ctx context.Context, creds Credentials, shopID int64) ([]ShippingProfile, error) {
	path := fmt.Sprintf("/shops/%d/shipping-profiles", shopID)

	var resp shippingProfilesResponse
	if err := c.get(ctx, creds, path, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

func (c *Client) GetShopSections(ctx context.Context, creds Credentials, shopID int64) ([]ShopSection, error) {
	path := fmt.Sprintf("/shops/%d/sections", shopID)

	var resp shopSectionsResponse
	if err := c.get(ctx, creds, path, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

func (c *Client) get(ctx context.Context, creds Credentials, path string, out interface{}) error {
	return c.do(ctx, creds, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, creds Credentials, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, creds, http.MethodPost, path, payload, out)
}

func (c *Client) do(ctx context.Context, creds Credentials, method, path string, body []byte, out interface{}) error {
	return c.queue.Do(ctx, func(ctx context.Context) error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
		if err != nil {
			return err
		}
		req.Header.Set("x-api-key", creds.APIKey)
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return ErrRateLimited
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return fmt.Errorf("etsy: %s %s returned %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(detail))
		}

		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	})
}
