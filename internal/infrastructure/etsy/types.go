package etsy

// Credentials identify one store against the Etsy API. The OAuth handshake
// lives outside this service; we only carry the resulting token.
type Credentials struct {
	APIKey      string
	AccessToken string
}

// Listing is the raw record shape returned by the shop listings endpoint.
// Price arrives as a string and timestamps as epoch seconds; the transformer
// normalizes both.
type Listing struct {
	ListingID       int64          `json:"listing_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	State           string         `json:"state"`
	Quantity        int            `json:"quantity"`
	Price           string         `json:"price"`
	CurrencyCode    string         `json:"currency_code"`
	Views           int            `json:"views"`
	NumFavorers     int            `json:"num_favorers"`
	Tags            []string       `json:"tags"`
	Materials       []string       `json:"materials"`
	CategoryPath    []string       `json:"category_path"`
	CreationTsz     int64          `json:"creation_tsz"`
	LastModifiedTsz int64          `json:"last_modified_tsz"`
	ProcessingMin   *int           `json:"processing_min"`
	ProcessingMax   *int           `json:"processing_max"`
	Images          []ListingImage `json:"images"`
}

// ListingImage carries per-resolution URLs plus optional alt text and
// dominant color channels.
type ListingImage struct {
	ListingImageID int64   `json:"listing_image_id"`
	Rank           int     `json:"rank"`
	URL75x75       string  `json:"url_75x75"`
	URL170x135     string  `json:"url_170x135"`
	URL570xN       string  `json:"url_570xN"`
	URLFullxFull   string  `json:"url_fullxfull"`
	AltText        *string `json:"alt_text"`
	Red            *int    `json:"red"`
	Green          *int    `json:"green"`
	Blue           *int    `json:"blue"`
}

// ListingDraft is the payload for creating a new listing.
type ListingDraft struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	Quantity          int      `json:"quantity"`
	Tags              []string `json:"tags,omitempty"`
	Materials         []string `json:"materials,omitempty"`
	ShippingProfileID int64    `json:"shipping_profile_id"`
	ShopSectionID     int64    `json:"shop_section_id,omitempty"`
	WhoMade           string   `json:"who_made"`
	WhenMade          string   `json:"when_made"`
	TaxonomyID        int64    `json:"taxonomy_id,omitempty"`
}

// ShippingProfile is a shop shipping template.
type ShippingProfile struct {
	ShippingProfileID int64  `json:"shipping_profile_id"`
	Title             string `json:"title"`
	MinProcessingDays int    `json:"min_processing_days"`
	MaxProcessingDays int    `json:"max_processing_days"`
	OriginCountryISO  string `json:"origin_country_iso"`
}

// ShopSection is one section of a shop's storefront.
type ShopSection struct {
	ShopSectionID      int64  `json:"shop_section_id"`
	Title              string `json:"title"`
	ActiveListingCount int    `json:"active_listing_count"`
}

type listingsResponse struct {
	Count   int       `json:"count"`
	Results []Listing `json:"results"`
}

type shippingProfilesResponse struct {
	Count   int               `json:"count"`
	Results []ShippingProfile `json:"results"`
}

type shopSectionsResponse struct {
	Count   int           `json:"count"`
	Results []ShopSection `json:"results"`
}

type createListingResponse struct {
	ListingID int64 `json:"listing_id"`
}
