package usecase

import (
	"context"

	"etsysync/internal/infrastructure/etsy"
)

type EtsyClient interface {
	GetShopListings(ctx context.Context, creds etsy.Credentials, shopID int64, state string, limit, offset int) ([]etsy.Listing, int, error)
	GetAllListings(ctx context.Context, creds etsy.Credentials, shopID int64) ([]etsy.Listing, error)
	CreateListing(ctx context.Context, creds etsy.Credentials, shopID int64, draft etsy.ListingDraft) (int64, error)
	UploadListingImage(ctx context.Context, creds etsy.Credentials, shopID, listingID int64, imageURL string) error
	GetShippingProfiles(ctx context.Context, creds etsy.Credentials, shopID int64) ([]etsy.ShippingProfile, error)
	GetShopSections(ctx context.Context, creds etsy.Credentials, shopID int64) ([]etsy.ShopSection, error)
}
