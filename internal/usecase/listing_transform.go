package usecase

import (
	"strconv"
	"time"

	"etsysync/internal/domain/entity"
	"etsysync/internal/infrastructure/etsy"
)

// transformListing normalizes one raw Etsy record into its storage shape.
// It never fails: malformed prices coerce to 0 and missing list fields
// become empty lists. Optional image sub-fields are carried only when the
// source provides them, so the stored document stays sparse.
func transformListing(raw etsy.Listing, now time.Time) *entity.StoredListing {
	price, err := strconv.ParseFloat(raw.Price, 64)
	if err != nil {
		price = 0
	}

	listing := &entity.StoredListing{
		ListingID:    raw.ListingID,
		Title:        raw.Title,
		Description:  raw.Description,
		Price:        price,
		CurrencyCode: raw.CurrencyCode,
		State:        raw.State,
		Quantity:     raw.Quantity,
		Views:        raw.Views,
		NumFavorers:  raw.NumFavorers,
		Tags:         emptyIfNil(raw.Tags),
		Materials:    emptyIfNil(raw.Materials),
		CategoryPath: emptyIfNil(raw.CategoryPath),
		Images:       transformImages(raw.Images),
		CreatedAt:    time.Unix(raw.CreationTsz, 0),
		ModifiedAt:   time.Unix(raw.LastModifiedTsz, 0),
		SyncedAt:     now,
	}

	// Processing range only when both bounds are present.
	if raw.ProcessingMin != nil && raw.ProcessingMax != nil {
		listing.ProcessingMin = raw.ProcessingMin
		listing.ProcessingMax = raw.ProcessingMax
	}

	return listing
}

func transformImages(raw []etsy.ListingImage) []entity.ListingImage {
	images := make([]entity.ListingImage, len(raw))
	for i, img := range raw {
		images[i] = entity.ListingImage{
			ImageID:      img.ListingImageID,
			Rank:         img.Rank,
			URL75x75:     img.URL75x75,
			URL170x135:   img.URL170x135,
			URL570xN:     img.URL570xN,
			URLFullxFull: img.URLFullxFull,
			AltText:      img.AltText,
			Red:          img.Red,
			Green:        img.Green,
			Blue:         img.Blue,
		}
	}
	return images
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
