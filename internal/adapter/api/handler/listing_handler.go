package handler

import (
	"strconv"

	"etsysync/internal/usecase"
	"etsysync/pkg/errors"
	"etsysync/pkg/response"
	"etsysync/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	ownerID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListListings(
		c.Request().Context(),
		ownerID,
		c.Param("id"),
		c.QueryParam("state"),
		params.PageSize,
		params.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	listingID, err := strconv.ParseInt(c.Param("listingId"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid listing id", err))
	}

	listing, err := h.listingUseCase.GetListing(c.Request().Context(), ownerID, c.Param("id"), listingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}
