package handler

import (
	"etsysync/internal/usecase"
	"etsysync/pkg/response"

	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewStoreHandler(storeUseCase *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{
		storeUseCase: storeUseCase,
	}
}

type connectStoreRequest struct {
	ShopID      int64  `json:"shop_id" validate:"required,gt=0"`
	ShopName    string `json:"shop_name" validate:"required"`
	APIKey      string `json:"api_key" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

func (h *StoreHandler) ConnectStore(c echo.Context) error {
	var req connectStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	store, err := h.storeUseCase.ConnectStore(
		c.Request().Context(),
		ownerID,
		usecase.ConnectStoreInput{
			ShopID:      req.ShopID,
			ShopName:    req.ShopName,
			APIKey:      req.APIKey,
			AccessToken: req.AccessToken,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, store)
}

func (h *StoreHandler) GetStore(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	store, err := h.storeUseCase.GetStore(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

type updateStoreRequest struct {
	ShopName    string `json:"shop_name"`
	APIKey      string `json:"api_key"`
	AccessToken string `json:"access_token"`
	Active      *bool  `json:"active"`
}

func (h *StoreHandler) UpdateStore(c echo.Context) error {
	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	store, err := h.storeUseCase.UpdateStore(
		c.Request().Context(),
		ownerID,
		c.Param("id"),
		usecase.UpdateStoreInput{
			ShopName:    req.ShopName,
			APIKey:      req.APIKey,
			AccessToken: req.AccessToken,
			Active:      req.Active,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

func (h *StoreHandler) DisconnectStore(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	if err := h.storeUseCase.DisconnectStore(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "disconnected"})
}

func (h *StoreHandler) GetShippingProfiles(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	profiles, err := h.storeUseCase.GetShippingProfiles(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profiles)
}

func (h *StoreHandler) GetShopSections(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	sections, err := h.storeUseCase.GetShopSections(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sections)
}
