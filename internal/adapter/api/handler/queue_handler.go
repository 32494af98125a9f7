package handler

import (
	"etsysync/internal/domain/entity"
	"etsysync/internal/usecase"
	"etsysync/pkg/response"

	"github.com/labstack/echo/v4"
)

type QueueHandler struct {
	queueUseCase *usecase.QueueUseCase
}

func NewQueueHandler(queueUseCase *usecase.QueueUseCase) *QueueHandler {
	return &QueueHandler{
		queueUseCase: queueUseCase,
	}
}

type enqueueProductRequest struct {
	StoreID           string   `json:"store_id" validate:"required"`
	Title             string   `json:"title" validate:"required"`
	Description       string   `json:"description"`
	Price             float64  `json:"price" validate:"required,gt=0"`
	Quantity          int      `json:"quantity" validate:"required,gt=0"`
	Tags              []string `json:"tags" validate:"max=13"`
	Materials         []string `json:"materials"`
	ShippingProfileID int64    `json:"shipping_profile_id" validate:"required"`
	ShopSectionID     int64    `json:"shop_section_id"`
	ImageURLs         []string `json:"image_urls" validate:"dive,url"`
}

func (h *QueueHandler) Enqueue(c echo.Context) error {
	var req enqueueProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	item, err := h.queueUseCase.Enqueue(
		c.Request().Context(),
		ownerID,
		usecase.EnqueueProductInput{
			StoreID: req.StoreID,
			Draft: entity.ProductDraft{
				Title:             req.Title,
				Description:       req.Description,
				Price:             req.Price,
				Quantity:          req.Quantity,
				Tags:              req.Tags,
				Materials:         req.Materials,
				ShippingProfileID: req.ShippingProfileID,
				ShopSectionID:     req.ShopSectionID,
				ImageURLs:         req.ImageURLs,
			},
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *QueueHandler) ListItems(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	items, err := h.queueUseCase.List(c.Request().Context(), ownerID, c.QueryParam("store_id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *QueueHandler) RetryItem(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	item, err := h.queueUseCase.Retry(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *QueueHandler) RemoveItem(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	if err := h.queueUseCase.Remove(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "removed"})
}

func (h *QueueHandler) ClearQueue(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	if err := h.queueUseCase.Clear(c.Request().Context(), ownerID, c.QueryParam("store_id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "cleared"})
}

func (h *QueueHandler) ProcessNext(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	item, err := h.queueUseCase.ProcessNext(c.Request().Context(), ownerID, c.QueryParam("store_id"))
	if err != nil {
		return response.Error(c, err)
	}
	if item == nil {
		return response.Success(c, map[string]string{"status": "queue empty"})
	}

	return response.Success(c, item)
}
