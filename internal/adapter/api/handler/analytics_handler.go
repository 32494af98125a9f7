package handler

import (
	"etsysync/internal/usecase"
	"etsysync/pkg/response"

	"github.com/labstack/echo/v4"
)

type AnalyticsHandler struct {
	analyticsUseCase *usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
	}
}

func (h *AnalyticsHandler) GetStoreAnalytics(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	analytics, err := h.analyticsUseCase.GetStoreAnalytics(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, analytics)
}
