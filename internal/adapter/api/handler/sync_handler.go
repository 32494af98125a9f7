package handler

import (
	"etsysync/internal/usecase"
	"etsysync/pkg/response"

	"github.com/labstack/echo/v4"
)

type SyncHandler struct {
	syncUseCase *usecase.SyncUseCase
}

func NewSyncHandler(syncUseCase *usecase.SyncUseCase) *SyncHandler {
	return &SyncHandler{
		syncUseCase: syncUseCase,
	}
}

// TriggerSync starts a sync for one store and waits for it to finish.
// The companion GetSyncStatus endpoint serves live progress meanwhile.
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	status, err := h.syncUseCase.SyncStoreForOwner(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}

func (h *SyncHandler) GetSyncStatus(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	status, err := h.syncUseCase.GetSyncStatus(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}

func (h *SyncHandler) RebuildMirror(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	count, err := h.syncUseCase.RebuildMirror(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"listings_written": count})
}

// RunSweep is the cron entry point: sync every active store that is due.
func (h *SyncHandler) RunSweep(c echo.Context) error {
	results, err := h.syncUseCase.SyncAllStores(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}
