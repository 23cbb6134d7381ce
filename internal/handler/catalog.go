package handler

import (
	"net/http"

	"livery-points/internal/model"

	"github.com/gin-gonic/gin"
)

// ListCatalog
// @Summary List the livery catalog grouped by car
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]model.CarGroup
// @Router /catalog [get]
func (h *Handler) ListCatalog(c *gin.Context) {
	grouped, err := h.catalogService.ListGroupedByCar(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, grouped)
}

// GetLivery
// @Summary Get one catalog item
// @Tags catalog
// @Produce json
// @Param livery_id path string true "Livery ID"
// @Success 200 {object} model.Livery
// @Failure 404 {object} model.ErrorResponse "Livery not found"
// @Router /catalog/{livery_id} [get]
func (h *Handler) GetLivery(c *gin.Context) {
	item, err := h.catalogService.GetItem(c.Request.Context(), c.Param("livery_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// RefreshCatalog
// @Summary Re-ingest the remote livery feed
// @Description Upserts every item from the feed; nothing is evicted
// @Tags catalog
// @Produce json
// @Success 200 {object} model.RefreshResponse
// @Router /catalog/refresh [post]
func (h *Handler) RefreshCatalog(c *gin.Context) {
	count, err := h.catalogService.RefreshFromFeed(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.RefreshResponse{Processed: count})
}
