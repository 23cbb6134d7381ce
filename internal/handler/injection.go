package handler

import (
	"net/http"
	"strconv"

	"livery-points/internal/model"

	"github.com/gin-gonic/gin"
)

// ExecuteInjection
// @Summary Execute a livery injection
// @Description Spends the configured point cost to inject a livery into the user's game account
// @Tags injections
// @Accept json
// @Produce json
// @Param injection body model.InjectionRequest true "Injection request"
// @Success 200 {object} model.InjectionResponse "Completed (successful or failed injection)"
// @Failure 400 {object} model.ErrorResponse "Insufficient points or no credential"
// @Failure 404 {object} model.ErrorResponse "User or livery not found"
// @Router /injections [post]
func (h *Handler) ExecuteInjection(c *gin.Context) {
	var req model.InjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	result, err := h.injectionService.Execute(c.Request.Context(), req.UserID, req.LiveryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := model.InjectionResponse{
		LiveryID:        result.LiveryID,
		LiveryName:      result.LiveryName,
		NewBalance:      result.NewBalance,
		ExecutionTimeMs: result.LatencyMs,
	}
	if result.Success {
		resp.Status = "success"
		resp.PointsDeducted = result.Cost
	} else {
		resp.Status = "failed"
		resp.Error = result.ErrorMessage
	}
	c.JSON(http.StatusOK, resp)
}

// GetInjectionHistory
// @Summary Get a user's injection history
// @Description Returns the user's most recent injection attempts, newest first
// @Tags injections
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(20) maximum(100)
// @Success 200 {array} model.InjectionAttempt
// @Router /users/{id}/injections [get]
func (h *Handler) GetInjectionHistory(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.handleError(c, model.ErrUserNotFound)
		return
	}

	// Malformed or non-positive limits fall back to the default rather than
	// reaching the query as LIMIT 0 or a negative value.
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	attempts, err := h.injectionService.History(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempts)
}

// SetInjectionCost
// @Summary Override the per-injection point cost
// @Description Admin operation; applies to all subsequent injections until changed
// @Tags injections
// @Accept json
// @Param cost body model.CostRequest true "New cost and acting admin"
// @Success 204 "Stored"
// @Failure 400 {object} model.ErrorResponse "Cost must be positive"
// @Router /settings/injection-cost [put]
func (h *Handler) SetInjectionCost(c *gin.Context) {
	var req model.CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if err := h.injectionService.SetCost(c.Request.Context(), req.Amount, req.AdminID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
