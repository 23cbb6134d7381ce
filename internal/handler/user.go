package handler

import (
	"net/http"
	"strconv"

	"livery-points/internal/model"

	"github.com/gin-gonic/gin"
)

func userIDParam(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return userID, true
}

// RegisterUser
// @Summary Register a user
// @Description Creates a zero-balance user row on first contact; idempotent
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.RegisterRequest true "User identity"
// @Success 200 {object} model.User
// @Router /users [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	user, err := h.pointsService.Register(c.Request.Context(), req.UserID, req.Username, req.FirstName, req.LastName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers
// @Summary List all users
// @Description Admin view of every registered user, newest first
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.pointsService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetBalance
// @Summary Get user balance
// @Description Returns the current points balance for a user; unknown users read as 0
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.BalanceResponse
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	resp, err := h.pointsService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddPoints
// @Summary Credit points to a user
// @Description Admin operation crediting points after an off-band payment
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param amount body model.AmountRequest true "Amount to credit"
// @Success 200 {object} model.BalanceResponse
// @Failure 400 {object} model.ErrorResponse "Invalid amount"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/points/add [post]
func (h *Handler) AddPoints(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req model.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if err := h.pointsService.AddPoints(c.Request.Context(), userID, req.Amount); err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.pointsService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetPoints
// @Summary Override a user's balance
// @Description Admin operation setting the balance to an exact value
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param amount body model.AmountRequest true "New balance"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/points [put]
func (h *Handler) SetPoints(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req model.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if err := h.pointsService.SetPoints(c.Request.Context(), userID, req.Amount); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.BalanceResponse{UserID: userID, Points: req.Amount})
}

// SetCredential
// @Summary Store a user's PlayFab token
// @Description Admin operation storing the opaque game-account credential
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param credential body model.CredentialRequest true "PlayFab session token"
// @Success 204 "Stored"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/credential [put]
func (h *Handler) SetCredential(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req model.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if err := h.pointsService.SetCredential(c.Request.Context(), userID, req.PlayfabToken); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAdmin
// @Summary Set a user's admin flag
// @Tags users
// @Accept json
// @Param id path int true "User ID"
// @Param flag body model.AdminFlagRequest true "Admin flag"
// @Success 204 "Updated"
// @Router /users/{id}/admin [put]
func (h *Handler) SetAdmin(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req model.AdminFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAdmin == nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if err := h.pointsService.SetAdmin(c.Request.Context(), userID, *req.IsAdmin); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUserStats
// @Summary Get a user's points and injection stats
// @Description Balance plus the count of today's successful injections
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserStatsResponse
// @Router /users/{id}/stats [get]
func (h *Handler) GetUserStats(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	stats, err := h.injectionService.Stats(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
