package handler

import (
	"net/http"
	"strconv"

	"livery-points/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateTopup
// @Summary Create a pending topup transaction
// @Description Records a purchase intent with snapshotted product points and price
// @Tags topups
// @Accept json
// @Produce json
// @Param topup body model.TopupCreateRequest true "Topup request"
// @Success 201 {object} model.Transaction
// @Failure 404 {object} model.ErrorResponse "Product not found"
// @Router /topups [post]
func (h *Handler) CreateTopup(c *gin.Context) {
	var req model.TopupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	trans, err := h.topupService.CreatePending(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trans)
}

// ConfirmTopup
// @Summary Confirm a pending topup
// @Description Settles a pending transaction, crediting the user's points exactly once
// @Tags topups
// @Accept json
// @Produce json
// @Param uuid path string true "Transaction UUID"
// @Param confirm body model.ConfirmRequest true "Confirming admin"
// @Success 200 {object} model.ConfirmResponse
// @Failure 400 {object} model.ErrorResponse "Malformed transaction id"
// @Failure 409 {object} model.ConfirmResponse "Not pending (missing or already confirmed)"
// @Router /topups/{uuid}/confirm [post]
func (h *Handler) ConfirmTopup(c *gin.Context) {
	var req model.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	confirmed, err := h.topupService.Confirm(c.Request.Context(), c.Param("uuid"), req.AdminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !confirmed {
		c.JSON(http.StatusConflict, model.ConfirmResponse{
			Confirmed: false,
			Message:   "transaction not found or already confirmed",
		})
		return
	}
	c.JSON(http.StatusOK, model.ConfirmResponse{
		Confirmed: true,
		Message:   "transaction confirmed",
	})
}

// GetTopup
// @Summary Get a topup transaction
// @Tags topups
// @Produce json
// @Param uuid path string true "Transaction UUID"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse "Malformed transaction id"
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Router /topups/{uuid} [get]
func (h *Handler) GetTopup(c *gin.Context) {
	trans, err := h.topupService.Get(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trans)
}

// ListPendingTopups
// @Summary List pending topups
// @Description Admin view of all unsettled transactions, oldest first
// @Tags topups
// @Produce json
// @Success 200 {array} model.Transaction
// @Router /topups/pending [get]
func (h *Handler) ListPendingTopups(c *gin.Context) {
	transactions, err := h.topupService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// ListProducts
// @Summary List active topup products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.topupService.ListProducts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct
// @Summary Create a topup product
// @Tags products
// @Accept json
// @Produce json
// @Param product body model.ProductCreateRequest true "Product details"
// @Success 201 {object} model.Product
// @Failure 400 {object} model.ErrorResponse "Invalid points or price"
// @Router /products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req model.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	product, err := h.topupService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct
// @Summary Update a topup product
// @Description Applies the non-nil fields; price changes never affect pending transactions
// @Tags products
// @Accept json
// @Param id path int true "Product ID"
// @Param product body model.ProductUpdate true "Fields to change"
// @Success 204 "Updated"
// @Failure 404 {object} model.ErrorResponse "Product not found"
// @Router /products/{id} [patch]
func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.handleError(c, model.ErrProductNotFound)
		return
	}

	var upd model.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	updated, err := h.topupService.UpdateProduct(c.Request.Context(), productID, upd)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !updated {
		h.handleError(c, model.ErrProductNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}
