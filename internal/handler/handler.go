package handler

import (
	"errors"
	"net/http"

	"livery-points/internal/model"
	"livery-points/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	injectionService service.InjectionService
	pointsService    service.PointsService
	topupService     service.TopupService
	catalogService   service.CatalogService
	logger           zerolog.Logger
}

func NewHandler(
	injectionService service.InjectionService,
	pointsService service.PointsService,
	topupService service.TopupService,
	catalogService service.CatalogService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		injectionService: injectionService,
		pointsService:    pointsService,
		topupService:     topupService,
		catalogService:   catalogService,
		logger:           logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		cors.Default(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	injections := v1.Group("/injections")
	injections.POST("", h.ExecuteInjection)

	users := v1.Group("/users")
	users.POST("", h.RegisterUser)
	users.GET("", h.ListUsers)
	users.GET("/:id/balance", h.GetBalance)
	users.GET("/:id/stats", h.GetUserStats)
	users.GET("/:id/injections", h.GetInjectionHistory)
	users.POST("/:id/points/add", h.AddPoints)
	users.PUT("/:id/points", h.SetPoints)
	users.PUT("/:id/credential", h.SetCredential)
	users.PUT("/:id/admin", h.SetAdmin)

	catalog := v1.Group("/catalog")
	catalog.GET("", h.ListCatalog)
	catalog.GET("/:livery_id", h.GetLivery)
	catalog.POST("/refresh", h.RefreshCatalog)

	products := v1.Group("/products")
	products.GET("", h.ListProducts)
	products.POST("", h.CreateProduct)
	products.PATCH("/:id", h.UpdateProduct)

	settings := v1.Group("/settings")
	settings.PUT("/injection-cost", h.SetInjectionCost)

	topups := v1.Group("/topups")
	topups.POST("", h.CreateTopup)
	topups.GET("/pending", h.ListPendingTopups)
	topups.GET("/:uuid", h.GetTopup)
	topups.POST("/:uuid/confirm", h.ConfirmTopup)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientPoints):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_POINTS"
	case errors.Is(err, model.ErrNoCredential):
		status = http.StatusBadRequest
		code = "NO_CREDENTIAL"
		resp.Details = "No PlayFab token configured; contact an admin to set up the account"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidTransactionID):
		status = http.StatusBadRequest
		code = "INVALID_TRANSACTION_ID"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrItemNotFound):
		status = http.StatusNotFound
		code = "LIVERY_NOT_FOUND"
	case errors.Is(err, model.ErrProductNotFound):
		status = http.StatusNotFound
		code = "PRODUCT_NOT_FOUND"
	case errors.Is(err, model.ErrTransactionNotFound):
		status = http.StatusNotFound
		code = "TRANSACTION_NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
