package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"livery-points/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_ConfirmTopup_Success(t *testing.T) {
	h, _, _, topupSvc, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/topups/:uuid/confirm", h.ConfirmTopup)

	topupSvc.On("Confirm", mock.Anything, "550e8400-e29b-41d4-a716-446655440000", int64(99)).Return(true, nil)

	body, _ := json.Marshal(model.ConfirmRequest{AdminID: 99})
	req, _ := http.NewRequest(http.MethodPost, "/topups/550e8400-e29b-41d4-a716-446655440000/confirm", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.ConfirmResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.Confirmed)
}

func TestHandler_ConfirmTopup_AlreadyConfirmed(t *testing.T) {
	h, _, _, topupSvc, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/topups/:uuid/confirm", h.ConfirmTopup)

	topupSvc.On("Confirm", mock.Anything, "550e8400-e29b-41d4-a716-446655440001", int64(99)).Return(false, nil)

	body, _ := json.Marshal(model.ConfirmRequest{AdminID: 99})
	req, _ := http.NewRequest(http.MethodPost, "/topups/550e8400-e29b-41d4-a716-446655440001/confirm", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp model.ConfirmResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.False(t, resp.Confirmed)
}

func TestHandler_ConfirmTopup_InvalidUUID(t *testing.T) {
	h, _, _, topupSvc, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/topups/:uuid/confirm", h.ConfirmTopup)

	topupSvc.On("Confirm", mock.Anything, "not-a-uuid", int64(99)).Return(false, model.ErrInvalidTransactionID)

	body, _ := json.Marshal(model.ConfirmRequest{AdminID: 99})
	req, _ := http.NewRequest(http.MethodPost, "/topups/not-a-uuid/confirm", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_TRANSACTION_ID", resp.Code)
}

func TestHandler_CreateTopup_ProductNotFound(t *testing.T) {
	h, _, _, topupSvc, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/topups", h.CreateTopup)

	topupSvc.On("CreatePending", mock.Anything, int64(1), int64(42)).Return(nil, model.ErrProductNotFound)

	body, _ := json.Marshal(model.TopupCreateRequest{UserID: 1, ProductID: 42})
	req, _ := http.NewRequest(http.MethodPost, "/topups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "PRODUCT_NOT_FOUND", resp.Code)
}

func TestHandler_CreateTopup_Created(t *testing.T) {
	h, _, _, topupSvc, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/topups", h.CreateTopup)

	topupSvc.On("CreatePending", mock.Anything, int64(1), int64(2)).Return(&model.Transaction{
		ID:         10,
		TelegramID: 1,
		ProductID:  2,
		Points:     5000,
		AmountIDR:  50000,
		Status:     model.TopupPending,
	}, nil)

	body, _ := json.Marshal(model.TopupCreateRequest{UserID: 1, ProductID: 2})
	req, _ := http.NewRequest(http.MethodPost, "/topups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.Transaction
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(5000), resp.Points)
	assert.Equal(t, model.TopupPending, resp.Status)
}
