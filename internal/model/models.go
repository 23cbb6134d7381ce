package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	TelegramID   int64     `json:"telegram_id"`
	Username     *string   `json:"username,omitempty"`
	FirstName    *string   `json:"first_name,omitempty"`
	LastName     *string   `json:"last_name,omitempty"`
	Points       int64     `json:"points"`
	PlayfabToken *string   `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasCredential reports whether the user has a stored PlayFab session token.
func (u *User) HasCredential() bool {
	return u.PlayfabToken != nil && *u.PlayfabToken != ""
}

type Livery struct {
	LiveryID    string    `json:"livery_id"`
	LiveryName  string    `json:"livery_name"`
	CarCode     string    `json:"car_code"`
	CarName     string    `json:"car_name"`
	LastUpdated time.Time `json:"last_updated"`
}

// CarGroup is one car's slice of the catalog, items ordered by name.
type CarGroup struct {
	CarName  string    `json:"car_name"`
	Liveries []*Livery `json:"liveries"`
}

// CatalogSnapshot mirrors the remote feed: car code -> car name + livery list.
type CatalogSnapshot map[string]CarFeed

type CarFeed struct {
	CarName  string       `json:"carName"`
	Liveries []FeedLivery `json:"liveries"`
}

type FeedLivery struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InjectionAttempt is an append-only audit record of one injection, successful or not.
type InjectionAttempt struct {
	ID              int64           `json:"id"`
	TelegramID      int64           `json:"telegram_id"`
	LiveryID        string          `json:"livery_id"`
	LiveryName      string          `json:"livery_name"`
	PlayfabToken    string          `json:"-"`
	Status          InjectionStatus `json:"status"`
	PointsDeducted  *int64          `json:"points_deducted,omitempty"`
	ResponseData    json.RawMessage `json:"response_data,omitempty"`
	ErrorMessage    *string         `json:"error_message,omitempty"`
	ExecutionTimeMs *int64          `json:"execution_time_ms,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Points      int64     `json:"points"`
	PriceIDR    int64     `json:"price_idr"`
	IsActive    bool      `json:"is_active"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductUpdate carries the admin-mutable product fields; nil means unchanged.
type ProductUpdate struct {
	Points      *int64  `json:"points,omitempty"`
	PriceIDR    *int64  `json:"price_idr,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type Transaction struct {
	ID               int64       `json:"id"`
	TransactionUUID  uuid.UUID   `json:"transaction_uuid"`
	TelegramID       int64       `json:"telegram_id"`
	ProductID        int64       `json:"product_id"`
	Points           int64       `json:"points"`
	AmountIDR        int64       `json:"amount_idr"`
	Status           TopupStatus `json:"status"`
	ConfirmedByAdmin *int64      `json:"confirmed_by_admin,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	ConfirmedAt      *time.Time  `json:"confirmed_at,omitempty"`
}

// SagaResult is the outcome of one injection saga invocation.
//
// Charged is true when the reserved cost was kept (external success). RefundFailed
// flags the one state that needs operator attention: the external call failed and
// the compensating credit could not be applied.
type SagaResult struct {
	Charged      bool
	RefundFailed bool
	NewBalance   int64
	UserID       int64
	LiveryID     string
	LiveryName   string
	Cost         int64
	Success      bool
	LatencyMs    int64
	ErrorMessage string
}
