package service

import (
	"context"

	"livery-points/internal/model"
	"livery-points/internal/playfab"
)

// Injector dispatches one two-phase injection call. The error return is non-nil
// only when the call was never dispatched (queue cancelled, pool stopped); every
// dispatched attempt resolves to an Outcome, failed or not.
type Injector interface {
	Inject(ctx context.Context, itemID, credential string) (*playfab.Outcome, error)
}

// InjectionService orchestrates one user-initiated injection: funds reservation,
// the external call, settlement or refund, and the audit record.
type InjectionService interface {
	Execute(ctx context.Context, userID int64, liveryID string) (*model.SagaResult, error)
	History(ctx context.Context, userID int64, limit int) ([]*model.InjectionAttempt, error)
	Stats(ctx context.Context, userID int64) (*model.UserStatsResponse, error)
	SetCost(ctx context.Context, cost, adminID int64) error
}

// PointsService exposes the points ledger and user records to the front end.
type PointsService interface {
	Register(ctx context.Context, userID int64, username, firstName, lastName *string) (*model.User, error)
	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	AddPoints(ctx context.Context, userID int64, amount int64) error
	SetPoints(ctx context.Context, userID int64, amount int64) error
	SetCredential(ctx context.Context, userID int64, token string) error
	SetAdmin(ctx context.Context, userID int64, isAdmin bool) error
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// TopupService manages purchase intents and their administrator settlement.
type TopupService interface {
	CreatePending(ctx context.Context, userID, productID int64) (*model.Transaction, error)
	Confirm(ctx context.Context, transactionID string, adminID int64) (bool, error)
	Get(ctx context.Context, transactionID string) (*model.Transaction, error)
	ListPending(ctx context.Context) ([]*model.Transaction, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
	CreateProduct(ctx context.Context, req *model.ProductCreateRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID int64, upd model.ProductUpdate) (bool, error)
}

// CatalogService ingests the remote livery feed and serves grouped lookups.
type CatalogService interface {
	Refresh(ctx context.Context, snapshot model.CatalogSnapshot) (int, error)
	RefreshFromFeed(ctx context.Context) (int, error)
	ListGroupedByCar(ctx context.Context) (map[string]*model.CarGroup, error)
	GetItem(ctx context.Context, liveryID string) (*model.Livery, error)
}
