package repository

import (
	"context"

	"livery-points/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository owns the users table and the points ledger on it.
//
// Balance mutations are single conditional statements; callers never compute a
// new balance from a previously read one.
type UserRepository interface {
	// GetOrCreate returns the user, inserting a zero-balance row on first contact
	GetOrCreate(ctx context.Context, userID int64, username, firstName, lastName *string) (*model.User, error)

	// Get retrieves a user by telegram id
	Get(ctx context.Context, userID int64) (*model.User, error)

	// GetBalance returns the current points balance; a missing user reads as 0
	GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (int64, error)

	// Credit adds amount to the balance; false means the user does not exist
	Credit(ctx context.Context, userID int64, amount int64, tx ...pgx.Tx) (bool, error)

	// DebitIfSufficient subtracts amount only when balance >= amount, as one
	// conditional statement; false means insufficient funds or unknown user
	DebitIfSufficient(ctx context.Context, userID int64, amount int64) (bool, error)

	// SetBalance overwrites the balance unconditionally (admin override)
	SetBalance(ctx context.Context, userID int64, amount int64) (bool, error)

	// SetCredential stores the user's PlayFab session token
	SetCredential(ctx context.Context, userID int64, token string) error

	// SetAdmin flips the admin flag
	SetAdmin(ctx context.Context, userID int64, isAdmin bool) error

	// List returns all users, newest first
	List(ctx context.Context) ([]*model.User, error)
}

// LiveryRepository is the upsert-only catalog cache. Nothing is ever evicted.
type LiveryRepository interface {
	// Upsert inserts or overwrites a catalog item keyed by livery id
	Upsert(ctx context.Context, item *model.Livery) error

	// Get retrieves one item by livery id
	Get(ctx context.Context, liveryID string) (*model.Livery, error)

	// ListGroupedByCar returns the whole cache grouped by car code, items sorted by name
	ListGroupedByCar(ctx context.Context) (map[string]*model.CarGroup, error)
}

// TopupRepository manages purchase-intent transactions and their settlement.
type TopupRepository interface {
	// InsertPending creates a pending transaction with snapshotted points/price
	InsertPending(ctx context.Context, trans *model.Transaction) error

	// Get retrieves a transaction by its UUID
	Get(ctx context.Context, id uuid.UUID, tx ...pgx.Tx) (*model.Transaction, error)

	// LockPending row-locks the transaction if it is still pending (must be in
	// transaction); returns nil when missing or already confirmed
	LockPending(ctx context.Context, id uuid.UUID, tx pgx.Tx) (*model.Transaction, error)

	// MarkConfirmed flips a pending transaction to confirmed with the admin stamp
	MarkConfirmed(ctx context.Context, id uuid.UUID, adminID int64, tx pgx.Tx) (bool, error)

	// ListPending returns all pending transactions, oldest first
	ListPending(ctx context.Context) ([]*model.Transaction, error)
}

// ProductRepository manages the topup product catalog.
type ProductRepository interface {
	// Get retrieves a product by id
	Get(ctx context.Context, productID int64) (*model.Product, error)

	// ListActive returns active products ordered by points ascending
	ListActive(ctx context.Context) ([]*model.Product, error)

	// Create inserts a new product and fills generated fields
	Create(ctx context.Context, product *model.Product) error

	// Update applies the non-nil fields; false means the product does not exist
	Update(ctx context.Context, productID int64, upd model.ProductUpdate) (bool, error)
}

// InjectionRepository is the append-only audit log of injection attempts.
type InjectionRepository interface {
	// Insert appends one attempt record and fills generated fields
	Insert(ctx context.Context, attempt *model.InjectionAttempt) error

	// ListByUser returns a user's most recent attempts
	ListByUser(ctx context.Context, userID int64, limit int) ([]*model.InjectionAttempt, error)

	// CountSuccessfulToday counts a user's successful attempts on the current date
	CountSuccessfulToday(ctx context.Context, userID int64) (int64, error)
}

// SettingsRepository is the admin_settings key/value store.
type SettingsRepository interface {
	// Get returns the value for key, or model.ErrSettingNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value for key, recording who changed it
	Set(ctx context.Context, key, value string, updatedBy int64) error
}
