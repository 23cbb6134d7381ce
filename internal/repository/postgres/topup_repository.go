package postgres

import (
	"context"
	"errors"
	"fmt"

	"livery-points/internal/model"
	"livery-points/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TopupRepository = (*TopupRepositoryImpl)(nil)

// TopupRepositoryImpl is the PostgreSQL implementation of TopupRepository
type TopupRepositoryImpl struct {
	*TransactionManager
}

func NewTopupRepository(pool *pgxpool.Pool) repository.TopupRepository {
	return &TopupRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const transactionColumns = `id, transaction_uuid, telegram_id, product_id, points, amount_idr, status, confirmed_by_admin, created_at, confirmed_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	trans := &model.Transaction{}
	err := row.Scan(&trans.ID, &trans.TransactionUUID, &trans.TelegramID, &trans.ProductID,
		&trans.Points, &trans.AmountIDR, &trans.Status, &trans.ConfirmedByAdmin,
		&trans.CreatedAt, &trans.ConfirmedAt)
	if err != nil {
		return nil, err
	}
	return trans, nil
}

// InsertPending creates a pending transaction with snapshotted points/price
func (r *TopupRepositoryImpl) InsertPending(ctx context.Context, trans *model.Transaction) error {
	query := `
        INSERT INTO transactions (telegram_id, product_id, points, amount_idr, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, transaction_uuid, created_at`

	err := r.pool.QueryRow(ctx, query, trans.TelegramID, trans.ProductID, trans.Points, trans.AmountIDR, model.TopupPending).
		Scan(&trans.ID, &trans.TransactionUUID, &trans.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	trans.Status = model.TopupPending
	return nil
}

// Get retrieves a transaction by its UUID
func (r *TopupRepositoryImpl) Get(ctx context.Context, id uuid.UUID, tx ...pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_uuid = $1`

	executor := r.getExecutor(tx...)
	trans, err := scanTransaction(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return trans, nil
}

// LockPending row-locks the transaction if it is still pending. Returning nil for a
// missing or already-confirmed row lets the caller treat both as "nothing to settle".
func (r *TopupRepositoryImpl) LockPending(ctx context.Context, id uuid.UUID, tx pgx.Tx) (*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE transaction_uuid = $1 AND status = 'pending'
        FOR UPDATE`

	trans, err := scanTransaction(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock pending transaction: %w", err)
	}
	return trans, nil
}

// MarkConfirmed flips a pending transaction to confirmed with the admin stamp
func (r *TopupRepositoryImpl) MarkConfirmed(ctx context.Context, id uuid.UUID, adminID int64, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $1,
            confirmed_by_admin = $2,
            confirmed_at = NOW()
        WHERE transaction_uuid = $3
          AND status = $4`

	result, err := tx.Exec(ctx, query, model.TopupConfirmed, adminID, id, model.TopupPending)
	if err != nil {
		return false, fmt.Errorf("failed to confirm transaction: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// ListPending returns all pending transactions, oldest first
func (r *TopupRepositoryImpl) ListPending(ctx context.Context) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE status = 'pending'
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, rows.Err()
}
