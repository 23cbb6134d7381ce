package postgres

import (
	"context"
	"fmt"

	"livery-points/internal/model"
	"livery-points/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.InjectionRepository = (*InjectionRepositoryImpl)(nil)

// InjectionRepositoryImpl is the PostgreSQL implementation of InjectionRepository
type InjectionRepositoryImpl struct {
	*TransactionManager
}

func NewInjectionRepository(pool *pgxpool.Pool) repository.InjectionRepository {
	return &InjectionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Insert appends one attempt record. Rows are never updated or deleted.
func (r *InjectionRepositoryImpl) Insert(ctx context.Context, attempt *model.InjectionAttempt) error {
	query := `
        INSERT INTO injections
            (telegram_id, livery_id, livery_name, playfab_token, status,
             points_deducted, response_data, error_message, execution_time_ms)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		attempt.TelegramID, attempt.LiveryID, attempt.LiveryName, attempt.PlayfabToken,
		attempt.Status, attempt.PointsDeducted, attempt.ResponseData,
		attempt.ErrorMessage, attempt.ExecutionTimeMs).
		Scan(&attempt.ID, &attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert injection record: %w", err)
	}
	return nil
}

// ListByUser returns a user's most recent attempts
func (r *InjectionRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit int) ([]*model.InjectionAttempt, error) {
	query := `
        SELECT id, telegram_id, livery_id, livery_name, playfab_token, status,
               points_deducted, response_data, error_message, execution_time_ms, created_at
        FROM injections
        WHERE telegram_id = $1
        ORDER BY created_at DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query injections: %w", err)
	}
	defer rows.Close()

	var attempts []*model.InjectionAttempt
	for rows.Next() {
		a := &model.InjectionAttempt{}
		err := rows.Scan(&a.ID, &a.TelegramID, &a.LiveryID, &a.LiveryName, &a.PlayfabToken,
			&a.Status, &a.PointsDeducted, &a.ResponseData, &a.ErrorMessage, &a.ExecutionTimeMs, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan injection record: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// CountSuccessfulToday counts a user's successful attempts on the current date
func (r *InjectionRepositoryImpl) CountSuccessfulToday(ctx context.Context, userID int64) (int64, error) {
	query := `
        SELECT COUNT(*) FROM injections
        WHERE telegram_id = $1 AND status = 'success'
          AND created_at >= CURRENT_DATE`

	var count int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count injections: %w", err)
	}
	return count, nil
}
