package postgres

import (
	"context"
	"errors"
	"fmt"

	"livery-points/internal/model"
	"livery-points/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const userColumns = `telegram_id, username, first_name, last_name, points, playfab_token, is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.TelegramID, &user.Username, &user.FirstName, &user.LastName,
		&user.Points, &user.PlayfabToken, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetOrCreate returns the user, inserting a zero-balance row on first contact.
// A concurrent first contact loses the insert race and falls back to the read.
func (r *UserRepositoryImpl) GetOrCreate(ctx context.Context, userID int64, username, firstName, lastName *string) (*model.User, error) {
	user, err := r.Get(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	query := `
        INSERT INTO users (telegram_id, username, first_name, last_name)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + userColumns

	user, err = scanUser(r.pool.QueryRow(ctx, query, userID, username, firstName, lastName))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return r.Get(ctx, userID)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (r *UserRepositoryImpl) Get(ctx context.Context, userID int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetBalance returns the current points balance; a missing user reads as 0
func (r *UserRepositoryImpl) GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (int64, error) {
	query := `SELECT points FROM users WHERE telegram_id = $1`

	var points int64
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return points, nil
}

// Credit adds amount to the balance; false means the user does not exist
func (r *UserRepositoryImpl) Credit(ctx context.Context, userID int64, amount int64, tx ...pgx.Tx) (bool, error) {
	query := `
        UPDATE users
        SET points = points + $1, updated_at = NOW()
        WHERE telegram_id = $2`

	executor := r.getExecutor(tx...)
	commandTag, err := executor.Exec(ctx, query, amount, userID)
	if err != nil {
		return false, fmt.Errorf("failed to credit points: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// DebitIfSufficient subtracts amount only when balance >= amount. The funds check
// and the subtraction are one statement; the affected-row count decides the outcome,
// so concurrent debits on the same row cannot both pass a stale balance check.
func (r *UserRepositoryImpl) DebitIfSufficient(ctx context.Context, userID int64, amount int64) (bool, error) {
	query := `
        UPDATE users
        SET points = points - $1, updated_at = NOW()
        WHERE telegram_id = $2 AND points >= $1`

	commandTag, err := r.pool.Exec(ctx, query, amount, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT points_non_negative CHECK (points >= 0) backstops the condition
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return false, nil
		}
		return false, fmt.Errorf("failed to debit points: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// SetBalance overwrites the balance unconditionally (admin override)
func (r *UserRepositoryImpl) SetBalance(ctx context.Context, userID int64, amount int64) (bool, error) {
	query := `
        UPDATE users
        SET points = $1, updated_at = NOW()
        WHERE telegram_id = $2`

	commandTag, err := r.pool.Exec(ctx, query, amount, userID)
	if err != nil {
		return false, fmt.Errorf("failed to set balance: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *UserRepositoryImpl) SetCredential(ctx context.Context, userID int64, token string) error {
	query := `
        UPDATE users
        SET playfab_token = $1, updated_at = NOW()
        WHERE telegram_id = $2`

	commandTag, err := r.pool.Exec(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("failed to set credential: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetAdmin(ctx context.Context, userID int64, isAdmin bool) error {
	query := `UPDATE users SET is_admin = $1, updated_at = NOW() WHERE telegram_id = $2`

	commandTag, err := r.pool.Exec(ctx, query, isAdmin, userID)
	if err != nil {
		return fmt.Errorf("failed to set admin flag: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
