package postgres

import (
	"context"
	"errors"
	"fmt"

	"livery-points/internal/model"
	"livery-points/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.SettingsRepository = (*SettingsRepositoryImpl)(nil)

// SettingsRepositoryImpl is the PostgreSQL implementation of SettingsRepository
type SettingsRepositoryImpl struct {
	*TransactionManager
}

func NewSettingsRepository(pool *pgxpool.Pool) repository.SettingsRepository {
	return &SettingsRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *SettingsRepositoryImpl) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT setting_value FROM admin_settings WHERE setting_key = $1`

	var value string
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return value, nil
}

func (r *SettingsRepositoryImpl) Set(ctx context.Context, key, value string, updatedBy int64) error {
	query := `
        INSERT INTO admin_settings (setting_key, setting_value, updated_by)
        VALUES ($1, $2, $3)
        ON CONFLICT (setting_key) DO UPDATE
        SET setting_value = EXCLUDED.setting_value,
            updated_by = EXCLUDED.updated_by,
            updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, key, value, updatedBy); err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}
	return nil
}
