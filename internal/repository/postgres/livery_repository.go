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
var _ repository.LiveryRepository = (*LiveryRepositoryImpl)(nil)

// LiveryRepositoryImpl is the PostgreSQL implementation of LiveryRepository
type LiveryRepositoryImpl struct {
	*TransactionManager
}

func NewLiveryRepository(pool *pgxpool.Pool) repository.LiveryRepository {
	return &LiveryRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Upsert inserts or overwrites a catalog item. Items absent from later feeds are
// never removed, only overwritten when they reappear.
func (r *LiveryRepositoryImpl) Upsert(ctx context.Context, item *model.Livery) error {
	query := `
        INSERT INTO liveries_cache (livery_id, livery_name, car_code, car_name)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (livery_id) DO UPDATE
        SET livery_name = EXCLUDED.livery_name,
            car_code = EXCLUDED.car_code,
            car_name = EXCLUDED.car_name,
            last_updated = NOW()`

	_, err := r.pool.Exec(ctx, query, item.LiveryID, item.LiveryName, item.CarCode, item.CarName)
	if err != nil {
		return fmt.Errorf("failed to upsert livery: %w", err)
	}
	return nil
}

func (r *LiveryRepositoryImpl) Get(ctx context.Context, liveryID string) (*model.Livery, error) {
	query := `
        SELECT livery_id, livery_name, car_code, car_name, last_updated
        FROM liveries_cache WHERE livery_id = $1`

	item := &model.Livery{}
	err := r.pool.QueryRow(ctx, query, liveryID).
		Scan(&item.LiveryID, &item.LiveryName, &item.CarCode, &item.CarName, &item.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get livery: %w", err)
	}
	return item, nil
}

// ListGroupedByCar returns the whole cache grouped by car code, items sorted by name
func (r *LiveryRepositoryImpl) ListGroupedByCar(ctx context.Context) (map[string]*model.CarGroup, error) {
	query := `
        SELECT livery_id, livery_name, car_code, car_name, last_updated
        FROM liveries_cache
        ORDER BY car_name ASC, livery_name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query liveries: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string]*model.CarGroup)
	for rows.Next() {
		item := &model.Livery{}
		if err := rows.Scan(&item.LiveryID, &item.LiveryName, &item.CarCode, &item.CarName, &item.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan livery: %w", err)
		}
		group, ok := grouped[item.CarCode]
		if !ok {
			group = &model.CarGroup{CarName: item.CarName}
			grouped[item.CarCode] = group
		}
		group.Liveries = append(group.Liveries, item)
	}
	return grouped, rows.Err()
}
