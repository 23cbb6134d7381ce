package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"livery-points/internal/model"
	"livery-points/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.ProductRepository = (*ProductRepositoryImpl)(nil)

// ProductRepositoryImpl is the PostgreSQL implementation of ProductRepository
type ProductRepositoryImpl struct {
	*TransactionManager
}

func NewProductRepository(pool *pgxpool.Pool) repository.ProductRepository {
	return &ProductRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const productColumns = `id, name, points, price_idr, is_active, description, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	p := &model.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Points, &p.PriceIDR, &p.IsActive, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepositoryImpl) Get(ctx context.Context, productID int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepositoryImpl) ListActive(ctx context.Context) ([]*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE ORDER BY points ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *model.Product) error {
	query := `
        INSERT INTO products (name, points, price_idr, description)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_active, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, product.Name, product.Points, product.PriceIDR, product.Description).
		Scan(&product.ID, &product.IsActive, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of upd in a single dynamically built statement.
func (r *ProductRepositoryImpl) Update(ctx context.Context, productID int64, upd model.ProductUpdate) (bool, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Points != nil {
		add("points", *upd.Points)
	}
	if upd.PriceIDR != nil {
		add("price_idr", *upd.PriceIDR)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}
	if len(args) == 0 {
		return false, nil
	}

	args = append(args, productID)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	commandTag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update product: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}
