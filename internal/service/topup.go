package service

import (
	"context"
	"fmt"

	"livery-points/internal/model"
	"livery-points/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type TopupServiceImpl struct {
	userRepo    repository.UserRepository
	topupRepo   repository.TopupRepository
	productRepo repository.ProductRepository
	dbManager   repository.DBManager
	logger      zerolog.Logger
}

func NewTopupService(
	userRepo repository.UserRepository,
	topupRepo repository.TopupRepository,
	productRepo repository.ProductRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) TopupService {
	return &TopupServiceImpl{
		userRepo:    userRepo,
		topupRepo:   topupRepo,
		productRepo: productRepo,
		dbManager:   dbManager,
		logger:      logger,
	}
}

// CreatePending records a purchase intent, snapshotting the product's points and
// price so later product edits cannot change what a pending transaction settles to.
func (s *TopupServiceImpl) CreatePending(ctx context.Context, userID, productID int64) (*model.Transaction, error) {
	product, err := s.productRepo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, model.ErrProductNotFound
	}

	trans := &model.Transaction{
		TelegramID: userID,
		ProductID:  productID,
		Points:     product.Points,
		AmountIDR:  product.PriceIDR,
	}
	if err := s.topupRepo.InsertPending(ctx, trans); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("transaction_uuid", trans.TransactionUUID.String()).
		Int64("user_id", userID).
		Int64("product_id", productID).
		Int64("points", trans.Points).
		Msg("pending topup created")
	return trans, nil
}

// Confirm settles a pending transaction: lock the pending row, credit the user,
// flip the status, all in one database transaction. A missing or already-confirmed
// transaction returns false with no credit, so a double confirmation (sequential or
// concurrent) applies the credit exactly once.
func (s *TopupServiceImpl) Confirm(ctx context.Context, transactionID string, adminID int64) (bool, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return false, fmt.Errorf("%w: %q", model.ErrInvalidTransactionID, transactionID)
	}

	var confirmed bool
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.topupRepo.LockPending(ctx, id, tx)
		if err != nil {
			return fmt.Errorf("lock pending transaction: %w", err)
		}
		if trans == nil {
			// Missing or already settled; the lock query saw no pending row.
			return nil
		}

		credited, err := s.userRepo.Credit(ctx, trans.TelegramID, trans.Points, tx)
		if err != nil {
			return fmt.Errorf("credit points: %w", err)
		}
		if !credited {
			return fmt.Errorf("credit points: %w", model.ErrUserNotFound)
		}

		flipped, err := s.topupRepo.MarkConfirmed(ctx, id, adminID, tx)
		if err != nil {
			return fmt.Errorf("mark confirmed: %w", err)
		}
		if !flipped {
			return fmt.Errorf("transaction %s no longer pending", id)
		}

		s.logger.Info().
			Str("transaction_uuid", id.String()).
			Int64("user_id", trans.TelegramID).
			Int64("points", trans.Points).
			Int64("admin_id", adminID).
			Msg("topup confirmed")
		confirmed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func (s *TopupServiceImpl) Get(ctx context.Context, transactionID string) (*model.Transaction, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidTransactionID, transactionID)
	}
	return s.topupRepo.Get(ctx, id)
}

func (s *TopupServiceImpl) ListPending(ctx context.Context) ([]*model.Transaction, error) {
	transactions, err := s.topupRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending transactions: %w", err)
	}
	return transactions, nil
}

func (s *TopupServiceImpl) ListProducts(ctx context.Context) ([]*model.Product, error) {
	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *TopupServiceImpl) CreateProduct(ctx context.Context, req *model.ProductCreateRequest) (*model.Product, error) {
	if req.Points <= 0 || req.PriceIDR <= 0 {
		return nil, fmt.Errorf("%w: points and price must be positive", model.ErrInvalidAmount)
	}

	product := &model.Product{
		Name:        req.Name,
		Points:      req.Points,
		PriceIDR:    req.PriceIDR,
		Description: req.Description,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *TopupServiceImpl) UpdateProduct(ctx context.Context, productID int64, upd model.ProductUpdate) (bool, error) {
	if upd.Points != nil && *upd.Points <= 0 {
		return false, fmt.Errorf("%w: points must be positive", model.ErrInvalidAmount)
	}
	if upd.PriceIDR != nil && *upd.PriceIDR <= 0 {
		return false, fmt.Errorf("%w: price must be positive", model.ErrInvalidAmount)
	}
	return s.productRepo.Update(ctx, productID, upd)
}
