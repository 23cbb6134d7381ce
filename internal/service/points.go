package service

import (
	"context"
	"fmt"

	"livery-points/internal/model"
	"livery-points/internal/repository"

	"github.com/rs/zerolog"
)

type PointsServiceImpl struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

func NewPointsService(userRepo repository.UserRepository, logger zerolog.Logger) PointsService {
	return &PointsServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register ensures a user row exists, creating a zero-balance one on first contact.
func (s *PointsServiceImpl) Register(ctx context.Context, userID int64, username, firstName, lastName *string) (*model.User, error) {
	user, err := s.userRepo.GetOrCreate(ctx, userID, username, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

func (s *PointsServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	points, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &model.BalanceResponse{
		UserID: userID,
		Points: points,
	}, nil
}

func (s *PointsServiceImpl) AddPoints(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}

	credited, err := s.userRepo.Credit(ctx, userID, amount)
	if err != nil {
		return fmt.Errorf("credit points: %w", err)
	}
	if !credited {
		return model.ErrUserNotFound
	}

	s.logger.Info().Int64("user_id", userID).Int64("amount", amount).Msg("points credited by admin")
	return nil
}

func (s *PointsServiceImpl) SetPoints(ctx context.Context, userID int64, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", model.ErrInvalidAmount)
	}

	updated, err := s.userRepo.SetBalance(ctx, userID, amount)
	if err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	if !updated {
		return model.ErrUserNotFound
	}

	s.logger.Info().Int64("user_id", userID).Int64("amount", amount).Msg("balance overridden by admin")
	return nil
}

func (s *PointsServiceImpl) SetCredential(ctx context.Context, userID int64, token string) error {
	if err := s.userRepo.SetCredential(ctx, userID, token); err != nil {
		return fmt.Errorf("set credential: %w", err)
	}
	return nil
}

func (s *PointsServiceImpl) SetAdmin(ctx context.Context, userID int64, isAdmin bool) error {
	if err := s.userRepo.SetAdmin(ctx, userID, isAdmin); err != nil {
		return fmt.Errorf("set admin flag: %w", err)
	}
	s.logger.Info().Int64("user_id", userID).Bool("is_admin", isAdmin).Msg("admin flag changed")
	return nil
}

func (s *PointsServiceImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
