package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"livery-points/internal/model"
	"livery-points/internal/playfab"
	"livery-points/internal/repository"

	"github.com/rs/zerolog"
)

type InjectionServiceImpl struct {
	userRepo      repository.UserRepository
	liveryRepo    repository.LiveryRepository
	injectionRepo repository.InjectionRepository
	settingsRepo  repository.SettingsRepository
	injector      Injector
	defaultCost   int64
	logger        zerolog.Logger
}

func NewInjectionService(
	userRepo repository.UserRepository,
	liveryRepo repository.LiveryRepository,
	injectionRepo repository.InjectionRepository,
	settingsRepo repository.SettingsRepository,
	injector Injector,
	defaultCost int64,
	logger zerolog.Logger,
) InjectionService {
	return &InjectionServiceImpl{
		userRepo:      userRepo,
		liveryRepo:    liveryRepo,
		injectionRepo: injectionRepo,
		settingsRepo:  settingsRepo,
		injector:      injector,
		defaultCost:   defaultCost,
		logger:        logger,
	}
}

// Execute runs one injection saga. Funds are reserved before the external call:
// the debit happens up front, is kept on success, and is credited back on failure.
// The external call is therefore the only point of uncertainty; the ledger is
// never charged for an effect that did not reach the external system, and never
// silently grants a free injection.
//
// Rejections before the external call (ErrItemNotFound, ErrUserNotFound,
// ErrNoCredential, ErrInsufficientPoints) write no audit row. Every dispatched
// attempt writes exactly one.
func (s *InjectionServiceImpl) Execute(ctx context.Context, userID int64, liveryID string) (*model.SagaResult, error) {
	livery, err := s.liveryRepo.Get(ctx, liveryID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.HasCredential() {
		return nil, model.ErrNoCredential
	}
	credential := *user.PlayfabToken

	cost := s.injectionCost(ctx)

	// Reserve funds. A false here is the atomic insufficient-balance check.
	reserved, err := s.userRepo.DebitIfSufficient(ctx, userID, cost)
	if err != nil {
		return nil, fmt.Errorf("reserve points: %w", err)
	}
	if !reserved {
		return nil, model.ErrInsufficientPoints
	}

	// The reservation is real money from here on. Settlement must finish even
	// if the caller disconnects mid-call, so the dispatch and every write after
	// it run detached from the request's cancellation. The external call is
	// still bounded by the client's own phase timeouts.
	ctx = context.WithoutCancel(ctx)

	outcome, err := s.injector.Inject(ctx, liveryID, credential)
	if err != nil {
		// Never dispatched; release the reservation and report infra failure.
		if _, rerr := s.userRepo.Credit(ctx, userID, cost); rerr != nil {
			s.logger.Error().Err(rerr).
				Int64("user_id", userID).
				Int64("points", cost).
				Msg("failed to release reservation after dispatch error")
		}
		return nil, fmt.Errorf("dispatch injection: %w", err)
	}

	result := &model.SagaResult{
		UserID:     userID,
		LiveryID:   liveryID,
		LiveryName: livery.LiveryName,
		Cost:       cost,
		Success:    outcome.Success,
		LatencyMs:  outcome.LatencyMs,
	}

	if outcome.Success {
		return s.settleSuccess(ctx, result, credential, outcome)
	}
	return s.settleFailure(ctx, result, credential, outcome)
}

func (s *InjectionServiceImpl) settleSuccess(ctx context.Context, result *model.SagaResult, credential string, outcome *playfab.Outcome) (*model.SagaResult, error) {
	result.Charged = true

	attempt := &model.InjectionAttempt{
		TelegramID:      result.UserID,
		LiveryID:        result.LiveryID,
		LiveryName:      result.LiveryName,
		PlayfabToken:    credential,
		Status:          model.InjectionSuccess,
		PointsDeducted:  &result.Cost,
		ResponseData:    marshalOutcome(outcome),
		ExecutionTimeMs: &outcome.LatencyMs,
	}
	if err := s.injectionRepo.Insert(ctx, attempt); err != nil {
		// The user is charged and the item granted; only the audit row is missing.
		s.logger.Error().Err(err).Int64("user_id", result.UserID).Str("livery_id", result.LiveryID).
			Msg("charged injection succeeded but audit insert failed")
		return nil, fmt.Errorf("record injection: %w", err)
	}

	balance, err := s.userRepo.GetBalance(ctx, result.UserID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	result.NewBalance = balance

	s.logger.Info().
		Int64("user_id", result.UserID).
		Str("livery_id", result.LiveryID).
		Int64("points_deducted", result.Cost).
		Int64("new_balance", balance).
		Int64("latency_ms", outcome.LatencyMs).
		Msg("injection succeeded")
	return result, nil
}

func (s *InjectionServiceImpl) settleFailure(ctx context.Context, result *model.SagaResult, credential string, outcome *playfab.Outcome) (*model.SagaResult, error) {
	result.ErrorMessage = outcome.ErrorMessage

	// Release the hold. A failed refund is surfaced, not retried: the attempt is
	// still audited below and the operator reconciles from the log.
	if _, err := s.userRepo.Credit(ctx, result.UserID, result.Cost); err != nil {
		result.RefundFailed = true
		s.logger.Error().Err(err).
			Int64("user_id", result.UserID).
			Int64("points", result.Cost).
			Msg("failed to refund reservation after failed injection")
	}

	errMsg := outcome.ErrorMessage
	attempt := &model.InjectionAttempt{
		TelegramID:   result.UserID,
		LiveryID:     result.LiveryID,
		LiveryName:   result.LiveryName,
		PlayfabToken: credential,
		Status:       model.InjectionFailed,
		ErrorMessage: &errMsg,
		ResponseData: marshalOutcome(outcome),
	}
	if err := s.injectionRepo.Insert(ctx, attempt); err != nil {
		return nil, fmt.Errorf("record injection: %w", err)
	}

	balance, err := s.userRepo.GetBalance(ctx, result.UserID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	result.NewBalance = balance

	s.logger.Warn().
		Int64("user_id", result.UserID).
		Str("livery_id", result.LiveryID).
		Str("failure_kind", string(outcome.FailureKind)).
		Str("error", outcome.ErrorMessage).
		Bool("refund_failed", result.RefundFailed).
		Msg("injection failed")
	return result, nil
}

func (s *InjectionServiceImpl) History(ctx context.Context, userID int64, limit int) ([]*model.InjectionAttempt, error) {
	attempts, err := s.injectionRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get injection history: %w", err)
	}
	return attempts, nil
}

// Stats summarizes a user's ledger position and today's successful injections.
func (s *InjectionServiceImpl) Stats(ctx context.Context, userID int64) (*model.UserStatsResponse, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	count, err := s.injectionRepo.CountSuccessfulToday(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count injections: %w", err)
	}
	return &model.UserStatsResponse{
		UserID:          userID,
		Points:          balance,
		SuccessfulToday: count,
	}, nil
}

// SetCost stores the admin override for the per-injection point cost.
func (s *InjectionServiceImpl) SetCost(ctx context.Context, cost, adminID int64) error {
	if cost <= 0 {
		return fmt.Errorf("%w: cost must be positive", model.ErrInvalidAmount)
	}
	if err := s.settingsRepo.Set(ctx, model.SettingInjectionCost, strconv.FormatInt(cost, 10), adminID); err != nil {
		return fmt.Errorf("set injection cost: %w", err)
	}
	s.logger.Info().Int64("cost", cost).Int64("admin_id", adminID).Msg("injection cost changed")
	return nil
}

// injectionCost reads the admin override and falls back to the configured default.
func (s *InjectionServiceImpl) injectionCost(ctx context.Context) int64 {
	value, err := s.settingsRepo.Get(ctx, model.SettingInjectionCost)
	if err != nil {
		if !errors.Is(err, model.ErrSettingNotFound) {
			s.logger.Warn().Err(err).Msg("failed to read injection cost setting, using default")
		}
		return s.defaultCost
	}
	cost, err := strconv.ParseInt(value, 10, 64)
	if err != nil || cost <= 0 {
		s.logger.Warn().Str("value", value).Msg("invalid injection cost setting, using default")
		return s.defaultCost
	}
	return cost
}

func marshalOutcome(outcome *playfab.Outcome) json.RawMessage {
	data, err := json.Marshal(outcome)
	if err != nil {
		return nil
	}
	return data
}
