package service

import (
	"context"
	"errors"
	"testing"

	"livery-points/internal/model"
	"livery-points/internal/playfab"
	repomocks "livery-points/mocks/repository"
	svcmocks "livery-points/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const defaultInjectionCost = int64(1000)

func strPtr(s string) *string { return &s }

func testLivery() *model.Livery {
	return &model.Livery{
		LiveryID:   "lv_gtr35_nismo",
		LiveryName: "Nismo Works",
		CarCode:    "gtr35",
		CarName:    "Nissan GT-R R35",
	}
}

func testUser() *model.User {
	return &model.User{
		TelegramID:   1,
		Points:       5000,
		PlayfabToken: strPtr("session-token"),
	}
}

func TestExecuteInjection_Success_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", ctx, model.SettingInjectionCost).Return("", model.ErrSettingNotFound)
	mockUserRepo.On("DebitIfSufficient", ctx, int64(1), int64(1000)).Return(true, nil)
	mockInjector.On("Inject", mock.Anything, "lv_gtr35_nismo", "session-token").Return(&playfab.Outcome{
		Success:        true,
		ItemInstanceID: "inst-1",
		ItemID:         "lv_gtr35_nismo",
		LatencyMs:      1843,
	}, nil)
	mockInjectionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(attempt *model.InjectionAttempt) bool {
		return attempt.TelegramID == 1 &&
			attempt.LiveryID == "lv_gtr35_nismo" &&
			attempt.Status == model.InjectionSuccess &&
			attempt.PointsDeducted != nil && *attempt.PointsDeducted == 1000
	})).Return(nil)
	mockUserRepo.On("GetBalance", mock.Anything, int64(1)).Return(int64(4000), nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Charged)
	assert.False(t, result.RefundFailed)
	assert.Equal(t, int64(1000), result.Cost)
	assert.Equal(t, int64(4000), result.NewBalance)
	assert.Equal(t, "Nismo Works", result.LiveryName)
}

func TestExecuteInjection_CostOverrideFromSettings(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", ctx, model.SettingInjectionCost).Return("250", nil)
	mockUserRepo.On("DebitIfSufficient", ctx, int64(1), int64(250)).Return(true, nil)
	mockInjector.On("Inject", mock.Anything, "lv_gtr35_nismo", "session-token").Return(&playfab.Outcome{Success: true, ItemInstanceID: "inst-1"}, nil)
	mockInjectionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	mockUserRepo.On("GetBalance", mock.Anything, int64(1)).Return(int64(4750), nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.NoError(t, err)
	assert.Equal(t, int64(250), result.Cost)
}

func TestExecuteInjection_InvalidCostSetting_FallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", ctx, model.SettingInjectionCost).Return("not-a-number", nil)
	mockUserRepo.On("DebitIfSufficient", ctx, int64(1), int64(1000)).Return(true, nil)
	mockInjector.On("Inject", mock.Anything, "lv_gtr35_nismo", "session-token").Return(&playfab.Outcome{Success: true, ItemInstanceID: "inst-1"}, nil)
	mockInjectionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	mockUserRepo.On("GetBalance", mock.Anything, int64(1)).Return(int64(4000), nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.Cost)
}

func TestExecuteInjection_InsufficientPoints_NoCallNoAudit(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", ctx, model.SettingInjectionCost).Return("", model.ErrSettingNotFound)
	mockUserRepo.On("DebitIfSufficient", ctx, int64(1), int64(1000)).Return(false, nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrInsufficientPoints)
	// The injector was never called and no audit row was written; the mock
	// constructors assert no unexpected calls on cleanup.
	mockInjector.AssertNotCalled(t, "Inject", mock.Anything, mock.Anything, mock.Anything)
	mockInjectionRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestExecuteInjection_NoCredential(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(&model.User{TelegramID: 1, Points: 5000}, nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrNoCredential)
}

func TestExecuteInjection_LiveryNotFound(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_missing").Return(nil, model.ErrItemNotFound)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_missing")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestExecuteInjection_ExternalFailure_RefundsAndAudits(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", ctx, model.SettingInjectionCost).Return("", model.ErrSettingNotFound)
	mockUserRepo.On("DebitIfSufficient", ctx, int64(1), int64(1000)).Return(true, nil)
	mockInjector.On("Inject", mock.Anything, "lv_gtr35_nismo", "session-token").Return(&playfab.Outcome{
		Success:      false,
		FailureKind:  playfab.FailureTimeout,
		ErrorMessage: "request timeout",
	}, nil)
	mockUserRepo.On("Credit", mock.Anything, int64(1), int64(1000)).Return(true, nil)
	mockInjectionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(attempt *model.InjectionAttempt) bool {
		return attempt.Status == model.InjectionFailed &&
			attempt.PointsDeducted == nil &&
			attempt.ErrorMessage != nil && *attempt.ErrorMessage == "request timeout"
	})).Return(nil)
	mockUserRepo.On("GetBalance", mock.Anything, int64(1)).Return(int64(5000), nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.False(t, result.Charged)
	assert.False(t, result.RefundFailed)
	assert.Equal(t, int64(5000), result.NewBalance)
	assert.Equal(t, "request timeout", result.ErrorMessage)
}

func TestExecuteInjection_RefundFailure_Flagged(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", ctx, model.SettingInjectionCost).Return("", model.ErrSettingNotFound)
	mockUserRepo.On("DebitIfSufficient", ctx, int64(1), int64(1000)).Return(true, nil)
	mockInjector.On("Inject", mock.Anything, "lv_gtr35_nismo", "session-token").Return(&playfab.Outcome{
		Success:      false,
		FailureKind:  playfab.FailureConnection,
		ErrorMessage: "connection error",
	}, nil)
	mockUserRepo.On("Credit", mock.Anything, int64(1), int64(1000)).Return(false, errors.New("connection reset"))
	mockInjectionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	mockUserRepo.On("GetBalance", mock.Anything, int64(1)).Return(int64(4000), nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.RefundFailed)
}

func TestExecuteInjection_DispatchError_ReleasesReservation(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", ctx, model.SettingInjectionCost).Return("", model.ErrSettingNotFound)
	mockUserRepo.On("DebitIfSufficient", ctx, int64(1), int64(1000)).Return(true, nil)
	mockInjector.On("Inject", mock.Anything, "lv_gtr35_nismo", "session-token").Return(nil, errors.New("injection pool stopped"))
	mockUserRepo.On("Credit", mock.Anything, int64(1), int64(1000)).Return(true, nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "dispatch injection")
	mockInjectionRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestExecuteInjection_SuccessAuditInsertFails(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockLiveryRepo.On("Get", ctx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", ctx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", ctx, model.SettingInjectionCost).Return("", model.ErrSettingNotFound)
	mockUserRepo.On("DebitIfSufficient", ctx, int64(1), int64(1000)).Return(true, nil)
	mockInjector.On("Inject", mock.Anything, "lv_gtr35_nismo", "session-token").Return(&playfab.Outcome{Success: true, ItemInstanceID: "inst-1"}, nil)
	mockInjectionRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(ctx, 1, "lv_gtr35_nismo")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "record injection")
	// No refund on a granted injection; the charge stands even when the audit
	// row could not be written.
	mockUserRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteInjection_CallerDisconnect_StillRefundsAndAudits(t *testing.T) {
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	// The request context dies while the external call is in flight, the way
	// gin cancels it when the HTTP client disconnects.
	reqCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	liveCtx := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })

	mockLiveryRepo.On("Get", reqCtx, "lv_gtr35_nismo").Return(testLivery(), nil)
	mockUserRepo.On("Get", reqCtx, int64(1)).Return(testUser(), nil)
	mockSettingsRepo.On("Get", reqCtx, model.SettingInjectionCost).Return("", model.ErrSettingNotFound)
	mockUserRepo.On("DebitIfSufficient", reqCtx, int64(1), int64(1000)).Return(true, nil)
	mockInjector.On("Inject", liveCtx, "lv_gtr35_nismo", "session-token").
		Run(func(args mock.Arguments) { cancel() }).
		Return(&playfab.Outcome{
			Success:      false,
			FailureKind:  playfab.FailureTimeout,
			ErrorMessage: "request timeout",
		}, nil)
	// The refund and the audit row land on an uncancelled context; if they ran
	// on the request context the matcher would reject them and the mocks would
	// report the calls missing.
	mockUserRepo.On("Credit", liveCtx, int64(1), int64(1000)).Return(true, nil)
	mockInjectionRepo.On("Insert", liveCtx, mock.MatchedBy(func(attempt *model.InjectionAttempt) bool {
		return attempt.Status == model.InjectionFailed
	})).Return(nil)
	mockUserRepo.On("GetBalance", liveCtx, int64(1)).Return(int64(5000), nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	result, err := service.Execute(reqCtx, 1, "lv_gtr35_nismo")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.False(t, result.RefundFailed)
	assert.Equal(t, int64(5000), result.NewBalance)
}

func TestInjectionStats(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockUserRepo.On("GetBalance", ctx, int64(1)).Return(int64(3000), nil)
	mockInjectionRepo.On("CountSuccessfulToday", ctx, int64(1)).Return(int64(2), nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	stats, err := service.Stats(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(3000), stats.Points)
	assert.Equal(t, int64(2), stats.SuccessfulToday)
}

func TestSetInjectionCost(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	mockSettingsRepo.On("Set", ctx, model.SettingInjectionCost, "750", int64(99)).Return(nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	require.NoError(t, service.SetCost(ctx, 750, 99))

	err := service.SetCost(ctx, 0, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestInjectionHistory(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := repomocks.NewUserRepository(t)
	mockLiveryRepo := repomocks.NewLiveryRepository(t)
	mockInjectionRepo := repomocks.NewInjectionRepository(t)
	mockSettingsRepo := repomocks.NewSettingsRepository(t)
	mockInjector := svcmocks.NewInjector(t)

	attempts := []*model.InjectionAttempt{
		{ID: 2, TelegramID: 1, LiveryID: "lv_b", Status: model.InjectionFailed},
		{ID: 1, TelegramID: 1, LiveryID: "lv_a", Status: model.InjectionSuccess},
	}
	mockInjectionRepo.On("ListByUser", ctx, int64(1), 20).Return(attempts, nil)

	service := NewInjectionService(mockUserRepo, mockLiveryRepo, mockInjectionRepo, mockSettingsRepo, mockInjector, defaultInjectionCost, logger)

	got, err := service.History(ctx, 1, 20)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "lv_b", got[0].LiveryID)
}
