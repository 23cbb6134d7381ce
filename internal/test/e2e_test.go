package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"livery-points/internal/config"
	"livery-points/internal/database"
	"livery-points/internal/handler"
	"livery-points/internal/model"
	"livery-points/internal/playfab"
	"livery-points/internal/repository/postgres"
	"livery-points/internal/service"
	"livery-points/internal/worker"

	"github.com/caarlos0/env/v10"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

const (
	testUserID       = int64(900001)
	bareUserID       = int64(900002) // no PlayFab token
	testProductID    = int64(900001)
	testLiveryID     = "lv_e2e_nismo"
	injectionCost    = int64(1000)
	testPlayfabToken = "e2e-session-token"
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	var dbCfg config.DatabaseConfig
	if err := env.Parse(&dbCfg); err != nil {
		fmt.Printf("failed to load database config: %v\n", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(ctx, dbCfg)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	testPool = pool
	os.Exit(m.Run())
}

// fakePlayfabServer mimics the two-phase cloud-script endpoint. Grants for
// failLiveryID come back without an item instance id.
func fakePlayfabServer(failLiveryID string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FunctionName      string         `json:"FunctionName"`
			FunctionParameter map[string]any `json:"FunctionParameter"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		w.Header().Set("Content-Type", "application/json")
		if req.FunctionName != "ExecuteGrantItems" {
			w.Write([]byte(`{"data": {"FunctionResult": {}}}`))
			return
		}

		itemIDs, _ := req.FunctionParameter["itemIds"].([]any)
		if len(itemIDs) == 1 && itemIDs[0] == failLiveryID {
			w.Write([]byte(`{"data": {"FunctionResult": {"Error": "item not in catalog"}}}`))
			return
		}
		w.Write([]byte(`{"data": {"FunctionResult": {"grantedItems": [{"ItemInstanceId": "inst-e2e-1", "ItemId": "` + testLiveryID + `"}]}}}`))
	}))
}

func setupE2E(t *testing.T, playfabURL string, seedPoints int64) *gin.Engine {
	if testPool == nil {
		t.Skip("Database connection not available")
	}

	ctx := context.Background()
	for _, table := range []string{"injections", "transactions"} {
		_, err := testPool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE telegram_id IN ($1, $2)", table), testUserID, bareUserID)
		require.NoError(t, err)
	}
	_, err := testPool.Exec(ctx, "DELETE FROM admin_settings WHERE setting_key = $1", model.SettingInjectionCost)
	require.NoError(t, err)

	_, err = testPool.Exec(ctx, `
		INSERT INTO users (telegram_id, points, playfab_token)
		VALUES ($1, $2, $3), ($4, $2, NULL)
		ON CONFLICT (telegram_id) DO UPDATE
		SET points = EXCLUDED.points,
			playfab_token = EXCLUDED.playfab_token,
			updated_at = NOW()
	`, testUserID, seedPoints, testPlayfabToken, bareUserID)
	require.NoError(t, err)

	_, err = testPool.Exec(ctx, `
		INSERT INTO liveries_cache (livery_id, livery_name, car_code, car_name)
		VALUES ($1, 'E2E Nismo', 'gtr35', 'Nissan GT-R R35')
		ON CONFLICT (livery_id) DO NOTHING
	`, testLiveryID)
	require.NoError(t, err)

	_, err = testPool.Exec(ctx, `
		INSERT INTO products (id, name, points, price_idr, is_active)
		VALUES ($1, 'E2E Pack', 5000, 50000, TRUE)
		ON CONFLICT (id) DO UPDATE SET points = EXCLUDED.points, price_idr = EXCLUDED.price_idr, is_active = TRUE
	`, testProductID)
	require.NoError(t, err)

	logger := zerolog.Nop()
	userRepo := postgres.NewUserRepository(testPool)
	liveryRepo := postgres.NewLiveryRepository(testPool)
	injectionRepo := postgres.NewInjectionRepository(testPool)
	topupRepo := postgres.NewTopupRepository(testPool)
	productRepo := postgres.NewProductRepository(testPool)
	settingsRepo := postgres.NewSettingsRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)

	client := playfab.NewClient(config.InjectionConfig{
		PlayfabURL:   playfabURL,
		PhaseTimeout: 5 * time.Second,
	}, logger)
	pool := worker.NewInjectionPool(client, 5, logger)
	pool.Start()
	t.Cleanup(pool.Stop)

	injectionService := service.NewInjectionService(userRepo, liveryRepo, injectionRepo, settingsRepo, pool, injectionCost, logger)
	pointsService := service.NewPointsService(userRepo, logger)
	topupService := service.NewTopupService(userRepo, topupRepo, productRepo, dbManager, logger)
	catalogService := service.NewCatalogService(liveryRepo, config.CatalogConfig{
		FeedURL:     "http://127.0.0.1:0/unused",
		FeedTimeout: time.Second,
	}, logger)

	h := handler.NewHandler(injectionService, pointsService, topupService, catalogService, logger)
	return h.SetupRoutes()
}

func userPoints(t *testing.T, userID int64) int64 {
	var points int64
	err := testPool.QueryRow(context.Background(), "SELECT points FROM users WHERE telegram_id = $1", userID).Scan(&points)
	require.NoError(t, err)
	return points
}

// Test_ConcurrentInjections_NoDoubleSpend verifies:
// - Concurrent injection requests against one balance
// - The balance covers exactly two injections; exactly two succeed
// - Every other request is rejected with INSUFFICIENT_POINTS before the external call
// - The final balance is never negative and reflects exactly two charges
// - Exactly one audit row per dispatched attempt
func Test_ConcurrentInjections_NoDoubleSpend(t *testing.T) {
	server := fakePlayfabServer("")
	defer server.Close()

	router := setupE2E(t, server.URL, 2*injectionCost+500)

	const numRequests = 10

	reqBody, err := json.Marshal(model.InjectionRequest{UserID: testUserID, LiveryID: testLiveryID})
	require.NoError(t, err)

	barrier := make(chan struct{})

	type result struct {
		statusCode int
		injection  model.InjectionResponse
		errBody    model.ErrorResponse
	}
	results := make(chan result, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()
			<-barrier

			req, _ := http.NewRequest("POST", "/api/v1/injections", bytes.NewBuffer(reqBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			res := result{statusCode: w.Code}
			if w.Code == http.StatusOK {
				json.Unmarshal(w.Body.Bytes(), &res.injection)
			} else {
				json.Unmarshal(w.Body.Bytes(), &res.errBody)
			}
			results <- res
		}()
	}

	close(barrier)
	wg.Wait()
	close(results)

	var successCount, insufficientCount, otherCount int
	for res := range results {
		assert.NotEqual(t, http.StatusInternalServerError, res.statusCode, "No 500 errors")

		switch {
		case res.statusCode == http.StatusOK && res.injection.Status == "success":
			successCount++
		case res.statusCode == http.StatusBadRequest && res.errBody.Code == "INSUFFICIENT_POINTS":
			insufficientCount++
		default:
			otherCount++
			t.Logf("Unexpected response: status=%d, body=%+v %+v", res.statusCode, res.injection, res.errBody)
		}
	}

	assert.Equal(t, 2, successCount, "The balance covers exactly two injections")
	assert.Equal(t, numRequests-2, insufficientCount, "All other requests rejected before the external call")
	assert.Equal(t, 0, otherCount)

	assert.Equal(t, int64(500), userPoints(t, testUserID), "Balance charged exactly twice")

	var auditRows int64
	err = testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM injections WHERE telegram_id = $1", testUserID).Scan(&auditRows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), auditRows, "One audit row per dispatched attempt")
}

// Test_ConcurrentConfirms_CreditAppliedOnce verifies:
// - Concurrent confirmations of the same pending transaction
// - Exactly one confirmation succeeds; the rest get 409
// - The points credit is applied exactly once
func Test_ConcurrentConfirms_CreditAppliedOnce(t *testing.T) {
	server := fakePlayfabServer("")
	defer server.Close()

	router := setupE2E(t, server.URL, 100)

	createBody, _ := json.Marshal(model.TopupCreateRequest{UserID: testUserID, ProductID: testProductID})
	createReq, _ := http.NewRequest("POST", "/api/v1/topups", bytes.NewBuffer(createBody))
	createReq.Header.Set("Content-Type", "application/json")
	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, createReq)
	require.Equal(t, http.StatusCreated, createRec.Code)

	var trans model.Transaction
	require.NoError(t, json.Unmarshal(createRec.Body.Bytes(), &trans))
	confirmURL := fmt.Sprintf("/api/v1/topups/%s/confirm", trans.TransactionUUID)

	const numRequests = 25
	confirmBody, _ := json.Marshal(model.ConfirmRequest{AdminID: 99})

	barrier := make(chan struct{})
	statuses := make(chan int, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()
			<-barrier

			req, _ := http.NewRequest("POST", confirmURL, bytes.NewBuffer(confirmBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			statuses <- w.Code
		}()
	}

	close(barrier)
	wg.Wait()
	close(statuses)

	var confirmedCount, conflictCount, otherCount int
	for code := range statuses {
		switch code {
		case http.StatusOK:
			confirmedCount++
		case http.StatusConflict:
			conflictCount++
		default:
			otherCount++
		}
	}

	assert.Equal(t, 1, confirmedCount, "Exactly one confirmation succeeds")
	assert.Equal(t, numRequests-1, conflictCount, "All other confirmations see a settled transaction")
	assert.Equal(t, 0, otherCount)

	assert.Equal(t, int64(100+5000), userPoints(t, testUserID), "Credit applied exactly once")
}

// Test_InjectionFlow verifies the saga end to end against a fake external backend.
func Test_InjectionFlow(t *testing.T) {
	failLiveryID := "lv_e2e_broken"
	server := fakePlayfabServer(failLiveryID)
	defer server.Close()

	router := setupE2E(t, server.URL, 5000)

	_, err := testPool.Exec(context.Background(), `
		INSERT INTO liveries_cache (livery_id, livery_name, car_code, car_name)
		VALUES ($1, 'E2E Broken', 'gtr35', 'Nissan GT-R R35')
		ON CONFLICT (livery_id) DO NOTHING
	`, failLiveryID)
	require.NoError(t, err)

	post := func(t *testing.T, userID int64, liveryID string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(model.InjectionRequest{UserID: userID, LiveryID: liveryID})
		req, _ := http.NewRequest("POST", "/api/v1/injections", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Successful injection charges the balance", func(t *testing.T) {
		w := post(t, testUserID, testLiveryID)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.InjectionResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, injectionCost, resp.PointsDeducted)
		assert.Equal(t, int64(4000), resp.NewBalance)
		assert.Equal(t, int64(4000), userPoints(t, testUserID))
	})

	t.Run("Failed injection refunds the reservation", func(t *testing.T) {
		w := post(t, testUserID, failLiveryID)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.InjectionResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "failed", resp.Status)
		assert.NotEmpty(t, resp.Error)
		assert.Equal(t, int64(4000), userPoints(t, testUserID), "Reservation credited back")

		var status string
		err := testPool.QueryRow(context.Background(), `
			SELECT status FROM injections
			WHERE telegram_id = $1 AND livery_id = $2
			ORDER BY created_at DESC LIMIT 1
		`, testUserID, failLiveryID).Scan(&status)
		require.NoError(t, err)
		assert.Equal(t, "failed", status)
	})

	t.Run("Missing credential is rejected before any charge", func(t *testing.T) {
		w := post(t, bareUserID, testLiveryID)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp model.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "NO_CREDENTIAL", resp.Code)
		assert.Equal(t, int64(5000), userPoints(t, bareUserID))
	})

	t.Run("Unknown livery returns 404", func(t *testing.T) {
		w := post(t, testUserID, "lv_does_not_exist")

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp model.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "LIVERY_NOT_FOUND", resp.Code)
	})
}
