// Package playfab performs the two-phase cloud-script call that applies a livery
// to a user's game account: grant the item, then bind the custom data to the
// granted instance. The external system is append-only; a phase-2 failure leaves
// the granted item in place and is reported as an overall failure.
package playfab

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"livery-points/internal/config"

	"github.com/rs/zerolog"
)

type FailureKind string

const (
	FailureTimeout         FailureKind = "timeout"
	FailureConnection      FailureKind = "connection_error"
	FailureTransport       FailureKind = "request_error"
	FailureMissingInstance FailureKind = "missing_item_instance_id"
	FailureGeneric         FailureKind = "error"
)

// Outcome is the tagged result of one injection attempt. Success carries the
// granted instance id and wall-clock latency; failure carries the classified
// reason and, for a missing instance id, the raw grant response for diagnostics.
type Outcome struct {
	Success        bool            `json:"success"`
	ItemInstanceID string          `json:"itemInstanceId,omitempty"`
	ItemID         string          `json:"itemId,omitempty"`
	GrantStatus    int             `json:"response1_status,omitempty"`
	UploadStatus   int             `json:"response2_status,omitempty"`
	LatencyMs      int64           `json:"execution_time_ms,omitempty"`
	FailureKind    FailureKind     `json:"failure_kind,omitempty"`
	ErrorMessage   string          `json:"error,omitempty"`
	RawResponse    json.RawMessage `json:"response,omitempty"`
}

type cloudScriptRequest struct {
	CustomTags              any    `json:"CustomTags"`
	FunctionName            string `json:"FunctionName"`
	FunctionParameter       any    `json:"FunctionParameter"`
	GeneratePlayStreamEvent bool   `json:"GeneratePlayStreamEvent"`
}

type cloudScriptResponse struct {
	Data struct {
		FunctionResult map[string]any `json:"FunctionResult"`
	} `json:"data"`
}

// grantShapes are the known response shapes for the grant call, tried in priority
// order. Adding a future shape is a pure addition to this slice.
var grantShapes = []func(fr map[string]any) (instanceID, itemID string, ok bool){
	listShape("grantedItems"),
	listShape("ItemGrantResults"),
	flatShape,
}

func listShape(key string) func(map[string]any) (string, string, bool) {
	return func(fr map[string]any) (string, string, bool) {
		items, _ := fr[key].([]any)
		if len(items) == 0 {
			return "", "", false
		}
		first, _ := items[0].(map[string]any)
		instanceID, _ := first["ItemInstanceId"].(string)
		itemID, _ := first["ItemId"].(string)
		return instanceID, itemID, instanceID != ""
	}
}

func flatShape(fr map[string]any) (string, string, bool) {
	instanceID, _ := fr["itemInstanceId"].(string)
	itemID, _ := fr["itemId"].(string)
	return instanceID, itemID, instanceID != ""
}

type Client struct {
	url          string
	phaseTimeout time.Duration
	httpClient   *http.Client
	logger       zerolog.Logger
}

func NewClient(cfg config.InjectionConfig, logger zerolog.Logger) *Client {
	return &Client{
		url:          cfg.PlayfabURL + "?sdk=UnitySDK-2.212.250428&engine=6000.1.5f1&platform=Android",
		phaseTimeout: cfg.PhaseTimeout,
		httpClient:   &http.Client{},
		logger:       logger,
	}
}

// Inject grants itemID to the account behind credential and uploads its custom
// data. Exactly one attempt; each phase is bounded by the configured timeout.
func (c *Client) Inject(ctx context.Context, itemID, credential string) (*Outcome, error) {
	start := time.Now()

	grantBody, grantStatus, err := c.call(ctx, credential, cloudScriptRequest{
		FunctionName:      "ExecuteGrantItems",
		FunctionParameter: map[string]any{"itemIds": []string{itemID}},
	})
	if err != nil {
		return failure(classify(err)), nil
	}

	var grantResp cloudScriptResponse
	if err := json.Unmarshal(grantBody, &grantResp); err != nil {
		return failure(FailureGeneric, fmt.Sprintf("malformed grant response: %v", err)), nil
	}

	instanceID, grantedItemID := extractGrant(grantResp.Data.FunctionResult)
	if instanceID == "" {
		out := failure(FailureMissingInstance, "missing itemInstanceId in response")
		out.RawResponse = grantBody
		return out, nil
	}
	if grantedItemID == "" {
		grantedItemID = itemID
	}

	_, uploadStatus, err := c.call(ctx, credential, cloudScriptRequest{
		FunctionName: "UploadCustomDataWithItem",
		FunctionParameter: map[string]any{
			"itemInstanceId": instanceID,
			"itemId":         grantedItemID,
		},
	})
	if err != nil {
		return failure(classify(err)), nil
	}

	latency := time.Since(start).Milliseconds()
	c.logger.Debug().
		Str("item_id", grantedItemID).
		Str("item_instance_id", instanceID).
		Int64("latency_ms", latency).
		Msg("injection completed")

	return &Outcome{
		Success:        true,
		ItemInstanceID: instanceID,
		ItemID:         grantedItemID,
		GrantStatus:    grantStatus,
		UploadStatus:   uploadStatus,
		LatencyMs:      latency,
	}, nil
}

func extractGrant(functionResult map[string]any) (instanceID, itemID string) {
	for _, match := range grantShapes {
		if instanceID, itemID, ok := match(functionResult); ok {
			return instanceID, itemID
		}
	}
	return "", ""
}

func (c *Client) call(ctx context.Context, credential string, payload cloudScriptRequest) ([]byte, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal payload: %w", err)
	}

	phaseCtx, cancel := context.WithTimeout(ctx, c.phaseTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(phaseCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "UnityPlayer/6000.1.5f1 (UnityWebRequest/1.0, libcurl/8.10.1-DEV)")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-ReportErrorAsSuccess", "true")
	req.Header.Set("X-PlayFabSDK", "UnitySDK-2.212.250428")
	req.Header.Set("X-Authorization", credential)
	req.Header.Set("X-Unity-Version", "6000.1.5f1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, &statusError{code: resp.StatusCode, function: payload.FunctionName}
	}
	return respBody, resp.StatusCode, nil
}

type statusError struct {
	code     int
	function string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.function, e.code)
}

func classify(err error) (FailureKind, string) {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return FailureTimeout, "request timeout"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return FailureTransport, statusErr.Error()
	}
	if errors.Is(err, context.Canceled) {
		return FailureGeneric, "request cancelled"
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return FailureConnection, "connection error"
	}
	return FailureGeneric, err.Error()
}

func failure(kind FailureKind, message string) *Outcome {
	return &Outcome{FailureKind: kind, ErrorMessage: message}
}
