// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/kundelik/internal/config"
	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/utils"
	"github.com/MKhiriev/kundelik/models"
)

// RequestIDHeader carries the UUIDv7 generated for every outgoing request.
const RequestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	auth   *AuthRequestBuilder

	limiter *rate.Limiter
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with:
//   - the resolved base URL and request timeout;
//   - bounded retries with back-off for GET requests only;
//   - a client-side rate limit (wait-based) of adapterCfg.RateLimit req/s;
//   - an X-Request-ID header and a debug log entry for every round trip.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, session SessionReader, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		limiter: newLimiter(adapterCfg.RateLimit, adapterCfg.RateBurst),
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}

	h.client.
		SetRetryCount(adapterCfg.RetryCount).
		SetRetryWaitTime(adapterCfg.RetryWait).
		SetRetryMaxWaitTime(max(adapterCfg.RetryWait*10, time.Second)).
		AddRetryCondition(retryIdempotent).
		OnBeforeRequest(h.beforeRequest).
		OnAfterResponse(h.afterResponse).
		OnError(h.onError)

	h.auth = NewAuthRequestBuilder(h.client, session)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), max(burst, 1))
}

// retryIdempotent allows a retry only for GET requests that failed in
// transport or with a 5xx status. Mutations would duplicate history rows.
func retryIdempotent(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || r.StatusCode() >= http.StatusInternalServerError
}

func (h *httpServerAdapter) beforeRequest(_ *resty.Client, r *resty.Request) error {
	if err := h.limiter.Wait(r.Context()); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	// retries keep the id of the first attempt
	if r.Header.Get(RequestIDHeader) == "" {
		r.SetHeader(RequestIDHeader, h.ids.Generate())
	}
	return nil
}

func (h *httpServerAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("func", "httpServerAdapter.afterResponse").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
		Int("status", resp.StatusCode()).
		Int("attempt", resp.Request.Attempt).
		Dur("elapsed", resp.Time()).
		Msg("round trip")
	return nil
}

func (h *httpServerAdapter) onError(r *resty.Request, err error) {
	h.logger.Warn().
		Err(err).
		Str("func", "httpServerAdapter.onError").
		Str("method", r.Method).
		Str("url", r.URL).
		Str("request_id", r.Header.Get(RequestIDHeader)).
		Msg("request failed")
}

// Register implements [ServerAdapter]. POST /register, unauthenticated.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/register", req)
}

// Login implements [ServerAdapter]. POST /login, unauthenticated.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return out, fmt.Errorf("%w: POST %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = decodeBody(resp, &out); err != nil {
		return out, err
	}
	if out.AccessToken == "" || out.User.IsZero() {
		return models.AuthResponse{}, fmt.Errorf("%w: POST %s: missing token or user", ErrMalformedResponse, path)
	}

	return out, nil
}

// FetchWater implements [ServerAdapter]. GET /water.
func (h *httpServerAdapter) FetchWater(ctx context.Context) (models.WaterResponse, error) {
	var out models.WaterResponse
	return out, h.get(ctx, "/water", &out)
}

// AddWater implements [ServerAdapter]. POST /water/add.
func (h *httpServerAdapter) AddWater(ctx context.Context, req models.AddWaterRequest) (models.AddWaterResponse, error) {
	var out models.AddWaterResponse
	return out, h.post(ctx, "/water/add", req, &out)
}

// ResetWater implements [ServerAdapter]. POST /water/reset.
func (h *httpServerAdapter) ResetWater(ctx context.Context) error {
	return h.post(ctx, "/water/reset", struct{}{}, nil)
}

// FetchSleep implements [ServerAdapter]. GET /sleep.
func (h *httpServerAdapter) FetchSleep(ctx context.Context) (models.SleepResponse, error) {
	var out models.SleepResponse
	return out, h.get(ctx, "/sleep", &out)
}

// StartSleep implements [ServerAdapter]. POST /sleep/start.
func (h *httpServerAdapter) StartSleep(ctx context.Context) (models.StartSleepResponse, error) {
	var out models.StartSleepResponse
	return out, h.post(ctx, "/sleep/start", struct{}{}, &out)
}

// EndSleep implements [ServerAdapter]. POST /sleep/end.
func (h *httpServerAdapter) EndSleep(ctx context.Context) error {
	return h.post(ctx, "/sleep/end", struct{}{}, nil)
}

// ResetSleep implements [ServerAdapter]. POST /sleep/reset.
func (h *httpServerAdapter) ResetSleep(ctx context.Context) error {
	return h.post(ctx, "/sleep/reset", struct{}{}, nil)
}

// FetchNutrition implements [ServerAdapter]. GET /nutrition.
func (h *httpServerAdapter) FetchNutrition(ctx context.Context) (models.NutritionResponse, error) {
	var out models.NutritionResponse
	return out, h.get(ctx, "/nutrition", &out)
}

// UpdateMeal implements [ServerAdapter]. POST /nutrition/update.
func (h *httpServerAdapter) UpdateMeal(ctx context.Context, req models.UpdateMealRequest) error {
	return h.post(ctx, "/nutrition/update", req, nil)
}

// ResetNutrition implements [ServerAdapter]. POST /nutrition/reset.
func (h *httpServerAdapter) ResetNutrition(ctx context.Context) error {
	return h.post(ctx, "/nutrition/reset", struct{}{}, nil)
}

// FetchProgress implements [ServerAdapter]. GET /progress.
func (h *httpServerAdapter) FetchProgress(ctx context.Context) (models.ProgressResponse, error) {
	var out models.ProgressResponse
	return out, h.get(ctx, "/progress", &out)
}

// UpdateProgress implements [ServerAdapter]. POST /progress/update.
func (h *httpServerAdapter) UpdateProgress(ctx context.Context, req models.UpdateProgressRequest) error {
	return h.post(ctx, "/progress/update", req, nil)
}

// ResetProgress implements [ServerAdapter]. POST /progress/reset.
func (h *httpServerAdapter) ResetProgress(ctx context.Context) error {
	return h.post(ctx, "/progress/reset", struct{}{}, nil)
}

func (h *httpServerAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.auth.R(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decodeBody(resp, result)
}

func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) error {
	resp, err := h.auth.R(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	return decodeBody(resp, result)
}

func decodeBody(resp *resty.Response, result any) error {
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, resp.Request.Method, resp.Request.URL, err)
	}
	return nil
}
