// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kundelik/internal/config"
	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/models"
)

type staticSession struct {
	mu sync.Mutex
	s  models.Session
}

func (f *staticSession) Current() models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.s
}

var authed = models.Session{Token: "jwt-token", User: models.User{ID: 1, Username: "aru"}}

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string, session models.Session) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{
		HTTPAddress:    serverURL + "/api",
		RequestTimeout: 2 * time.Second,
		RetryCount:     2,
		RetryWait:      time.Millisecond,
	}

	a, err := NewHTTPServerAdapter(cfg, &staticSession{s: session}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Login / Register ────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login is never authenticated")

		var body models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.LoginRequest{Email: "aru@example.kz", Password: "secret1"}, body)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": "new-token",
			"user":         map[string]any{"id": 9, "username": "aru"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, authed)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "aru@example.kz", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "new-token", got.AccessToken)
	assert.Equal(t, int64(9), got.User.ID)
	assert.True(t, got.Session().IsAuthenticated())
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"user": map[string]any{"id": 9}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, models.Session{}).Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email already exists"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, models.Session{}).
		Register(context.Background(), models.RegisterRequest{Username: "aru", Email: "a@b.kz", Password: "secret1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email already exists")
}

// ── Authorization header ────────────────────────────────────────────────────

func TestFetch_AttachesBearerOnlyWhenAuthenticated(t *testing.T) {
	tests := []struct {
		name       string
		session    models.Session
		wantHeader string
	}{
		{name: "authenticated", session: authed, wantHeader: "Bearer jwt-token"},
		{name: "no session", session: models.Session{}, wantHeader: ""},
		{name: "token without user", session: models.Session{Token: "orphan"}, wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantHeader, r.Header.Get("Authorization"))
				assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
				writeJSON(t, w, http.StatusOK, models.WaterResponse{TotalIntake: 1})
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL, tt.session).FetchWater(context.Background())
			require.NoError(t, err)
		})
	}
}

// ── Tracker endpoints ───────────────────────────────────────────────────────

func TestEndpoints_MethodsPathsAndBodies(t *testing.T) {
	type call struct {
		method, path, body string
	}
	var (
		mu    sync.Mutex
		calls []call
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, call{r.Method, r.URL.Path, string(b)})
		mu.Unlock()

		switch r.URL.Path {
		case "/api/water/add":
			writeJSON(t, w, http.StatusOK, map[string]any{"total_intake": 750})
		case "/api/sleep/start":
			writeJSON(t, w, http.StatusOK, map[string]any{"start_time": "2026-03-01T22:00:00Z"})
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv.URL, authed)

	added, err := a.AddWater(ctx, models.AddWaterRequest{Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, 750, added.TotalIntake)

	started, err := a.StartSleep(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC), started.StartTime.UTC())

	calories := 500
	mealTime := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	weight := 70.5

	require.NoError(t, a.ResetWater(ctx))
	require.NoError(t, a.EndSleep(ctx))
	require.NoError(t, a.ResetSleep(ctx))
	require.NoError(t, a.UpdateMeal(ctx, models.UpdateMealRequest{MealID: 2, Calories: &calories, Time: &mealTime}))
	require.NoError(t, a.ResetNutrition(ctx))
	require.NoError(t, a.UpdateProgress(ctx, models.UpdateProgressRequest{CurrentWeight: &weight, AddEntry: true}))
	require.NoError(t, a.ResetProgress(ctx))

	want := []call{
		{http.MethodPost, "/api/water/add", `{"amount":250}`},
		{http.MethodPost, "/api/sleep/start", `{}`},
		{http.MethodPost, "/api/water/reset", `{}`},
		{http.MethodPost, "/api/sleep/end", `{}`},
		{http.MethodPost, "/api/sleep/reset", `{}`},
		{http.MethodPost, "/api/nutrition/update", `{"meal_id":2,"calories":500,"time":"2026-03-01T08:30:00Z"}`},
		{http.MethodPost, "/api/nutrition/reset", `{}`},
		{http.MethodPost, "/api/progress/update", `{"current_weight":70.5,"add_entry":true}`},
		{http.MethodPost, "/api/progress/reset", `{}`},
	}
	require.Len(t, calls, len(want))
	for i := range want {
		assert.Equal(t, want[i].method, calls[i].method)
		assert.Equal(t, want[i].path, calls[i].path)
		assert.JSONEq(t, want[i].body, calls[i].body, want[i].path)
	}
}

func TestFetchEndpoints_Decode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/api/sleep":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"history":       []map[string]any{{"start": "2026-03-01T22:00:00Z", "end": "2026-03-02T06:00:00Z", "duration": "ignored"}},
				"current_sleep": "2026-03-02T22:00:00Z",
			})
		case "/api/nutrition":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"meals":      []map[string]any{{"id": 1, "name": "Таңғы ас", "calories": 300, "time": nil}},
				"daily_goal": 1800,
			})
		case "/api/progress":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"current_weight": 80, "goal_weight": 72, "height": 180, "weight": 81,
				"history": []map[string]any{{"date": "2026-03-01T00:00:00Z", "current_weight": 80, "goal_weight": 72}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv.URL, authed)

	sleep, err := a.FetchSleep(ctx)
	require.NoError(t, err)
	require.Len(t, sleep.History, 1)
	require.NotNil(t, sleep.CurrentSleep)

	nutrition, err := a.FetchNutrition(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1800, nutrition.DailyGoal)
	assert.Nil(t, nutrition.Meals[0].Time)

	progress, err := a.FetchProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, "25.0", models.ProgressRecordFromAPI(progress).Measurements.BMIString())
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, authed).FetchWater(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── Status mapping ──────────────────────────────────────────────────────────

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrBadRequest},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL, authed).EndSleep(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── Retries ─────────────────────────────────────────────────────────────────

// TestRetry_GetIsRetriedOn5xx проверяет, что GET повторяется и сохраняет
// один и тот же X-Request-ID.
func TestRetry_GetIsRetriedOn5xx(t *testing.T) {
	var hits atomic.Int32
	ids := make(chan string, 3)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids <- r.Header.Get(RequestIDHeader)
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(t, w, http.StatusOK, models.WaterResponse{TotalIntake: 500, DailyGoal: 2000})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, authed).FetchWater(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500, got.TotalIntake)
	assert.Equal(t, int32(3), hits.Load())

	first := <-ids
	assert.Equal(t, first, <-ids)
	assert.Equal(t, first, <-ids)
}

// TestRetry_MutationIsNeverRetried: повтор POST /water/add удвоил бы запись в истории.
func TestRetry_MutationIsNeverRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, authed).AddWater(context.Background(), models.AddWaterRequest{Amount: 250})
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, int32(1), hits.Load())
}

// ── Transport ───────────────────────────────────────────────────────────────

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, authed)
	_, err := a.FetchWater(context.Background())
	assert.ErrorIs(t, err, ErrTransport)

	err = a.ResetWater(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestAdapter(t, srv.URL, authed).EndSleep(ctx)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://127.0.0.1:5000/api/", want: "http://127.0.0.1:5000/api"},
		{in: " localhost:5000 ", want: "http://localhost:5000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, &staticSession{}, logger.Nop())
	assert.Error(t, err)
}

func TestRateLimiter_SpacesRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second, RateLimit: 20, RateBurst: 1}
	a, err := NewHTTPServerAdapter(cfg, &staticSession{s: authed}, logger.Nop())
	require.NoError(t, err)

	start := time.Now()
	for range 3 {
		require.NoError(t, a.ResetWater(context.Background()))
	}
	// burst 1 at 20 rps: the 2nd and 3rd requests wait ~50ms each
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}
