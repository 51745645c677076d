// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/models"
)

const (
	tokenIssuer = "kundelik-apitest"
	tokenTTL    = time.Hour
)

// account is everything the API stores for one user.
type account struct {
	user         models.User
	passwordHash []byte

	water     models.WaterResponse
	sleep     models.SleepResponse
	nutrition models.NutritionResponse
	progress  models.ProgressResponse
}

// Server is a running in-memory API. Its URL already includes the /api
// prefix.
type Server struct {
	URL string

	srv     *httptest.Server
	logger  *logger.Logger
	signKey string
	now     func() time.Time

	mu       sync.Mutex
	nextID   int64
	accounts map[int64]*account
	byEmail  map[string]int64
	failures map[string][]int
	calls    map[string]int
}

// Option configures a [Server].
type Option func(*Server)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithLogger attaches a logger; requests are not logged by default.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer starts an empty API. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{
		logger:   logger.Nop(),
		signKey:  "apitest-secret",
		now:      time.Now,
		accounts: make(map[int64]*account),
		byEmail:  make(map[string]int64),
		failures: make(map[string][]int),
		calls:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.srv = httptest.NewServer(s.routes())
	s.URL = s.srv.URL + "/api"
	return s
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// FailNext makes the next request to method+path (for example
// "POST /api/water/add") answer with status instead of being served.
// Repeated calls queue several failures.
func (s *Server) FailNext(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = append(s.failures[route], status)
}

// Calls returns how many requests reached method+path, failed ones included.
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// IssueToken signs a token for userID as /login would.
func (s *Server) IssueToken(userID int64) (string, error) {
	return newToken(userID, s.signKey)
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID)
	router.Use(s.withLogging)
	router.Use(s.withInjectedFailures)

	router.Route("/api", func(r chi.Router) {
		r.Post("/register", s.register)
		r.Post("/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.auth)

			r.Get("/water", s.getWater)
			r.Post("/water/add", s.addWater)
			r.Post("/water/reset", s.resetWater)

			r.Get("/sleep", s.getSleep)
			r.Post("/sleep/start", s.startSleep)
			r.Post("/sleep/end", s.endSleep)
			r.Post("/sleep/reset", s.resetSleep)

			r.Get("/nutrition", s.getNutrition)
			r.Post("/nutrition/update", s.updateMeal)
			r.Post("/nutrition/reset", s.resetNutrition)

			r.Get("/progress", s.getProgress)
			r.Post("/progress/update", s.updateProgress)
			r.Post("/progress/reset", s.resetProgress)
		})
	})

	return router
}

func newAccount(user models.User, passwordHash []byte) *account {
	return &account{
		user:         user,
		passwordHash: passwordHash,
		water:        emptyWater(),
		sleep:        models.SleepResponse{History: []models.SleepHistoryItem{}},
		nutrition:    emptyNutrition(),
		progress:     models.ProgressResponse{History: []models.ProgressHistoryItem{}},
	}
}

func emptyWater() models.WaterResponse {
	return models.WaterResponse{DailyGoal: models.DefaultWaterGoalMl, History: []models.WaterHistoryItem{}}
}

func emptyNutrition() models.NutritionResponse {
	resp := models.NutritionResponse{DailyGoal: models.DefaultCalorieGoal}
	for _, m := range models.DefaultMeals() {
		resp.Meals = append(resp.Meals, models.MealItem{ID: m.ID, Name: m.Name})
	}
	return resp
}
