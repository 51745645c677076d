// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/utils"
	"github.com/MKhiriev/kundelik/models"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Деректер жіберілмеді", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.WriteError(w, "Барлық өрістер міндетті", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		log.Err(err).Msg("hash password")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	email := strings.ToLower(req.Email)

	s.mu.Lock()
	if _, exists := s.byEmail[email]; exists {
		s.mu.Unlock()
		utils.WriteError(w, "Бұл email тіркелген", http.StatusConflict)
		return
	}
	s.nextID++
	user := models.User{ID: s.nextID, Username: req.Username, Email: req.Email}
	s.accounts[user.ID] = newAccount(user, hash)
	s.byEmail[email] = user.ID
	s.mu.Unlock()

	s.writeSession(w, user, http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "Деректер жіберілмеді", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	var acc *account
	if id, ok := s.byEmail[strings.ToLower(req.Email)]; ok {
		acc = s.accounts[id]
	}
	s.mu.Unlock()

	if acc == nil || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		utils.WriteError(w, "Email немесе құпия сөз қате", http.StatusUnauthorized)
		return
	}

	s.writeSession(w, acc.user, http.StatusOK)
}

func (s *Server) writeSession(w http.ResponseWriter, user models.User, status int) {
	token, err := newToken(user.ID, s.signKey)
	if err != nil {
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_, _ = utils.WriteJSON(w, models.AuthResponse{AccessToken: token, User: user}, status)
}

// withAccount runs f on the caller's account while holding the lock.
func (s *Server) withAccount(r *http.Request, f func(acc *account)) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.accounts[userID])
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

func ok(w http.ResponseWriter) {
	_, _ = utils.WriteJSON(w, map[string]string{"message": "ok"}, http.StatusOK)
}

// ── water ────────────────────────────────────────────────────────────────────

func (s *Server) getWater(w http.ResponseWriter, r *http.Request) {
	var resp models.WaterResponse
	s.withAccount(r, func(acc *account) {
		resp = acc.water
		resp.History = slices.Clone(acc.water.History)
	})
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (s *Server) addWater(w http.ResponseWriter, r *http.Request) {
	var req models.AddWaterRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Amount < 0 {
		utils.WriteError(w, "amount must not be negative", http.StatusBadRequest)
		return
	}

	var total int
	s.withAccount(r, func(acc *account) {
		acc.water.TotalIntake += req.Amount
		acc.water.History = append(acc.water.History, models.WaterHistoryItem{Date: s.now(), Amount: req.Amount})
		total = acc.water.TotalIntake
	})
	_, _ = utils.WriteJSON(w, models.AddWaterResponse{TotalIntake: total}, http.StatusOK)
}

func (s *Server) resetWater(w http.ResponseWriter, r *http.Request) {
	s.withAccount(r, func(acc *account) {
		goal := acc.water.DailyGoal
		acc.water = emptyWater()
		acc.water.DailyGoal = goal
	})
	ok(w)
}

// ── sleep ────────────────────────────────────────────────────────────────────

func (s *Server) getSleep(w http.ResponseWriter, r *http.Request) {
	var resp models.SleepResponse
	s.withAccount(r, func(acc *account) {
		resp = acc.sleep
		resp.History = slices.Clone(acc.sleep.History)
	})
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (s *Server) startSleep(w http.ResponseWriter, r *http.Request) {
	var (
		resp   models.StartSleepResponse
		active bool
	)
	s.withAccount(r, func(acc *account) {
		if acc.sleep.CurrentSleep != nil {
			active = true
			return
		}
		start := s.now()
		acc.sleep.CurrentSleep = &start
		resp.StartTime = start
	})
	if active {
		utils.WriteError(w, "sleep already started", http.StatusBadRequest)
		return
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (s *Server) endSleep(w http.ResponseWriter, r *http.Request) {
	var active bool
	s.withAccount(r, func(acc *account) {
		if acc.sleep.CurrentSleep == nil {
			return
		}
		active = true
		entry := models.NewSleepEntry(*acc.sleep.CurrentSleep, s.now())
		acc.sleep.History = append(acc.sleep.History, models.SleepHistoryItem{Start: entry.Start, End: entry.End, Duration: entry.Duration})
		acc.sleep.CurrentSleep = nil
	})
	if !active {
		utils.WriteError(w, "no active sleep", http.StatusBadRequest)
		return
	}
	ok(w)
}

func (s *Server) resetSleep(w http.ResponseWriter, r *http.Request) {
	s.withAccount(r, func(acc *account) {
		acc.sleep = models.SleepResponse{History: []models.SleepHistoryItem{}}
	})
	ok(w)
}

// ── nutrition ────────────────────────────────────────────────────────────────

func (s *Server) getNutrition(w http.ResponseWriter, r *http.Request) {
	var resp models.NutritionResponse
	s.withAccount(r, func(acc *account) {
		resp = acc.nutrition
		resp.Meals = slices.Clone(acc.nutrition.Meals)
	})
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (s *Server) updateMeal(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMealRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Calories != nil && *req.Calories < 0 {
		utils.WriteError(w, "calories must not be negative", http.StatusBadRequest)
		return
	}

	var found bool
	s.withAccount(r, func(acc *account) {
		idx := slices.IndexFunc(acc.nutrition.Meals, func(m models.MealItem) bool { return m.ID == req.MealID })
		if idx < 0 {
			return
		}
		found = true
		if req.Calories != nil {
			acc.nutrition.Meals[idx].Calories = *req.Calories
		}
		if req.Time != nil {
			t := *req.Time
			acc.nutrition.Meals[idx].Time = &t
		}
	})
	if !found {
		utils.WriteError(w, "meal not found", http.StatusNotFound)
		return
	}
	ok(w)
}

func (s *Server) resetNutrition(w http.ResponseWriter, r *http.Request) {
	s.withAccount(r, func(acc *account) {
		goal := acc.nutrition.DailyGoal
		acc.nutrition = emptyNutrition()
		acc.nutrition.DailyGoal = goal
	})
	ok(w)
}

// ── progress ─────────────────────────────────────────────────────────────────

func (s *Server) getProgress(w http.ResponseWriter, r *http.Request) {
	var resp models.ProgressResponse
	s.withAccount(r, func(acc *account) {
		resp = acc.progress
		resp.History = slices.Clone(acc.progress.History)
	})
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (s *Server) updateProgress(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProgressRequest
	if !decode(w, r, &req) {
		return
	}

	s.withAccount(r, func(acc *account) {
		p := &acc.progress
		if req.CurrentWeight != nil {
			p.CurrentWeight = *req.CurrentWeight
		}
		if req.GoalWeight != nil {
			p.GoalWeight = *req.GoalWeight
		}
		if req.Height != nil {
			p.Height = *req.Height
		}
		if req.Weight != nil {
			p.Weight = *req.Weight
		}
		if req.AddEntry {
			p.History = append(p.History, models.ProgressHistoryItem{
				Date:          s.now(),
				CurrentWeight: p.CurrentWeight,
				GoalWeight:    p.GoalWeight,
			})
		}
	})
	ok(w)
}

func (s *Server) resetProgress(w http.ResponseWriter, r *http.Request) {
	s.withAccount(r, func(acc *account) {
		acc.progress = models.ProgressResponse{History: []models.ProgressHistoryItem{}}
	})
	ok(w)
}
