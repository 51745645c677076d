// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// DefaultWaterGoalMl is the daily water goal used until the server reports
// another one.
const DefaultWaterGoalMl = 2000

// WaterPresetsMl are the quick-add amounts offered by the water tracker.
var WaterPresetsMl = []int{250, 500, 1000}

// WaterEntry is a single recorded drink.
type WaterEntry struct {
	Timestamp time.Time
	AmountMl  int
}

// WaterLog is the water intake of the current tracked period.
//
// TotalIntake is server-authoritative: it is taken as reported by the API and
// is not recomputed from History after a refetch.
type WaterLog struct {
	TotalIntake int
	DailyGoal   int
	History     []WaterEntry
}

// NewWaterLog returns the zero-value water log.
func NewWaterLog() WaterLog {
	return WaterLog{DailyGoal: DefaultWaterGoalMl, History: []WaterEntry{}}
}

// Clone returns a deep copy of w.
func (w WaterLog) Clone() WaterLog {
	w.History = slices.Clone(w.History)
	if w.History == nil {
		w.History = []WaterEntry{}
	}
	return w
}

// ProgressPercent returns the share of the daily goal reached, capped at 100.
func (w WaterLog) ProgressPercent() float64 {
	if w.DailyGoal <= 0 {
		return 0
	}
	return min(float64(w.TotalIntake)/float64(w.DailyGoal)*100, 100)
}

// WaterHistoryItem is one history row of the remote water resource.
type WaterHistoryItem struct {
	Date   time.Time `json:"date"`
	Amount int       `json:"amount"`
}

// WaterResponse is the body of GET /water.
type WaterResponse struct {
	TotalIntake int                `json:"total_intake"`
	DailyGoal   int                `json:"daily_goal"`
	History     []WaterHistoryItem `json:"history"`
}

// AddWaterRequest is the body of POST /water/add.
type AddWaterRequest struct {
	Amount int `json:"amount"`
}

// AddWaterResponse is the body returned by POST /water/add.
type AddWaterResponse struct {
	TotalIntake int `json:"total_intake"`
}

// WaterLogFromAPI maps the remote representation onto the domain type.
func WaterLogFromAPI(r WaterResponse) WaterLog {
	log := WaterLog{
		TotalIntake: r.TotalIntake,
		DailyGoal:   r.DailyGoal,
		History:     make([]WaterEntry, 0, len(r.History)),
	}
	if log.DailyGoal <= 0 {
		log.DailyGoal = DefaultWaterGoalMl
	}
	for _, h := range r.History {
		log.History = append(log.History, WaterEntry{Timestamp: h.Date, AmountMl: h.Amount})
	}
	return log
}

// LocalWaterEntry is the device-local (camelCase) representation of a drink.
type LocalWaterEntry struct {
	Date   time.Time `json:"date"`
	Amount int       `json:"amount"`
}

// LocalWaterLog is the device-local blob stored under the water key.
type LocalWaterLog struct {
	TotalIntake int               `json:"waterIntake"`
	DailyGoal   int               `json:"dailyGoal"`
	History     []LocalWaterEntry `json:"waterHistory"`
}

// ToLocal maps the domain type onto its device-local blob.
func (w WaterLog) ToLocal() LocalWaterLog {
	local := LocalWaterLog{
		TotalIntake: w.TotalIntake,
		DailyGoal:   w.DailyGoal,
		History:     make([]LocalWaterEntry, 0, len(w.History)),
	}
	for _, e := range w.History {
		local.History = append(local.History, LocalWaterEntry{Date: e.Timestamp, Amount: e.AmountMl})
	}
	return local
}

// WaterLogFromLocal maps a device-local blob onto the domain type.
func WaterLogFromLocal(l LocalWaterLog) WaterLog {
	log := WaterLog{
		TotalIntake: l.TotalIntake,
		DailyGoal:   l.DailyGoal,
		History:     make([]WaterEntry, 0, len(l.History)),
	}
	if log.DailyGoal <= 0 {
		log.DailyGoal = DefaultWaterGoalMl
	}
	for _, e := range l.History {
		log.History = append(log.History, WaterEntry{Timestamp: e.Date, AmountMl: e.Amount})
	}
	return log
}
