// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"slices"
	"strconv"
	"time"
)

// BMIMissingInput is shown instead of a BMI value when height or weight has
// not been entered.
const BMIMissingInput = "Бой мен салмақ енгізіңіз"

// MeasurementField names an editable body measurement.
type MeasurementField string

const (
	// MeasurementHeight is the body height in centimetres.
	MeasurementHeight MeasurementField = "height"
	// MeasurementWeight is the body weight in kilograms used for BMI.
	MeasurementWeight MeasurementField = "weight"
)

// Measurements are the inputs of the body mass index.
type Measurements struct {
	HeightCm float64
	WeightKg float64
}

// BMI returns weight / height² rounded to one decimal place. ok is false when
// either measurement is missing or not a finite number.
func (m Measurements) BMI() (value float64, ok bool) {
	if !isPositiveFinite(m.HeightCm) || !isPositiveFinite(m.WeightKg) {
		return 0, false
	}
	heightM := m.HeightCm / 100
	bmi := math.Round(m.WeightKg/(heightM*heightM)*10) / 10
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, false
	}
	return bmi, true
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// BMIString formats the BMI with one decimal place, or returns
// [BMIMissingInput].
func (m Measurements) BMIString() string {
	v, ok := m.BMI()
	if !ok {
		return BMIMissingInput
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// ProgressEntry is one explicitly recorded weight snapshot.
type ProgressEntry struct {
	Date          time.Time
	CurrentWeight float64
	GoalWeight    float64
}

// ProgressRecord holds the weight goal, its recorded history and the body
// measurements.
type ProgressRecord struct {
	CurrentWeight float64
	GoalWeight    float64
	History       []ProgressEntry
	Measurements  Measurements
}

// NewProgressRecord returns the zero-value progress record.
func NewProgressRecord() ProgressRecord {
	return ProgressRecord{History: []ProgressEntry{}}
}

// Clone returns a deep copy of p.
func (p ProgressRecord) Clone() ProgressRecord {
	p.History = slices.Clone(p.History)
	if p.History == nil {
		p.History = []ProgressEntry{}
	}
	return p
}

// ProgressHistoryItem is one history row of the remote progress resource.
type ProgressHistoryItem struct {
	Date          time.Time `json:"date"`
	CurrentWeight float64   `json:"current_weight"`
	GoalWeight    float64   `json:"goal_weight"`
}

// ProgressResponse is the body of GET /progress.
type ProgressResponse struct {
	CurrentWeight float64               `json:"current_weight"`
	GoalWeight    float64               `json:"goal_weight"`
	Height        float64               `json:"height"`
	Weight        float64               `json:"weight"`
	History       []ProgressHistoryItem `json:"history"`
}

// UpdateProgressRequest is the body of POST /progress/update. Only non-nil
// fields are changed; AddEntry appends a history row from the weights.
type UpdateProgressRequest struct {
	CurrentWeight *float64 `json:"current_weight,omitempty"`
	GoalWeight    *float64 `json:"goal_weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	AddEntry      bool     `json:"add_entry,omitempty"`
}

// ProgressRecordFromAPI maps the remote representation onto the domain type.
func ProgressRecordFromAPI(r ProgressResponse) ProgressRecord {
	rec := ProgressRecord{
		CurrentWeight: r.CurrentWeight,
		GoalWeight:    r.GoalWeight,
		Measurements:  Measurements{HeightCm: r.Height, WeightKg: r.Weight},
		History:       make([]ProgressEntry, 0, len(r.History)),
	}
	for _, h := range r.History {
		rec.History = append(rec.History, ProgressEntry{Date: h.Date, CurrentWeight: h.CurrentWeight, GoalWeight: h.GoalWeight})
	}
	return rec
}

// LocalProgressEntry is the device-local representation of a history row.
type LocalProgressEntry struct {
	Date          time.Time `json:"date"`
	CurrentWeight float64   `json:"currentWeight"`
	GoalWeight    float64   `json:"goalWeight"`
}

// LocalWeightProgress is the weight part of the local progress blob.
type LocalWeightProgress struct {
	Current float64              `json:"current"`
	Goal    float64              `json:"goal"`
	History []LocalProgressEntry `json:"history"`
}

// LocalBodyMeasurements is the measurement part of the local progress blob.
type LocalBodyMeasurements struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// LocalProgressRecord is the device-local blob stored under the progress key.
type LocalProgressRecord struct {
	WeightProgress   LocalWeightProgress   `json:"weightProgress"`
	BodyMeasurements LocalBodyMeasurements `json:"bodyMeasurements"`
}

// ToLocal maps the domain type onto its device-local blob.
func (p ProgressRecord) ToLocal() LocalProgressRecord {
	local := LocalProgressRecord{
		WeightProgress: LocalWeightProgress{
			Current: p.CurrentWeight,
			Goal:    p.GoalWeight,
			History: make([]LocalProgressEntry, 0, len(p.History)),
		},
		BodyMeasurements: LocalBodyMeasurements{Height: p.Measurements.HeightCm, Weight: p.Measurements.WeightKg},
	}
	for _, e := range p.History {
		local.WeightProgress.History = append(local.WeightProgress.History, LocalProgressEntry{
			Date:          e.Date,
			CurrentWeight: e.CurrentWeight,
			GoalWeight:    e.GoalWeight,
		})
	}
	return local
}

// ProgressRecordFromLocal maps a device-local blob onto the domain type.
func ProgressRecordFromLocal(l LocalProgressRecord) ProgressRecord {
	rec := ProgressRecord{
		CurrentWeight: l.WeightProgress.Current,
		GoalWeight:    l.WeightProgress.Goal,
		Measurements:  Measurements{HeightCm: l.BodyMeasurements.Height, WeightKg: l.BodyMeasurements.Weight},
		History:       make([]ProgressEntry, 0, len(l.WeightProgress.History)),
	}
	for _, e := range l.WeightProgress.History {
		rec.History = append(rec.History, ProgressEntry{Date: e.Date, CurrentWeight: e.CurrentWeight, GoalWeight: e.GoalWeight})
	}
	return rec
}
