// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// DefaultCalorieGoal is the daily calorie target used until the server
// reports another one.
const DefaultCalorieGoal = 2000

// MealTimeLayout is the time-of-day format accepted from the user.
const MealTimeLayout = "15:04"

// MealField names an editable field of a meal slot.
type MealField string

const (
	// MealFieldCalories is the calorie count of a meal.
	MealFieldCalories MealField = "calories"
	// MealFieldTime is the time of day the meal was eaten.
	MealFieldTime MealField = "time"
)

// Meal is one fixed meal slot of the day.
type Meal struct {
	ID       int64
	Name     string
	Calories int
	Time     *time.Time
}

// NutritionDay is the set of meal slots of the day and the calorie target.
// TotalCalories is derived from Meals and is never persisted on its own.
type NutritionDay struct {
	Meals         []Meal
	DailyGoal     int
	TotalCalories int
}

// DefaultMeals returns the breakfast, lunch and dinner slots.
func DefaultMeals() []Meal {
	return []Meal{
		{ID: 1, Name: "Таңғы ас"},
		{ID: 2, Name: "Түскі ас"},
		{ID: 3, Name: "Кешкі ас"},
	}
}

// NewNutritionDay returns a day with the default slots and goal.
func NewNutritionDay() NutritionDay {
	day := NutritionDay{Meals: DefaultMeals(), DailyGoal: DefaultCalorieGoal}
	day.Recalculate()
	return day
}

// Recalculate recomputes TotalCalories from the meal slots.
func (n *NutritionDay) Recalculate() {
	total := 0
	for _, m := range n.Meals {
		total += m.Calories
	}
	n.TotalCalories = total
}

// Clone returns a deep copy of n.
func (n NutritionDay) Clone() NutritionDay {
	meals := make([]Meal, len(n.Meals))
	for i, m := range n.Meals {
		if m.Time != nil {
			t := *m.Time
			m.Time = &t
		}
		meals[i] = m
	}
	n.Meals = meals
	return n
}

// Cleared returns the same meal slots with calories and times zeroed, keeping
// the goal. A day without slots gets the default ones.
func (n NutritionDay) Cleared() NutritionDay {
	if len(n.Meals) == 0 {
		n.Meals = DefaultMeals()
	} else {
		meals := make([]Meal, len(n.Meals))
		for i, m := range n.Meals {
			meals[i] = Meal{ID: m.ID, Name: m.Name}
		}
		n.Meals = meals
	}
	if n.DailyGoal <= 0 {
		n.DailyGoal = DefaultCalorieGoal
	}
	n.Recalculate()
	return n
}

// MealIndex returns the position of the meal with the given id, or -1.
func (n NutritionDay) MealIndex(id int64) int {
	return slices.IndexFunc(n.Meals, func(m Meal) bool { return m.ID == id })
}

// ProgressPercent returns the share of the calorie goal reached, capped at 100.
func (n NutritionDay) ProgressPercent() float64 {
	if n.DailyGoal <= 0 {
		return 0
	}
	return min(float64(n.TotalCalories)/float64(n.DailyGoal)*100, 100)
}

// MealItem is one meal of the remote nutrition resource.
type MealItem struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Calories int        `json:"calories"`
	Time     *time.Time `json:"time"`
}

// NutritionResponse is the body of GET /nutrition.
type NutritionResponse struct {
	Meals     []MealItem `json:"meals"`
	DailyGoal int        `json:"daily_goal"`
}

// UpdateMealRequest is the body of POST /nutrition/update. Time is always a
// full timestamp, never a bare time of day.
type UpdateMealRequest struct {
	MealID   int64      `json:"meal_id"`
	Calories *int       `json:"calories,omitempty"`
	Time     *time.Time `json:"time,omitempty"`
}

// NutritionDayFromAPI maps the remote representation onto the domain type.
// TotalCalories is recomputed locally.
func NutritionDayFromAPI(r NutritionResponse) NutritionDay {
	day := NutritionDay{DailyGoal: r.DailyGoal, Meals: make([]Meal, 0, len(r.Meals))}
	if day.DailyGoal <= 0 {
		day.DailyGoal = DefaultCalorieGoal
	}
	for _, m := range r.Meals {
		day.Meals = append(day.Meals, Meal{ID: m.ID, Name: m.Name, Calories: m.Calories, Time: m.Time})
	}
	day.Recalculate()
	return day
}

// LocalMeal is the device-local representation of a meal slot.
type LocalMeal struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Calories int        `json:"calories"`
	Time     *time.Time `json:"time,omitempty"`
}

// LocalNutritionDay is the device-local blob stored under the nutrition key.
type LocalNutritionDay struct {
	Meals            []LocalMeal `json:"nutritionMeals"`
	DailyCalorieGoal int         `json:"dailyCalorieGoal"`
}

// ToLocal maps the domain type onto its device-local blob.
func (n NutritionDay) ToLocal() LocalNutritionDay {
	local := LocalNutritionDay{DailyCalorieGoal: n.DailyGoal, Meals: make([]LocalMeal, 0, len(n.Meals))}
	for _, m := range n.Meals {
		local.Meals = append(local.Meals, LocalMeal{ID: m.ID, Name: m.Name, Calories: m.Calories, Time: m.Time})
	}
	return local
}

// NutritionDayFromLocal maps a device-local blob onto the domain type.
func NutritionDayFromLocal(l LocalNutritionDay) NutritionDay {
	day := NutritionDay{DailyGoal: l.DailyCalorieGoal, Meals: make([]Meal, 0, len(l.Meals))}
	if day.DailyGoal <= 0 {
		day.DailyGoal = DefaultCalorieGoal
	}
	for _, m := range l.Meals {
		day.Meals = append(day.Meals, Meal{ID: m.ID, Name: m.Name, Calories: m.Calories, Time: m.Time})
	}
	day.Recalculate()
	return day
}
