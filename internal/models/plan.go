package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// Plan generation lifecycle.
const (
	PlanStatusPending = "pending"
	PlanStatusReady   = "ready"
	PlanStatusFailed  = "failed"
)

// MealFood is one portioned food inside a meal.
type MealFood struct {
	Name  string  `json:"name"`
	Grams float64 `json:"grams"`
}

// Meal is a single meal inside a nutrition plan day.
type Meal struct {
	Name          string     `json:"name"`
	MealType      string     `json:"meal_type"` // breakfast, lunch, dinner, snack
	Foods         []MealFood `json:"foods"`
	TotalCalories float64    `json:"total_calories"`
	TotalProtein  float64    `json:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs"`
	TotalFat      float64    `json:"total_fat"`
	Instructions  string     `json:"instructions,omitempty"`
}

// MealSchedule maps a day name to the meals planned for that day.
type MealSchedule map[string][]Meal

func (s MealSchedule) Value() (driver.Value, error) { return jsonValue(map[string][]Meal(s)) }
func (s *MealSchedule) Scan(src interface{}) error  { return jsonScan(src, s) }

// NutritionPlan is one generated week of meals for a user.
type NutritionPlan struct {
	ID            string       `json:"id" gorm:"primary_key"`
	UserID        string       `json:"user_id" gorm:"index;not null"`
	WeekNumber    int          `json:"week_number"`
	DailyCalories float64      `json:"daily_calories"`
	Status        string       `json:"status"`
	Meals         MealSchedule `json:"meals" gorm:"type:text"`
	CreatedAt     time.Time    `json:"created_at"`
}

// NewNutritionPlan creates a pending plan awaiting generation.
func NewNutritionPlan(userID string, week int, dailyCalories float64) *NutritionPlan {
	return &NutritionPlan{
		ID:            uuid.New().String(),
		UserID:        userID,
		WeekNumber:    week,
		DailyCalories: dailyCalories,
		Status:        PlanStatusPending,
		Meals:         MealSchedule{},
		CreatedAt:     time.Now().UTC(),
	}
}

// SessionExercise is one exercise prescription inside a workout session.
type SessionExercise struct {
	Name            string `json:"name"`
	Sets            int    `json:"sets,omitempty"`
	Reps            int    `json:"reps,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

// WorkoutSession is one day's training inside a workout plan.
type WorkoutSession struct {
	Name          string            `json:"name"`
	Exercises     []SessionExercise `json:"exercises"`
	TotalDuration int               `json:"total_duration"`
	Difficulty    string            `json:"difficulty"`
	FocusAreas    []string          `json:"focus_areas"`
}

// SessionSchedule maps a day name to that day's session.
type SessionSchedule map[string]WorkoutSession

func (s SessionSchedule) Value() (driver.Value, error) {
	return jsonValue(map[string]WorkoutSession(s))
}
func (s *SessionSchedule) Scan(src interface{}) error { return jsonScan(src, s) }

// WorkoutPlan is one generated week of training for a user.
type WorkoutPlan struct {
	ID         string          `json:"id" gorm:"primary_key"`
	UserID     string          `json:"user_id" gorm:"index;not null"`
	WeekNumber int             `json:"week_number"`
	Status     string          `json:"status"`
	Sessions   SessionSchedule `json:"sessions" gorm:"type:text"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewWorkoutPlan creates a pending plan awaiting generation.
func NewWorkoutPlan(userID string, week int) *WorkoutPlan {
	return &WorkoutPlan{
		ID:         uuid.New().String(),
		UserID:     userID,
		WeekNumber: week,
		Status:     PlanStatusPending,
		Sessions:   SessionSchedule{},
		CreatedAt:  time.Now().UTC(),
	}
}
