package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgressEntry is a body-composition snapshot logged by a user.
type ProgressEntry struct {
	ID           string     `json:"id" gorm:"primary_key"`
	UserID       string     `json:"user_id" gorm:"index;not null"`
	Date         time.Time  `json:"date" gorm:"index"`
	Weight       *float64   `json:"weight,omitempty"`
	MuscleMass   *float64   `json:"muscle_mass,omitempty"`
	BodyFat      *float64   `json:"body_fat,omitempty"`
	Measurements FloatMap   `json:"measurements" gorm:"type:text"`
	Photos       StringList `json:"photos" gorm:"type:text"` // base64 encoded images
	Notes        string     `json:"notes"`
}

// NewProgressEntry creates an entry dated now for the given user.
func NewProgressEntry(userID string) *ProgressEntry {
	return &ProgressEntry{
		ID:     uuid.New().String(),
		UserID: userID,
		Date:   time.Now().UTC(),
	}
}

// DefaultWaterGoalML is the daily hydration target when none is supplied.
const DefaultWaterGoalML = 2000

// WaterIntake is one logged drink.
type WaterIntake struct {
	ID       string    `json:"id" gorm:"primary_key"`
	UserID   string    `json:"user_id" gorm:"index;not null"`
	Date     time.Time `json:"date" gorm:"index"`
	AmountML float64   `json:"amount_ml"`
	GoalML   float64   `json:"goal_ml"`
}

// NewWaterIntake creates an intake record dated now.
func NewWaterIntake(userID string, amountML, goalML float64) *WaterIntake {
	if goalML <= 0 {
		goalML = DefaultWaterGoalML
	}
	return &WaterIntake{
		ID:       uuid.New().String(),
		UserID:   userID,
		Date:     time.Now().UTC(),
		AmountML: amountML,
		GoalML:   goalML,
	}
}
