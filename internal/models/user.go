package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted by the evaluation and calculators.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Activity levels, ordered from least to most active.
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtremelyActive  = "extremely_active"
)

// Training goals.
const (
	GoalLoseWeight     = "lose_weight"
	GoalMaintainWeight = "maintain_weight"
	GoalGainWeight     = "gain_weight"
	GoalBuildMuscle    = "build_muscle"
	GoalImproveFitness = "improve_fitness"
)

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID             string    `json:"id" gorm:"primary_key"`
	Email          string    `json:"email" gorm:"unique_index;not null"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	TMB            *float64  `json:"tmb,omitempty"`
	DailyCalories  *float64  `json:"daily_calories,omitempty"`

	Evaluation *Evaluation `json:"evaluation,omitempty" gorm:"-"`
}

// NewUser creates a user with a fresh ID.
func NewUser(email, fullName, hashedPassword string) *User {
	return &User{
		ID:             uuid.New().String(),
		Email:          email,
		FullName:       fullName,
		HashedPassword: hashedPassword,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
}

// Evaluation is the onboarding questionnaire that drives the calculators and
// plan generation. One row per user, replaced on resubmission.
type Evaluation struct {
	ID                   string     `json:"-" gorm:"primary_key"`
	UserID               string     `json:"-" gorm:"unique_index;not null"`
	Age                  int        `json:"age"`
	Gender               string     `json:"gender"`
	Weight               float64    `json:"weight"`
	Height               float64    `json:"height"`
	ActivityLevel        string     `json:"activity_level"`
	Goal                 string     `json:"goal"`
	ExperienceLevel      string     `json:"experience_level"`
	HealthConditions     StringList `json:"health_conditions" gorm:"type:text"`
	FoodPreferences      StringList `json:"food_preferences" gorm:"type:text"`
	FoodAllergies        StringList `json:"food_allergies" gorm:"type:text"`
	AvailableDays        StringList `json:"available_days" gorm:"type:text"`
	PreferredWorkoutTime string     `json:"preferred_workout_time"`
	EquipmentAvailable   StringList `json:"equipment_available" gorm:"type:text"`
	UpdatedAt            time.Time  `json:"-"`
}
