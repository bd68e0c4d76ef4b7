package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise types and difficulty levels used by the catalog filters.
const (
	ExerciseCardio      = "cardio"
	ExerciseStrength    = "strength"
	ExerciseFlexibility = "flexibility"
	ExerciseBalance     = "balance"
	ExerciseSports      = "sports"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Exercise is a library entry users and plans reference.
type Exercise struct {
	ID              string     `json:"id" gorm:"primary_key"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Type            string     `json:"type" gorm:"index"`
	Difficulty      string     `json:"difficulty" gorm:"index"`
	MuscleGroups    StringList `json:"muscle_groups" gorm:"type:text"`
	Equipment       StringList `json:"equipment" gorm:"type:text"`
	Instructions    StringList `json:"instructions" gorm:"type:text"`
	DurationMinutes int        `json:"duration_minutes"`
	CaloriesBurned  int        `json:"calories_burned"`
	VideoURL        string     `json:"video_url,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewExercise assigns an ID and creation timestamp.
func NewExercise() *Exercise {
	return &Exercise{ID: uuid.New().String(), CreatedAt: time.Now().UTC()}
}

// Food is a nutrition-database entry with macros per 100g.
type Food struct {
	ID              string  `json:"id" gorm:"primary_key"`
	Name            string  `json:"name" gorm:"index"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
	Fiber           float64 `json:"fiber"`
	Sugar           float64 `json:"sugar"`
	Sodium          float64 `json:"sodium"`
	Category        string  `json:"category"`
	ImageURL        string  `json:"image_url,omitempty"`
}
