package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// WeightRange is a min/max weight band in kilograms.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IdealWeight collects the three estimation methods exposed by the calculator.
type IdealWeight struct {
	BMIRange WeightRange `json:"bmi_range"`
	Hamwi    float64     `json:"hamwi"`
	Devine   float64     `json:"devine"`
}

func (w IdealWeight) Value() (driver.Value, error) { return jsonValue(w) }
func (w *IdealWeight) Scan(src interface{}) error  { return jsonScan(src, w) }

// CalorieNeeds holds the BMR variants and the resulting daily targets.
type CalorieNeeds struct {
	BMRHarris       float64  `json:"bmr_harris"`
	BMRMifflin      float64  `json:"bmr_mifflin"`
	RecommendedBMR  float64  `json:"recommended_bmr"`
	RecommendedTDEE float64  `json:"recommended_tdee"`
	GoalCalories    *float64 `json:"goal_calories,omitempty"`
}

func (n CalorieNeeds) Value() (driver.Value, error) { return jsonValue(n) }
func (n *CalorieNeeds) Scan(src interface{}) error  { return jsonScan(src, n) }

// HealthMetric is one persisted calculator run.
type HealthMetric struct {
	ID                string       `json:"id" gorm:"primary_key"`
	UserID            string       `json:"user_id" gorm:"index;not null"`
	BMI               float64      `json:"bmi"`
	BMICategory       string       `json:"bmi_category"`
	BodyFatPercentage float64      `json:"body_fat_percentage"`
	BodyFatNavy       *float64     `json:"body_fat_navy"`
	IdealWeight       IdealWeight  `json:"ideal_weight" gorm:"type:text"`
	CalorieNeeds      CalorieNeeds `json:"calorie_needs" gorm:"type:text"`
	HealthStatus      string       `json:"health_status"`
	Recommendations   StringList   `json:"recommendations" gorm:"type:text"`
	CalculatedAt      time.Time    `json:"calculated_at" gorm:"index"`
}

// NewHealthMetric creates a record timestamped now.
func NewHealthMetric(userID string) *HealthMetric {
	return &HealthMetric{
		ID:           uuid.New().String(),
		UserID:       userID,
		CalculatedAt: time.Now().UTC(),
	}
}

// Alert severities, lowest to highest.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Pattern alert types raised by the detector.
const (
	AlertTrackingAbandonment = "tracking_abandonment"
	AlertHydrationStopped    = "hydration_tracking_stopped"
	AlertPlanAbandonment     = "plan_abandonment"
	AlertGeneralInactivity   = "general_inactivity"
)

// PatternAlert is a stored rule-based alert about a user's engagement.
type PatternAlert struct {
	ID              string     `json:"id" gorm:"primary_key"`
	UserID          string     `json:"user_id" gorm:"index;not null"`
	AlertType       string     `json:"alert_type"`
	Severity        string     `json:"severity"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Recommendations StringList `json:"recommendations" gorm:"type:text"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}

// NewPatternAlert creates an active alert.
func NewPatternAlert(userID, alertType, severity, title, description string, recs []string) *PatternAlert {
	return &PatternAlert{
		ID:              uuid.New().String(),
		UserID:          userID,
		AlertType:       alertType,
		Severity:        severity,
		Title:           title,
		Description:     description,
		Recommendations: recs,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}
}
