package health

import (
	"errors"
	"fmt"
	"math"

	"vitatrack/internal/models"
)

// Input is one calculator run. Weight in kg, height and circumferences in cm.
type Input struct {
	Weight             float64  `json:"weight"`
	Height             float64  `json:"height"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	ActivityLevel      string   `json:"activity_level"`
	Goal               string   `json:"goal,omitempty"`
	BodyFatPercentage  *float64 `json:"body_fat_percentage,omitempty"`
	NeckCircumference  *float64 `json:"neck_circumference,omitempty"`
	WaistCircumference *float64 `json:"waist_circumference,omitempty"`
	HipCircumference   *float64 `json:"hip_circumference,omitempty"`
}

// Result mirrors the metrics block returned to clients.
type Result struct {
	BMI               float64             `json:"bmi"`
	BMICategory       string              `json:"bmi_category"`
	BodyFatPercentage float64             `json:"body_fat_percentage"`
	BodyFatNavy       *float64            `json:"body_fat_navy"`
	IdealWeight       models.IdealWeight  `json:"ideal_weight"`
	CalorieNeeds      models.CalorieNeeds `json:"calorie_needs"`
	HealthStatus      string              `json:"health_status"`
	Recommendations   []string            `json:"recommendations"`
}

var activityMultipliers = map[string]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtremelyActive:  1.9,
}

var goalAdjustments = map[string]float64{
	models.GoalLoseWeight:     -500,
	models.GoalMaintainWeight: 0,
	models.GoalGainWeight:     500,
	models.GoalBuildMuscle:    300,
	models.GoalImproveFitness: 0,
}

// Validate checks the input ranges before any formula runs.
func (in Input) Validate() error {
	if in.Weight <= 0 {
		return errors.New("weight must be positive")
	}
	if in.Height <= 0 {
		return errors.New("height must be positive")
	}
	if in.Age <= 0 {
		return errors.New("age must be positive")
	}
	switch in.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return fmt.Errorf("unknown gender %q", in.Gender)
	}
	if _, ok := activityMultipliers[in.ActivityLevel]; !ok {
		return fmt.Errorf("unknown activity level %q", in.ActivityLevel)
	}
	return nil
}

// ValidGoal reports whether the goal is one of the supported values.
func ValidGoal(goal string) bool {
	_, ok := goalAdjustments[goal]
	return ok
}

// BMI is weight in kg over squared height in meters.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return round1(weightKg / (m * m))
}

// BMICategory buckets a BMI value using the WHO cutoffs.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// BMRHarris is the Harris-Benedict basal metabolic rate. Non-male inputs use
// the female constants, matching the evaluation calculator.
func BMRHarris(weightKg, heightCm float64, age int, gender string) float64 {
	if gender == models.GenderMale {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// BMRMifflin is the Mifflin-St Jeor basal metabolic rate.
func BMRMifflin(weightKg, heightCm float64, age int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		return base + 5
	}
	return base - 161
}

// DailyCalories applies the activity multiplier and goal adjustment to a BMR.
// Unknown levels or goals contribute the maintenance values.
func DailyCalories(bmr float64, activityLevel, goal string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return bmr*mult + goalAdjustments[goal]
}

// NavyBodyFat estimates body fat from circumference measurements using the
// US Navy log10 method. Returns nil when the required measurements are
// missing or degenerate.
func NavyBodyFat(in Input) *float64 {
	if in.NeckCircumference == nil || in.WaistCircumference == nil {
		return nil
	}
	neck, waist := *in.NeckCircumference, *in.WaistCircumference

	var bf float64
	if in.Gender == models.GenderMale {
		if waist <= neck {
			return nil
		}
		bf = 495/(1.0324-0.19077*math.Log10(waist-neck)+0.15456*math.Log10(in.Height)) - 450
	} else {
		if in.HipCircumference == nil {
			return nil
		}
		hip := *in.HipCircumference
		if waist+hip <= neck {
			return nil
		}
		bf = 495/(1.29579-0.35004*math.Log10(waist+hip-neck)+0.22100*math.Log10(in.Height)) - 450
	}

	bf = clamp(round1(bf), 0, 100)
	return &bf
}

// DeurenbergBodyFat estimates body fat from BMI, age and sex.
func DeurenbergBodyFat(bmi float64, age int, gender string) float64 {
	sex := 0.0
	if gender == models.GenderMale {
		sex = 1.0
	}
	return clamp(round1(1.20*bmi+0.23*float64(age)-10.8*sex-5.4), 0, 100)
}

// IdealWeightFor computes the three ideal-weight estimates. Heights under
// five feet clamp the per-inch terms to the method base weight.
func IdealWeightFor(heightCm float64, gender string) models.IdealWeight {
	m := heightCm / 100
	inchesOverFiveFeet := math.Max(heightCm/2.54-60, 0)

	var hamwi, devine float64
	if gender == models.GenderMale {
		hamwi = 48.0 + 2.7*inchesOverFiveFeet
		devine = 50.0 + 2.3*inchesOverFiveFeet
	} else {
		hamwi = 45.5 + 2.2*inchesOverFiveFeet
		devine = 45.5 + 2.3*inchesOverFiveFeet
	}

	return models.IdealWeight{
		BMIRange: models.WeightRange{
			Min: round1(18.5 * m * m),
			Max: round1(24.9 * m * m),
		},
		Hamwi:  round1(hamwi),
		Devine: round1(devine),
	}
}

// Calculate runs the full calculator over a validated input.
func Calculate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	bmi := BMI(in.Weight, in.Height)
	category := BMICategory(bmi)

	bodyFat := DeurenbergBodyFat(bmi, in.Age, in.Gender)
	if in.BodyFatPercentage != nil && *in.BodyFatPercentage >= 0 && *in.BodyFatPercentage <= 100 {
		bodyFat = *in.BodyFatPercentage
	}

	harris := BMRHarris(in.Weight, in.Height, in.Age, in.Gender)
	mifflin := BMRMifflin(in.Weight, in.Height, in.Age, in.Gender)
	tdee := mifflin * activityMultipliers[in.ActivityLevel]

	needs := models.CalorieNeeds{
		BMRHarris:       round1(harris),
		BMRMifflin:      round1(mifflin),
		RecommendedBMR:  round1(mifflin),
		RecommendedTDEE: round1(tdee),
	}
	if _, ok := goalAdjustments[in.Goal]; ok && in.Goal != "" {
		goal := round1(tdee + goalAdjustments[in.Goal])
		needs.GoalCalories = &goal
	}

	return &Result{
		BMI:               bmi,
		BMICategory:       category,
		BodyFatPercentage: bodyFat,
		BodyFatNavy:       NavyBodyFat(in),
		IdealWeight:       IdealWeightFor(in.Height, in.Gender),
		CalorieNeeds:      needs,
		HealthStatus:      healthStatus(category, in.ActivityLevel),
		Recommendations:   recommendations(category, bodyFat, in),
	}, nil
}

func healthStatus(category, activityLevel string) string {
	active := activityLevel != models.ActivitySedentary
	switch {
	case category == "normal" && active:
		return "good"
	case category == "normal":
		return "fair"
	case category == "obese":
		return "at risk"
	default:
		return "needs attention"
	}
}

func recommendations(category string, bodyFat float64, in Input) []string {
	var recs []string

	switch category {
	case "underweight":
		recs = append(recs, "Increase your daily calorie intake with nutrient-dense foods")
	case "overweight":
		recs = append(recs, "Aim for a moderate calorie deficit of around 500 kcal per day")
	case "obese":
		recs = append(recs, "Consult a healthcare professional before starting an intense program")
		recs = append(recs, "Prioritize low-impact cardio such as walking or swimming")
	}

	if in.ActivityLevel == models.ActivitySedentary {
		recs = append(recs, "Add at least 30 minutes of moderate activity most days of the week")
	}
	if in.Gender == models.GenderMale && bodyFat > 25 || in.Gender != models.GenderMale && bodyFat > 32 {
		recs = append(recs, "Combine strength training with cardio to reduce body fat")
	}
	if in.Age >= 50 {
		recs = append(recs, "Include resistance training twice a week to preserve muscle mass")
	}

	recs = append(recs, "Stay hydrated: aim for at least 2 liters of water per day")
	return recs
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
