package health

import "math"

// ScoreInput feeds the composite health score.
type ScoreInput struct {
	BMI                float64
	ProgressEntries30d int
	WorkoutPlans       int
	WaterDaysMet30d    int // days in the last 30 where the hydration goal was met
	NutritionPlans     int
}

// Score is the 0-100 breakdown returned by the health analysis endpoint.
type Score struct {
	BMIScore       float64 `json:"bmi_score"`
	ActivityScore  float64 `json:"activity_score"`
	NutritionScore float64 `json:"nutrition_score"`
	OverallScore   float64 `json:"overall_score"`
}

// ComputeScore derives the composite score. BMI scores peak at 22 and fall
// off linearly; activity and nutrition scale with recent engagement.
func ComputeScore(in ScoreInput) Score {
	bmiScore := 100 - math.Abs(in.BMI-22)*8
	bmiScore = clamp(bmiScore, 0, 100)

	// Three entries a week over a month is full marks.
	activityScore := float64(in.ProgressEntries30d)/12*70 + float64(min(in.WorkoutPlans, 3))*10
	activityScore = clamp(activityScore, 0, 100)

	nutritionScore := float64(in.WaterDaysMet30d)/30*60 + float64(min(in.NutritionPlans, 2))*20
	nutritionScore = clamp(nutritionScore, 0, 100)

	overall := 0.4*bmiScore + 0.3*activityScore + 0.3*nutritionScore

	return Score{
		BMIScore:       round1(bmiScore),
		ActivityScore:  round1(activityScore),
		NutritionScore: round1(nutritionScore),
		OverallScore:   round1(overall),
	}
}
