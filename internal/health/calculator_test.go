package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitatrack/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestBMI(t *testing.T) {
	assert.InDelta(t, 22.9, BMI(70, 175), 0.05)
	assert.Equal(t, "normal", BMICategory(BMI(70, 175)))
	assert.Equal(t, "underweight", BMICategory(18.4))
	assert.Equal(t, "normal", BMICategory(18.5))
	assert.Equal(t, "overweight", BMICategory(25))
	assert.Equal(t, "obese", BMICategory(30))
}

func TestBMRHarris(t *testing.T) {
	// 70kg / 175cm / 30y male per the Harris-Benedict constants.
	got := BMRHarris(70, 175, 30, models.GenderMale)
	assert.InDelta(t, 1695.7, got, 0.1)

	// Non-male genders use the female constants.
	female := BMRHarris(60, 165, 25, models.GenderFemale)
	other := BMRHarris(60, 165, 25, models.GenderOther)
	assert.Equal(t, female, other)
	assert.InDelta(t, 1405.4, female, 0.5)
}

func TestBMRMifflin(t *testing.T) {
	assert.InDelta(t, 1648.75, BMRMifflin(70, 175, 30, models.GenderMale), 0.01)
	assert.InDelta(t, 1345.25, BMRMifflin(60, 165, 25, models.GenderFemale), 0.01)
}

func TestDailyCalories(t *testing.T) {
	bmr := 1600.0
	assert.InDelta(t, 1600*1.55-500, DailyCalories(bmr, models.ActivityModeratelyActive, models.GoalLoseWeight), 0.01)
	assert.InDelta(t, 1600*1.2, DailyCalories(bmr, models.ActivitySedentary, models.GoalMaintainWeight), 0.01)
	assert.InDelta(t, 1600*1.9+300, DailyCalories(bmr, models.ActivityExtremelyActive, models.GoalBuildMuscle), 0.01)
}

func TestNavyBodyFat(t *testing.T) {
	in := Input{
		Weight: 70, Height: 175, Age: 30,
		Gender:             models.GenderMale,
		ActivityLevel:      models.ActivityModeratelyActive,
		NeckCircumference:  floatPtr(38),
		WaistCircumference: floatPtr(85),
	}
	bf := NavyBodyFat(in)
	require.NotNil(t, bf)
	assert.Greater(t, *bf, 10.0)
	assert.Less(t, *bf, 25.0)

	// Missing measurements yield no estimate rather than an error.
	in.WaistCircumference = nil
	assert.Nil(t, NavyBodyFat(in))

	// Female method requires the hip measurement.
	fin := Input{
		Weight: 60, Height: 165, Age: 25,
		Gender:             models.GenderFemale,
		NeckCircumference:  floatPtr(33),
		WaistCircumference: floatPtr(70),
	}
	assert.Nil(t, NavyBodyFat(fin))
	fin.HipCircumference = floatPtr(95)
	fbf := NavyBodyFat(fin)
	require.NotNil(t, fbf)
	assert.Greater(t, *fbf, 10.0)
	assert.Less(t, *fbf, 40.0)

	// Degenerate tape measurements are rejected.
	in.WaistCircumference = floatPtr(30)
	assert.Nil(t, NavyBodyFat(in))
}

func TestDeurenbergBodyFat(t *testing.T) {
	male := DeurenbergBodyFat(22.9, 30, models.GenderMale)
	female := DeurenbergBodyFat(22.9, 30, models.GenderFemale)
	assert.Greater(t, female, male)
	assert.InDelta(t, 18.2, male, 0.2)
}

func TestIdealWeightFor(t *testing.T) {
	iw := IdealWeightFor(175, models.GenderMale)
	assert.InDelta(t, 56.7, iw.BMIRange.Min, 0.2)
	assert.InDelta(t, 76.3, iw.BMIRange.Max, 0.2)
	// 175cm is about 8.9 inches over five feet.
	assert.InDelta(t, 48.0+2.7*8.89, iw.Hamwi, 0.5)
	assert.InDelta(t, 50.0+2.3*8.89, iw.Devine, 0.5)

	// No negative per-inch terms for short statures.
	short := IdealWeightFor(150, models.GenderFemale)
	assert.Equal(t, 45.5, short.Hamwi)
}

func TestCalculate(t *testing.T) {
	in := Input{
		Weight: 70, Height: 175, Age: 30,
		Gender:             models.GenderMale,
		ActivityLevel:      models.ActivityModeratelyActive,
		Goal:               models.GoalLoseWeight,
		NeckCircumference:  floatPtr(38),
		WaistCircumference: floatPtr(85),
		HipCircumference:   floatPtr(95),
	}

	res, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 22.9, res.BMI, 0.05)
	assert.Equal(t, "normal", res.BMICategory)
	assert.NotNil(t, res.BodyFatNavy)
	assert.Equal(t, res.CalorieNeeds.BMRMifflin, res.CalorieNeeds.RecommendedBMR)
	assert.Greater(t, res.CalorieNeeds.RecommendedTDEE, res.CalorieNeeds.RecommendedBMR)
	require.NotNil(t, res.CalorieNeeds.GoalCalories)
	assert.InDelta(t, res.CalorieNeeds.RecommendedTDEE-500, *res.CalorieNeeds.GoalCalories, 0.2)
	assert.Equal(t, "good", res.HealthStatus)
	assert.NotEmpty(t, res.Recommendations)
}

func TestCalculateUsesProvidedBodyFat(t *testing.T) {
	in := Input{
		Weight: 70, Height: 175, Age: 30,
		Gender:            models.GenderMale,
		ActivityLevel:     models.ActivityModeratelyActive,
		BodyFatPercentage: floatPtr(15),
	}
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.BodyFatPercentage)
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	cases := []Input{
		{Weight: -10, Height: 175, Age: 30, Gender: models.GenderMale, ActivityLevel: models.ActivitySedentary},
		{Weight: 70, Height: 0, Age: 30, Gender: models.GenderMale, ActivityLevel: models.ActivitySedentary},
		{Weight: 70, Height: 175, Age: -5, Gender: models.GenderMale, ActivityLevel: models.ActivitySedentary},
		{Weight: 70, Height: 175, Age: 30, Gender: "invalid", ActivityLevel: models.ActivitySedentary},
		{Weight: 70, Height: 175, Age: 30, Gender: models.GenderMale, ActivityLevel: "invalid"},
	}
	for _, in := range cases {
		_, err := Calculate(in)
		assert.Error(t, err)
	}
}

func TestValidGoal(t *testing.T) {
	for _, goal := range []string{
		models.GoalLoseWeight, models.GoalMaintainWeight, models.GoalGainWeight,
		models.GoalBuildMuscle, models.GoalImproveFitness,
	} {
		assert.True(t, ValidGoal(goal), goal)
	}
	assert.False(t, ValidGoal(""))
	assert.False(t, ValidGoal("get_swole"))
}

func TestComputeScore(t *testing.T) {
	s := ComputeScore(ScoreInput{BMI: 22, ProgressEntries30d: 12, WorkoutPlans: 3, WaterDaysMet30d: 30, NutritionPlans: 2})
	assert.Equal(t, 100.0, s.BMIScore)
	assert.Equal(t, 100.0, s.ActivityScore)
	assert.Equal(t, 100.0, s.NutritionScore)
	assert.Equal(t, 100.0, s.OverallScore)

	idle := ComputeScore(ScoreInput{BMI: 35})
	assert.Equal(t, 0.0, idle.ActivityScore)
	assert.Equal(t, 0.0, idle.NutritionScore)
	assert.Less(t, idle.OverallScore, 20.0)
}
