package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitatrack/internal/models"
)

func TestCoachMessages(t *testing.T) {
	dc := 2100.0
	user := &models.User{
		DailyCalories: &dc,
		Evaluation: &models.Evaluation{
			Goal:            models.GoalLoseWeight,
			ActivityLevel:   models.ActivityModeratelyActive,
			ExperienceLevel: models.DifficultyBeginner,
		},
	}

	msgs := CoachMessages(user, "How much protein should I eat?")
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "lose_weight")
	assert.Contains(t, msgs[0].Content, "2100")
	assert.Equal(t, "How much protein should I eat?", msgs[1].Content)

	// No evaluation yet.
	msgs = CoachMessages(&models.User{}, "hi")
	assert.Contains(t, msgs[0].Content, "No evaluation completed yet")
	assert.Contains(t, msgs[0].Content, "not calculated")
}

func TestMealPlanPromptIncludesConstraints(t *testing.T) {
	eval := &models.Evaluation{
		Age: 30, Gender: models.GenderMale, Weight: 70, Height: 175,
		Goal:          models.GoalBuildMuscle,
		ActivityLevel: models.ActivityVeryActive,
		FoodAllergies: models.StringList{"peanuts"},
	}
	msgs := MealPlanPrompt(eval, 2500, 1)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "peanuts")
	assert.Contains(t, msgs[1].Content, "2500")
	assert.Contains(t, msgs[1].Content, `"meal_type"`)
}

func TestParseMealSchedule(t *testing.T) {
	reply := `{"monday":[{"name":"Oats","meal_type":"breakfast","foods":[{"name":"Oats","grams":80}],"total_calories":420,"total_protein":15,"total_carbs":60,"total_fat":9}]}`
	schedule, err := ParseMealSchedule(reply)
	require.NoError(t, err)
	require.Len(t, schedule["monday"], 1)
	assert.Equal(t, "Oats", schedule["monday"][0].Name)
	assert.Equal(t, 420.0, schedule["monday"][0].TotalCalories)
}

func TestParseMealScheduleStripsFences(t *testing.T) {
	reply := "```json\n{\"monday\":[{\"name\":\"Oats\",\"meal_type\":\"breakfast\",\"foods\":[]}]}\n```"
	schedule, err := ParseMealSchedule(reply)
	require.NoError(t, err)
	assert.Len(t, schedule["monday"], 1)
}

func TestParseMealScheduleErrors(t *testing.T) {
	_, err := ParseMealSchedule("I cannot help with that")
	assert.Error(t, err)
	_, err = ParseMealSchedule("{}")
	assert.Error(t, err)
}

func TestParseSessionSchedule(t *testing.T) {
	reply := `{"monday":{"name":"Upper body","exercises":[{"name":"Push-ups","sets":3,"reps":12}],"total_duration":45,"difficulty":"beginner","focus_areas":["chest"]}}`
	schedule, err := ParseSessionSchedule(reply)
	require.NoError(t, err)
	assert.Equal(t, "Upper body", schedule["monday"].Name)
	assert.Equal(t, 3, schedule["monday"].Exercises[0].Sets)
}

func TestFallbackMealSchedule(t *testing.T) {
	schedule := FallbackMealSchedule(2000)
	require.Len(t, schedule, 7)

	var total float64
	for _, meal := range schedule["monday"] {
		total += meal.TotalCalories
	}
	assert.InDelta(t, 2000, total, 1)
}

func TestFallbackWorkoutSchedule(t *testing.T) {
	eval := &models.Evaluation{
		AvailableDays:      models.StringList{"Monday", "Thursday"},
		ExperienceLevel:    models.DifficultyAdvanced,
		EquipmentAvailable: models.StringList{"dumbbells"},
	}
	schedule := FallbackWorkoutSchedule(eval)
	require.Len(t, schedule, 2)

	session, ok := schedule["monday"]
	require.True(t, ok, "day keys are normalized to lowercase")
	assert.Equal(t, models.DifficultyAdvanced, session.Difficulty)
	assert.Equal(t, 4, session.Exercises[0].Sets)
	assert.True(t, strings.Contains(session.Exercises[0].Name, "Dumbbell"))

	// Defaults for an empty evaluation.
	schedule = FallbackWorkoutSchedule(&models.Evaluation{})
	assert.Len(t, schedule, 3)
	assert.Equal(t, models.DifficultyBeginner, schedule["monday"].Difficulty)
}
