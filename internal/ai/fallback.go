package ai

import (
	"fmt"
	"strings"

	"vitatrack/internal/models"
)

// The fallback planner produces a sensible deterministic plan when no LLM is
// configured or its reply cannot be used. Meals follow a 30/40/30 calorie
// split across breakfast, lunch and dinner; macros follow a 30P/40C/30F split.

var weekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var mealSlots = []struct {
	Name     string
	Type     string
	Fraction float64
	Foods    []models.MealFood
}{
	{"Oatmeal with fruit and yogurt", "breakfast", 0.30, []models.MealFood{
		{Name: "Rolled oats", Grams: 80}, {Name: "Greek yogurt", Grams: 150}, {Name: "Banana", Grams: 120},
	}},
	{"Grilled chicken with rice and vegetables", "lunch", 0.40, []models.MealFood{
		{Name: "Chicken breast", Grams: 150}, {Name: "Brown rice", Grams: 180}, {Name: "Broccoli", Grams: 150},
	}},
	{"Baked fish with potatoes and salad", "dinner", 0.30, []models.MealFood{
		{Name: "White fish", Grams: 150}, {Name: "Potatoes", Grams: 200}, {Name: "Mixed greens", Grams: 100},
	}},
}

// FallbackMealSchedule builds a full week of meals hitting the calorie target.
func FallbackMealSchedule(dailyCalories float64) models.MealSchedule {
	schedule := models.MealSchedule{}
	for _, day := range weekDays {
		meals := make([]models.Meal, 0, len(mealSlots))
		for _, slot := range mealSlots {
			cals := dailyCalories * slot.Fraction
			meals = append(meals, models.Meal{
				Name:          slot.Name,
				MealType:      slot.Type,
				Foods:         slot.Foods,
				TotalCalories: cals,
				TotalProtein:  cals * 0.30 / 4,
				TotalCarbs:    cals * 0.40 / 4,
				TotalFat:      cals * 0.30 / 9,
				Instructions:  "Adjust portions to match the calorie target.",
			})
		}
		schedule[day] = meals
	}
	return schedule
}

// FallbackWorkoutSchedule builds a rotating full-body/upper/lower split over
// the user's available days, scaled to their experience level.
func FallbackWorkoutSchedule(eval *models.Evaluation) models.SessionSchedule {
	days := []string(eval.AvailableDays)
	if len(days) == 0 {
		days = []string{"monday", "wednesday", "friday"}
	}

	difficulty := eval.ExperienceLevel
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}
	sets := 3
	if difficulty == models.DifficultyAdvanced {
		sets = 4
	}

	hasWeights := false
	for _, eq := range eval.EquipmentAvailable {
		lower := strings.ToLower(eq)
		if strings.Contains(lower, "dumbbell") || strings.Contains(lower, "barbell") {
			hasWeights = true
		}
	}

	templates := [][]models.SessionExercise{
		{
			{Name: "Push-ups", Sets: sets, Reps: 12},
			{Name: "Squats", Sets: sets, Reps: 15},
			{Name: "Plank", DurationMinutes: 3},
		},
		{
			{Name: "Lunges", Sets: sets, Reps: 12},
			{Name: "Glute bridges", Sets: sets, Reps: 15},
			{Name: "Running", DurationMinutes: 20},
		},
		{
			{Name: "Pull-ups", Sets: sets, Reps: 8},
			{Name: "Dips", Sets: sets, Reps: 10},
			{Name: "Mountain climbers", DurationMinutes: 5},
		},
	}
	focus := [][]string{
		{"chest", "legs", "core"},
		{"legs", "glutes", "cardio"},
		{"back", "arms", "core"},
	}
	if hasWeights {
		templates[0][0] = models.SessionExercise{Name: "Dumbbell bench press", Sets: sets, Reps: 10}
		templates[2][0] = models.SessionExercise{Name: "Dumbbell rows", Sets: sets, Reps: 10}
	}

	schedule := models.SessionSchedule{}
	for i, day := range days {
		t := i % len(templates)
		schedule[strings.ToLower(day)] = models.WorkoutSession{
			Name:          fmt.Sprintf("Session %d", i+1),
			Exercises:     templates[t],
			TotalDuration: 45,
			Difficulty:    difficulty,
			FocusAreas:    focus[t],
		}
	}
	return schedule
}
