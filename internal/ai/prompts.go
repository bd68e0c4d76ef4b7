package ai

import (
	"fmt"
	"strings"

	"vitatrack/internal/models"
)

// CoachMessages builds the chat conversation for the AI coach, carrying the
// user's evaluation context into the system prompt.
func CoachMessages(user *models.User, userMessage string) []Message {
	var b strings.Builder
	b.WriteString("You are an expert personal trainer and nutritionist. The user has the following profile:\n")

	if user.Evaluation != nil {
		fmt.Fprintf(&b, "- Goal: %s\n", orUnspecified(user.Evaluation.Goal))
		fmt.Fprintf(&b, "- Activity level: %s\n", orUnspecified(user.Evaluation.ActivityLevel))
		fmt.Fprintf(&b, "- Experience: %s\n", orUnspecified(user.Evaluation.ExperienceLevel))
	} else {
		b.WriteString("- No evaluation completed yet\n")
	}
	if user.DailyCalories != nil {
		fmt.Fprintf(&b, "- Recommended daily calories: %.0f\n", *user.DailyCalories)
	} else {
		b.WriteString("- Recommended daily calories: not calculated\n")
	}

	b.WriteString("\nProvide helpful advice, motivation and personalized answers about fitness, nutrition and health. ")
	b.WriteString("Keep a friendly, professional tone. If you lack information, ask for more details.")

	return []Message{
		{Role: "system", Content: b.String()},
		{Role: "user", Content: userMessage},
	}
}

// MealPlanPrompt builds the nutrition-plan generation prompt. The model is
// asked for a strict JSON object keyed by day name so the reply can be parsed
// straight into a meal schedule.
func MealPlanPrompt(eval *models.Evaluation, dailyCalories float64, week int) []Message {
	var b strings.Builder
	b.WriteString("You are a professional nutritionist. Create a one-week meal plan.\n\n")

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Age: %d\n- Gender: %s\n- Weight: %.1f kg\n- Height: %.1f cm\n",
		eval.Age, eval.Gender, eval.Weight, eval.Height)
	fmt.Fprintf(&b, "- Goal: %s\n- Activity level: %s\n", eval.Goal, eval.ActivityLevel)
	fmt.Fprintf(&b, "- Week number: %d\n\n", week)

	// 30/40/30 protein/carb/fat split over the daily target.
	b.WriteString("MACRO TARGETS:\n")
	fmt.Fprintf(&b, "- Daily calories: %.0f\n", dailyCalories)
	fmt.Fprintf(&b, "- Daily protein: %.0fg\n", dailyCalories*0.30/4)
	fmt.Fprintf(&b, "- Daily carbs: %.0fg\n", dailyCalories*0.40/4)
	fmt.Fprintf(&b, "- Daily fat: %.0fg\n\n", dailyCalories*0.30/9)

	if len(eval.FoodAllergies) > 0 {
		fmt.Fprintf(&b, "ALLERGIES (must avoid): %s\n", strings.Join(eval.FoodAllergies, ", "))
	}
	if len(eval.FoodPreferences) > 0 {
		fmt.Fprintf(&b, "PREFERENCES: %s\n", strings.Join(eval.FoodPreferences, ", "))
	}
	if len(eval.HealthConditions) > 0 {
		fmt.Fprintf(&b, "HEALTH CONDITIONS: %s\n", strings.Join(eval.HealthConditions, ", "))
	}

	b.WriteString("\nRespond with ONLY a JSON object, no prose and no markdown. ")
	b.WriteString("Keys are lowercase day names (monday..sunday); each value is an array of meals:\n")
	b.WriteString(`{"monday":[{"name":"...","meal_type":"breakfast","foods":[{"name":"...","grams":100}],` +
		`"total_calories":0,"total_protein":0,"total_carbs":0,"total_fat":0,"instructions":"..."}]}`)

	return []Message{
		{Role: "system", Content: "You are a meal planning assistant that responds with strict JSON."},
		{Role: "user", Content: b.String()},
	}
}

// WorkoutPlanPrompt builds the workout-plan generation prompt with the same
// strict JSON contract, keyed by the user's available training days.
func WorkoutPlanPrompt(eval *models.Evaluation, week int) []Message {
	days := eval.AvailableDays
	if len(days) == 0 {
		days = []string{"monday", "wednesday", "friday"}
	}

	var b strings.Builder
	b.WriteString("You are a certified personal trainer. Create a one-week workout plan.\n\n")

	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "- Age: %d\n- Gender: %s\n- Goal: %s\n- Experience: %s\n",
		eval.Age, eval.Gender, eval.Goal, eval.ExperienceLevel)
	fmt.Fprintf(&b, "- Training days: %s\n", strings.Join(days, ", "))
	if len(eval.EquipmentAvailable) > 0 {
		fmt.Fprintf(&b, "- Equipment: %s\n", strings.Join(eval.EquipmentAvailable, ", "))
	} else {
		b.WriteString("- Equipment: bodyweight only\n")
	}
	if eval.PreferredWorkoutTime != "" {
		fmt.Fprintf(&b, "- Preferred time: %s\n", eval.PreferredWorkoutTime)
	}
	fmt.Fprintf(&b, "- Week number: %d\n", week)

	b.WriteString("\nRespond with ONLY a JSON object, no prose and no markdown. ")
	b.WriteString("Keys are the training day names; each value is one session:\n")
	b.WriteString(`{"monday":{"name":"...","exercises":[{"name":"...","sets":3,"reps":12,"duration_minutes":0}],` +
		`"total_duration":45,"difficulty":"beginner","focus_areas":["..."]}}`)

	return []Message{
		{Role: "system", Content: "You are a workout planning assistant that responds with strict JSON."},
		{Role: "user", Content: b.String()},
	}
}

func orUnspecified(s string) string {
	if s == "" {
		return "not specified"
	}
	return s
}
