package api

import (
	"github.com/google/uuid"

	"vitatrack/internal/models"
)

func newFoodID() string { return uuid.New().String() }

func defaultExercises() []models.Exercise {
	pushups := models.NewExercise()
	pushups.Name = "Push-ups"
	pushups.Description = "Classic upper body exercise"
	pushups.Type = models.ExerciseStrength
	pushups.Difficulty = models.DifficultyBeginner
	pushups.MuscleGroups = models.StringList{"chest", "shoulders", "triceps"}
	pushups.Equipment = models.StringList{}
	pushups.Instructions = models.StringList{
		"Start in plank position",
		"Lower body until chest nearly touches floor",
		"Push back up to starting position",
	}
	pushups.DurationMinutes = 15
	pushups.CaloriesBurned = 80

	squats := models.NewExercise()
	squats.Name = "Squats"
	squats.Description = "Lower body compound exercise"
	squats.Type = models.ExerciseStrength
	squats.Difficulty = models.DifficultyBeginner
	squats.MuscleGroups = models.StringList{"quadriceps", "glutes", "hamstrings"}
	squats.Equipment = models.StringList{}
	squats.Instructions = models.StringList{
		"Stand with feet hip-width apart",
		"Lower body as if sitting back into chair",
		"Return to standing position",
	}
	squats.DurationMinutes = 20
	squats.CaloriesBurned = 100

	running := models.NewExercise()
	running.Name = "Running"
	running.Description = "Cardiovascular exercise"
	running.Type = models.ExerciseCardio
	running.Difficulty = models.DifficultyIntermediate
	running.MuscleGroups = models.StringList{"legs", "core"}
	running.Equipment = models.StringList{"running shoes"}
	running.Instructions = models.StringList{
		"Start with warm-up walk",
		"Gradually increase pace",
		"Maintain steady rhythm",
	}
	running.DurationMinutes = 30
	running.CaloriesBurned = 300

	return []models.Exercise{*pushups, *squats, *running}
}

func defaultFoods() []models.Food {
	return []models.Food{
		{
			ID: newFoodID(), Name: "Chicken Breast", CaloriesPer100g: 165,
			Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74,
			Category: "protein",
		},
		{
			ID: newFoodID(), Name: "Brown Rice", CaloriesPer100g: 123,
			Protein: 2.6, Carbs: 23, Fat: 0.9, Fiber: 1.8, Sugar: 0.4, Sodium: 7,
			Category: "carbs",
		},
		{
			ID: newFoodID(), Name: "Broccoli", CaloriesPer100g: 34,
			Protein: 2.8, Carbs: 7, Fat: 0.4, Fiber: 2.6, Sugar: 1.5, Sodium: 33,
			Category: "vegetables",
		},
	}
}
