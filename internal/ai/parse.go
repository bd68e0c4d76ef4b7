package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"vitatrack/internal/models"
)

// stripFences removes a surrounding markdown code fence when the model adds
// one despite the strict-JSON instruction.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseMealSchedule decodes a meal-plan reply into a schedule.
func ParseMealSchedule(reply string) (models.MealSchedule, error) {
	var schedule models.MealSchedule
	if err := json.Unmarshal([]byte(stripFences(reply)), &schedule); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan reply: %w", err)
	}
	if len(schedule) == 0 {
		return nil, fmt.Errorf("meal plan reply contained no days")
	}
	return schedule, nil
}

// ParseSessionSchedule decodes a workout-plan reply into a schedule.
func ParseSessionSchedule(reply string) (models.SessionSchedule, error) {
	var schedule models.SessionSchedule
	if err := json.Unmarshal([]byte(stripFences(reply)), &schedule); err != nil {
		return nil, fmt.Errorf("failed to parse workout plan reply: %w", err)
	}
	if len(schedule) == 0 {
		return nil, fmt.Errorf("workout plan reply contained no sessions")
	}
	return schedule, nil
}
