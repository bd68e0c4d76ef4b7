package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vitatrack/internal/analytics"
	"vitatrack/internal/models"
)

// AdvancedProgress builds the analytics report over a named period.
func (s *Server) AdvancedProgress(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "month")
	window, err := analytics.PeriodWindow(period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	since := time.Now().UTC().Add(-window)

	var entries []models.ProgressEntry
	if err := s.db.Where("user_id = ? AND date >= ?", user.ID, since).
		Order("date asc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load progress"})
		return
	}

	var water []models.WaterIntake
	if err := s.db.Where("user_id = ? AND date >= ?", user.ID, since).
		Order("date asc").Find(&water).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load water intake"})
		return
	}

	var workoutPlans int
	if err := s.db.Model(&models.WorkoutPlan{}).
		Where("user_id = ? AND created_at >= ?", user.ID, since).
		Count(&workoutPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count plans"})
		return
	}

	report := analytics.Build(analytics.Input{
		Period:        period,
		Entries:       entries,
		Water:         water,
		WorkoutPlans:  workoutPlans,
		Evaluation:    user.Evaluation,
		DailyCalories: user.DailyCalories,
	})
	c.JSON(http.StatusOK, report)
}
