package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vitatrack/internal/auth"
	"vitatrack/internal/health"
	"vitatrack/internal/models"
)

// CalculateHealthMetrics runs the calculator and persists the result so it
// shows up in the history and analysis endpoints.
func (s *Server) CalculateHealthMetrics(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}

	var in health.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Fall back to the evaluation goal so goal calories still come out when
	// the client omits one.
	if in.Goal == "" && user.Evaluation != nil {
		in.Goal = user.Evaluation.Goal
	}

	result, err := health.Calculate(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metric := models.NewHealthMetric(user.ID)
	metric.BMI = result.BMI
	metric.BMICategory = result.BMICategory
	metric.BodyFatPercentage = result.BodyFatPercentage
	metric.BodyFatNavy = result.BodyFatNavy
	metric.IdealWeight = result.IdealWeight
	metric.CalorieNeeds = result.CalorieNeeds
	metric.HealthStatus = result.HealthStatus
	metric.Recommendations = result.Recommendations

	if err := s.db.Create(metric).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save metrics"})
		return
	}
	c.JSON(http.StatusOK, metric)
}

// HealthMetricsHistory returns all stored calculator runs, newest first.
func (s *Server) HealthMetricsHistory(c *gin.Context) {
	userID := auth.UserID(c)

	var metrics []models.HealthMetric
	if err := s.db.Where("user_id = ?", userID).
		Order("calculated_at desc").Limit(listLimit).Find(&metrics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load metrics"})
		return
	}

	var total int
	if err := s.db.Model(&models.HealthMetric{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count metrics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics, "total_records": total})
}

// HealthAnalysis combines the latest metrics, recent measurements and a
// composite health score into one report.
func (s *Server) HealthAnalysis(c *gin.Context) {
	userID := auth.UserID(c)
	since := time.Now().UTC().AddDate(0, 0, -30)

	var latest models.HealthMetric
	var latestPtr *models.HealthMetric
	if err := s.db.Where("user_id = ?", userID).
		Order("calculated_at desc").First(&latest).Error; err == nil {
		latestPtr = &latest
	}

	var entries []models.ProgressEntry
	if err := s.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load progress"})
		return
	}

	var water []models.WaterIntake
	if err := s.db.Where("user_id = ? AND date >= ?", userID, since).Find(&water).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load water intake"})
		return
	}

	var workoutPlans, nutritionPlans int
	if err := s.db.Model(&models.WorkoutPlan{}).Where("user_id = ?", userID).Count(&workoutPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count plans"})
		return
	}
	if err := s.db.Model(&models.NutritionPlan{}).Where("user_id = ?", userID).Count(&nutritionPlans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count plans"})
		return
	}

	score := health.ComputeScore(health.ScoreInput{
		BMI:                latestBMI(latestPtr),
		ProgressEntries30d: len(entries),
		WorkoutPlans:       workoutPlans,
		WaterDaysMet30d:    hydrationDaysMet(water),
		NutritionPlans:     nutritionPlans,
	})

	c.JSON(http.StatusOK, gin.H{
		"latest_metrics":      latestPtr,
		"recent_measurements": entries,
		"progress_summary":    progressSummary(entries),
		"health_score":        score,
	})
}

// latestBMI prefers the stored metric, falling back to a neutral value so a
// user with no calculator runs does not zero out the score.
func latestBMI(metric *models.HealthMetric) float64 {
	if metric != nil {
		return metric.BMI
	}
	return 22
}

func progressSummary(entries []models.ProgressEntry) gin.H {
	summary := gin.H{"total_progress_entries": len(entries)}

	var first, last *float64
	for i := range entries {
		if entries[i].Weight == nil {
			continue
		}
		if first == nil {
			first = entries[i].Weight
		}
		last = entries[i].Weight
	}
	if first != nil && last != nil {
		summary["start_weight"] = *first
		summary["current_weight"] = *last
		summary["weight_change"] = *last - *first
	}
	return summary
}

// hydrationDaysMet counts the distinct days whose summed intake reached that
// day's goal.
func hydrationDaysMet(water []models.WaterIntake) int {
	type day struct {
		total float64
		goal  float64
	}
	days := make(map[string]*day)
	for _, w := range water {
		key := w.Date.Format("2006-01-02")
		d, ok := days[key]
		if !ok {
			d = &day{goal: models.DefaultWaterGoalML}
			days[key] = d
		}
		d.total += w.AmountML
		if w.GoalML > 0 {
			d.goal = w.GoalML
		}
	}

	met := 0
	for _, d := range days {
		if d.total >= d.goal {
			met++
		}
	}
	return met
}
