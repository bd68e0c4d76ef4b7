package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitatrack/internal/models"
	"vitatrack/internal/planner"
)

// ListNutritionPlans returns the user's nutrition plans, newest first.
func (s *Server) ListNutritionPlans(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}

	var plans []models.NutritionPlan
	if err := s.db.Where("user_id = ?", user.ID).
		Order("week_number desc").Limit(listLimit).Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list nutrition plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GenerateNutritionPlan queues background generation of the next week's meals.
// The plan is created in pending status; subscribers on /ws see it flip to
// ready or failed.
func (s *Server) GenerateNutritionPlan(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	if user.Evaluation == nil || user.DailyCalories == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please complete your evaluation first"})
		return
	}

	var existing int
	if err := s.db.Model(&models.NutritionPlan{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count plans"})
		return
	}

	plan := models.NewNutritionPlan(user.ID, existing+1, *user.DailyCalories)
	if err := s.db.Create(plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plan"})
		return
	}

	if !s.worker.Enqueue(planner.Job{PlanID: plan.ID, PlanType: planner.PlanTypeNutrition, UserID: user.ID}) {
		s.log.Warn("nutrition plan queued while worker busy", zap.String("plan_id", plan.ID))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "generation queue is full, try again later"})
		return
	}
	s.monitor.IncrCounter("nutrition_plans_requested")

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Nutrition plan generation started",
		"plan_id": plan.ID,
		"status":  plan.Status,
	})
}

// ListWorkoutPlans returns the user's workout plans, newest first.
func (s *Server) ListWorkoutPlans(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}

	var plans []models.WorkoutPlan
	if err := s.db.Where("user_id = ?", user.ID).
		Order("week_number desc").Limit(listLimit).Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workout plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GenerateWorkoutPlan queues background generation of the next week's training.
func (s *Server) GenerateWorkoutPlan(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	if user.Evaluation == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please complete your evaluation first"})
		return
	}

	var existing int
	if err := s.db.Model(&models.WorkoutPlan{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count plans"})
		return
	}

	plan := models.NewWorkoutPlan(user.ID, existing+1)
	if err := s.db.Create(plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plan"})
		return
	}

	if !s.worker.Enqueue(planner.Job{PlanID: plan.ID, PlanType: planner.PlanTypeWorkout, UserID: user.ID}) {
		s.log.Warn("workout plan queued while worker busy", zap.String("plan_id", plan.ID))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "generation queue is full, try again later"})
		return
	}
	s.monitor.IncrCounter("workout_plans_requested")

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Workout plan generation started",
		"plan_id": plan.ID,
		"status":  plan.Status,
	})
}
