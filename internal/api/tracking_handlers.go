package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vitatrack/internal/auth"
	"vitatrack/internal/models"
)

type progressRequest struct {
	Weight       *float64           `json:"weight"`
	MuscleMass   *float64           `json:"muscle_mass"`
	BodyFat      *float64           `json:"body_fat"`
	Measurements map[string]float64 `json:"measurements"`
	Photos       []string           `json:"photos"`
	Notes        string             `json:"notes"`
}

// AddProgressEntry logs a body-composition snapshot.
func (s *Server) AddProgressEntry(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.NewProgressEntry(auth.UserID(c))
	entry.Weight = req.Weight
	entry.MuscleMass = req.MuscleMass
	entry.BodyFat = req.BodyFat
	entry.Measurements = req.Measurements
	entry.Photos = req.Photos
	entry.Notes = req.Notes

	if err := s.db.Create(entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save progress"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListProgress returns the user's progress entries, newest first.
func (s *Server) ListProgress(c *gin.Context) {
	var entries []models.ProgressEntry
	if err := s.db.Where("user_id = ?", auth.UserID(c)).
		Order("date desc").Limit(listLimit).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list progress"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type waterRequest struct {
	AmountML float64 `json:"amount_ml" binding:"required,gt=0"`
	GoalML   float64 `json:"goal_ml"`
}

// AddWaterIntake logs a drink.
func (s *Server) AddWaterIntake(c *gin.Context) {
	var req waterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intake := models.NewWaterIntake(auth.UserID(c), req.AmountML, req.GoalML)
	if err := s.db.Create(intake).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save water intake"})
		return
	}
	c.JSON(http.StatusCreated, intake)
}

// TodayWaterIntake sums today's drinks against the goal.
func (s *Server) TodayWaterIntake(c *gin.Context) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var entries []models.WaterIntake
	if err := s.db.Where("user_id = ? AND date >= ?", auth.UserID(c), dayStart).
		Order("date asc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load water intake"})
		return
	}

	total := 0.0
	goal := float64(models.DefaultWaterGoalML)
	for _, e := range entries {
		total += e.AmountML
		if e.GoalML > 0 {
			goal = e.GoalML
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_intake": total,
		"goal":         goal,
		"entries":      entries,
	})
}
