package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vitatrack/internal/models"
)

// ListExercises returns the exercise library, optionally filtered.
func (s *Server) ListExercises(c *gin.Context) {
	query := s.db.Model(&models.Exercise{})

	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if d := c.Query("difficulty"); d != "" {
		query = query.Where("difficulty = ?", d)
	}

	var exercises []models.Exercise
	if err := query.Limit(listLimit).Find(&exercises).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exercises"})
		return
	}

	// Muscle groups live in a JSON column; filter in memory.
	if mg := c.Query("muscle_group"); mg != "" {
		filtered := exercises[:0]
		for _, e := range exercises {
			for _, g := range e.MuscleGroups {
				if strings.EqualFold(g, mg) {
					filtered = append(filtered, e)
					break
				}
			}
		}
		exercises = filtered
	}

	c.JSON(http.StatusOK, exercises)
}

// CreateExercise adds an exercise to the library.
func (s *Server) CreateExercise(c *gin.Context) {
	exercise := models.NewExercise()
	if err := c.ShouldBindJSON(exercise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if exercise.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	// Binding may have overwritten the generated fields.
	fresh := models.NewExercise()
	exercise.ID = fresh.ID
	exercise.CreatedAt = fresh.CreatedAt

	if err := s.db.Create(exercise).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create exercise"})
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// ListFoods returns the food database with an optional name search.
func (s *Server) ListFoods(c *gin.Context) {
	query := s.db.Model(&models.Food{})
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var foods []models.Food
	if err := query.Limit(listLimit).Find(&foods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// InitializeData seeds the default catalog. Idempotent: it does nothing when
// exercises already exist.
func (s *Server) InitializeData(c *gin.Context) {
	var count int
	if err := s.db.Model(&models.Exercise{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to inspect catalog"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Data already initialized"})
		return
	}

	for _, e := range defaultExercises() {
		if err := s.db.Create(&e).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed exercises"})
			return
		}
	}
	for _, f := range defaultFoods() {
		if err := s.db.Create(&f).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed foods"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Default data initialized successfully"})
}
