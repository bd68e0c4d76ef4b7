package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitatrack/internal/auth"
	"vitatrack/internal/health"
	"vitatrack/internal/models"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and returns an access token.
func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing int
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check existing users"})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.NewUser(req.Email, req.FullName, hash)
	if err := s.db.Create(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	s.log.Info("user registered", zap.String("user_id", user.ID))
	s.monitor.IncrCounter("registrations")
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// Login authenticates a user and returns an access token.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if err != nil || !auth.CheckPassword(user.HashedPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	s.monitor.IncrCounter("logins")
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// currentUser loads the authenticated user, including their evaluation.
func (s *Server) currentUser(c *gin.Context) (*models.User, bool) {
	userID := auth.UserID(c)

	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}

	var eval models.Evaluation
	if err := s.db.Where("user_id = ?", userID).First(&eval).Error; err == nil {
		user.Evaluation = &eval
	}
	return &user, true
}

// GetProfile returns the authenticated user's document.
func (s *Server) GetProfile(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

type evaluationRequest struct {
	Age                  int      `json:"age"`
	Gender               string   `json:"gender"`
	Weight               float64  `json:"weight"`
	Height               float64  `json:"height"`
	ActivityLevel        string   `json:"activity_level"`
	Goal                 string   `json:"goal"`
	ExperienceLevel      string   `json:"experience_level"`
	HealthConditions     []string `json:"health_conditions"`
	FoodPreferences      []string `json:"food_preferences"`
	FoodAllergies        []string `json:"food_allergies"`
	AvailableDays        []string `json:"available_days"`
	PreferredWorkoutTime string   `json:"preferred_workout_time"`
	EquipmentAvailable   []string `json:"equipment_available"`
}

// UpdateEvaluation stores the questionnaire and recomputes the user's TMB and
// daily calorie target.
func (s *Server) UpdateEvaluation(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}

	var req evaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := health.Input{
		Weight:        req.Weight,
		Height:        req.Height,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
	}
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !health.ValidGoal(req.Goal) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown goal %q", req.Goal)})
		return
	}

	tmb := health.BMRHarris(req.Weight, req.Height, req.Age, req.Gender)
	dailyCalories := health.DailyCalories(tmb, req.ActivityLevel, req.Goal)

	eval := models.Evaluation{
		UserID:               user.ID,
		Age:                  req.Age,
		Gender:               req.Gender,
		Weight:               req.Weight,
		Height:               req.Height,
		ActivityLevel:        req.ActivityLevel,
		Goal:                 req.Goal,
		ExperienceLevel:      req.ExperienceLevel,
		HealthConditions:     req.HealthConditions,
		FoodPreferences:      req.FoodPreferences,
		FoodAllergies:        req.FoodAllergies,
		AvailableDays:        req.AvailableDays,
		PreferredWorkoutTime: req.PreferredWorkoutTime,
		EquipmentAvailable:   req.EquipmentAvailable,
	}

	// Replace any previous submission.
	var existing models.Evaluation
	if err := s.db.Where("user_id = ?", user.ID).First(&existing).Error; err == nil {
		eval.ID = existing.ID
	} else {
		eval.ID = user.ID // one evaluation per user
	}
	if err := s.db.Save(&eval).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save evaluation"})
		return
	}

	user.TMB = &tmb
	user.DailyCalories = &dailyCalories
	if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"tmb": tmb, "daily_calories": dailyCalories}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Evaluation updated successfully",
		"tmb":            tmb,
		"daily_calories": dailyCalories,
	})
}
