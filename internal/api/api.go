package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"vitatrack/internal/ai"
	"vitatrack/internal/auth"
	"vitatrack/internal/monitoring"
	"vitatrack/internal/patterns"
	"vitatrack/internal/planner"
)

// listLimit caps every list endpoint.
const listLimit = 100

// Server is the main API handler for the tracker.
type Server struct {
	Router   *gin.Engine
	db       *gorm.DB
	log      *zap.Logger
	issuer   *auth.TokenIssuer
	provider ai.Provider // nil when no LLM is configured
	worker   *planner.Worker
	detector *patterns.Detector
	monitor  *monitoring.Monitor
}

// NewServer creates the API server and wires all routes.
func NewServer(db *gorm.DB, log *zap.Logger, issuer *auth.TokenIssuer, provider ai.Provider, worker *planner.Worker) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.GinMiddleware())

	s := &Server{
		Router:   router,
		db:       db,
		log:      log,
		issuer:   issuer,
		provider: provider,
		worker:   worker,
		detector: patterns.NewDetector(db, log),
		monitor:  monitoring.NewMonitor(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/ws", s.handleWebSocket)

	api := s.Router.Group("/api")
	{
		api.GET("/health", s.HealthCheck)
		api.GET("/stats", s.Stats)
		api.POST("/register", s.Register)
		api.POST("/login", s.Login)
		api.GET("/exercises", s.ListExercises)
		api.GET("/foods", s.ListFoods)
		api.GET("/forum", s.ListForumPosts)
		api.POST("/initialize-data", s.InitializeData)
	}

	authed := s.Router.Group("/api")
	authed.Use(auth.Middleware(s.issuer))
	{
		authed.GET("/profile", s.GetProfile)
		authed.PUT("/evaluation", s.UpdateEvaluation)

		authed.POST("/exercises", s.CreateExercise)

		authed.GET("/nutrition-plans", s.ListNutritionPlans)
		authed.POST("/nutrition-plans/generate", s.GenerateNutritionPlan)
		authed.GET("/workout-plans", s.ListWorkoutPlans)
		authed.POST("/workout-plans/generate", s.GenerateWorkoutPlan)

		authed.POST("/progress", s.AddProgressEntry)
		authed.GET("/progress", s.ListProgress)
		authed.POST("/water-intake", s.AddWaterIntake)
		authed.GET("/water-intake/today", s.TodayWaterIntake)

		authed.POST("/chat", s.Chat)
		authed.GET("/chat/history", s.ChatHistory)

		authed.GET("/notifications", s.ListNotifications)
		authed.PUT("/notifications/:id/read", s.MarkNotificationRead)

		authed.POST("/forum", s.CreateForumPost)
		authed.POST("/forum/:id/like", s.LikeForumPost)
		authed.POST("/forum/:id/replies", s.ReplyForumPost)

		authed.POST("/health-metrics/calculate", s.CalculateHealthMetrics)
		authed.GET("/health-metrics/history", s.HealthMetricsHistory)
		authed.GET("/health-analysis", s.HealthAnalysis)

		authed.GET("/analytics/advanced-progress", s.AdvancedProgress)

		authed.GET("/patterns/detect-abandonment", s.DetectAbandonment)
		authed.GET("/patterns/alerts", s.ListPatternAlerts)
		authed.PUT("/patterns/alerts/:id/resolve", s.ResolvePatternAlert)
	}
}

// HealthCheck reports service and database liveness.
func (s *Server) HealthCheck(c *gin.Context) {
	status := "healthy"
	if err := s.db.DB().Ping(); err != nil {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "timestamp": time.Now().UTC()})
}

// Stats reports the in-process application counters and uptime.
func (s *Server) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
