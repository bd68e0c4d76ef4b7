package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"vitatrack/internal/auth"
	"vitatrack/internal/models"
	"vitatrack/internal/monitoring"
)

// DetectAbandonment runs the engagement heuristics for the caller and returns
// any newly raised alerts alongside the activity counts that triggered them.
func (s *Server) DetectAbandonment(c *gin.Context) {
	alerts, summary, err := s.detector.Detect(auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run detection"})
		return
	}
	s.monitor.IncrCounter("pattern_detections")
	for _, alert := range alerts {
		monitoring.PatternAlertsRaised.WithLabelValues(alert.AlertType).Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts":           alerts,
		"total_alerts":     len(alerts),
		"activity_summary": summary,
	})
}

// ListPatternAlerts returns the user's alerts, active first, newest first.
func (s *Server) ListPatternAlerts(c *gin.Context) {
	query := s.db.Where("user_id = ?", auth.UserID(c))
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var alerts []models.PatternAlert
	if err := query.Order("is_active desc").Order("created_at desc").
		Limit(listLimit).Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "total_count": len(alerts)})
}

// ResolvePatternAlert deactivates one of the user's alerts.
func (s *Server) ResolvePatternAlert(c *gin.Context) {
	alert, err := s.detector.Resolve(auth.UserID(c), c.Param("id"))
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve alert"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert resolved", "alert": alert})
}
