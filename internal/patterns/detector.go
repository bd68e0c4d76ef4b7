package patterns

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"vitatrack/internal/models"
)

// DefaultWindow is how far back the detector looks for recent activity.
const DefaultWindow = 14 * 24 * time.Hour

// ActivitySummary counts a user's recent engagement signals.
type ActivitySummary struct {
	ProgressEntries  int `json:"progress_entries"`
	WaterRecords     int `json:"water_records"`
	WorkoutPlans     int `json:"workout_plans"`
	ChatInteractions int `json:"chat_interactions"`
}

// Detector runs the rule-based abandonment heuristics and persists alerts.
type Detector struct {
	db     *gorm.DB
	log    *zap.Logger
	window time.Duration
}

// NewDetector creates a detector with the default lookback window.
func NewDetector(db *gorm.DB, log *zap.Logger) *Detector {
	return &Detector{db: db, log: log, window: DefaultWindow}
}

// Detect evaluates the heuristics for one user. New alerts are stored and
// raise notifications; an alert type already active for the user is not
// duplicated. Accounts younger than the lookback window never alert.
func (d *Detector) Detect(userID string) ([]models.PatternAlert, ActivitySummary, error) {
	summary, err := d.summarize(userID)
	if err != nil {
		return nil, summary, err
	}

	var user models.User
	if err := d.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, summary, fmt.Errorf("failed to load user: %w", err)
	}
	if time.Since(user.CreatedAt) < d.window {
		// Too early to judge engagement.
		return []models.PatternAlert{}, summary, nil
	}

	candidates := d.evaluate(userID, summary)

	stored := make([]models.PatternAlert, 0, len(candidates))
	for _, alert := range candidates {
		var existing int
		err := d.db.Model(&models.PatternAlert{}).
			Where("user_id = ? AND alert_type = ? AND is_active = ?", userID, alert.AlertType, true).
			Count(&existing).Error
		if err != nil {
			return nil, summary, fmt.Errorf("failed to check existing alerts: %w", err)
		}
		if existing > 0 {
			continue
		}

		if err := d.db.Create(&alert).Error; err != nil {
			return nil, summary, fmt.Errorf("failed to store alert: %w", err)
		}
		notif := models.NewNotification(userID, alert.Title, alert.Description, models.NotificationAlert)
		if err := d.db.Create(notif).Error; err != nil {
			d.log.Warn("failed to create alert notification", zap.String("user_id", userID), zap.Error(err))
		}

		d.log.Info("pattern alert raised",
			zap.String("user_id", userID),
			zap.String("alert_type", alert.AlertType),
			zap.String("severity", alert.Severity))
		stored = append(stored, alert)
	}

	return stored, summary, nil
}

func (d *Detector) summarize(userID string) (ActivitySummary, error) {
	since := time.Now().Add(-d.window)
	var s ActivitySummary

	counts := []struct {
		model interface{}
		query string
		dst   *int
	}{
		{&models.ProgressEntry{}, "user_id = ? AND date >= ?", &s.ProgressEntries},
		{&models.WaterIntake{}, "user_id = ? AND date >= ?", &s.WaterRecords},
		{&models.ChatMessage{}, "user_id = ? AND timestamp >= ?", &s.ChatInteractions},
	}
	for _, c := range counts {
		if err := d.db.Model(c.model).Where(c.query, userID, since).Count(c.dst).Error; err != nil {
			return s, fmt.Errorf("failed to summarize activity: %w", err)
		}
	}

	if err := d.db.Model(&models.WorkoutPlan{}).Where("user_id = ?", userID).Count(&s.WorkoutPlans).Error; err != nil {
		return s, fmt.Errorf("failed to count workout plans: %w", err)
	}
	return s, nil
}

func (d *Detector) evaluate(userID string, s ActivitySummary) []models.PatternAlert {
	days := int(d.window.Hours() / 24)
	var alerts []models.PatternAlert

	if s.ProgressEntries == 0 && s.WaterRecords == 0 && s.ChatInteractions == 0 {
		alerts = append(alerts, *models.NewPatternAlert(userID,
			models.AlertGeneralInactivity, models.SeverityCritical,
			"We miss you!",
			fmt.Sprintf("No activity recorded in the last %d days.", days),
			[]string{
				"Log a quick progress entry to get back on track",
				"Start small: track one glass of water today",
				"Ask the coach for a fresh workout idea",
			}))
		return alerts
	}

	if s.ProgressEntries == 0 {
		alerts = append(alerts, *models.NewPatternAlert(userID,
			models.AlertTrackingAbandonment, models.SeverityMedium,
			"Progress tracking has stopped",
			fmt.Sprintf("No progress entries in the last %d days.", days),
			[]string{
				"Weigh in at the same time of day for consistent readings",
				"Set a weekly reminder to log your measurements",
			}))
	}

	if s.WaterRecords == 0 {
		alerts = append(alerts, *models.NewPatternAlert(userID,
			models.AlertHydrationStopped, models.SeverityLow,
			"Hydration tracking has stopped",
			fmt.Sprintf("No water intake logged in the last %d days.", days),
			[]string{
				"Keep a bottle at your desk and log refills as you go",
			}))
	}

	if s.WorkoutPlans > 0 && s.ProgressEntries == 0 && s.ChatInteractions == 0 {
		alerts = append(alerts, *models.NewPatternAlert(userID,
			models.AlertPlanAbandonment, models.SeverityHigh,
			"Your plan may be abandoned",
			"You have a workout plan but no recent activity around it.",
			[]string{
				"Review your plan and adjust it if it feels too demanding",
				"Regenerate the plan to match your current schedule",
			}))
	}

	return alerts
}

// Resolve deactivates an active alert and stamps its resolution time.
func (d *Detector) Resolve(userID, alertID string) (*models.PatternAlert, error) {
	var alert models.PatternAlert
	err := d.db.Where("id = ? AND user_id = ?", alertID, userID).First(&alert).Error
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	alert.IsActive = false
	alert.ResolvedAt = &now
	if err := d.db.Save(&alert).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}
	return &alert, nil
}
