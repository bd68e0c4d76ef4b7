package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitatrack/internal/models"
)

func day(n int) time.Time {
	return time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func floatPtr(v float64) *float64 { return &v }

func TestFitTrendDecreasing(t *testing.T) {
	// Losing exactly 0.5 kg/week over four weeks.
	var points []Point
	for i := 0; i < 5; i++ {
		points = append(points, Point{Date: day(i * 7), Value: 80 - 0.5*float64(i)})
	}

	trend := FitTrend(points)
	assert.Equal(t, "decreasing", trend.Direction)
	assert.InDelta(t, -0.5, trend.SlopePerWeek, 0.01)
	assert.InDelta(t, -2.0, trend.Change, 0.01)
}

func TestFitTrendStable(t *testing.T) {
	points := []Point{
		{Date: day(0), Value: 70.0},
		{Date: day(7), Value: 70.05},
		{Date: day(14), Value: 69.98},
	}
	assert.Equal(t, "stable", FitTrend(points).Direction)
}

func TestFitTrendInsufficientData(t *testing.T) {
	assert.Equal(t, "insufficient_data", FitTrend(nil).Direction)
	assert.Equal(t, "insufficient_data", FitTrend([]Point{{Date: day(0), Value: 70}}).Direction)

	// Two samples on the same day have no time axis to fit.
	sameDay := []Point{
		{Date: day(0), Value: 70},
		{Date: day(0), Value: 71},
	}
	assert.Equal(t, "insufficient_data", FitTrend(sameDay).Direction)
}

func TestPeriodWindow(t *testing.T) {
	for period, days := range map[string]float64{"week": 7, "month": 30, "quarter": 90, "year": 365} {
		w, err := PeriodWindow(period)
		require.NoError(t, err)
		assert.Equal(t, days, w.Hours()/24)
	}
	_, err := PeriodWindow("decade")
	assert.Error(t, err)
}

func TestBuildReport(t *testing.T) {
	var entries []models.ProgressEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, models.ProgressEntry{
			Date:         day(i * 7),
			Weight:       floatPtr(80 - 0.6*float64(i)),
			BodyFat:      floatPtr(20 - 0.2*float64(i)),
			Measurements: models.FloatMap{"waist": 90 - float64(i)},
		})
	}

	var water []models.WaterIntake
	for i := 0; i < 8; i++ {
		water = append(water, models.WaterIntake{Date: day(i), AmountML: 2200, GoalML: 2000})
	}

	dc := 2100.0
	report := Build(Input{
		Period:  "month",
		Entries: entries,
		Water:   water,
		WorkoutPlans: 4,
		Evaluation: &models.Evaluation{
			Goal: models.GoalLoseWeight,
		},
		DailyCalories: &dc,
	})

	assert.Equal(t, "month", report.Period)
	assert.Len(t, report.ChartData.Weight, 5)
	assert.Len(t, report.ChartData.BodyFat, 5)
	assert.Empty(t, report.ChartData.MuscleMass)
	assert.Len(t, report.ChartData.Measurements["waist"], 5)
	assert.Len(t, report.ChartData.WaterIntake, 8)

	assert.Equal(t, "decreasing", report.Trends["weight"].Direction)
	assert.Equal(t, "insufficient_data", report.Trends["muscle_mass"].Direction)

	assert.Equal(t, 5, report.ActivitySummary.ProgressEntries)
	assert.Equal(t, 8, report.ActivitySummary.WaterRecords)
	assert.InDelta(t, 4.0/(30.0/7.0), report.ActivitySummary.WorkoutFrequency, 0.1)

	assert.True(t, report.GoalProgress.OnTrack)
	assert.Equal(t, models.GoalLoseWeight, report.GoalProgress.Goal)

	assert.Contains(t, report.Predictions, "projected_weight_30d")
	assert.Equal(t, "medium", report.Predictions["confidence"])

	ids := make([]string, 0, len(report.Achievements))
	for _, a := range report.Achievements {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "first_entry")
	assert.Contains(t, ids, "consistent_tracker")
	assert.Contains(t, ids, "weight_milestone")
	assert.Contains(t, ids, "hydration_streak")
}

func TestBuildReportEmpty(t *testing.T) {
	report := Build(Input{Period: "week"})
	assert.Equal(t, "insufficient_data", report.Trends["weight"].Direction)
	assert.Equal(t, "insufficient_data", report.Predictions["status"])
	assert.Empty(t, report.Achievements)
	assert.False(t, report.GoalProgress.OnTrack)
}
