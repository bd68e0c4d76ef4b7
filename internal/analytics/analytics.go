package analytics

import (
	"fmt"
	"time"

	"vitatrack/internal/models"
)

// Point is one charted sample.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Trend summarizes a least-squares fit over a metric's samples.
type Trend struct {
	Direction    string  `json:"direction"` // increasing, decreasing, stable, insufficient_data
	SlopePerWeek float64 `json:"slope_per_week"`
	Change       float64 `json:"change"`
}

// Achievement is a rule-based milestone surfaced to the user.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChartData holds the per-metric series rendered by the client.
type ChartData struct {
	Weight       []Point            `json:"weight"`
	BodyFat      []Point            `json:"body_fat"`
	MuscleMass   []Point            `json:"muscle_mass"`
	Measurements map[string][]Point `json:"measurements"`
	WaterIntake  []Point            `json:"water_intake"`
}

// ActivitySummary counts engagement inside the report window.
type ActivitySummary struct {
	WorkoutFrequency float64 `json:"workout_frequency"` // sessions per week
	ProgressEntries  int     `json:"progress_entries"`
	WaterRecords     int     `json:"water_records"`
}

// GoalProgress relates the weight trend to the user's stated goal.
type GoalProgress struct {
	Goal          string   `json:"goal"`
	DailyCalories *float64 `json:"daily_calories,omitempty"`
	WeightChange  float64  `json:"weight_change"`
	OnTrack       bool     `json:"on_track"`
}

// Report is the advanced-progress payload.
type Report struct {
	Period          string                 `json:"period"`
	ChartData       ChartData              `json:"chart_data"`
	Trends          map[string]Trend       `json:"trends"`
	ActivitySummary ActivitySummary        `json:"activity_summary"`
	GoalProgress    GoalProgress           `json:"goal_progress"`
	Predictions     map[string]interface{} `json:"predictions"`
	Achievements    []Achievement          `json:"achievements"`
}

// PeriodWindow maps a report period name to its lookback duration.
func PeriodWindow(period string) (time.Duration, error) {
	switch period {
	case "week":
		return 7 * 24 * time.Hour, nil
	case "month":
		return 30 * 24 * time.Hour, nil
	case "quarter":
		return 90 * 24 * time.Hour, nil
	case "year":
		return 365 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown period %q", period)
	}
}

// Input carries everything the report needs; callers load the rows.
type Input struct {
	Period        string
	Entries       []models.ProgressEntry // oldest first
	Water         []models.WaterIntake
	WorkoutPlans  int
	Evaluation    *models.Evaluation
	DailyCalories *float64
}

// Build assembles the full report from pre-loaded rows.
func Build(in Input) Report {
	charts := buildCharts(in.Entries, in.Water)

	trends := map[string]Trend{
		"weight":      FitTrend(charts.Weight),
		"body_fat":    FitTrend(charts.BodyFat),
		"muscle_mass": FitTrend(charts.MuscleMass),
	}

	window, err := PeriodWindow(in.Period)
	if err != nil {
		window = 30 * 24 * time.Hour
	}
	weeks := window.Hours() / 24 / 7

	summary := ActivitySummary{
		ProgressEntries: len(in.Entries),
		WaterRecords:    len(in.Water),
	}
	if weeks > 0 {
		summary.WorkoutFrequency = round1(float64(in.WorkoutPlans) / weeks)
	}

	return Report{
		Period:          in.Period,
		ChartData:       charts,
		Trends:          trends,
		ActivitySummary: summary,
		GoalProgress:    goalProgress(in, trends["weight"]),
		Predictions:     predictions(charts.Weight, trends["weight"]),
		Achievements:    achievements(in, trends["weight"]),
	}
}

func buildCharts(entries []models.ProgressEntry, water []models.WaterIntake) ChartData {
	charts := ChartData{Measurements: map[string][]Point{}}

	for _, e := range entries {
		if e.Weight != nil {
			charts.Weight = append(charts.Weight, Point{Date: e.Date, Value: *e.Weight})
		}
		if e.BodyFat != nil {
			charts.BodyFat = append(charts.BodyFat, Point{Date: e.Date, Value: *e.BodyFat})
		}
		if e.MuscleMass != nil {
			charts.MuscleMass = append(charts.MuscleMass, Point{Date: e.Date, Value: *e.MuscleMass})
		}
		for name, v := range e.Measurements {
			charts.Measurements[name] = append(charts.Measurements[name], Point{Date: e.Date, Value: v})
		}
	}

	// Water is charted as daily totals.
	daily := map[string]float64{}
	var order []string
	for _, w := range water {
		day := w.Date.Format("2006-01-02")
		if _, seen := daily[day]; !seen {
			order = append(order, day)
		}
		daily[day] += w.AmountML
	}
	for _, day := range order {
		d, _ := time.Parse("2006-01-02", day)
		charts.WaterIntake = append(charts.WaterIntake, Point{Date: d, Value: daily[day]})
	}

	return charts
}

func goalProgress(in Input, weight Trend) GoalProgress {
	gp := GoalProgress{WeightChange: weight.Change, DailyCalories: in.DailyCalories}
	if in.Evaluation == nil {
		return gp
	}
	gp.Goal = in.Evaluation.Goal

	switch in.Evaluation.Goal {
	case models.GoalLoseWeight:
		gp.OnTrack = weight.Direction == "decreasing"
	case models.GoalGainWeight, models.GoalBuildMuscle:
		gp.OnTrack = weight.Direction == "increasing"
	default:
		gp.OnTrack = weight.Direction == "stable" || weight.Direction == "insufficient_data"
	}
	return gp
}

func predictions(weightPoints []Point, weight Trend) map[string]interface{} {
	preds := map[string]interface{}{}
	if weight.Direction == "insufficient_data" {
		preds["status"] = "insufficient_data"
		return preds
	}

	latest := weightPoints[len(weightPoints)-1].Value
	preds["weekly_weight_change"] = weight.SlopePerWeek
	preds["projected_weight_30d"] = round1(latest + weight.SlopePerWeek*30.0/7.0)

	confidence := "low"
	if len(weightPoints) >= 5 {
		confidence = "medium"
	}
	if len(weightPoints) >= 10 {
		confidence = "high"
	}
	preds["confidence"] = confidence
	return preds
}

func achievements(in Input, weight Trend) []Achievement {
	achs := []Achievement{}

	if len(in.Entries) >= 1 {
		achs = append(achs, Achievement{
			ID:          "first_entry",
			Title:       "Getting started",
			Description: "Logged your first progress entry",
		})
	}
	if len(in.Entries) >= 5 {
		achs = append(achs, Achievement{
			ID:          "consistent_tracker",
			Title:       "Consistent tracker",
			Description: fmt.Sprintf("Logged %d progress entries", len(in.Entries)),
		})
	}
	if in.Evaluation != nil && in.Evaluation.Goal == models.GoalLoseWeight && weight.Change <= -2 {
		achs = append(achs, Achievement{
			ID:          "weight_milestone",
			Title:       "Milestone reached",
			Description: fmt.Sprintf("Lost %.1f kg over this period", -weight.Change),
		})
	}

	goalDays := 0
	daily := map[string]float64{}
	goals := map[string]float64{}
	for _, w := range in.Water {
		day := w.Date.Format("2006-01-02")
		daily[day] += w.AmountML
		goals[day] = w.GoalML
	}
	for day, total := range daily {
		if total >= goals[day] {
			goalDays++
		}
	}
	if goalDays >= 7 {
		achs = append(achs, Achievement{
			ID:          "hydration_streak",
			Title:       "Well hydrated",
			Description: fmt.Sprintf("Hit your water goal on %d days", goalDays),
		})
	}

	return achs
}
