package analytics

import "math"

// stableSlopeKgPerWeek is the band inside which a weight trend is reported
// as stable rather than moving.
const stableSlopeKgPerWeek = 0.1

// FitTrend runs an ordinary least-squares fit over the points, with time in
// days as the independent variable. Fewer than two points yields
// insufficient_data.
func FitTrend(points []Point) Trend {
	if len(points) < 2 {
		return Trend{Direction: "insufficient_data"}
	}

	t0 := points[0].Date
	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(points))
	for _, p := range points {
		x := p.Date.Sub(t0).Hours() / 24
		sumX += x
		sumY += p.Value
		sumXY += x * p.Value
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// All samples on the same day; no usable time axis.
		return Trend{Direction: "insufficient_data"}
	}

	slopePerDay := (n*sumXY - sumX*sumY) / denom
	slopePerWeek := slopePerDay * 7

	direction := "stable"
	switch {
	case slopePerWeek > stableSlopeKgPerWeek:
		direction = "increasing"
	case slopePerWeek < -stableSlopeKgPerWeek:
		direction = "decreasing"
	}

	return Trend{
		Direction:    direction,
		SlopePerWeek: round1(slopePerWeek),
		Change:       round1(points[len(points)-1].Value - points[0].Value),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
