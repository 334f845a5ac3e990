package forecast

import (
	"time"
)

const (
	CrowdQuiet    = "Quiet"
	CrowdModerate = "Moderate"
	CrowdParty    = "Party"
)

// Thresholds is the scoring policy for a pipeline run. It is immutable once
// built; pass a fresh value to evaluate an alternative policy side by side.
type Thresholds struct {
	WindMaxMph        float64
	WindPenalty       int
	TempMaxF          float64
	HeatPenalty       int
	TempMinF          float64
	ColdPenalty       int
	PrecipMaxPct      float64
	RainPenalty       int
	ModerateScoreOver int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		WindMaxMph:        15,
		WindPenalty:       20,
		TempMaxF:          85,
		HeatPenalty:       20,
		TempMinF:          55,
		ColdPenalty:       10,
		PrecipMaxPct:      10,
		RainPenalty:       40,
		ModerateScoreOver: 80,
	}
}

// Score starts at 100 and deducts for each unmet threshold independently.
// Deductions stack; the result is floored at 0.
func (t Thresholds) Score(windMax, tempMax, tempMin, precipMax float64) int {
	score := 100
	if windMax > t.WindMaxMph {
		score -= t.WindPenalty
	}
	if tempMax > t.TempMaxF {
		score -= t.HeatPenalty
	}
	if tempMin < t.TempMinF {
		score -= t.ColdPenalty
	}
	if precipMax > t.PrecipMaxPct {
		score -= t.RainPenalty
	}
	if score < 0 {
		score = 0
	}
	return score
}

// CrowdLevel labels expected attendance. Weekends are always Party regardless
// of score; weekdays are Moderate above the score threshold, otherwise Quiet.
func (t Thresholds) CrowdLevel(date time.Time, score int) string {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return CrowdParty
	}
	if score > t.ModerateScoreOver {
		return CrowdModerate
	}
	return CrowdQuiet
}
