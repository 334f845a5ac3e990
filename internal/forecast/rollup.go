package forecast

import (
	"math"
	"time"
)

const dateKeyLayout = "2006-01-02"

// BuildDailySummaries groups hourly records by calendar date and emits one
// scored summary per forecast day. A day must appear in the weather daily
// series and have at least one grouped hourly record; days with zero hourly
// coverage are skipped. waterTemp is a single latest-reading snapshot and is
// carried identically on every summary of the run.
func BuildDailySummaries(locationID uint, ws WeatherSeries, waterTemp float64, hours []HourlyRecord, th Thresholds) []DailySummary {
	byDate := make(map[string][]HourlyRecord)
	for _, h := range hours {
		key := h.Time.Format(dateKeyLayout)
		byDate[key] = append(byDate[key], h)
	}

	summaries := make([]DailySummary, 0, len(ws.Daily.Time))
	for i, day := range ws.Daily.Time {
		dayHours, ok := byDate[day.Format(dateKeyLayout)]
		if !ok {
			continue
		}

		windMax, humidityAvg := aggregateHours(dayHours)

		score := th.Score(
			windMax,
			ws.Daily.TemperatureMax[i],
			ws.Daily.TemperatureMin[i],
			ws.Daily.PrecipProbabilityMax[i],
		)

		summaries = append(summaries, DailySummary{
			LocationID:     locationID,
			Date:           day,
			Sunrise:        ws.Daily.Sunrise[i],
			Sunset:         ws.Daily.Sunset[i],
			TemperatureMax: math.Round(ws.Daily.TemperatureMax[i]),
			TemperatureMin: math.Round(ws.Daily.TemperatureMin[i]),
			WaterTemp:      waterTemp,
			HumidityAvg:    humidityAvg,
			UVIndexMax:     ws.Daily.UVIndexMax[i],
			WindMax:        windMax,
			Score:          score,
			CrowdLevel:     th.CrowdLevel(day, score),
		})
	}
	return summaries
}

// aggregateHours derives the per-day extremes from grouped hourly records:
// the maximum wind speed and the mean humidity rounded to the nearest whole
// number.
func aggregateHours(hours []HourlyRecord) (windMax, humidityAvg float64) {
	var humiditySum float64
	for _, h := range hours {
		if h.WindSpeed > windMax {
			windMax = h.WindSpeed
		}
		humiditySum += h.Humidity
	}
	humidityAvg = math.Round(humiditySum / float64(len(hours)))
	return windMax, humidityAvg
}

// RunWindow is the [start, end) span the current pipeline run covers,
// anchored at the start of the run's first forecast day.
func RunWindow(now time.Time, days int) (time.Time, time.Time) {
	start := now.Truncate(24 * time.Hour)
	return start, start.AddDate(0, 0, days)
}
