package forecast

import (
	"math"
	"time"
)

// BuildTideGrid keys each prediction's height by its timestamp truncated to
// the containing hour. When two predictions land in the same hour the later
// entry in input order wins.
func BuildTideGrid(points []TidePoint) map[time.Time]float64 {
	grid := make(map[time.Time]float64, len(points))
	for _, p := range points {
		grid[p.Time.Truncate(time.Hour)] = p.Height
	}
	return grid
}

// MergeHourly aligns tide predictions onto the weather hourly timeline and
// produces one HourlyRecord per weather hour, in input order. The weather
// series is the authoritative timeline: tide data can never add or remove
// hours. Hours without an aligned tide prediction get height 0.
func MergeHourly(locationID uint, ws WeatherSeries, tides []TidePoint) []HourlyRecord {
	grid := BuildTideGrid(tides)

	records := make([]HourlyRecord, 0, len(ws.Hourly.Time))
	for i, ts := range ws.Hourly.Time {
		records = append(records, HourlyRecord{
			LocationID:        locationID,
			Time:              ts,
			Temperature:       math.Round(ws.Hourly.Temperature[i]),
			FeelsLike:         math.Round(ws.Hourly.ApparentTemp[i]),
			Humidity:          ws.Hourly.Humidity[i],
			WindSpeed:         math.Round(ws.Hourly.WindSpeed[i]),
			PrecipProbability: ws.Hourly.PrecipProbability[i],
			UVIndex:           ws.Hourly.UVIndex[i],
			TideHeight:        grid[ts.Truncate(time.Hour)],
		})
	}
	return records
}
