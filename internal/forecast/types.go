package forecast

import (
	"time"
)

// WeatherSeries holds one location's 7-day forecast as parallel arrays, one
// entry per forecast hour and one per forecast day, in provider order.
type WeatherSeries struct {
	Hourly HourlySeries
	Daily  DailySeries
}

type HourlySeries struct {
	Time              []time.Time
	Temperature       []float64
	ApparentTemp      []float64
	Humidity          []float64
	WindSpeed         []float64
	PrecipProbability []float64
	UVIndex           []float64
}

type DailySeries struct {
	Time                 []time.Time
	TemperatureMax       []float64
	TemperatureMin       []float64
	PrecipProbabilityMax []float64
	UVIndexMax           []float64
	Sunrise              []time.Time
	Sunset               []time.Time
}

// TidePoint is a single predicted tide height at a station. Density is
// irregular and independent of the weather hourly grid.
type TidePoint struct {
	Time   time.Time
	Height float64
}

// HourlyRecord is one fused forecast hour for one location. Temperature,
// FeelsLike and WindSpeed are rounded to the nearest whole number; the
// remaining fields pass through unrounded. TideHeight is 0 when no tide
// prediction aligns with the hour.
type HourlyRecord struct {
	LocationID        uint
	Time              time.Time
	Temperature       float64
	FeelsLike         float64
	Humidity          float64
	WindSpeed         float64
	PrecipProbability float64
	UVIndex           float64
	TideHeight        float64
}

// DailySummary is one scored forecast day for one location, uniquely
// identified by (LocationID, Date).
type DailySummary struct {
	LocationID     uint
	Date           time.Time
	Sunrise        time.Time
	Sunset         time.Time
	TemperatureMax float64
	TemperatureMin float64
	WaterTemp      float64
	HumidityAvg    float64
	UVIndexMax     float64
	WindMax        float64
	Score          int
	CrowdLevel     string
}
