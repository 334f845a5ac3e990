package dailysummaries

import (
	"time"

	"beachday/shorecast/internal/forecast"
)

// DailySummary is one scored forecast day as stored, keyed by
// (location_id, date).
type DailySummary struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	LocationID     uint      `json:"location_id" gorm:"column:location_id;uniqueIndex:idx_daily_location_date"`
	Date           time.Time `json:"date" gorm:"column:date;uniqueIndex:idx_daily_location_date"`
	Sunrise        time.Time `json:"sunrise"`
	Sunset         time.Time `json:"sunset"`
	TemperatureMax float64   `json:"temperature_max" gorm:"column:temperature_max"`
	TemperatureMin float64   `json:"temperature_min" gorm:"column:temperature_min"`
	WaterTemp      float64   `json:"water_temp" gorm:"column:water_temp"`
	HumidityAvg    float64   `json:"humidity_avg" gorm:"column:humidity_avg"`
	UVIndexMax     float64   `json:"uv_index_max" gorm:"column:uv_index_max"`
	WindMax        float64   `json:"wind_max" gorm:"column:wind_max"`
	Score          int       `json:"score"`
	CrowdLevel     string    `json:"crowd_level" gorm:"column:crowd_level"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}

func fromSummary(sum forecast.DailySummary) DailySummary {
	return DailySummary{
		LocationID:     sum.LocationID,
		Date:           sum.Date,
		Sunrise:        sum.Sunrise,
		Sunset:         sum.Sunset,
		TemperatureMax: sum.TemperatureMax,
		TemperatureMin: sum.TemperatureMin,
		WaterTemp:      sum.WaterTemp,
		HumidityAvg:    sum.HumidityAvg,
		UVIndexMax:     sum.UVIndexMax,
		WindMax:        sum.WindMax,
		Score:          sum.Score,
		CrowdLevel:     sum.CrowdLevel,
	}
}
