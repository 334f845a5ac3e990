package hourlyconditions

import (
	"time"

	"beachday/shorecast/internal/forecast"
)

// HourlyCondition is one fused forecast hour as stored. Row identity is
// synthetic and unstable across runs, which is why the repository replaces
// the future window instead of upserting.
type HourlyCondition struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	LocationID        uint      `json:"location_id" gorm:"column:location_id;index:idx_hourly_location_time"`
	ForecastTime      time.Time `json:"forecast_time" gorm:"column:forecast_time;index:idx_hourly_location_time"`
	Temperature       float64   `json:"temperature"`
	FeelsLike         float64   `json:"feels_like" gorm:"column:feels_like"`
	Humidity          float64   `json:"humidity"`
	WindSpeed         float64   `json:"wind_speed" gorm:"column:wind_speed"`
	PrecipProbability float64   `json:"precip_probability" gorm:"column:precip_probability"`
	UVIndex           float64   `json:"uv_index" gorm:"column:uv_index"`
	TideHeight        float64   `json:"tide_height" gorm:"column:tide_height"`
}

func (HourlyCondition) TableName() string {
	return "hourly_conditions"
}

func fromRecord(rec forecast.HourlyRecord) HourlyCondition {
	return HourlyCondition{
		LocationID:        rec.LocationID,
		ForecastTime:      rec.Time,
		Temperature:       rec.Temperature,
		FeelsLike:         rec.FeelsLike,
		Humidity:          rec.Humidity,
		WindSpeed:         rec.WindSpeed,
		PrecipProbability: rec.PrecipProbability,
		UVIndex:           rec.UVIndex,
		TideHeight:        rec.TideHeight,
	}
}
