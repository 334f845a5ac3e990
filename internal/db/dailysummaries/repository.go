package dailysummaries

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"beachday/shorecast/internal/forecast"
)

type Repository interface {
	Upsert(summaries []forecast.DailySummary) error
}

type DailySQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &DailySQLRepository{db: db}
}

// Upsert writes summaries with ON CONFLICT (location_id, date) DO UPDATE, so
// re-running a day overwrites the stored row in place.
func (r *DailySQLRepository) Upsert(summaries []forecast.DailySummary) error {
	if len(summaries) == 0 {
		return nil
	}

	rows := make([]DailySummary, 0, len(summaries))
	for _, sum := range summaries {
		rows = append(rows, fromSummary(sum))
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "location_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sunrise", "sunset",
			"temperature_max", "temperature_min",
			"water_temp", "humidity_avg",
			"uv_index_max", "wind_max",
			"score", "crowd_level",
		}),
	}).Create(&rows).Error
}
