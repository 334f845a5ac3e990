package hourlyconditions

import (
	"time"

	"gorm.io/gorm"

	"beachday/shorecast/internal/forecast"
)

type Repository interface {
	ReplaceWindow(locationID uint, from time.Time, records []forecast.HourlyRecord) error
}

type HourlySQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &HourlySQLRepository{db: db}
}

// ReplaceWindow deletes the location's rows at or after from, then inserts
// the new records. Stale history before the window is left untouched. The two
// statements are not transactional; a crash in between leaves the window
// empty until the next successful run.
func (r *HourlySQLRepository) ReplaceWindow(locationID uint, from time.Time, records []forecast.HourlyRecord) error {
	err := r.db.
		Where("location_id = ? AND forecast_time >= ?", locationID, from).
		Delete(&HourlyCondition{}).Error
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return nil
	}

	rows := make([]HourlyCondition, 0, len(records))
	for _, rec := range records {
		rows = append(rows, fromRecord(rec))
	}

	return r.db.Create(&rows).Error
}
