package locations

// Location is a monitored coastal site. Rows are owned and mutated
// externally; the pipeline only reads them.
type Location struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	TideStationID string  `json:"tide_station_id" gorm:"column:tide_station_id"`
	IsActive      bool    `json:"is_active" gorm:"column:is_active;index:idx_locations_is_active"`
}

func (Location) TableName() string {
	return "locations"
}
