package locations

import (
	"gorm.io/gorm"
)

type Repository interface {
	Active() ([]Location, error)
}

type LocationSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LocationSQLRepository{db: db}
}

func (r *LocationSQLRepository) Active() ([]Location, error) {
	var locs []Location
	err := r.db.Where("is_active = ?", true).Order("id").Find(&locs).Error
	if err != nil {
		return nil, err
	}
	return locs, nil
}
