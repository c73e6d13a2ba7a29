package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wifispots-server/model"
)

const nearbyLimit = 10

type LocationDAO struct {
	db *gorm.DB
}

func NewLocationDAO(db *gorm.DB) *LocationDAO {
	return &LocationDAO{db: db}
}

func (locationDAO *LocationDAO) GetLocationByID(ctx context.Context, locationID string) (model.Location, error) {
	var location model.Location

	// reviews always come back in insertion order
	result := locationDAO.db.WithContext(ctx).
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("seq asc")
		}).
		First(&location, "id = ?", locationID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Location{}, model.ErrLocationNotFound
		}
		return model.Location{}, result.Error
	}

	injectCoords(&location)

	return location, nil
}

// injectCoords fills the JSON-only coordinate pair from the stored columns.
func injectCoords(location *model.Location) {
	location.Coords = []float64{location.Lng, location.Lat}
}

const haversineMeters = `(6371000 * acos(least(1.0,
	cos(radians(?)) * cos(radians(lat)) * cos(radians(lng) - radians(?))
	+ sin(radians(?)) * sin(radians(lat)))))`

func (locationDAO *LocationDAO) GetLocationsNear(ctx context.Context, lng, lat, maxDistance float64) ([]model.LocationSummary, error) {
	var summaries []model.LocationSummary

	result := locationDAO.db.WithContext(ctx).Raw(`
		SELECT id, name, address, rating, distance
		FROM (
			SELECT id, name, address, rating, `+haversineMeters+` AS distance
			FROM location
		) nearby
		WHERE distance <= ?
		ORDER BY distance ASC
		LIMIT ?`,
		lat, lng, lat, maxDistance, nearbyLimit).
		Scan(&summaries)
	if result.Error != nil {
		return nil, result.Error
	}

	if summaries == nil {
		summaries = []model.LocationSummary{}
	}

	return summaries, nil
}

func (locationDAO *LocationDAO) CreateLocation(ctx context.Context, location *model.Location) error {
	if location.Name == "" {
		return fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	if location.ID == "" {
		location.ID = uuid.NewString()
	}

	result := locationDAO.db.WithContext(ctx).Create(location)
	if result.Error != nil {
		return result.Error
	}

	injectCoords(location)

	return nil
}
