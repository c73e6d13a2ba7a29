package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wifispots-server/model"
)

// InitDB opens the Postgres connection and migrates the schema. The returned
// handle is the only store client; it is passed into the DAOs by the caller
// instead of living in a package variable.
func InitDB(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	err = database.AutoMigrate(&model.User{}, &model.Location{}, &model.Review{})
	if err != nil {
		return nil, err
	}

	return database, nil
}

// Store bundles the location and review DAOs behind a single object, which is
// what the aggregation engine and the API handlers take by reference.
type Store struct {
	*LocationDAO
	*ReviewDAO
}

func NewStore(database *gorm.DB) *Store {
	return &Store{
		LocationDAO: NewLocationDAO(database),
		ReviewDAO:   NewReviewDAO(database),
	}
}
