package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// Place model related methods.
	CreatePlace(ctx context.Context, create *Place) (*Place, error)
	ListPlaces(ctx context.Context, find *FindPlace) ([]*Place, error)
	UpdatePlace(ctx context.Context, update *UpdatePlace) error
	DeletePlace(ctx context.Context, delete *DeletePlace) error

	// Station model related methods.
	CreateStation(ctx context.Context, create *Station) (*Station, error)
	ListStations(ctx context.Context, find *FindStation) ([]*Station, error)
}
