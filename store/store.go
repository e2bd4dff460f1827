package store

import (
	"context"

	"github.com/hellboyz13/mrtfood/internal/profile"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	return s.driver.Close()
}

func (s *Store) CreatePlace(ctx context.Context, create *Place) (*Place, error) {
	return s.driver.CreatePlace(ctx, create)
}

func (s *Store) ListPlaces(ctx context.Context, find *FindPlace) ([]*Place, error) {
	return s.driver.ListPlaces(ctx, find)
}

// GetPlace returns the single place matching the find condition, or nil
// when none matches.
func (s *Store) GetPlace(ctx context.Context, find *FindPlace) (*Place, error) {
	list, err := s.driver.ListPlaces(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdatePlace(ctx context.Context, update *UpdatePlace) error {
	return s.driver.UpdatePlace(ctx, update)
}

func (s *Store) DeletePlace(ctx context.Context, delete *DeletePlace) error {
	return s.driver.DeletePlace(ctx, delete)
}

func (s *Store) CreateStation(ctx context.Context, create *Station) (*Station, error) {
	return s.driver.CreateStation(ctx, create)
}

func (s *Store) ListStations(ctx context.Context, find *FindStation) ([]*Station, error) {
	return s.driver.ListStations(ctx, find)
}
