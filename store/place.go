package store

import "github.com/hellboyz13/mrtfood/internal/hours"

// Place is the object representing a food place in the directory.
//
// RawHours holds the free-text opening-hours string as harvested from the
// source; Hours holds the normalized weekly schedule once the hours runner
// has converted it. The raw string is kept after conversion so a schedule
// can be re-derived when the recognizer set grows. A place is a
// normalization candidate while RawHours is set and Hours is not.
type Place struct {
	ID        int32
	UID       string
	CreatedTs int64
	UpdatedTs int64
	RowStatus RowStatus

	Name        string
	Address     string
	StationCode string
	Latitude    float64
	Longitude   float64
	RawHours    *string
	Hours       *hours.Schedule
}

// FindPlace is the find condition for places.
type FindPlace struct {
	ID          *int32
	UID         *string
	StationCode *string
	RowStatus   *RowStatus

	// HoursPending selects places whose raw hours string has not been
	// normalized yet (raw set, structured unset) when true.
	HoursPending *bool

	Limit  *int
	Offset *int
}

// UpdatePlace is the update request for a place. Nil fields are left
// untouched.
type UpdatePlace struct {
	ID          int32
	UpdatedTs   *int64
	RowStatus   *RowStatus
	Name        *string
	Address     *string
	StationCode *string
	Latitude    *float64
	Longitude   *float64
	RawHours    *string
	Hours       *hours.Schedule
}

// DeletePlace is the delete condition for a place.
type DeletePlace struct {
	ID int32
}
