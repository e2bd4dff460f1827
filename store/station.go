package store

// Station is an MRT station reference row. Stations are plain lookup data
// for the directory; proximity computation happens elsewhere.
type Station struct {
	ID        int32
	Code      string
	Name      string
	Line      string
	Latitude  float64
	Longitude float64
}

// FindStation is the find condition for stations.
type FindStation struct {
	ID   *int32
	Code *string
	Line *string

	Limit  *int
	Offset *int
}
