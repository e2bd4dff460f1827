package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hellboyz13/mrtfood/internal/hours"
	"github.com/hellboyz13/mrtfood/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type Place struct {
	UID         string          `json:"uid"`
	CreatedTs   int64           `json:"createdTs"`
	UpdatedTs   int64           `json:"updatedTs"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	StationCode string          `json:"stationCode"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	RawHours    *string         `json:"rawHours,omitempty"`
	Hours       *hours.Schedule `json:"hours,omitempty"`
}

func convertPlaceFromStore(place *store.Place) *Place {
	return &Place{
		UID:         place.UID,
		CreatedTs:   place.CreatedTs,
		UpdatedTs:   place.UpdatedTs,
		Name:        place.Name,
		Address:     place.Address,
		StationCode: place.StationCode,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		RawHours:    place.RawHours,
		Hours:       place.Hours,
	}
}

// ListPlaces handles GET /api/v1/places. Supported query parameters:
// station (MRT station code), pending (only places with unconverted
// hours), limit and offset.
func (s *APIV1Service) ListPlaces(c echo.Context) error {
	ctx := c.Request().Context()
	normalStatus := store.Normal
	find := &store.FindPlace{
		RowStatus: &normalStatus,
	}

	if station := c.QueryParam("station"); station != "" {
		find.StationCode = &station
	}
	if pending := c.QueryParam("pending"); pending == "true" {
		hoursPending := true
		find.HoursPending = &hoursPending
	}

	limit := defaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit").SetInternal(err)
		}
		limit = min(parsed, maxPageSize)
	}
	find.Limit = &limit
	if raw := c.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset").SetInternal(err)
		}
		find.Offset = &parsed
	}

	places, err := s.Store.ListPlaces(ctx, find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list places").SetInternal(err)
	}

	placeResponses := make([]*Place, 0, len(places))
	for _, place := range places {
		placeResponses = append(placeResponses, convertPlaceFromStore(place))
	}
	return c.JSON(http.StatusOK, placeResponses)
}

// GetPlace handles GET /api/v1/places/:uid.
func (s *APIV1Service) GetPlace(c echo.Context) error {
	ctx := c.Request().Context()
	uid := c.Param("uid")

	place, err := s.Store.GetPlace(ctx, &store.FindPlace{UID: &uid})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get place").SetInternal(err)
	}
	if place == nil {
		return echo.NewHTTPError(http.StatusNotFound, "place not found")
	}
	return c.JSON(http.StatusOK, convertPlaceFromStore(place))
}
