package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hellboyz13/mrtfood/store"
)

type Station struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Line      string  `json:"line"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ListStations handles GET /api/v1/stations. The line query parameter
// filters by MRT line code.
func (s *APIV1Service) ListStations(c echo.Context) error {
	ctx := c.Request().Context()
	find := &store.FindStation{}
	if line := c.QueryParam("line"); line != "" {
		find.Line = &line
	}

	stations, err := s.Store.ListStations(ctx, find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list stations").SetInternal(err)
	}

	stationResponses := make([]*Station, 0, len(stations))
	for _, station := range stations {
		stationResponses = append(stationResponses, &Station{
			Code:      station.Code,
			Name:      station.Name,
			Line:      station.Line,
			Latitude:  station.Latitude,
			Longitude: station.Longitude,
		})
	}
	return c.JSON(http.StatusOK, stationResponses)
}
