package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/hellboyz13/mrtfood/internal/profile"
	"github.com/hellboyz13/mrtfood/store"
)

type APIV1Service struct {
	Profile *profile.Profile
	Store   *store.Store
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	return &APIV1Service{
		Profile: profile,
		Store:   store,
	}
}

// Register wires the read API onto the given Echo instance.
func (s *APIV1Service) Register(echoServer *echo.Echo) {
	g := echoServer.Group("/api/v1")

	g.GET("/places", s.ListPlaces)
	g.GET("/places/:uid", s.GetPlace)
	g.GET("/stations", s.ListStations)
	g.POST("/hours/preview", s.PreviewHours)
}
