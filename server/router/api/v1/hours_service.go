package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hellboyz13/mrtfood/internal/hours"
)

type PreviewHoursRequest struct {
	RawHours string `json:"rawHours"`
}

type PreviewHoursResponse struct {
	Matched  bool            `json:"matched"`
	Rule     string          `json:"rule,omitempty"`
	Schedule *hours.Schedule `json:"schedule,omitempty"`
}

// PreviewHours handles POST /api/v1/hours/preview. It runs the hours
// recognizers against the submitted raw string without touching any
// stored place, so operators can check what a source string would
// normalize to. An unrecognized string is a 200 with matched=false, not
// an error.
func (s *APIV1Service) PreviewHours(c echo.Context) error {
	request := &PreviewHoursRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed preview request").SetInternal(err)
	}

	schedule, rule, ok := hours.ParseWithRule(request.RawHours)
	if !ok {
		return c.JSON(http.StatusOK, &PreviewHoursResponse{Matched: false})
	}
	return c.JSON(http.StatusOK, &PreviewHoursResponse{
		Matched:  true,
		Rule:     rule,
		Schedule: schedule,
	})
}
