package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewRequest(t *testing.T, service *APIV1Service, body string) (*httptest.ResponseRecorder, *PreviewHoursResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hours/preview", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := service.PreviewHours(c)
	require.NoError(t, err)

	response := &PreviewHoursResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), response))
	return rec, response
}

func TestPreviewHours(t *testing.T) {
	service := &APIV1Service{}

	rec, response := previewRequest(t, service, `{"rawHours": "Daily 9am - 10pm"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, response.Matched)
	assert.Equal(t, "daily-single", response.Rule)
	require.NotNil(t, response.Schedule)
	require.Len(t, response.Schedule.WeekdayText, 7)
	assert.Equal(t, "Monday: 9 AM – 10 PM", response.Schedule.WeekdayText[0])
}

func TestPreviewHoursUnmatched(t *testing.T) {
	service := &APIV1Service{}

	rec, response := previewRequest(t, service, `{"rawHours": "ask at the counter"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, response.Matched)
	assert.Empty(t, response.Rule)
	assert.Nil(t, response.Schedule)
}

func TestPreviewHoursMalformedBody(t *testing.T) {
	service := &APIV1Service{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hours/preview", strings.NewReader(`{"rawHours": 42`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := service.PreviewHours(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
