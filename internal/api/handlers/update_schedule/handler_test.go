package update_schedule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/service/venue"
	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
	"github.com/m04kA/BilliardBookingService/pkg/logger"
)

type fakeService struct {
	gotWeekday string
	gotReq     *models.UpdateScheduleRequest
}

func (f *fakeService) UpdateSchedule(_ context.Context, weekday string, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	f.gotWeekday, f.gotReq = weekday, req
	if req.OpenTime >= req.CloseTime {
		return nil, fmt.Errorf("%w: open after close", venue.ErrInvalidInput)
	}
	return &models.ScheduleResponse{Weekday: "Friday", OpenTime: req.OpenTime + ":00", CloseTime: req.CloseTime + ":00", IsActive: true, IsOpen: true}, nil
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/schedules/friday", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"weekday": "friday"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"openTime":"12:00","closeTime":"24:00","isActive":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "friday", svc.gotWeekday)
	require.NotNil(t, svc.gotReq.IsActive)
	assert.Contains(t, rec.Body.String(), `"closeTime":"24:00:00"`)
}

func TestHandler_BadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"openTime":"20:00","closeTime":"10:00"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"open":"10:00"}`).Code)
}
