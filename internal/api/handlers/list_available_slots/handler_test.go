package list_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	listSlots "github.com/m04kA/BilliardBookingService/internal/usecase/list_available_slots"
	"github.com/m04kA/BilliardBookingService/pkg/logger"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

type fakeUseCase struct {
	resp *listSlots.Response
	err  error
	got  *listSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *listSlots.Request) (*listSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func doRequest(h *Handler, tableID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tables/"+tableID+"/slots"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"tableId": tableID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &listSlots.Response{
		TableID: 3,
		Date:    types.MustDate("2025-10-20"),
		Slots: []domain.CandidateSlot{
			{CanonicalTime: types.MustTimeString("14:00"), Label: "2:00 PM", IsAvailable: true},
			{CanonicalTime: types.MustTimeString("14:30"), Label: "2:30 PM", IsReserved: true},
		},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, "3", "?date=2025-10-20")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &listSlots.Request{TableID: 3, Date: "2025-10-20"}, uc.got)

	var body SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-10-20", body.Date)
	assert.Equal(t, 1, body.AvailableCount)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "14:00:00", body.Slots[0].Time)
	assert.Equal(t, "2:30 PM", body.Slots[1].Label)
	assert.True(t, body.Slots[1].IsReserved)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		tableID    string
		query      string
		err        error
		wantStatus int
	}{
		{name: "bad table id", tableID: "abc", query: "?date=2025-10-20", wantStatus: http.StatusBadRequest},
		{name: "missing date", tableID: "1", query: "", wantStatus: http.StatusBadRequest},
		{name: "invalid date", tableID: "1", query: "?date=2025-13-01", err: fmt.Errorf("%w: month", listSlots.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "table not found", tableID: "9", query: "?date=2025-10-20", err: listSlots.ErrTableNotFound, wantStatus: http.StatusNotFound},
		{name: "fails closed", tableID: "1", query: "?date=2025-10-20", err: listSlots.ErrUpstreamUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", tableID: "1", query: "?date=2025-10-20", err: listSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := doRequest(h, tt.tableID, tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
