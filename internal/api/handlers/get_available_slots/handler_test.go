package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/unique-reservas/booking-service/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	got  *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:        "2026-03-15",
			ServiceType: "quadra",
			Slots: []getAvailableSlots.Slot{
				{Time: "08:00", Available: true},
				{Time: "09:00", Available: false},
			},
		},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-03-15&serviceType=quadra", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-15", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, SlotResponse{Time: "08:00", Available: true}, resp.Slots[0])
	assert.Equal(t, SlotResponse{Time: "09:00", Available: false}, resp.Slots[1])

	require.NotNil(t, uc.got)
	assert.Equal(t, "2026-03-15", uc.got.Date)
	assert.Equal(t, "quadra", uc.got.ServiceType)
}

func TestHandle_MissingParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "no params", query: ""},
		{name: "missing service type", query: "date=2026-03-15"},
		{name: "missing date", query: "serviceType=quadra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{}, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/availability?%s", tt.query), nil)
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InvalidParams(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: bad date", getAvailableSlots.ErrInvalidInput)}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=bad&serviceType=quadra", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-03-15&serviceType=quadra", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
