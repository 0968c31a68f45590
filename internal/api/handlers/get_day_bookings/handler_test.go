package get_day_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unique-reservas/booking-service/internal/service/bookings"
	"github.com/unique-reservas/booking-service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	result []*models.BookingResponse
	err    error
}

func (f *fakeService) ListByDate(ctx context.Context, date string) ([]*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{result: []*models.BookingResponse{
		{BookingNumber: "UNQ-12345", Date: "2026-03-15", Status: "confirmed"},
	}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?date=2026-03-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []*models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "UNQ-12345", body[0].BookingNumber)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeService{err: bookings.ErrInvalidInput}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?date=15/03/2026", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceError(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("connection refused")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?date=2026-03-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
