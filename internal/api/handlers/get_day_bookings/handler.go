package get_day_bookings

import (
	"errors"
	"net/http"

	"github.com/unique-reservas/booking-service/internal/api/handlers"
	"github.com/unique-reservas/booking-service/internal/service/bookings"
)

const (
	msgMissingDate = "Data é obrigatória"
	msgInvalidDate = "Data inválida, formato esperado: YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /bookings - Missing date param")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - %d bookings returned for date=%s", len(result), date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
