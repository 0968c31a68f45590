package get_booking_by_number

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/unique-reservas/booking-service/internal/api/handlers"
	"github.com/unique-reservas/booking-service/internal/service/bookings"
)

const (
	msgMissingNumber = "Número da reserva é obrigatório"
	msgNotFound      = "Reserva não encontrada"
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

// Handle GET /api/bookings/number/{bookingNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number := vars["bookingNumber"]

	if number == "" {
		h.logger.Warn("GET /bookings/number/{number} - Missing booking number")
		handlers.RespondBadRequest(w, msgMissingNumber)
		return
	}

	booking, err := h.service.GetByNumber(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/number/{number} - Booking not found: number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/number/{number} - Failed to get booking: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/number/{number} - Booking retrieved: number=%s", booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
