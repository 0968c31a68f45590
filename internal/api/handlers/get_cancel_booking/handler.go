package get_cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/unique-reservas/booking-service/internal/api/handlers"
	"github.com/unique-reservas/booking-service/internal/service/bookings"
)

const (
	msgMissingToken = "Token de cancelamento é obrigatório"
	msgNotFound     = "Reserva não encontrada ou já cancelada"
	msgWindowPassed = "O cancelamento só é permitido com até 2 horas de antecedência"
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

// Handle GET /api/bookings/cancel/{token}
// Страница отмены показывает данные бронирования до подтверждения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	if token == "" {
		h.logger.Warn("GET /bookings/cancel/{token} - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	booking, err := h.service.GetForCancellation(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/cancel/{token} - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCancellationWindow):
			h.logger.Warn("GET /bookings/cancel/{token} - Cancellation window passed")
			handlers.RespondForbidden(w, msgWindowPassed)

		default:
			h.logger.Error("GET /bookings/cancel/{token} - Failed to resolve token: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/cancel/{token} - Booking resolved: number=%s", booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
