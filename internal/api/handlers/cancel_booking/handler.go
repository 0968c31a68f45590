package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/unique-reservas/booking-service/internal/api/handlers"
	"github.com/unique-reservas/booking-service/internal/service/bookings"
)

const (
	msgMissingToken  = "Token de cancelamento é obrigatório"
	msgInvalidBody   = "Corpo da requisição inválido"
	msgInvalidReason = "Motivo do cancelamento inválido"
	msgNotFound      = "Reserva não encontrada ou já cancelada"
	msgWindowPassed  = "O cancelamento só é permitido com até 2 horas de antecedência"
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

// Handle POST /api/bookings/cancel/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	if token == "" {
		h.logger.Warn("POST /bookings/cancel/{token} - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	// Тело запроса опционально, пустое тело означает отмену без причины
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /bookings/cancel/{token} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	booking, err := h.service.Cancel(r.Context(), token, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel/{token} - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCancellationWindow):
			h.logger.Warn("POST /bookings/cancel/{token} - Cancellation window passed")
			handlers.RespondForbidden(w, msgWindowPassed)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel/{token} - Invalid reason: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("POST /bookings/cancel/{token} - Failed to cancel: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel/{token} - Booking cancelled: number=%s", booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
