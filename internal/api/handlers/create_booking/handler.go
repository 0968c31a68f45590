package create_booking

import (
	"errors"
	"net/http"

	"github.com/unique-reservas/booking-service/internal/api/handlers"
	createBooking "github.com/unique-reservas/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgInvalidFields      = "Dados inválidos"
	msgSlotConflict       = "Conflito de horário"
	msgSlotConflictDetail = "Um ou mais horários selecionados não estão mais disponíveis"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var verr *createBooking.ValidationError
		var cerr *createBooking.SlotConflictError

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /bookings - Validation failed: fields=%v", verr.Fields)
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  msgInvalidFields,
				Fields: verr.Fields,
			})

		case errors.As(err, &cerr):
			h.logger.Warn("POST /bookings - Slot conflict: date=%s, unavailable=%v", req.Date, cerr.UnavailableSlots)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:            msgSlotConflict,
				Message:          msgSlotConflictDetail,
				UnavailableSlots: cerr.UnavailableSlots,
				AvailableSlots:   cerr.AvailableSlots,
			})

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: number=%s, date=%s",
		result.BookingNumber, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
