package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/unique-reservas/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/unique-reservas/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingParams = "Data e tipo de serviço são obrigatórios"
	msgInvalidParams = "Parâmetros inválidos"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability?date=YYYY-MM-DD&serviceType=quadra
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	date := query.Get("date")
	serviceType := query.Get("serviceType")

	if date == "" || serviceType == "" {
		h.logger.Warn("GET /availability - Missing query params: date=%q, serviceType=%q", date, serviceType)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:        date,
		ServiceType: serviceType,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability - Failed to get slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots returned for date=%s", len(result.Slots), date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
