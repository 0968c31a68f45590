package get_available_slots

import (
	getAvailableSlots "github.com/unique-reservas/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP модель ответа
type AvailabilityResponse struct {
	Date        string         `json:"date"`
	ServiceType string         `json:"serviceType"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:      slot.Time,
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{
		Date:        resp.Date,
		ServiceType: resp.ServiceType,
		Slots:       slots,
	}
}
