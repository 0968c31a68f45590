package create_booking

import (
	"github.com/unique-reservas/booking-service/internal/domain"
)

// computeTotalAmount recomputes the price server side. The amount submitted
// by the client is never trusted beyond basic validation: court bookings cost
// a fixed price per hour slot, event and party bookings book the whole day
// for a flat price.
func computeTotalAmount(serviceType string, slotCount int, pricing Pricing) int64 {
	switch domain.ServiceType(serviceType) {
	case domain.ServiceCourt:
		return pricing.CourtPricePerSlot * int64(slotCount)
	default:
		return pricing.EventFlatPrice
	}
}
