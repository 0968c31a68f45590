package get_available_slots

import (
	"github.com/unique-reservas/booking-service/internal/domain"
)

// buildSlots walks the slot catalog in order and marks every slot occupied by
// an active booking as unavailable. The whole day is booked exclusively, so a
// single occupied entry makes the slot unavailable regardless of service type.
func buildSlots(occupied []string) []Slot {
	occupiedSet := make(map[string]struct{}, len(occupied))
	for _, slot := range occupied {
		occupiedSet[slot] = struct{}{}
	}

	catalog := domain.SlotCatalog()
	result := make([]Slot, len(catalog))
	for i, slot := range catalog {
		_, taken := occupiedSet[slot]
		result[i] = Slot{
			Time:      slot,
			Available: !taken,
		}
	}

	return result
}
