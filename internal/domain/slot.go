package domain

// slotCatalog the fixed list of bookable start times, in chronological order.
// 12:00 is deliberately absent (midday break). Every component that deals with
// slots derives from this single definition.
var slotCatalog = []string{
	"08:00",
	"09:00",
	"10:00",
	"11:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
	"18:00",
	"19:00",
	"20:00",
	"21:00",
	"22:00",
	"23:00",
}

// SlotDurationMinutes fixed duration of every catalog slot
const SlotDurationMinutes = 60

// SlotCatalog returns the ordered list of bookable start times
func SlotCatalog() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// IsCatalogSlot reports whether the value is one of the catalog start times
func IsCatalogSlot(slot string) bool {
	for _, s := range slotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}
