package domain

import (
	"time"

	"github.com/unique-reservas/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ServiceType represents the category of a reservation
type ServiceType string

const (
	ServiceCourt ServiceType = "quadra"
	ServiceEvent ServiceType = "evento"
	ServiceParty ServiceType = "festa"
)

// ValidServiceTypes список допустимых типов услуг
var ValidServiceTypes = []ServiceType{ServiceCourt, ServiceEvent, ServiceParty}

// IsValidServiceType reports whether the value is a known service type
func IsValidServiceType(s ServiceType) bool {
	for _, valid := range ValidServiceTypes {
		if s == valid {
			return true
		}
	}
	return false
}

// Booking represents a venue reservation in the system.
//
// The Cancelled flag duplicates Status for wire compatibility with older
// clients; both fields are always written together and must never disagree.
type Booking struct {
	ID            string
	BookingNumber string
	ServiceType   ServiceType
	Date          string   // YYYY-MM-DD
	TimeSlots     []string // insertion order, values from the slot catalog
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Observations  *string
	TotalAmount   int64 // whole currency units (BRL)
	Status        BookingStatus
	CancelToken   string
	Cancelled     bool
	CancelReason  *string
	CancelledAt   *time.Time

	// Comma-joined Google Calendar event ids, one event per booked slot
	CalendarEventIDs *string

	CreatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Cancelled || b.Status == StatusCancelled
}

// StartsAt computes the instant the booking starts at: the booking date
// combined with the first time slot (array order, not necessarily earliest).
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, b.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	if len(b.TimeSlots) == 0 {
		return time.Time{}, ErrNoTimeSlots
	}
	first, err := types.NewTimeStringFromString(b.TimeSlots[0])
	if err != nil {
		return time.Time{}, err
	}
	return first.AtDate(date, loc)
}
