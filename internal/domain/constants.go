package domain

import "errors"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Cancellation policy
const (
	// CancelNoticeMinutes minimum lead time before the booking start for a
	// cancellation to be accepted. Cancelling at exactly this boundary is allowed.
	CancelNoticeMinutes = 120
)

// Booking number format: BookingNumberPrefix followed by a 5-digit number
const BookingNumberPrefix = "UNQ-"

// Business validation constants
const (
	MinPhoneDigits        = 10
	MaxObservationsLength = 500
	MaxCancelReasonLength = 500
)

// ErrNoTimeSlots возвращается, когда у бронирования нет временных слотов
var ErrNoTimeSlots = errors.New("domain: booking has no time slots")
