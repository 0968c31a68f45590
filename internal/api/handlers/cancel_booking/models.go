package cancel_booking

// CancelBookingRequest HTTP request model, тело опционально
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}
