package models

import (
	"time"

	"github.com/unique-reservas/booking-service/internal/domain"
)

// BookingResponse модель бронирования для ответа API
type BookingResponse struct {
	ID            string   `json:"id"`
	BookingNumber string   `json:"bookingNumber"`
	ServiceType   string   `json:"serviceType"`
	Date          string   `json:"date"`
	TimeSlots     []string `json:"timeSlots"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	Observations  *string  `json:"observations"`
	TotalAmount   int64    `json:"totalAmount"`
	Status        string   `json:"status"`
	CancelToken   string   `json:"cancelToken"`
	Cancelled     bool     `json:"cancelled"`
	CancelReason  *string  `json:"cancelReason"`
	CancelledAt   *string  `json:"cancelledAt"`
	CreatedAt     string   `json:"createdAt"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	var cancelledAt *string
	if b.CancelledAt != nil {
		formatted := b.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		ServiceType:   string(b.ServiceType),
		Date:          b.Date,
		TimeSlots:     b.TimeSlots,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Observations:  b.Observations,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		CancelToken:   b.CancelToken,
		Cancelled:     b.IsCancelled(),
		CancelReason:  b.CancelReason,
		CancelledAt:   cancelledAt,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
