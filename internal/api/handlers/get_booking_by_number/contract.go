package get_booking_by_number

import (
	"context"

	"github.com/unique-reservas/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetByNumber(ctx context.Context, number string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
