package get_day_bookings

import (
	"context"

	"github.com/unique-reservas/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListByDate(ctx context.Context, date string) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
