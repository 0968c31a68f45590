package cancel_booking

import (
	"context"

	"github.com/unique-reservas/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, token string, reason *string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
