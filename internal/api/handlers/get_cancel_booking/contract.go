package get_cancel_booking

import (
	"context"

	"github.com/unique-reservas/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetForCancellation(ctx context.Context, token string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
