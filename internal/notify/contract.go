package notify

import (
	"context"

	"github.com/unique-reservas/booking-service/internal/domain"
)

// Mailer интерфейс отправки писем
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) (string, error)
}

// Calendar интерфейс интеграции с календарём
type Calendar interface {
	CreateEvents(ctx context.Context, booking *domain.Booking) (string, error)
	DeleteEvents(ctx context.Context, eventIDs string) error
}

// BookingRepository часть репозитория, нужная для сохранения id событий
type BookingRepository interface {
	SetCalendarEventIDs(ctx context.Context, id string, eventIDs string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
