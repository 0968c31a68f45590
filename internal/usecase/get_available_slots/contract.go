package get_available_slots

import (
	"context"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOccupiedSlots получает занятые слоты на конкретную дату
	GetOccupiedSlots(ctx context.Context, date string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
