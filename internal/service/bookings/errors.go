package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или уже отменено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrCancellationWindow возвращается при попытке отмены менее чем за 2 часа до начала
	ErrCancellationWindow = errors.New("bookings: cancellation window has passed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
