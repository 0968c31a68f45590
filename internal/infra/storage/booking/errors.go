package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда один из слотов уже занят
	// (нарушение уникальности (date, slot) в booking_slots)
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrNumberTaken возвращается при коллизии номера бронирования
	ErrNumberTaken = errors.New("booking.repository: booking number already taken")

	// ErrTokenTaken возвращается при коллизии токена отмены
	ErrTokenTaken = errors.New("booking.repository: cancel token already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
