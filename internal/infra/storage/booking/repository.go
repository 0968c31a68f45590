package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/unique-reservas/booking-service/internal/domain"
	"github.com/unique-reservas/booking-service/pkg/dbmetrics"
	"github.com/unique-reservas/booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL 23505
const pgUniqueViolation = "23505"

// Имена unique constraints для маппинга нарушений в доменные ошибки
const (
	constraintSlotUnique   = "booking_slots_date_slot_key"
	constraintNumberUnique = "bookings_booking_number_key"
	constraintTokenUnique  = "bookings_cancel_token_key"
)

var bookingColumns = []string{
	"id",
	"booking_number",
	"service_type",
	"date",
	"time_slots",
	"customer_name",
	"customer_email",
	"customer_phone",
	"observations",
	"total_amount",
	"status",
	"cancel_token",
	"cancelled",
	"cancel_reason",
	"cancelled_at",
	"calendar_event_ids",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create persists a booking together with one booking_slots row per occupied
// (date, slot) pair. The UNIQUE constraint on booking_slots(date, slot) is the
// storage-level guarantee against double booking: a conflicting insert fails
// with ErrSlotTaken regardless of what a prior availability read returned.
//
// Должен вызываться внутри сериализуемой транзакции (через txmanager), чтобы
// вставка бронирования и расширение слотов были атомарными.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"booking_number",
			"service_type",
			"date",
			"time_slots",
			"customer_name",
			"customer_email",
			"customer_phone",
			"observations",
			"total_amount",
			"status",
			"cancel_token",
			"cancelled",
		).
		Values(
			booking.ID,
			booking.BookingNumber,
			booking.ServiceType,
			booking.Date,
			pq.Array(booking.TimeSlots),
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Observations,
			booking.TotalAmount,
			booking.Status,
			booking.CancelToken,
			booking.Cancelled,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	booking.CreatedAt = createdAt.Time

	// Расширение слотов: по одной строке на каждый занятый (date, slot)
	slotsBuilder := psqlbuilder.Insert("booking_slots").
		Columns("booking_id", "date", "slot")
	for _, slot := range booking.TimeSlots {
		slotsBuilder = slotsBuilder.Values(booking.ID, booking.Date, slot)
	}

	query, args, err = slotsBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build slots insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute slots insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByNumber получает бронирование по публичному номеру
func (r *Repository) GetByNumber(ctx context.Context, bookingNumber string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"booking_number": bookingNumber}, "GetByNumber")
}

// GetByCancelToken получает НЕотменённое бронирование по токену отмены.
// Отменённые бронирования намеренно не находятся: использованный токен
// неотличим от несуществующего.
func (r *Repository) GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"cancel_token": token, "cancelled": false}, "GetByCancelToken")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

// GetByDate получает все неотменённые бронирования на дату,
// отсортированные по времени создания
func (r *Repository) GetByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"date": date, "cancelled": false}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetOccupiedSlots получает список занятых слотов на дату.
// Строки booking_slots существуют только для активных бронирований
// (при отмене они удаляются), поэтому дополнительный фильтр не нужен.
//
// Внутри транзакции добавляется FOR UPDATE, чтобы проверка доступности
// и вставка нового бронирования выполнялись над согласованным снимком.
func (r *Repository) GetOccupiedSlots(ctx context.Context, date string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("slot").
		From("booking_slots").
		Where(squirrel.Eq{"date": date}).
		OrderBy("slot ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Cancel marks a booking cancelled and releases its slot expansion rows so the
// slots immediately become bookable again. Both writes must run in the same
// transaction (see txmanager).
func (r *Repository) Cancel(ctx context.Context, id string, reason *string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("cancelled", true).
		Set("status", domain.StatusCancelled).
		Set("cancel_reason", reason).
		Set("cancelled_at", cancelledAt).
		Where(squirrel.Eq{"id": id, "cancelled": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	query, args, err = psqlbuilder.Delete("booking_slots").
		Where(squirrel.Eq{"booking_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build slots delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Cancel - execute slots delete: %v", ErrExecQuery, err)
	}

	return nil
}

// SetCalendarEventIDs сохраняет идентификаторы событий календаря
func (r *Repository) SetCalendarEventIDs(ctx context.Context, id string, eventIDs string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("calendar_event_ids", eventIDs).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventIDs - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventIDs - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventIDs - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// mapUniqueViolation конвертирует нарушение unique constraint в доменную ошибку
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintSlotUnique:
		return ErrSlotTaken
	case constraintNumberUnique:
		return ErrNumberTaken
	case constraintTokenUnique:
		return ErrTokenTaken
	default:
		return fmt.Errorf("%w: unique violation on %s: %v", ErrExecQuery, pqErr.Constraint, err)
	}
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime
	var cancelledAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingNumber,
		&booking.ServiceType,
		&booking.Date,
		pq.Array(&booking.TimeSlots),
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Observations,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CancelToken,
		&booking.Cancelled,
		&booking.CancelReason,
		&cancelledAt,
		&booking.CalendarEventIDs,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	if cancelledAt.Valid {
		t := cancelledAt.Time
		booking.CancelledAt = &t
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
