package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unique-reservas/booking-service/internal/domain"
	bookingRepo "github.com/unique-reservas/booking-service/internal/infra/storage/booking"
	"github.com/unique-reservas/booking-service/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по внутреннему идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByNumber получает бронирование по публичному номеру (UNQ-XXXXX)
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.BookingResponse, error) {
	s.logger.Info("GetByNumber: fetching booking number=%s", number)

	booking, err := s.bookingRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByNumber: booking number=%s not found", number)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByDate получает все активные бронирования на дату
func (s *Service) ListByDate(ctx context.Context, date string) ([]*models.BookingResponse, error) {
	s.logger.Info("ListByDate: fetching bookings for date=%s", date)

	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		s.logger.Warn("ListByDate: invalid date %q", date)
		return nil, fmt.Errorf("%w: date must be in format %s", ErrInvalidInput, domain.DateFormat)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = models.FromDomainBooking(booking)
	}

	s.logger.Info("ListByDate: %d bookings for date=%s", len(result), date)
	return result, nil
}

// GetForCancellation resolves a cancel token to its booking and verifies the
// cancellation window. Cancelled bookings resolve to not-found, so a token is
// a single-use capability.
func (s *Service) GetForCancellation(ctx context.Context, token string) (*models.BookingResponse, error) {
	s.logger.Info("GetForCancellation: resolving cancel token")

	booking, err := s.bookingRepo.GetByCancelToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetForCancellation: token does not resolve to an active booking")
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetForCancellation: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetForCancellation - repository error: %v", ErrInternal, err)
	}

	if err := s.checkCancellationWindow(booking); err != nil {
		s.logger.Warn("GetForCancellation: window passed for booking number=%s", booking.BookingNumber)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование по токену.
// Отмена возможна не позднее чем за 2 часа до начала первого слота.
func (s *Service) Cancel(ctx context.Context, token string, reason *string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking by token")

	if reason != nil && len(*reason) > domain.MaxCancelReasonLength {
		s.logger.Warn("Cancel: reason exceeds %d characters", domain.MaxCancelReasonLength)
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	var cancelled *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByCancelToken(txCtx, token)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := s.checkCancellationWindow(booking); err != nil {
			return err
		}

		if err := s.bookingRepo.Cancel(txCtx, booking.ID, reason, now); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		booking.Cancelled = true
		booking.CancelReason = reason
		booking.CancelledAt = &now
		cancelled = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("Cancel: token does not resolve to an active booking")
		} else if errors.Is(err, ErrCancellationWindow) {
			s.logger.Warn("Cancel: cancellation window has passed")
		} else {
			s.logger.Error("Cancel: %v", err)
		}
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking number=%s", cancelled.BookingNumber)

	// Письмо об отмене и удаление событий календаря уходят в фоновую очередь
	s.notifier.BookingCancelled(cancelled)

	return models.FromDomainBooking(cancelled), nil
}

// checkCancellationWindow ровно за 2 часа до начала отмена еще разрешена
func (s *Service) checkCancellationWindow(booking *domain.Booking) error {
	startsAt, err := booking.StartsAt(s.location)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve booking start: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if startsAt.Sub(now) < domain.CancelNoticeMinutes*time.Minute {
		return ErrCancellationWindow
	}

	return nil
}
