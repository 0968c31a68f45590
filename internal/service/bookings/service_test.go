package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unique-reservas/booking-service/internal/domain"
	bookingRepo "github.com/unique-reservas/booking-service/internal/infra/storage/booking"
	"github.com/unique-reservas/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	cancelled []*domain.Booking
}

func (f *fakeNotifier) BookingCancelled(b *domain.Booking) {
	f.cancelled = append(f.cancelled, b)
}

type fakeBookingRepo struct {
	booking   *domain.Booking
	bookings  []*domain.Booking
	getErr    error
	cancelErr error

	cancelledID     string
	cancelledReason *string
	cancelledAt     time.Time
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.bookings, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id string, reason *string, cancelledAt time.Time) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelledReason = reason
	f.cancelledAt = cancelledAt
	return nil
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "b6f7c2e4-1f3a-4d8e-9c5b-2a1d0e9f8c7b",
		BookingNumber: "UNQ-12345",
		ServiceType:   domain.ServiceCourt,
		Date:          "2026-03-15",
		TimeSlots:     []string{"14:00", "15:00"},
		CustomerName:  "João Silva",
		CustomerEmail: "joao@example.com",
		CustomerPhone: "11987654321",
		TotalAmount:   200,
		Status:        domain.StatusConfirmed,
		CancelToken:   "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestService(repo *fakeBookingRepo, notifier *fakeNotifier, now time.Time) *Service {
	svc := NewService(repo, fakeTxManager{}, notifier, time.UTC, nopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return svc
}

// Бронирование на 2026-03-15 14:00 UTC
var (
	wellBeforeStart = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	exactlyTwoHours = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tooCloseToStart = time.Date(2026, 3, 15, 12, 1, 0, 0, time.UTC)
)

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	resp, err := svc.GetByID(context.Background(), testBooking().ID)
	require.NoError(t, err)
	assert.Equal(t, "UNQ-12345", resp.BookingNumber)
	assert.Equal(t, "quadra", resp.ServiceType)
	assert.False(t, resp.Cancelled)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByNumber(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	resp, err := svc.GetByNumber(context.Background(), "UNQ-12345")
	require.NoError(t, err)
	assert.Equal(t, "UNQ-12345", resp.BookingNumber)
}

func TestListByDate(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking()}}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	resp, err := svc.ListByDate(context.Background(), "2026-03-15")
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "UNQ-12345", resp[0].BookingNumber)
}

func TestListByDate_Empty(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	resp, err := svc.ListByDate(context.Background(), "2026-03-16")
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestListByDate_InvalidDate(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	_, err := svc.ListByDate(context.Background(), "15/03/2026")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetForCancellation(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	resp, err := svc.GetForCancellation(context.Background(), testBooking().CancelToken)
	require.NoError(t, err)
	assert.Equal(t, "UNQ-12345", resp.BookingNumber)
}

func TestGetForCancellation_ExactBoundaryAllowed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := newTestService(repo, &fakeNotifier{}, exactlyTwoHours)

	_, err := svc.GetForCancellation(context.Background(), testBooking().CancelToken)
	assert.NoError(t, err)
}

func TestGetForCancellation_WindowPassed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := newTestService(repo, &fakeNotifier{}, tooCloseToStart)

	_, err := svc.GetForCancellation(context.Background(), testBooking().CancelToken)
	assert.ErrorIs(t, err, ErrCancellationWindow)
}

func TestCancel(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, wellBeforeStart)

	reason := ptr.Ptr("Imprevisto no trabalho")
	resp, err := svc.Cancel(context.Background(), testBooking().CancelToken, reason)
	require.NoError(t, err)

	assert.Equal(t, testBooking().ID, repo.cancelledID)
	assert.Equal(t, reason, repo.cancelledReason)
	assert.Equal(t, wellBeforeStart, repo.cancelledAt)

	assert.True(t, resp.Cancelled)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, reason, resp.CancelReason)
	require.NotNil(t, resp.CancelledAt)

	require.Len(t, notifier.cancelled, 1)
	assert.True(t, notifier.cancelled[0].IsCancelled())
}

func TestCancel_WithoutReason(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	resp, err := svc.Cancel(context.Background(), testBooking().CancelToken, nil)
	require.NoError(t, err)
	assert.Nil(t, resp.CancelReason)
}

func TestCancel_WindowPassed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, tooCloseToStart)

	_, err := svc.Cancel(context.Background(), testBooking().CancelToken, nil)
	assert.ErrorIs(t, err, ErrCancellationWindow)
	assert.Empty(t, notifier.cancelled)
	assert.Empty(t, repo.cancelledID)
}

func TestCancel_TokenNotFound(t *testing.T) {
	// Отмененное бронирование не резолвится по токену, токен одноразовый
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	_, err := svc.Cancel(context.Background(), "used-token", nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := newTestService(repo, &fakeNotifier{}, wellBeforeStart)

	reason := ptr.Ptr(strings.Repeat("x", domain.MaxCancelReasonLength+1))
	_, err := svc.Cancel(context.Background(), testBooking().CancelToken, reason)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(), cancelErr: errors.New("connection refused")}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, wellBeforeStart)

	_, err := svc.Cancel(context.Background(), testBooking().CancelToken, nil)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.cancelled)
}
