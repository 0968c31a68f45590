package create_booking

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
	confirmed []*domain.Booking
}

func (f *fakeNotifier) BookingConfirmed(b *domain.Booking) {
	f.confirmed = append(f.confirmed, b)
}

type fakeBookingRepo struct {
	occupied   []string
	createErrs []error // consumed one per Create call
	created    []*domain.Booking
}

func (f *fakeBookingRepo) GetOccupiedSlots(ctx context.Context, date string) ([]string, error) {
	return f.occupied, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	stored := *b
	stored.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, &stored)
	return &stored, nil
}

var testPricing = Pricing{CourtPricePerSlot: 100, EventFlatPrice: 500}

func newTestUseCase(repo *fakeBookingRepo, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, notifier, testPricing, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		ServiceType:   "quadra",
		Date:          "2026-03-15",
		TimeSlots:     []string{"15:00", "14:00"},
		CustomerName:  "João Silva",
		CustomerEmail: "joao@example.com",
		CustomerPhone: "(11) 98765-4321",
		TotalAmount:   200,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.True(t, strings.HasPrefix(resp.BookingNumber, domain.BookingNumberPrefix))
	assert.Len(t, resp.BookingNumber, len(domain.BookingNumberPrefix)+5)
	assert.NotEmpty(t, resp.CancelToken)
	assert.Equal(t, "confirmed", resp.Status)

	// Слоты приводятся к порядку каталога
	assert.Equal(t, []string{"14:00", "15:00"}, resp.TimeSlots)

	// Цена считается на сервере: 2 слота квадры по 100
	assert.Equal(t, int64(200), resp.TotalAmount)

	require.Len(t, notifier.confirmed, 1)
	assert.Equal(t, resp.ID, notifier.confirmed[0].ID)
}

func TestExecute_ServerRecomputesAmount(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeNotifier{})

	req := validRequest()
	req.TotalAmount = 1 // клиент прислал заниженную сумму

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(200), resp.TotalAmount)
}

func TestExecute_EventFlatPrice(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeNotifier{})

	req := validRequest()
	req.ServiceType = "festa"
	req.TotalAmount = 500

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.TotalAmount)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{occupied: []string{"14:00", "08:00", "09:00"}}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)

	var cerr *SlotConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"14:00"}, cerr.UnavailableSlots)

	// До трех свободных альтернатив в порядке каталога
	assert.Equal(t, []string{"10:00", "11:00", "13:00"}, cerr.AvailableSlots)

	assert.Empty(t, notifier.confirmed)
	assert.Empty(t, repo.created)
}

func TestExecute_ConcurrentSlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{createErrs: []error{bookingRepo.ErrSlotTaken}}
	uc := newTestUseCase(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	var cerr *SlotConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"14:00", "15:00"}, cerr.UnavailableSlots)
}

func TestExecute_NumberCollisionRetried(t *testing.T) {
	repo := &fakeBookingRepo{createErrs: []error{bookingRepo.ErrNumberTaken, nil}}
	uc := newTestUseCase(repo, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingNumber)
	require.Len(t, repo.created, 1)
}

func TestExecute_NumberCollisionTwiceFails(t *testing.T) {
	repo := &fakeBookingRepo{createErrs: []error{bookingRepo.ErrNumberTaken, bookingRepo.ErrNumberTaken}}
	uc := newTestUseCase(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{createErrs: []error{errors.New("connection refused")}}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.confirmed)
}

func TestExecute_ValidationRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeNotifier{})

	req := validRequest()
	req.CustomerEmail = "not-an-email"
	req.TimeSlots = nil

	_, err := uc.Execute(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customerEmail")
	assert.Contains(t, verr.Fields, "timeSlots")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
