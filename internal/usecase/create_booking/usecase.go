package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/unique-reservas/booking-service/internal/domain"
	bookingRepo "github.com/unique-reservas/booking-service/internal/infra/storage/booking"
)

// maxSuggestedSlots максимум альтернативных слотов в ответе о конфликте
const maxSuggestedSlots = 3

// maxNumberAttempts попытки на случай коллизии публичного номера
const maxNumberAttempts = 2

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	pricing      Pricing
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	pricing Pricing,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		pricing:      pricing,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: serviceType=%s, date=%s, slots=%d, email=%s",
		req.ServiceType, req.Date, len(req.TimeSlots), req.CustomerEmail)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if verr := validateRequest(req, now); verr != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", verr)
		return nil, verr
	}

	// 2. Приводим слоты к каноническому порядку каталога
	slots := normalizeSlots(req.TimeSlots)

	// 3. Серверный расчет суммы, клиентское значение не является источником истины
	totalAmount := computeTotalAmount(req.ServiceType, len(slots), uc.pricing)
	if totalAmount != req.TotalAmount {
		uc.logger.Warn("CreateBooking: client amount %d differs from computed %d, using computed",
			req.TotalAmount, totalAmount)
	}

	// 4. Создаем бронирование в сериализуемой транзакции.
	// Коллизия публичного номера крайне маловероятна, но при ней
	// генерируем новый номер и повторяем транзакцию целиком.
	var result *domain.Booking
	var conflictErr *SlotConflictError

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		booking := &domain.Booking{
			ID:            uuid.NewString(),
			BookingNumber: generateBookingNumber(),
			ServiceType:   domain.ServiceType(req.ServiceType),
			Date:          req.Date,
			TimeSlots:     slots,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Observations:  req.Observations,
			TotalAmount:   totalAmount,
			Status:        domain.StatusConfirmed,
			CancelToken:   uuid.NewString(),
		}

		err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// 4.1. Занятые слоты с блокировкой (FOR UPDATE внутри транзакции)
			occupied, err := uc.bookingRepo.GetOccupiedSlots(txCtx, req.Date)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get occupied slots: %v", err)
				return fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
			}

			// 4.2. Проверяем конфликт до вставки, чтобы вернуть альтернативы
			if cerr := buildConflict(slots, occupied); cerr != nil {
				conflictErr = cerr
				return cerr
			}

			// 4.3. Сохраняем бронирование вместе со строками занятости
			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				return err
			}

			result = created
			return nil
		})

		if err == nil {
			break
		}

		if conflictErr != nil {
			uc.logger.Warn("CreateBooking: slot conflict on date=%s: %v", req.Date, conflictErr)
			return nil, conflictErr
		}

		// Уникальный индекс booking_slots(date, slot) закрывает гонку,
		// которую проверка выше могла пропустить
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot taken concurrently on date=%s", req.Date)
			return nil, &SlotConflictError{UnavailableSlots: slots}
		}

		if errors.Is(err, bookingRepo.ErrNumberTaken) && attempt < maxNumberAttempts {
			uc.logger.Warn("CreateBooking: booking number collision, regenerating (attempt %d)", attempt)
			continue
		}

		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s number=%s",
		result.ID, result.BookingNumber)

	// 5. Побочные эффекты (письма, календарь) уходят в фоновую очередь
	uc.notifier.BookingConfirmed(result)

	return &Response{
		ID:            result.ID,
		BookingNumber: result.BookingNumber,
		ServiceType:   string(result.ServiceType),
		Date:          result.Date,
		TimeSlots:     result.TimeSlots,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Observations:  result.Observations,
		TotalAmount:   result.TotalAmount,
		Status:        string(result.Status),
		CancelToken:   result.CancelToken,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// buildConflict возвращает ошибку конфликта, если хотя бы один слот занят
func buildConflict(requested, occupied []string) *SlotConflictError {
	occupiedSet := make(map[string]struct{}, len(occupied))
	for _, slot := range occupied {
		occupiedSet[slot] = struct{}{}
	}

	var unavailable []string
	for _, slot := range requested {
		if _, taken := occupiedSet[slot]; taken {
			unavailable = append(unavailable, slot)
		}
	}

	if len(unavailable) == 0 {
		return nil
	}

	// До трех свободных слотов того же дня как подсказка клиенту
	var available []string
	for _, slot := range domain.SlotCatalog() {
		if _, taken := occupiedSet[slot]; taken {
			continue
		}
		available = append(available, slot)
		if len(available) == maxSuggestedSlots {
			break
		}
	}

	return &SlotConflictError{
		UnavailableSlots: unavailable,
		AvailableSlots:   available,
	}
}

// normalizeSlots упорядочивает слоты по каталогу
func normalizeSlots(slots []string) []string {
	requested := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		requested[slot] = struct{}{}
	}

	ordered := make([]string, 0, len(slots))
	for _, slot := range domain.SlotCatalog() {
		if _, ok := requested[slot]; ok {
			ordered = append(ordered, slot)
		}
	}

	return ordered
}

// generateBookingNumber генерирует публичный номер вида UNQ-12345
func generateBookingNumber() string {
	return fmt.Sprintf("%s%d", domain.BookingNumberPrefix, 10000+rand.IntN(90000))
}
