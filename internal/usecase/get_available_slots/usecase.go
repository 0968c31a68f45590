package get_available_slots

import (
	"context"
	"fmt"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, serviceType=%s", req.Date, req.ServiceType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем занятые слоты на указанную дату
	occupied, err := uc.bookingRepo.GetOccupiedSlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied slots for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
	}

	// 3. Размечаем каталог слотов по занятости
	slots := buildSlots(occupied)

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots in catalog, %d occupied",
		req.Date, len(slots), len(occupied))

	return &Response{
		Date:        req.Date,
		ServiceType: req.ServiceType,
		Slots:       slots,
	}, nil
}
