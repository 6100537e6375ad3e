package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case получения доступных слотов: разбивает рабочий день на
// слоты фиксированной ширины и отмечает каждый как свободный или занятый.
// Чистая операция чтения: хранилище не мутируется, результат аллокируется заново
// при каждом вызове — после любой записи доступность нужно запрашивать повторно.
type UseCase struct {
	bookingRepo BookingRepository
	hours       domain.BusinessHours
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, hours domain.BusinessHours, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		hours:       hours,
		logger:      logger,
	}
}

// Execute возвращает полное разбиение рабочего дня на слоты с отметкой доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d, exclude=%v",
		req.Date.Format(domain.DateFormat), req.DurationMinutes, excludeForLog(req.ExcludeBookingID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерируем кандидатов: все слоты, в которые услуга успевает завершиться
	candidates, err := generateCandidateSlots(uc.hours, req.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования на этот день
	bookings, err := uc.bookingRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Отмечаем доступность каждого кандидата.
	// Порядок результата хронологический — следствие генерации по шагу
	slots := make([]Slot, 0, len(candidates))
	for _, slotTime := range candidates {
		available, conflict, err := evaluateSlot(req.Date, slotTime, req.DurationMinutes, req.ExcludeBookingID, bookings)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to evaluate slot %s: %v", slotTime, err)
			return nil, fmt.Errorf("%w: failed to evaluate slot: %v", ErrInternal, err)
		}

		slots = append(slots, Slot{
			Time:        slotTime,
			IsAvailable: available,
			Booking:     conflict,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

// CheckSlot проверяет доступность одного слота (для формы редактирования)
func (uc *UseCase) CheckSlot(ctx context.Context, req *CheckRequest) (*CheckResponse, error) {
	uc.logger.Info("CheckSlot: date=%s, time=%s, duration=%d, exclude=%v",
		req.Date.Format(domain.DateFormat), req.Time, req.DurationMinutes, excludeForLog(req.ExcludeBookingID))

	if err := validateCheckRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookingRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	available, conflict, err := evaluateSlot(req.Date, req.Time, req.DurationMinutes, req.ExcludeBookingID, bookings)
	if err != nil {
		uc.logger.Warn("CheckSlot: failed to evaluate slot %s: %v", req.Time, err)
		return nil, fmt.Errorf("%w: failed to evaluate slot: %v", ErrInvalidInput, err)
	}

	return &CheckResponse{
		IsAvailable:        available,
		ConflictingBooking: conflict,
	}, nil
}

func excludeForLog(id *string) string {
	if id == nil {
		return "<none>"
	}
	return *id
}
