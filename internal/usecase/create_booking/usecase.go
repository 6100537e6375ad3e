package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case для создания бронирования.
// Инвариант непересечения проверяется здесь, на серверной стороне, внутри
// критической секции — одной дисциплины UI недостаточно.
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	hours        domain.BusinessHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, services=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем услуги из каталога в снапшоты
	services, err := uc.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// 3. Длительность записи выводится из выбранных услуг
	durationMinutes := domain.TotalDuration(services)

	// 4. Запись должна помещаться в рабочие часы
	fits, err := uc.hours.Contains(req.StartTime, durationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if !fits {
		uc.logger.Warn("CreateBooking: slot %s (+%d min) is outside business hours", req.StartTime, durationMinutes)
		return nil, ErrOutsideBusinessHours
	}

	var result *domain.Booking

	// 5. Проверка пересечений и запись — атомарно относительно других писателей
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		conflict, err := findConflict(req.Date, req.StartTime, durationMinutes, nil, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s conflicts with booking id=%s", req.StartTime, conflict.ID)
			return ErrSlotNotAvailable
		}

		// Новое бронирование всегда неподтверждённое, подтверждает администратор
		booking := &domain.Booking{
			ID:       newBookingID(),
			Services: services,
			Appointment: domain.Appointment{
				Date:            req.Date,
				Time:            req.StartTime,
				DurationMinutes: durationMinutes,
			},
			Contact:   req.Contact,
			Status:    domain.StatusUnconfirmed,
			CreatedAt: uc.timeProvider.Now(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return toResponse(result), nil
}

// resolveServices загружает услуги по ID и возвращает их снапшоты
func (uc *UseCase) resolveServices(ctx context.Context, serviceIDs []int64) ([]domain.Service, error) {
	services := make([]domain.Service, 0, len(serviceIDs))

	for _, id := range serviceIDs {
		svc, err := uc.catalogRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found", id)
				return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		services = append(services, *svc)
	}

	return services, nil
}

// findConflict возвращает первое бронирование дня, пересекающееся с интервалом
// [start, start+duration). Интервалы полуоткрытые: граничащие записи не конфликтуют.
func findConflict(
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	excludeBookingID *string,
	bookings []*domain.Booking,
) (*domain.Booking, error) {
	slotStart, err := start.On(date)
	if err != nil {
		return nil, err
	}
	slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)

	for _, b := range bookings {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if !b.IsOnDay(date) {
			continue
		}

		overlaps, err := b.OverlapsInterval(slotStart, slotEnd)
		if err != nil {
			continue
		}
		if overlaps {
			return b, nil
		}
	}

	return nil, nil
}

func newBookingID() string {
	return fmt.Sprintf("booking-%s", uuid.NewString())
}
