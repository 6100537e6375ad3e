package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case редактирования бронирования администратором.
// Инвариант непересечения перепроверяется с исключением самого бронирования:
// запись не должна конфликтовать сама с собой при переносе в собственный слот.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	hours       domain.BusinessHours
	logger      Logger
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
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		hours:       hours,
		logger:      logger,
	}
}

// Execute выполняет use case редактирования бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%s", req.ID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%s not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		merged, err := uc.merge(txCtx, existing, req)
		if err != nil {
			return err
		}

		// Обновлённая запись должна помещаться в рабочие часы
		fits, err := uc.hours.Contains(merged.Appointment.Time, merged.Appointment.DurationMinutes)
		if err != nil {
			uc.logger.Warn("UpdateBooking: invalid start time %q: %v", merged.Appointment.Time, err)
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
		if !fits {
			uc.logger.Warn("UpdateBooking: slot %s (+%d min) is outside business hours",
				merged.Appointment.Time, merged.Appointment.DurationMinutes)
			return ErrOutsideBusinessHours
		}

		// Проверяем пересечения, исключив само редактируемое бронирование
		bookings, err := uc.bookingRepo.ListByDate(txCtx, merged.Appointment.Date)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		conflict, err := findConflict(
			merged.Appointment.Date,
			merged.Appointment.Time,
			merged.Appointment.DurationMinutes,
			&merged.ID,
			bookings,
		)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("UpdateBooking: slot %s conflicts with booking id=%s", merged.Appointment.Time, conflict.ID)
			return ErrSlotNotAvailable
		}

		updated, err := uc.bookingRepo.Update(txCtx, merged)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", result.ID)

	return toResponse(result), nil
}

// merge накладывает заполненные поля запроса на существующее бронирование.
// При смене набора услуг длительность записи пересчитывается.
func (uc *UseCase) merge(ctx context.Context, existing *domain.Booking, req *Request) (*domain.Booking, error) {
	merged := existing.Clone()

	if req.ServiceIDs != nil {
		services, err := uc.resolveServices(ctx, *req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		merged.Services = services
		merged.Appointment.DurationMinutes = domain.TotalDuration(services)
	}

	if req.Date != nil {
		merged.Appointment.Date = *req.Date
	}

	if req.StartTime != nil {
		merged.Appointment.Time = *req.StartTime
	}

	if req.ContactName != nil {
		merged.Contact.Name = *req.ContactName
	}

	if req.ContactPhone != nil {
		merged.Contact.Phone = *req.ContactPhone
	}

	if req.Status != nil {
		merged.Status = domain.BookingStatus(*req.Status)
	}

	return merged, nil
}

// resolveServices загружает услуги по ID и возвращает их снапшоты
func (uc *UseCase) resolveServices(ctx context.Context, serviceIDs []int64) ([]domain.Service, error) {
	services := make([]domain.Service, 0, len(serviceIDs))

	for _, id := range serviceIDs {
		svc, err := uc.catalogRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("UpdateBooking: service id=%d not found", id)
				return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
			}
			uc.logger.Error("UpdateBooking: failed to get service id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		services = append(services, *svc)
	}

	return services, nil
}

// findConflict возвращает первое бронирование дня, пересекающееся с интервалом
// [start, start+duration), пропуская excludeBookingID.
// Интервалы полуоткрытые: граничащие записи не конфликтуют.
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
