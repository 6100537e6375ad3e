package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, статус, удаление.
// Создание и редактирование с переносом живут в соответствующих use case.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
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

// List возвращает все бронирования в порядке создания
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching all bookings")

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переключает статус бронирования (confirmed/unconfirmed)
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, status)

	domainStatus, err := models.ToDomainBookingStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domainStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", id, status)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование. Безусловное удаление: бронирование
// никого не блокирует, ссылочных ограничений нет.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}
