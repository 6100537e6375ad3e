package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	catalogRepo CatalogRepository
	bookingRepo BookingRepository
	txManager   TxManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, bookingRepo BookingRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List возвращает все услуги каталога в порядке добавления
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching catalog")

	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Create добавляет услугу в каталог. ID назначает хранилище (max + 1).
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: adding service name=%q, price=%.2f, duration=%d",
		req.Name, req.Price, req.DurationMinutes)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.Create(ctx, domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully added service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу и заменяет её снапшоты во всех
// бронированиях (по совпадению ID, позиция в заказе сохраняется).
// Единственный сквозной побочный эффект между каталогом и бронированиями.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.catalogRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.ReplaceServiceSnapshot(ctx, *updated); err != nil {
		s.logger.Error("Update: failed to propagate service id=%d to bookings: %v", id, err)
		return nil, fmt.Errorf("%w: Update - propagate to bookings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу. Используемая услуга защищена от удаления:
// встроенные в бронирования снапшоты должны оставаться осмысленными.
// Проверка ссылок и удаление выполняются в одной критической секции,
// чтобы параллельно создаваемое бронирование не проскочило между ними.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		inUse, err := s.bookingRepo.HasServiceReference(ctx, id)
		if err != nil {
			s.logger.Error("Delete: reference check failed for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - reference check: %v", ErrInternal, err)
		}
		if inUse {
			s.logger.Warn("Delete: service id=%d is referenced by a booking", id)
			return ErrServiceInUse
		}

		if err := s.catalogRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				s.logger.Warn("Delete: service id=%d not found", id)
				return ErrServiceNotFound
			}
			s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}

// IsServiceInUse проверяет, встроена ли услуга хотя бы в одно бронирование
func (s *Service) IsServiceInUse(ctx context.Context, id int64) (bool, error) {
	inUse, err := s.bookingRepo.HasServiceReference(ctx, id)
	if err != nil {
		s.logger.Error("IsServiceInUse: repository error for service id=%d: %v", id, err)
		return false, fmt.Errorf("%w: IsServiceInUse - repository error: %v", ErrInternal, err)
	}
	return inUse, nil
}

// validateCreate проверяет запрос на добавление услуги
func validateCreate(req *models.CreateServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	return validateDuration(req.DurationMinutes)
}

// validateUpdate проверяет заполненные поля частичного обновления
func validateUpdate(req *models.UpdateServiceRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		if len(*req.Name) > domain.MaxServiceNameLength {
			return fmt.Errorf("%w: name is too long", ErrInvalidInput)
		}
	}

	if req.Price != nil && *req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		return validateDuration(*req.DurationMinutes)
	}

	return nil
}

func validateDuration(minutes int) error {
	if minutes < domain.MinServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be a positive number of minutes", ErrInvalidInput)
	}
	if minutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}
	return nil
}
