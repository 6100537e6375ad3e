package models

import "github.com/m04kA/SMC-SalonService/internal/domain"

// ServiceResponse представление услуги для внешнего слоя
type ServiceResponse struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// ServiceListResponse список услуг в порядке добавления
type ServiceListResponse struct {
	Services []ServiceResponse
}

// CreateServiceRequest запрос на добавление услуги
type CreateServiceRequest struct {
	Name            string
	Price           float64
	DurationMinutes int
}

// UpdateServiceRequest частичное обновление услуги: nil-поля не меняются
type UpdateServiceRequest struct {
	Name            *string
	Price           *float64
	DurationMinutes *int
}

// ToDomainUpdate конвертирует запрос в доменное частичное обновление
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
	}
}

// FromDomainService конвертирует доменную услугу в response-модель
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список доменных услуг
func FromDomainServiceList(services []domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, *FromDomainService(&services[i]))
	}
	return &ServiceListResponse{Services: out}
}
