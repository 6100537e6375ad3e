package get_services

import "github.com/m04kA/SMC-SalonService/internal/service/catalog/models"

// ServiceResponse модель услуги в HTTP-ответе
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// Response модель HTTP-ответа со списком услуг
type Response struct {
	Services []ServiceResponse `json:"services"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ServiceListResponse) *Response {
	services := make([]ServiceResponse, 0, len(resp.Services))
	for _, s := range resp.Services {
		services = append(services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &Response{Services: services}
}
