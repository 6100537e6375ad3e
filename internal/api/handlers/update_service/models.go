package update_service

import "github.com/m04kA/SMC-SalonService/internal/service/catalog/models"

// UpdateRequest модель HTTP-запроса на частичное обновление услуги.
// Отсутствующие поля не меняются.
type UpdateRequest struct {
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

// Response модель услуги в HTTP-ответе
type Response struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ToServiceRequest конвертирует HTTP-запрос в модель сервиса каталога
func (r *UpdateRequest) ToServiceRequest() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(s *models.ServiceResponse) *Response {
	return &Response{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}
