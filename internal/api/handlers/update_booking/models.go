package update_booking

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	updateBooking "github.com/m04kA/SMC-SalonService/internal/usecase/update_booking"
)

// UpdateRequest модель HTTP-запроса на редактирование бронирования.
// Отсутствующие поля не меняются.
type UpdateRequest struct {
	ServiceIDs   *[]int64 `json:"serviceIds,omitempty"`
	Date         *string  `json:"date,omitempty"`
	StartTime    *string  `json:"startTime,omitempty"`
	ContactName  *string  `json:"contactName,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// ServiceEntryResponse снапшот услуги в HTTP-ответе
type ServiceEntryResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// Response модель HTTP-ответа с обновленным бронированием
type Response struct {
	ID              string                 `json:"id"`
	Services        []ServiceEntryResponse `json:"services"`
	Date            string                 `json:"date"`
	StartTime       string                 `json:"startTime"`
	DurationMinutes int                    `json:"durationMinutes"`
	TotalPrice      float64                `json:"totalPrice"`
	ContactName     string                 `json:"contactName"`
	ContactPhone    string                 `json:"contactPhone"`
	Status          string                 `json:"status"`
	CreatedAt       string                 `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *Response {
	services := make([]ServiceEntryResponse, 0, len(resp.Services))
	for _, s := range resp.Services {
		services = append(services, ServiceEntryResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &Response{
		ID:              resp.ID,
		Services:        services,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
		ContactName:     resp.Contact.Name,
		ContactPhone:    resp.Contact.Phone,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
