package get_booking

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// ServiceEntryResponse снапшот услуги в HTTP-ответе
type ServiceEntryResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// Response модель бронирования в HTTP-ответе
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

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *Response {
	services := make([]ServiceEntryResponse, 0, len(b.Services))
	for _, s := range b.Services {
		services = append(services, ServiceEntryResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &Response{
		ID:              b.ID,
		Services:        services,
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		TotalPrice:      b.TotalPrice,
		ContactName:     b.ContactName,
		ContactPhone:    b.ContactPhone,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
