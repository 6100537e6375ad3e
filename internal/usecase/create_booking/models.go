package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Услуги передаются идентификаторами: снапшоты берутся из каталога на сервере.
type Request struct {
	ServiceIDs []int64
	Date       time.Time
	StartTime  types.TimeString
	Contact    domain.Contact
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	Services        []domain.Service
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	TotalPrice      float64
	Contact         domain.Contact
	Status          string
	CreatedAt       time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		Services:        domain.CloneServices(b.Services),
		Date:            b.Appointment.Date,
		StartTime:       b.Appointment.Time,
		DurationMinutes: b.Appointment.DurationMinutes,
		TotalPrice:      domain.TotalPrice(b.Services),
		Contact:         b.Contact,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}
