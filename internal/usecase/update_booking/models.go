package update_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на редактирование бронирования.
// nil-поля не меняются (частичное обновление поверх существующей записи).
type Request struct {
	ID           string
	ServiceIDs   *[]int64
	Date         *time.Time
	StartTime    *types.TimeString
	ContactName  *string
	ContactPhone *string
	Status       *string
}

// Response модель ответа с обновленным бронированием
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
