package update_booking_status

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// UpdateStatusRequest модель HTTP-запроса на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модель HTTP-ответа: бронирование после смены статуса
type Response struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *Response {
	return &Response{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime,
		Status:    b.Status,
	}
}
