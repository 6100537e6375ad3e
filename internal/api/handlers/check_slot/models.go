package check_slot

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// ConflictingBookingResponse краткая информация о конфликтующем бронировании
type ConflictingBookingResponse struct {
	ID              string `json:"id"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	ContactName     string `json:"contactName"`
}

// Response результат проверки одного слота
type Response struct {
	IsAvailable        bool                        `json:"isAvailable"`
	ConflictingBooking *ConflictingBookingResponse `json:"conflictingBooking,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.CheckResponse) *Response {
	return &Response{
		IsAvailable:        resp.IsAvailable,
		ConflictingBooking: fromConflict(resp.ConflictingBooking),
	}
}

func fromConflict(b *domain.Booking) *ConflictingBookingResponse {
	if b == nil {
		return nil
	}
	return &ConflictingBookingResponse{
		ID:              b.ID,
		StartTime:       b.Appointment.Time.String(),
		DurationMinutes: b.Appointment.DurationMinutes,
		ContactName:     b.Contact.Name,
	}
}
