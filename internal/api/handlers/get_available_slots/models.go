package get_available_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// ConflictingBookingResponse краткая информация о занявшем слот бронировании
type ConflictingBookingResponse struct {
	ID              string `json:"id"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	ContactName     string `json:"contactName"`
}

// SlotResponse модель слота в HTTP-ответе
type SlotResponse struct {
	Time        string                      `json:"time"`
	IsAvailable bool                        `json:"isAvailable"`
	Booking     *ConflictingBookingResponse `json:"booking,omitempty"`
}

// Response модель HTTP-ответа со списком слотов дня
type Response struct {
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *Response {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:        slot.Time.String(),
			IsAvailable: slot.IsAvailable,
			Booking:     fromConflict(slot.Booking),
		})
	}

	return &Response{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
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
