package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date             time.Time // Календарный день (время суток игнорируется)
	DurationMinutes  int       // Требуемая длительность услуги
	ExcludeBookingID *string   // ID бронирования, исключаемого из проверки конфликтов (для редактирования)
}

// Response модель ответа: полное разбиение рабочего дня на слоты
type Response struct {
	Date            time.Time
	DurationMinutes int
	Slots           []Slot
}

// Slot модель временного слота с отметкой доступности
type Slot struct {
	Time        types.TimeString
	IsAvailable bool
	Booking     *domain.Booking // Первое конфликтующее бронирование, если слот занят
}

// CheckRequest модель запроса на проверку одного слота
type CheckRequest struct {
	Date             time.Time
	Time             types.TimeString
	DurationMinutes  int
	ExcludeBookingID *string
}

// CheckResponse результат проверки одного слота
type CheckResponse struct {
	IsAvailable        bool
	ConflictingBooking *domain.Booking
}
