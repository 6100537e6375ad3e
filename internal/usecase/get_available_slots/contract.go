package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListByDate получает все бронирования на конкретный календарный день
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
