package get_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, id string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
