package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	// ListByDate получает все бронирования на конкретный календарный день
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager интерфейс менеджера критических секций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
