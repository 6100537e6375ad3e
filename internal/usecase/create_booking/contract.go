package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	// ListByDate получает все бронирования на конкретный календарный день
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager интерфейс менеджера критических секций.
// Проверка пересечений и запись бронирования должны быть атомарны
// относительно других писателей.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
