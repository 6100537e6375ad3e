package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, svc domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id int64, update domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований.
// Каталогу он нужен для защиты от удаления используемой услуги и для
// распространения обновлений на встроенные снапшоты.
type BookingRepository interface {
	HasServiceReference(ctx context.Context, serviceID int64) (bool, error)
	ReplaceServiceSnapshot(ctx context.Context, svc domain.Service) error
}

// TxManager исполняет критическую секцию "проверка ссылок + удаление" атомарно
// относительно конкурентного создания бронирований
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
