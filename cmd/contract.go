package main

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository объединенный контракт хранилища бронирований:
// оба движка (in-memory и postgres) реализуют его целиком.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
	HasServiceReference(ctx context.Context, serviceID int64) (bool, error)
	ReplaceServiceSnapshot(ctx context.Context, svc domain.Service) error
}

// CatalogRepository объединенный контракт хранилища каталога услуг
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, svc domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id int64, update domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// TxManager контракт атомарного исполнения секции создания/переноса брони
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
