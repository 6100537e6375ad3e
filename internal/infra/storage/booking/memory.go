package booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// MemoryRepository хранит бронирования в памяти в порядке создания.
// Наружу отдаются только глубокие копии: состояние хранилища нельзя
// изменить через возвращенное бронирование.
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
}

// NewMemoryRepository создает репозиторий, заполненный начальными данными
func NewMemoryRepository(seed []*domain.Booking) *MemoryRepository {
	bookings := make([]*domain.Booking, 0, len(seed))
	for _, b := range seed {
		bookings = append(bookings, b.Clone())
	}
	return &MemoryRepository{bookings: bookings}
}

// Create добавляет бронирование в конец списка
func (r *MemoryRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, b.Clone())
	return b.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return b.Clone(), nil
		}
	}
	return nil, ErrBookingNotFound
}

// List возвращает все бронирования в порядке создания
func (r *MemoryRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b.Clone())
	}
	return out, nil
}

// ListByDate возвращает бронирования на указанный календарный день
func (r *MemoryRepository) ListByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.IsOnDay(date) {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

// Update полностью заменяет бронирование, сохраняя его позицию в списке
func (r *MemoryRepository) Update(_ context.Context, updated *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == updated.ID {
			r.bookings[i] = updated.Clone()
			return updated.Clone(), nil
		}
	}
	return nil, ErrBookingNotFound
}

// UpdateStatus обновляет статус бронирования
func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return ErrBookingNotFound
}

// Delete удаляет бронирование. Ссылочных ограничений на удаление нет.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}

// HasServiceReference проверяет, ссылается ли хоть одно бронирование на услугу
func (r *MemoryRepository) HasServiceReference(_ context.Context, serviceID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ReferencesService(serviceID) {
			return true, nil
		}
	}
	return false, nil
}

// ReplaceServiceSnapshot заменяет снапшоты услуги во всех бронированиях
// на обновленные значения (по совпадению ID, позиция в заказе сохраняется)
func (r *MemoryRepository) ReplaceServiceSnapshot(_ context.Context, svc domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		for i := range b.Services {
			if b.Services[i].ID == svc.ID {
				b.Services[i] = svc
			}
		}
	}
	return nil
}
