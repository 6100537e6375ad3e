package catalog

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// MemoryRepository хранит каталог услуг в памяти.
// Движок по умолчанию: данные живут от старта до остановки процесса.
type MemoryRepository struct {
	mu       sync.RWMutex
	services []domain.Service
}

// NewMemoryRepository создает репозиторий, заполненный начальными данными
func NewMemoryRepository(seed []domain.Service) *MemoryRepository {
	return &MemoryRepository{
		services: domain.CloneServices(seed),
	}
}

// List возвращает копию каталога в порядке добавления
func (r *MemoryRepository) List(_ context.Context) ([]domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.CloneServices(r.services), nil
}

// GetByID возвращает услугу по ID
func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, svc := range r.services {
		if svc.ID == id {
			out := svc
			return &out, nil
		}
	}
	return nil, ErrServiceNotFound
}

// Create добавляет услугу в конец каталога, назначая ID = max + 1 (или 1)
func (r *MemoryRepository) Create(_ context.Context, svc domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, existing := range r.services {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	svc.ID = maxID + 1
	r.services = append(r.services, svc)

	out := svc
	return &out, nil
}

// Update частично обновляет услугу: nil-поля не трогаются
func (r *MemoryRepository) Update(_ context.Context, id int64, update domain.ServiceUpdate) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.services {
		if r.services[i].ID == id {
			update.ApplyTo(&r.services[i])
			out := r.services[i]
			return &out, nil
		}
	}
	return nil, ErrServiceNotFound
}

// Delete удаляет услугу по ID
func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.services {
		if r.services[i].ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return ErrServiceNotFound
}
