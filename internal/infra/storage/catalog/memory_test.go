package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

func seedServices() []domain.Service {
	return []domain.Service{
		{ID: 1, Name: "Мужская стрижка", Price: 20000, DurationMinutes: 30},
		{ID: 2, Name: "Женская стрижка", Price: 15000, DurationMinutes: 15},
		{ID: 5, Name: "Маникюр", Price: 20000, DurationMinutes: 30},
	}
}

func TestMemoryRepository_List(t *testing.T) {
	repo := NewMemoryRepository(seedServices())

	services, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, services, 3)
	assert.Equal(t, int64(1), services[0].ID)
	assert.Equal(t, int64(5), services[2].ID)

	// возвращенный срез — копия
	services[0].Name = "изменено"
	fresh, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Мужская стрижка", fresh[0].Name)
}

func TestMemoryRepository_GetByID(t *testing.T) {
	repo := NewMemoryRepository(seedServices())

	svc, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Женская стрижка", svc.Name)

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestMemoryRepository_CreateAssignsMaxPlusOne(t *testing.T) {
	repo := NewMemoryRepository(seedServices())

	created, err := repo.Create(context.Background(), domain.Service{
		Name: "Укладка", Price: 10000, DurationMinutes: 45,
	})
	require.NoError(t, err)

	// максимальный существующий ID — 5, а не длина списка
	assert.Equal(t, int64(6), created.ID)
}

func TestMemoryRepository_CreateOnEmptyCatalog(t *testing.T) {
	repo := NewMemoryRepository(nil)

	created, err := repo.Create(context.Background(), domain.Service{
		Name: "Укладка", Price: 10000, DurationMinutes: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestMemoryRepository_DeleteFreesID(t *testing.T) {
	repo := NewMemoryRepository(seedServices())
	ctx := context.Background()

	// после удаления услуги с максимальным ID он переиспользуется
	require.NoError(t, repo.Delete(ctx, 5))

	created, err := repo.Create(ctx, domain.Service{Name: "Укладка", Price: 10000, DurationMinutes: 45})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := NewMemoryRepository(seedServices())
	ctx := context.Background()

	updated, err := repo.Update(ctx, 1, domain.ServiceUpdate{
		Price:           ptr.Ptr(22000.0),
		DurationMinutes: ptr.Ptr(35),
	})
	require.NoError(t, err)

	assert.Equal(t, "Мужская стрижка", updated.Name)
	assert.Equal(t, 22000.0, updated.Price)
	assert.Equal(t, 35, updated.DurationMinutes)

	_, err = repo.Update(ctx, 99, domain.ServiceUpdate{Price: ptr.Ptr(1.0)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryRepository(seedServices())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 2))

	services, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 2)

	assert.ErrorIs(t, repo.Delete(ctx, 2), ErrServiceNotFound)
}
