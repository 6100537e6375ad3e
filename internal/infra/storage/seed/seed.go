// Package seed содержит демонстрационные данные для in-memory хранилища.
// Набор фиксированный (8 услуг, 3 бронирования) и нужен только для демо и
// тестов — форматом данных он не является.
package seed

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Services возвращает стартовый каталог услуг
func Services() []domain.Service {
	return []domain.Service{
		{ID: 1, Name: "Мужская стрижка", Price: 20000, DurationMinutes: 30},
		{ID: 2, Name: "Женская стрижка", Price: 15000, DurationMinutes: 15},
		{ID: 3, Name: "Укладка", Price: 10000, DurationMinutes: 45},
		{ID: 4, Name: "Педикюр", Price: 20000, DurationMinutes: 60},
		{ID: 5, Name: "Маникюр", Price: 20000, DurationMinutes: 30},
		{ID: 6, Name: "Чистка лица", Price: 15000, DurationMinutes: 20},
		{ID: 7, Name: "Выпрямление волос", Price: 15000, DurationMinutes: 20},
		{ID: 8, Name: "Ресницы", Price: 8000, DurationMinutes: 20},
	}
}

// Bookings возвращает стартовые бронирования на ближайшие дни.
// Даты считаются относительно now, чтобы демо-данные не устаревали.
func Bookings(now time.Time) []*domain.Booking {
	services := Services()

	return []*domain.Booking{
		{
			ID:       "booking-1",
			Services: []domain.Service{services[0], services[1]},
			Appointment: domain.Appointment{
				Date:            now.AddDate(0, 0, 1),
				Time:            "10:00 AM",
				DurationMinutes: 45,
			},
			Contact: domain.Contact{
				Name:  "Диана Дельгадо",
				Phone: "1234567890",
			},
			Status:    domain.StatusConfirmed,
			CreatedAt: now,
		},
		{
			ID:       "booking-2",
			Services: []domain.Service{services[3]},
			Appointment: domain.Appointment{
				Date:            now.AddDate(0, 0, 1),
				Time:            "2:00 PM",
				DurationMinutes: 60,
			},
			Contact: domain.Contact{
				Name:  "Хуан Перес",
				Phone: "0987654321",
			},
			Status:    domain.StatusUnconfirmed,
			CreatedAt: now,
		},
		{
			ID:       "booking-3",
			Services: []domain.Service{services[2]},
			Appointment: domain.Appointment{
				Date:            now.AddDate(0, 0, 2),
				Time:            "11:30 AM",
				DurationMinutes: 45,
			},
			Contact: domain.Contact{
				Name:  "Хавьер",
				Phone: "5556667777",
			},
			Status:    domain.StatusUnconfirmed,
			CreatedAt: now,
		},
	}
}
