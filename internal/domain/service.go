package domain

// Service represents an offerable catalog entry
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// ServiceUpdate частичное обновление услуги: nil-поля не меняются
type ServiceUpdate struct {
	Name            *string
	Price           *float64
	DurationMinutes *int
}

// ApplyTo накладывает заполненные поля обновления на услугу
func (u ServiceUpdate) ApplyTo(s *Service) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.DurationMinutes != nil {
		s.DurationMinutes = *u.DurationMinutes
	}
}

// TotalDuration returns the combined duration of services in minutes
func TotalDuration(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}

// TotalPrice returns the combined price of services
func TotalPrice(services []Service) float64 {
	total := 0.0
	for _, s := range services {
		total += s.Price
	}
	return total
}

// CloneServices возвращает независимую копию списка услуг.
// Бронирование хранит снапшоты услуг, а не ссылки на каталог.
func CloneServices(services []Service) []Service {
	if services == nil {
		return nil
	}
	out := make([]Service, len(services))
	copy(out, services)
	return out
}
