package get_available_slots

import "fmt"

// validateRequest валидирует запрос разбиения дня на слоты
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	return nil
}

// validateCheckRequest валидирует запрос проверки одного слота
func validateCheckRequest(req *CheckRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	return nil
}
