package update_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует заполненные поля запроса; nil-поля не проверяются
func validateRequest(req *Request) error {
	if req.ID == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	if req.ServiceIDs != nil {
		if len(*req.ServiceIDs) == 0 {
			return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
		}
		for _, id := range *req.ServiceIDs {
			if id <= 0 {
				return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
			}
		}
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be empty", ErrInvalidInput)
	}

	if req.StartTime != nil && *req.StartTime == "" {
		return fmt.Errorf("%w: start time must not be empty", ErrInvalidInput)
	}

	if req.ContactName != nil {
		if strings.TrimSpace(*req.ContactName) == "" {
			return fmt.Errorf("%w: contact name must not be empty", ErrInvalidInput)
		}
		if len(*req.ContactName) > domain.MaxContactNameLength {
			return fmt.Errorf("%w: contact name is too long", ErrInvalidInput)
		}
	}

	if req.ContactPhone != nil {
		digits := stripNonDigits(*req.ContactPhone)
		if len(digits) != domain.ContactPhoneDigits {
			return fmt.Errorf("%w: phone must contain exactly %d digits", ErrInvalidInput, domain.ContactPhoneDigits)
		}
	}

	if req.Status != nil && !domain.IsValidStatus(domain.BookingStatus(*req.Status)) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	return nil
}

// stripNonDigits оставляет только ASCII-цифры: символы вроде '٠' не считаются
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
