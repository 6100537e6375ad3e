package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	return validateContact(req.Contact)
}

// validateContact проверяет контактные данные клиента.
// Телефон валиден, если после удаления всех нецифровых символов
// остаётся ровно десять цифр.
func validateContact(contact domain.Contact) error {
	if strings.TrimSpace(contact.Name) == "" {
		return fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}

	if len(contact.Name) > domain.MaxContactNameLength {
		return fmt.Errorf("%w: contact name is too long", ErrInvalidInput)
	}

	digits := stripNonDigits(contact.Phone)
	if len(digits) != domain.ContactPhoneDigits {
		return fmt.Errorf("%w: phone must contain exactly %d digits", ErrInvalidInput, domain.ContactPhoneDigits)
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
