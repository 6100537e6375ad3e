package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Default business hours configuration
const (
	DefaultOpenTime            = types.TimeString("9:00 AM")
	DefaultCloseTime           = types.TimeString("6:00 PM")
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 часов
	ContactPhoneDigits        = 10
	MaxContactNameLength      = 100
	MaxServiceNameLength      = 100
)

// Time format constants
const (
	TimeFormat = types.TimeFormat // h:mm AM/PM
	DateFormat = "2006-01-02"     // YYYY-MM-DD
)

// DefaultBusinessHours возвращает конфигурацию рабочего дня по умолчанию
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpenTime:            DefaultOpenTime,
		CloseTime:           DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}
