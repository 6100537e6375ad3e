package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceNotFound возвращается, когда выбранная услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrOutsideBusinessHours возвращается, когда запись не помещается в рабочие часы
	ErrOutsideBusinessHours = errors.New("appointment is outside business hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
