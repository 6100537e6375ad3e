package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog service: service not found")

	// ErrServiceInUse возвращается при попытке удалить услугу, на которую
	// ссылается хотя бы одно бронирование
	ErrServiceInUse = errors.New("catalog service: service is referenced by a booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
