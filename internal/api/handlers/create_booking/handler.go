package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidBody          = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени, ожидается h:mm AM/PM"
	msgInvalidInput         = "некорректные данные бронирования"
	msgServiceNotFound      = "одна из выбранных услуг не найдена"
	msgSlotNotAvailable     = "выбранное время уже занято"
	msgOutsideBusinessHours = "запись не помещается в рабочие часы салона"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid start time %q: %v", req.StartTime, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{
		ServiceIDs: req.ServiceIDs,
		Date:       date,
		StartTime:  startTime,
		Contact: domain.Contact{
			Name:  req.ContactName,
			Phone: req.ContactPhone,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgServiceNotFound)
		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: %v", err)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: %v", err)
			handlers.RespondConflict(w, msgSlotNotAvailable)
		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created booking id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
