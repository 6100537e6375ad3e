package check_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime     = "некорректный формат времени, ожидается h:mm AM/PM"
	msgInvalidDuration = "некорректная длительность, ожидается положительное число минут"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots/check?date=YYYY-MM-DD&time=10:00+AM&duration=N&excludeBookingId=ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots/check - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slotTime, err := types.NewTimeStringFromString(query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /available-slots/check - Invalid time %q: %v", query.Get("time"), err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	duration, err := strconv.Atoi(query.Get("duration"))
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /available-slots/check - Invalid duration %q", query.Get("duration"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	var excludeBookingID *string
	if id := query.Get("excludeBookingId"); id != "" {
		excludeBookingID = &id
	}

	result, err := h.useCase.CheckSlot(r.Context(), &getAvailableSlots.CheckRequest{
		Date:             date,
		Time:             slotTime,
		DurationMinutes:  duration,
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /available-slots/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /available-slots/check - Failed to check slot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
