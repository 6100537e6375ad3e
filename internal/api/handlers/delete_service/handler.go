package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

const (
	msgInvalidServiceID = "некорректный идентификатор услуги"
	msgServiceNotFound  = "услуга не найдена"
	msgServiceInUse     = "услуга используется в бронированиях и не может быть удалена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service id=%d not found", id)
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, catalog.ErrServiceInUse):
			h.logger.Warn("DELETE /services/{id} - Service id=%d is referenced by bookings", id)
			handlers.RespondConflict(w, msgServiceInUse)
		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Deleted service id=%d", id)
	handlers.RespondNoContent(w)
}
