package deactivate_state

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Carbyfah/magic-sub006/internal/api/handlers"
	"github.com/Carbyfah/magic-sub006/internal/service/states"
)

const (
	msgInvalidStateID = "некорректный ID состояния"
	msgNotFound       = "состояние не найдено"
)

type Handler struct {
	service StateService
	logger  Logger
}

func NewHandler(service StateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/states/{stateId}/deactivate
// Деактивация скрывает состояние из каталога, не трогая существующие
// записи - замена удалению, когда состояние уже используется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stateIDStr := vars["stateId"]

	stateID, err := strconv.ParseInt(stateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /states/{id}/deactivate - Invalid state ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStateID)
		return
	}

	if err := h.service.Deactivate(r.Context(), stateID); err != nil {
		switch {
		case errors.Is(err, states.ErrStateNotFound):
			h.logger.Warn("PATCH /states/{id}/deactivate - State not found: state_id=%d", stateID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /states/{id}/deactivate - Failed to deactivate state: state_id=%d, error=%v",
				stateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /states/{id}/deactivate - State deactivated successfully: state_id=%d", stateID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
