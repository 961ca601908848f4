package delete_state

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
	msgStateInUse     = "состояние используется и не может быть удалено"
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

// Handle DELETE /api/v1/states/{stateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stateIDStr := vars["stateId"]

	stateID, err := strconv.ParseInt(stateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /states/{id} - Invalid state ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStateID)
		return
	}

	if err := h.service.Delete(r.Context(), stateID); err != nil {
		switch {
		case errors.Is(err, states.ErrStateNotFound):
			h.logger.Warn("DELETE /states/{id} - State not found: state_id=%d", stateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, states.ErrStateInUse):
			h.logger.Warn("DELETE /states/{id} - State in use: state_id=%d", stateID)
			handlers.RespondError(w, http.StatusConflict, msgStateInUse)

		default:
			h.logger.Error("DELETE /states/{id} - Failed to delete state: state_id=%d, error=%v", stateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /states/{id} - State deleted successfully: state_id=%d", stateID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
