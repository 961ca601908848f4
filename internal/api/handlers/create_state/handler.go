package create_state

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Carbyfah/magic-sub006/internal/api/handlers"
	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/internal/service/states"
)

const (
	msgUnknownContext     = "неизвестный контекст состояний"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidState       = "некорректные данные состояния"
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

// Handle POST /api/v1/contexts/{context}/states
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contextStr := vars["context"]

	stateContext, err := domain.ParseStateContext(contextStr)
	if err != nil {
		h.logger.Warn("POST /contexts/{context}/states - Unknown context: %q", contextStr)
		handlers.RespondBadRequest(w, msgUnknownContext)
		return
	}

	var req CreateStateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contexts/{context}/states - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(stateContext))
	if err != nil {
		switch {
		case errors.Is(err, states.ErrInvalidInput):
			h.logger.Warn("POST /contexts/{context}/states - Invalid state data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidState)

		default:
			h.logger.Error("POST /contexts/{context}/states - Failed to create state: context=%s, error=%v",
				stateContext, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contexts/{context}/states - State created successfully: context=%s, state_id=%d, code=%s",
		stateContext, result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
