package list_states

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Carbyfah/magic-sub006/internal/api/handlers"
	"github.com/Carbyfah/magic-sub006/internal/domain"
)

const (
	msgUnknownContext = "неизвестный контекст состояний"
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

// Handle GET /api/v1/contexts/{context}/states
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contextStr := vars["context"]

	stateContext, err := domain.ParseStateContext(contextStr)
	if err != nil {
		h.logger.Warn("GET /contexts/{context}/states - Unknown context: %q", contextStr)
		handlers.RespondBadRequest(w, msgUnknownContext)
		return
	}

	result, err := h.service.StatesFor(r.Context(), stateContext)
	if err != nil {
		h.logger.Error("GET /contexts/{context}/states - Failed to list states: context=%s, error=%v",
			stateContext, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /contexts/{context}/states - States retrieved successfully: context=%s, count=%d",
		stateContext, len(result.States))
	handlers.RespondJSON(w, http.StatusOK, result)
}
