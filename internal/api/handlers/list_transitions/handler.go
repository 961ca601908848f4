package list_transitions

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

// Handle GET /api/v1/contexts/{context}/transitions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contextStr := vars["context"]

	stateContext, err := domain.ParseStateContext(contextStr)
	if err != nil {
		h.logger.Warn("GET /contexts/{context}/transitions - Unknown context: %q", contextStr)
		handlers.RespondBadRequest(w, msgUnknownContext)
		return
	}

	result := h.service.Transitions(stateContext)

	h.logger.Info("GET /contexts/{context}/transitions - Transitions retrieved successfully: context=%s",
		stateContext)
	handlers.RespondJSON(w, http.StatusOK, result)
}
