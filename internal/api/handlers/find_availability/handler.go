package find_availability

import (
	"errors"
	"net/http"

	"github.com/Carbyfah/magic-sub006/internal/api/handlers"
	findAvailability "github.com/Carbyfah/magic-sub006/internal/usecase/find_availability"
)

const (
	msgInvalidParams = "некорректные параметры запроса, ожидаются serviceId, date (YYYY-MM-DD) и passengers"
)

type Handler struct {
	useCase FindAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: serviceId, date, passengers (все обязательны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability - Failed to find availability: service_id=%d, error=%v",
				useCaseReq.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Search finished: service_id=%d, found=%t",
		useCaseReq.ServiceID, result.Found)
	handlers.RespondJSON(w, http.StatusOK, response)
}
