package transition_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Carbyfah/magic-sub006/internal/api/handlers"
	"github.com/Carbyfah/magic-sub006/internal/api/middleware"
	transitionVehicle "github.com/Carbyfah/magic-sub006/internal/usecase/transition_vehicle"
)

const (
	msgInvalidVehicleID     = "некорректный ID транспорта"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "транспорт не найден"
	msgUnknownState         = "целевое состояние не найдено"
	msgTransitionNotAllowed = "переход в указанное состояние запрещен"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase TransitionVehicleUseCase
	logger  Logger
}

func NewHandler(useCase TransitionVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/vehicles/{vehicleId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем vehicleId из URL
	vars := mux.Vars(r)
	vehicleIDStr := vars["vehicleId"]

	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /vehicles/{id}/status - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /vehicles/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем actorID из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /vehicles/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(vehicleID, actorID))
	if err != nil {
		switch {
		case errors.Is(err, transitionVehicle.ErrVehicleNotFound):
			h.logger.Warn("PATCH /vehicles/{id}/status - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionVehicle.ErrUnknownState):
			h.logger.Warn("PATCH /vehicles/{id}/status - Unknown target state: %q", req.TargetState)
			handlers.RespondBadRequest(w, msgUnknownState)

		case errors.Is(err, transitionVehicle.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /vehicles/{id}/status - Transition not allowed: vehicle_id=%d, target=%q",
				vehicleID, req.TargetState)
			handlers.RespondError(w, http.StatusConflict, msgTransitionNotAllowed)

		case errors.Is(err, transitionVehicle.ErrInvalidInput):
			h.logger.Warn("PATCH /vehicles/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /vehicles/{id}/status - Failed to transition: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /vehicles/{id}/status - Vehicle moved %q -> %q: vehicle_id=%d, actor=%d",
		result.PreviousState, result.StateName, vehicleID, actorID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
