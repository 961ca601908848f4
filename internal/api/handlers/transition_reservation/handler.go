package transition_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Carbyfah/magic-sub006/internal/api/handlers"
	"github.com/Carbyfah/magic-sub006/internal/api/middleware"
	transitionReservation "github.com/Carbyfah/magic-sub006/internal/usecase/transition_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgUnknownState         = "целевое состояние не найдено"
	msgTransitionNotAllowed = "переход в указанное состояние запрещен"
	msgReasonRequired       = "для отмены необходимо указать причину"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase TransitionReservationUseCase
	logger  Logger
}

func NewHandler(useCase TransitionReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем actorID из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID, actorID))
	if err != nil {
		switch {
		case errors.Is(err, transitionReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionReservation.ErrUnknownState):
			h.logger.Warn("PATCH /reservations/{id}/status - Unknown target state: %q", req.TargetState)
			handlers.RespondBadRequest(w, msgUnknownState)

		case errors.Is(err, transitionReservation.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /reservations/{id}/status - Transition not allowed: reservation_id=%d, target=%q",
				reservationID, req.TargetState)
			handlers.RespondError(w, http.StatusConflict, msgTransitionNotAllowed)

		case errors.Is(err, transitionReservation.ErrReasonRequired):
			h.logger.Warn("PATCH /reservations/{id}/status - Reason required: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, transitionReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to transition: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /reservations/{id}/status - Reservation moved %q -> %q: reservation_id=%d, actor=%d",
		result.PreviousState, result.StateName, reservationID, actorID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
