package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Carbyfah/magic-sub006/internal/api/handlers"
	"github.com/Carbyfah/magic-sub006/internal/api/middleware"
	updateReservation "github.com/Carbyfah/magic-sub006/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAmount        = "некорректный формат суммы"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgLocked               = "бронирование в финальном состоянии и не может быть изменено"
	msgRouteRunNotFound     = "рейс маршрута не найден"
	msgTourRunNotFound      = "выезд тура не найден"
	msgVehicleNotFound      = "транспорт не найден"
	msgRunNotBookable       = "рейс не принимает бронирования"
	msgCapacityExceeded     = "на рейсе недостаточно мест"
	msgBothServiceRefs      = "бронирование не может ссылаться одновременно на рейс и тур"
	msgNoServiceRef         = "бронирование должно ссылаться на рейс или тур"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем actorID из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, actorID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse amount: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrReservationLocked):
			h.logger.Warn("PUT /reservations/{id} - Reservation locked: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgLocked)

		case errors.Is(err, updateReservation.ErrCapacityExceeded):
			h.logger.Warn("PUT /reservations/{id} - Capacity exceeded: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, updateReservation.ErrRouteRunNotFound):
			h.logger.Warn("PUT /reservations/{id} - Route run not found: route_run=%v", req.RouteRunID)
			handlers.RespondNotFound(w, msgRouteRunNotFound)

		case errors.Is(err, updateReservation.ErrTourRunNotFound):
			h.logger.Warn("PUT /reservations/{id} - Tour run not found: tour_run=%v", req.TourRunID)
			handlers.RespondNotFound(w, msgTourRunNotFound)

		case errors.Is(err, updateReservation.ErrVehicleNotFound):
			h.logger.Warn("PUT /reservations/{id} - Vehicle not found: route_run=%v", req.RouteRunID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, updateReservation.ErrRunNotBookable):
			h.logger.Warn("PUT /reservations/{id} - Run not bookable: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgRunNotBookable)

		case errors.Is(err, updateReservation.ErrBothServiceRefs):
			h.logger.Warn("PUT /reservations/{id} - Both service refs provided: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgBothServiceRefs)

		case errors.Is(err, updateReservation.ErrNoServiceRef):
			h.logger.Warn("PUT /reservations/{id} - No service ref provided: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgNoServiceRef)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d, actor=%d",
		reservationID, actorID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
