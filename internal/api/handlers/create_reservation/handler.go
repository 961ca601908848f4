package create_reservation

import (
	"errors"
	"net/http"

	"github.com/Carbyfah/magic-sub006/internal/api/handlers"
	"github.com/Carbyfah/magic-sub006/internal/api/middleware"
	createReservation "github.com/Carbyfah/magic-sub006/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmount      = "некорректный формат суммы"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRouteRunNotFound   = "рейс маршрута не найден"
	msgTourRunNotFound    = "выезд тура не найден"
	msgVehicleNotFound    = "транспорт не найден"
	msgRunNotBookable     = "рейс не принимает бронирования"
	msgCapacityExceeded   = "на рейсе недостаточно мест"
	msgBothServiceRefs    = "бронирование не может ссылаться одновременно на рейс и тур"
	msgNoServiceRef       = "бронирование должно ссылаться на рейс или тур"
	msgNoInitialState     = "начальное состояние бронирований не настроено"
	msgUnknownState       = "неизвестное состояние бронирования"
	msgStateNotInitial    = "указанное состояние не является начальным"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем actorID из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом суммы)
	useCaseReq, err := req.ToUseCaseRequest(actorID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse amount: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: route_run=%v, actor=%d", req.RouteRunID, actorID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrRouteRunNotFound):
			h.logger.Warn("POST /reservations - Route run not found: route_run=%v", req.RouteRunID)
			handlers.RespondNotFound(w, msgRouteRunNotFound)

		case errors.Is(err, createReservation.ErrTourRunNotFound):
			h.logger.Warn("POST /reservations - Tour run not found: tour_run=%v", req.TourRunID)
			handlers.RespondNotFound(w, msgTourRunNotFound)

		case errors.Is(err, createReservation.ErrVehicleNotFound):
			h.logger.Warn("POST /reservations - Vehicle not found: route_run=%v", req.RouteRunID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createReservation.ErrRunNotBookable):
			h.logger.Warn("POST /reservations - Run not bookable: route_run=%v, tour_run=%v", req.RouteRunID, req.TourRunID)
			handlers.RespondError(w, http.StatusConflict, msgRunNotBookable)

		case errors.Is(err, createReservation.ErrBothServiceRefs):
			h.logger.Warn("POST /reservations - Both service refs provided: actor=%d", actorID)
			handlers.RespondBadRequest(w, msgBothServiceRefs)

		case errors.Is(err, createReservation.ErrNoServiceRef):
			h.logger.Warn("POST /reservations - No service ref provided: actor=%d", actorID)
			handlers.RespondBadRequest(w, msgNoServiceRef)

		case errors.Is(err, createReservation.ErrNoInitialState):
			h.logger.Error("POST /reservations - No initial state configured")
			handlers.RespondError(w, http.StatusConflict, msgNoInitialState)

		case errors.Is(err, createReservation.ErrUnknownState):
			h.logger.Warn("POST /reservations - Unknown state requested: state=%v", req.State)
			handlers.RespondBadRequest(w, msgUnknownState)

		case errors.Is(err, createReservation.ErrStateNotInitial):
			h.logger.Warn("POST /reservations - Non-initial state requested: state=%v", req.State)
			handlers.RespondBadRequest(w, msgStateNotInitial)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: actor=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, actor=%d",
		result.ID, actorID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
