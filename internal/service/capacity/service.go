package capacity

import (
	"context"
	"errors"
	"fmt"

	routeRunRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/routerun"
	tourRunRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/tourrun"
	"github.com/Carbyfah/magic-sub006/internal/service/capacity/models"
)

// Service валидатор вместимости рейсов
// Занятость рейса - сумма пассажиров по активным броням; проверка чистая:
// сервис ничего не изменяет, одинаковые входные данные дают одинаковый результат.
// Атомарность "прочитал занятость - решил - записал бронь" обеспечивает
// вызывающий usecase через сериализуемую транзакцию
type Service struct {
	routeRunRepo    RouteRunRepository
	tourRunRepo     TourRunRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр валидатора вместимости
func NewService(
	routeRunRepo RouteRunRepository,
	tourRunRepo TourRunRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		routeRunRepo:    routeRunRepo,
		tourRunRepo:     tourRunRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ValidateRouteCapacity проверяет, поместятся ли incoming пассажиров на рейс маршрута
// excludeReservationID исключает собственную занятость брони при пере-валидации
// изменения (иначе бронь конкурировала бы сама с собой)
//
// Правила:
//   - транспорт не назначен или вместимость <= 0 - ограничения нет, всегда ok
//   - occupied + incoming > capacity - отказ с числом оставшихся мест
//   - иначе - ok
func (s *Service) ValidateRouteCapacity(
	ctx context.Context,
	routeRunID int64,
	incoming int,
	excludeReservationID *int64,
) (*models.Result, error) {
	if incoming <= 0 {
		return nil, fmt.Errorf("%w: incoming passengers must be positive", ErrInvalidInput)
	}

	run, err := s.routeRunRepo.GetByID(ctx, routeRunID)
	if err != nil {
		if errors.Is(err, routeRunRepo.ErrRouteRunNotFound) {
			s.logger.Warn("ValidateRouteCapacity: route run id=%d not found", routeRunID)
			return models.NotFound(models.MissingRouteRun), nil
		}
		s.logger.Error("ValidateRouteCapacity: failed to get route run id=%d: %v", routeRunID, err)
		return nil, fmt.Errorf("%w: failed to get route run: %v", ErrInternal, err)
	}

	// Транспорт назначен, но его запись не нашлась (удалена) - локальный отказ
	if run.VehicleID != nil && run.VehicleCapacity == nil {
		s.logger.Warn("ValidateRouteCapacity: vehicle id=%d of route run id=%d not found",
			*run.VehicleID, routeRunID)
		return models.NotFound(models.MissingVehicle), nil
	}

	capacity := run.EffectiveCapacity()
	if capacity <= 0 {
		s.logger.Info("ValidateRouteCapacity: route run id=%d has no capacity limit", routeRunID)
		return models.Unlimited(), nil
	}

	occupied, err := s.reservationRepo.ActiveOccupancy(ctx, routeRunID, excludeReservationID)
	if err != nil {
		s.logger.Error("ValidateRouteCapacity: failed to get occupancy for route run id=%d: %v", routeRunID, err)
		return nil, fmt.Errorf("%w: failed to get occupancy: %v", ErrInternal, err)
	}

	if occupied+incoming > capacity {
		remaining := capacity - occupied
		s.logger.Warn("ValidateRouteCapacity: route run id=%d over capacity: occupied=%d, incoming=%d, capacity=%d",
			routeRunID, occupied, incoming, capacity)
		return models.Exceeded(remaining), nil
	}

	s.logger.Info("ValidateRouteCapacity: route run id=%d has room: occupied=%d, incoming=%d, capacity=%d",
		routeRunID, occupied, incoming, capacity)
	return models.Available(), nil
}

// ValidateTourCapacity проверяет вместимость рейса тура
// Туры не ограничены по вместимости, поэтому проверка всегда успешна -
// функция существует, чтобы вызывающие обрабатывали оба вида рейсов единообразно
func (s *Service) ValidateTourCapacity(
	ctx context.Context,
	tourRunID int64,
	incoming int,
) (*models.Result, error) {
	if incoming <= 0 {
		return nil, fmt.Errorf("%w: incoming passengers must be positive", ErrInvalidInput)
	}

	if _, err := s.tourRunRepo.GetByID(ctx, tourRunID); err != nil {
		if errors.Is(err, tourRunRepo.ErrTourRunNotFound) {
			s.logger.Warn("ValidateTourCapacity: tour run id=%d not found", tourRunID)
			return models.NotFound(models.MissingTourRun), nil
		}
		s.logger.Error("ValidateTourCapacity: failed to get tour run id=%d: %v", tourRunID, err)
		return nil, fmt.Errorf("%w: failed to get tour run: %v", ErrInternal, err)
	}

	return models.Unlimited(), nil
}
