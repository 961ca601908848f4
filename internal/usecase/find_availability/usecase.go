package find_availability

import (
	"context"
	"fmt"

	"github.com/Carbyfah/magic-sub006/internal/domain"
)

// UseCase use case для поиска доступного рейса
type UseCase struct {
	routeRunRepo RouteRunRepository
	tourRunRepo  TourRunRepository
	capacity     CapacityValidator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	routeRunRepo RouteRunRepository,
	tourRunRepo TourRunRepository,
	capacity CapacityValidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		routeRunRepo: routeRunRepo,
		tourRunRepo:  tourRunRepo,
		capacity:     capacity,
		logger:       logger,
	}
}

// Execute выполняет use case поиска доступного рейса
// Поиск упорядочен и детерминирован: сначала рейсы маршрута по времени
// отправления и ID, первый с достаточной вместимостью выигрывает;
// если ни один не подошел - выезды туров в том же порядке.
//
// Операция только читает данные и ничего не резервирует: найденное место
// может быть занято до оформления брони, поэтому путь создания
// перепроверяет вместимость под блокировкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailability: service=%d, date=%s, passengers=%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.Passengers)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Ищем рейс маршрута с достаточной вместимостью
	routeRuns, err := uc.routeRunRepo.GetBookable(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("FindAvailability: failed to get route runs: %v", err)
		return nil, fmt.Errorf("%w: failed to get route runs: %v", ErrInternal, err)
	}

	for _, run := range routeRuns {
		capResult, err := uc.capacity.ValidateRouteCapacity(ctx, run.ID, req.Passengers, nil)
		if err != nil {
			uc.logger.Error("FindAvailability: capacity check failed for route run id=%d: %v", run.ID, err)
			return nil, fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
		}

		if capResult.OK {
			uc.logger.Info("FindAvailability: matched route run id=%d at %s", run.ID, run.DepartureTime)
			return &Response{
				Found:         true,
				ServiceKind:   KindRouteRun,
				RunID:         run.ID,
				RunDate:       run.RunDate,
				DepartureTime: run.DepartureTime,
			}, nil
		}

		uc.logger.Info("FindAvailability: route run id=%d skipped: %s", run.ID, capResult.Message)
	}

	// 3. Рейсов маршрута нет - ищем выезд тура, туры не ограничены по вместимости
	tourRuns, err := uc.tourRunRepo.GetBookable(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("FindAvailability: failed to get tour runs: %v", err)
		return nil, fmt.Errorf("%w: failed to get tour runs: %v", ErrInternal, err)
	}

	if len(tourRuns) > 0 {
		run := tourRuns[0]
		uc.logger.Info("FindAvailability: matched tour run id=%d at %s", run.ID, run.DepartureTime)
		return &Response{
			Found:         true,
			ServiceKind:   KindTourRun,
			RunID:         run.ID,
			RunDate:       run.RunDate,
			DepartureTime: run.DepartureTime,
		}, nil
	}

	// 4. Подходящих рейсов нет
	uc.logger.Info("FindAvailability: no availability for service=%d on %s",
		req.ServiceID, req.Date.Format(domain.DateFormat))
	return &Response{Found: false}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Passengers < domain.MinPassengers {
		return fmt.Errorf("%w: at least %d passenger required", ErrInvalidInput, domain.MinPassengers)
	}

	if req.Passengers > domain.MaxPassengers {
		return fmt.Errorf("%w: at most %d passengers allowed", ErrInvalidInput, domain.MaxPassengers)
	}

	return nil
}
