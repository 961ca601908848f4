package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	routeRunRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/routerun"
	stateRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/state"
	tourRunRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/tourrun"
	capacityModels "github.com/Carbyfah/magic-sub006/internal/service/capacity/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	routeRunRepo    RouteRunRepository
	tourRunRepo     TourRunRepository
	stateRepo       StateRepository
	capacity        CapacityValidator
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	routeRunRepo RouteRunRepository,
	tourRunRepo TourRunRepository,
	stateRepo StateRepository,
	capacity CapacityValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		routeRunRepo:    routeRunRepo,
		tourRunRepo:     tourRunRepo,
		stateRepo:       stateRepo,
		capacity:        capacity,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// чтение рейса блокирует его строку, и проверка вместимости под блокировкой
// видит актуальную занятость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: routeRun=%v, tourRun=%v, agency=%v, adults=%d, children=%d, actor=%d",
		req.RouteRunID, req.TourRunID, req.AgencyID, req.Adults, req.Children, req.ActorID)

	// 1. Валидация входных данных, включая взаимоисключение рейса и тура
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	passengers := req.Adults + req.Children

	// Переменная для хранения результата
	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем рейс и вместимость под блокировкой строки рейса
		if req.RouteRunID != nil {
			if err := uc.checkRouteRun(txCtx, *req.RouteRunID, passengers); err != nil {
				return err
			}
		} else {
			if err := uc.checkTourRun(txCtx, *req.TourRunID, passengers); err != nil {
				return err
			}
		}

		// 2.2. Определяем начальное состояние: явно указанное или из каталога
		initialState, err := uc.resolveInitialState(txCtx, req.State)
		if err != nil {
			return err
		}

		// 2.3. Создаем бронирование
		reservation := &domain.Reservation{
			RouteRunID: req.RouteRunID,
			TourRunID:  req.TourRunID,
			AgencyID:   req.AgencyID,
			Adults:     req.Adults,
			Children:   req.Children,
			Amount:     req.Amount,
			StateID:    initialState.ID,
			StateName:  initialState.Name,
			StateKind:  initialState.Kind,
			Notes:      req.Notes,
			CreatedBy:  req.ActorID,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		RouteRunID: result.RouteRunID,
		TourRunID:  result.TourRunID,
		AgencyID:   result.AgencyID,
		Adults:     result.Adults,
		Children:   result.Children,
		Amount:     result.Amount.StringFixed(2),
		StateID:    result.StateID,
		StateName:  result.StateName,
		Notes:      result.Notes,
		CreatedBy:  result.CreatedBy,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// resolveInitialState возвращает состояние, в котором будет создано
// бронирование. Явно указанное имя принимается только если такое состояние
// есть в каталоге бронирований и его вид - начальный (pending); иначе
// берется начальное состояние каталога
func (uc *UseCase) resolveInitialState(ctx context.Context, stateName *string) (*domain.State, error) {
	if stateName == nil {
		initialState, err := uc.stateRepo.GetInitialState(ctx, domain.ContextReservation)
		if err != nil {
			if errors.Is(err, stateRepo.ErrStateNotFound) {
				uc.logger.Error("CreateReservation: no initial reservation state in catalog")
				return nil, ErrNoInitialState
			}
			uc.logger.Error("CreateReservation: failed to get initial state: %v", err)
			return nil, fmt.Errorf("%w: failed to get initial state: %v", ErrInternal, err)
		}
		return initialState, nil
	}

	state, err := uc.stateRepo.GetByContextAndName(ctx, domain.ContextReservation, *stateName)
	if err != nil {
		if errors.Is(err, stateRepo.ErrStateNotFound) {
			uc.logger.Warn("CreateReservation: requested state %q not found", *stateName)
			return nil, ErrUnknownState
		}
		uc.logger.Error("CreateReservation: failed to get state %q: %v", *stateName, err)
		return nil, fmt.Errorf("%w: failed to get state: %v", ErrInternal, err)
	}

	if state.Kind != domain.KindPending {
		uc.logger.Warn("CreateReservation: requested state %q is not an initial state, kind=%s",
			*stateName, state.Kind)
		return nil, ErrStateNotInitial
	}

	return state, nil
}

// checkRouteRun проверяет, что рейс маршрута принимает бронирования
// и вмещает passengers пассажиров. Внутри транзакции GetByID блокирует
// строку рейса, сериализуя конкурирующие бронирования
func (uc *UseCase) checkRouteRun(ctx context.Context, routeRunID int64, passengers int) error {
	run, err := uc.routeRunRepo.GetByID(ctx, routeRunID)
	if err != nil {
		if errors.Is(err, routeRunRepo.ErrRouteRunNotFound) {
			uc.logger.Warn("CreateReservation: route run id=%d not found", routeRunID)
			return ErrRouteRunNotFound
		}
		uc.logger.Error("CreateReservation: failed to get route run id=%d: %v", routeRunID, err)
		return fmt.Errorf("%w: failed to get route run: %v", ErrInternal, err)
	}

	if !run.IsBookable() {
		uc.logger.Warn("CreateReservation: route run id=%d is not bookable, kind=%s", routeRunID, run.StateKind)
		return ErrRunNotBookable
	}

	capResult, err := uc.capacity.ValidateRouteCapacity(ctx, routeRunID, passengers, nil)
	if err != nil {
		uc.logger.Error("CreateReservation: capacity check failed for route run id=%d: %v", routeRunID, err)
		return fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
	}

	if !capResult.OK {
		uc.logger.Warn("CreateReservation: route run id=%d rejected: %s", routeRunID, capResult.Message)
		switch capResult.Missing {
		case capacityModels.MissingRouteRun:
			return ErrRouteRunNotFound
		case capacityModels.MissingVehicle:
			return ErrVehicleNotFound
		default:
			return fmt.Errorf("%w: %s", ErrCapacityExceeded, capResult.Message)
		}
	}

	return nil
}

// checkTourRun проверяет, что выезд тура принимает бронирования.
// Туры не ограничены по вместимости, но проверка существования и
// состояния выезда обязательна
func (uc *UseCase) checkTourRun(ctx context.Context, tourRunID int64, passengers int) error {
	run, err := uc.tourRunRepo.GetByID(ctx, tourRunID)
	if err != nil {
		if errors.Is(err, tourRunRepo.ErrTourRunNotFound) {
			uc.logger.Warn("CreateReservation: tour run id=%d not found", tourRunID)
			return ErrTourRunNotFound
		}
		uc.logger.Error("CreateReservation: failed to get tour run id=%d: %v", tourRunID, err)
		return fmt.Errorf("%w: failed to get tour run: %v", ErrInternal, err)
	}

	if !run.IsBookable() {
		uc.logger.Warn("CreateReservation: tour run id=%d is not bookable, kind=%s", tourRunID, run.StateKind)
		return ErrRunNotBookable
	}

	capResult, err := uc.capacity.ValidateTourCapacity(ctx, tourRunID, passengers)
	if err != nil {
		uc.logger.Error("CreateReservation: capacity check failed for tour run id=%d: %v", tourRunID, err)
		return fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
	}

	if !capResult.OK {
		uc.logger.Warn("CreateReservation: tour run id=%d rejected: %s", tourRunID, capResult.Message)
		if capResult.Missing == capacityModels.MissingTourRun {
			return ErrTourRunNotFound
		}
		return fmt.Errorf("%w: %s", ErrCapacityExceeded, capResult.Message)
	}

	return nil
}
