package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	reservationRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/reservation"
	routeRunRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/routerun"
	tourRunRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/tourrun"
	capacityModels "github.com/Carbyfah/magic-sub006/internal/service/capacity/models"
	"github.com/Carbyfah/magic-sub006/pkg/ptr"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	routeRunRepo    RouteRunRepository
	tourRunRepo     TourRunRepository
	capacity        CapacityValidator
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	routeRunRepo RouteRunRepository,
	tourRunRepo TourRunRepository,
	capacity CapacityValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		routeRunRepo:    routeRunRepo,
		tourRunRepo:     tourRunRepo,
		capacity:        capacity,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case изменения бронирования
// Вместимость перепроверяется в сериализуемой транзакции, при этом
// собственные места брони исключаются из занятости - иначе изменение
// количества пассажиров конкурировало бы само с собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, routeRun=%v, tourRun=%v, adults=%d, children=%d, actor=%d",
		req.ReservationID, req.RouteRunID, req.TourRunID, req.Adults, req.Children, req.ActorID)

	// 1. Валидация входных данных, включая взаимоисключение рейса и тура
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	passengers := req.Adults + req.Children

	// Переменная для хранения результата
	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущее бронирование
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Финальные состояния запрещают изменения
		if current.IsLocked() {
			uc.logger.Warn("UpdateReservation: reservation id=%d is locked, kind=%s",
				req.ReservationID, current.StateKind)
			return ErrReservationLocked
		}

		// 2.3. Проверяем рейс и вместимость под блокировкой строки рейса.
		// Собственная занятость брони исключается из суммы
		if req.RouteRunID != nil {
			if err := uc.checkRouteRun(txCtx, *req.RouteRunID, passengers, current.ID); err != nil {
				return err
			}
		} else {
			if err := uc.checkTourRun(txCtx, *req.TourRunID, passengers); err != nil {
				return err
			}
		}

		// 2.4. Применяем изменения
		current.RouteRunID = req.RouteRunID
		current.TourRunID = req.TourRunID
		current.AgencyID = req.AgencyID
		current.Adults = req.Adults
		current.Children = req.Children
		current.Amount = req.Amount
		current.Notes = req.Notes

		if err := uc.reservationRepo.Update(txCtx, current); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		// 2.5. Перечитываем бронирование, чтобы вернуть актуальные данные
		updated, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to reload reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to reload reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

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
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// checkRouteRun проверяет, что рейс маршрута принимает бронирования
// и вмещает passengers пассажиров без учета собственных мест брони
func (uc *UseCase) checkRouteRun(ctx context.Context, routeRunID int64, passengers int, excludeID int64) error {
	run, err := uc.routeRunRepo.GetByID(ctx, routeRunID)
	if err != nil {
		if errors.Is(err, routeRunRepo.ErrRouteRunNotFound) {
			uc.logger.Warn("UpdateReservation: route run id=%d not found", routeRunID)
			return ErrRouteRunNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get route run id=%d: %v", routeRunID, err)
		return fmt.Errorf("%w: failed to get route run: %v", ErrInternal, err)
	}

	if !run.IsBookable() {
		uc.logger.Warn("UpdateReservation: route run id=%d is not bookable, kind=%s", routeRunID, run.StateKind)
		return ErrRunNotBookable
	}

	capResult, err := uc.capacity.ValidateRouteCapacity(ctx, routeRunID, passengers, ptr.Ptr(excludeID))
	if err != nil {
		uc.logger.Error("UpdateReservation: capacity check failed for route run id=%d: %v", routeRunID, err)
		return fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
	}

	if !capResult.OK {
		uc.logger.Warn("UpdateReservation: route run id=%d rejected: %s", routeRunID, capResult.Message)
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

// checkTourRun проверяет, что выезд тура принимает бронирования
func (uc *UseCase) checkTourRun(ctx context.Context, tourRunID int64, passengers int) error {
	run, err := uc.tourRunRepo.GetByID(ctx, tourRunID)
	if err != nil {
		if errors.Is(err, tourRunRepo.ErrTourRunNotFound) {
			uc.logger.Warn("UpdateReservation: tour run id=%d not found", tourRunID)
			return ErrTourRunNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get tour run id=%d: %v", tourRunID, err)
		return fmt.Errorf("%w: failed to get tour run: %v", ErrInternal, err)
	}

	if !run.IsBookable() {
		uc.logger.Warn("UpdateReservation: tour run id=%d is not bookable, kind=%s", tourRunID, run.StateKind)
		return ErrRunNotBookable
	}

	capResult, err := uc.capacity.ValidateTourCapacity(ctx, tourRunID, passengers)
	if err != nil {
		uc.logger.Error("UpdateReservation: capacity check failed for tour run id=%d: %v", tourRunID, err)
		return fmt.Errorf("%w: capacity check failed: %v", ErrInternal, err)
	}

	if !capResult.OK {
		uc.logger.Warn("UpdateReservation: tour run id=%d rejected: %s", tourRunID, capResult.Message)
		if capResult.Missing == capacityModels.MissingTourRun {
			return ErrTourRunNotFound
		}
		return fmt.Errorf("%w: %s", ErrCapacityExceeded, capResult.Message)
	}

	return nil
}
