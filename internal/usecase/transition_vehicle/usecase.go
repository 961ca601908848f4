package transition_vehicle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	stateRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/state"
	vehicleRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/vehicle"
	"github.com/Carbyfah/magic-sub006/internal/service/states"
)

// UseCase use case для перевода транспорта между состояниями
// (выпуск на линию, постановка на обслуживание, списание)
type UseCase struct {
	vehicleRepo VehicleRepository
	stateRepo   StateRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicleRepo VehicleRepository,
	stateRepo StateRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicleRepo: vehicleRepo,
		stateRepo:   stateRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case перевода транспорта в новое состояние
// Допустимость перехода определяет граф переходов контекста транспорта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionVehicle: id=%d, target=%q, actor=%d",
		req.VehicleID, req.TargetState, req.ActorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionVehicle: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Vehicle
	var previousState string

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущий транспорт
		current, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("TransitionVehicle: vehicle id=%d not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("TransitionVehicle: failed to get vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
		}
		previousState = current.StateName

		// 2.2. Разрешаем целевое состояние по имени из каталога
		target, err := uc.stateRepo.GetByContextAndName(txCtx, domain.ContextVehicle, req.TargetState)
		if err != nil {
			if errors.Is(err, stateRepo.ErrStateNotFound) {
				uc.logger.Warn("TransitionVehicle: state %q not found in vehicle catalog", req.TargetState)
				return fmt.Errorf("%w: %q", ErrUnknownState, req.TargetState)
			}
			uc.logger.Error("TransitionVehicle: failed to resolve state %q: %v", req.TargetState, err)
			return fmt.Errorf("%w: failed to resolve target state: %v", ErrInternal, err)
		}

		// 2.3. Проверяем переход по графу
		if !states.CanTransition(domain.ContextVehicle, current.StateName, target.Name) {
			uc.logger.Warn("TransitionVehicle: transition %q -> %q is not allowed for vehicle id=%d",
				current.StateName, target.Name, req.VehicleID)
			return fmt.Errorf("%w: %q -> %q", ErrTransitionNotAllowed, current.StateName, target.Name)
		}

		// 2.4. Переводим транспорт в новое состояние
		if err := uc.vehicleRepo.UpdateState(txCtx, req.VehicleID, target.ID); err != nil {
			uc.logger.Error("TransitionVehicle: failed to update vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to update vehicle state: %v", ErrInternal, err)
		}

		// 2.5. Перечитываем транспорт, чтобы вернуть актуальные данные
		updated, err := uc.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			uc.logger.Error("TransitionVehicle: failed to reload vehicle id=%d: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to reload vehicle: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionVehicle: vehicle id=%d moved %q -> %q",
		result.ID, previousState, result.StateName)

	return &Response{
		ID:            result.ID,
		PreviousState: previousState,
		StateID:       result.StateID,
		StateName:     result.StateName,
		StateKind:     string(result.StateKind),
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TargetState) == "" {
		return fmt.Errorf("%w: targetState is required", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	return nil
}
