package transition_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	reservationRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/reservation"
	stateRepo "github.com/Carbyfah/magic-sub006/internal/infra/storage/state"
	"github.com/Carbyfah/magic-sub006/internal/service/states"
)

// UseCase use case для перевода бронирования между состояниями
type UseCase struct {
	reservationRepo ReservationRepository
	stateRepo       StateRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	stateRepo StateRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		stateRepo:       stateRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case перевода бронирования в новое состояние
// Допустимость перехода определяет граф переходов: неизвестная пара
// состояний означает запрет, а не разрешение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionReservation: id=%d, target=%q, actor=%d",
		req.ReservationID, req.TargetState, req.ActorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionReservation: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation
	var previousState string

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущее бронирование
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("TransitionReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("TransitionReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}
		previousState = current.StateName

		// 2.2. Разрешаем целевое состояние по имени из каталога
		target, err := uc.stateRepo.GetByContextAndName(txCtx, domain.ContextReservation, req.TargetState)
		if err != nil {
			if errors.Is(err, stateRepo.ErrStateNotFound) {
				uc.logger.Warn("TransitionReservation: state %q not found in reservation catalog", req.TargetState)
				return fmt.Errorf("%w: %q", ErrUnknownState, req.TargetState)
			}
			uc.logger.Error("TransitionReservation: failed to resolve state %q: %v", req.TargetState, err)
			return fmt.Errorf("%w: failed to resolve target state: %v", ErrInternal, err)
		}

		// 2.3. Проверяем переход по графу
		if !states.CanTransition(domain.ContextReservation, current.StateName, target.Name) {
			uc.logger.Warn("TransitionReservation: transition %q -> %q is not allowed for reservation id=%d",
				current.StateName, target.Name, req.ReservationID)
			return fmt.Errorf("%w: %q -> %q", ErrTransitionNotAllowed, current.StateName, target.Name)
		}

		// 2.4. Отмена фиксирует причину и момент, остальные переходы меняют только состояние
		if target.Kind == domain.KindCancelled {
			// Каталог может содержать отмененное состояние с любым именем,
			// поэтому обязательность причины перепроверяется по виду
			if req.Reason == nil {
				return ErrReasonRequired
			}
			if err := uc.reservationRepo.Cancel(txCtx, req.ReservationID, target.ID, *req.Reason); err != nil {
				uc.logger.Error("TransitionReservation: failed to cancel reservation id=%d: %v", req.ReservationID, err)
				return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
			}
		} else {
			if err := uc.reservationRepo.UpdateState(txCtx, req.ReservationID, target.ID); err != nil {
				uc.logger.Error("TransitionReservation: failed to update state of reservation id=%d: %v", req.ReservationID, err)
				return fmt.Errorf("%w: failed to update state: %v", ErrInternal, err)
			}
		}

		// 2.5. Перечитываем бронирование, чтобы вернуть актуальные данные
		updated, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			uc.logger.Error("TransitionReservation: failed to reload reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to reload reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionReservation: reservation id=%d moved %q -> %q",
		result.ID, previousState, result.StateName)

	resp := &Response{
		ID:                 result.ID,
		PreviousState:      previousState,
		StateID:            result.StateID,
		StateName:          result.StateName,
		StateKind:          string(result.StateKind),
		CancellationReason: result.CancellationReason,
		UpdatedAt:          result.UpdatedAt,
	}

	if result.CancelledAt != nil {
		cancelledStr := result.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp, nil
}

// validateRequest валидирует входные данные запроса
// Причина обязательна только при отмене, и проверить это до разрешения
// состояния нельзя - поэтому здесь причина проверяется по имени целевого
// состояния, а вид состояния уточняется уже в транзакции
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TargetState) == "" {
		return fmt.Errorf("%w: targetState is required", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		if reason == "" {
			return fmt.Errorf("%w: reason must not be blank", ErrInvalidInput)
		}
		if len(reason) > domain.MaxCancellationReasonLength {
			return fmt.Errorf("%w: reason must not exceed %d characters",
				ErrInvalidInput, domain.MaxCancellationReasonLength)
		}
	}

	// Переход в отмененное состояние без причины отклоняем сразу
	if req.TargetState == states.ReservationCancelled && req.Reason == nil {
		return ErrReasonRequired
	}

	return nil
}
