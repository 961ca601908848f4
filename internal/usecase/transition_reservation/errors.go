package transition_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("transition_reservation: reservation not found")

	// ErrUnknownState возвращается, когда целевое состояние не найдено в каталоге
	ErrUnknownState = errors.New("transition_reservation: unknown target state")

	// ErrTransitionNotAllowed возвращается, когда переход запрещен графом переходов
	ErrTransitionNotAllowed = errors.New("transition_reservation: transition is not allowed")

	// ErrReasonRequired возвращается, когда отмена запрошена без указания причины
	ErrReasonRequired = errors.New("transition_reservation: cancellation reason is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_reservation: internal error")
)
