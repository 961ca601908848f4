package transition_vehicle

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда транспорт не найден
	ErrVehicleNotFound = errors.New("transition_vehicle: vehicle not found")

	// ErrUnknownState возвращается, когда целевое состояние не найдено в каталоге
	ErrUnknownState = errors.New("transition_vehicle: unknown target state")

	// ErrTransitionNotAllowed возвращается, когда переход запрещен графом переходов
	ErrTransitionNotAllowed = errors.New("transition_vehicle: transition is not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_vehicle: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_vehicle: internal error")
)
