package states

import "errors"

var (
	// ErrStateNotFound возвращается, когда состояние не найдено
	ErrStateNotFound = errors.New("states: state not found")

	// ErrStateInUse возвращается при попытке удалить состояние,
	// на которое ссылаются существующие записи
	ErrStateInUse = errors.New("states: state is in use")

	// ErrUnknownContext возвращается при неизвестном контексте состояний
	ErrUnknownContext = errors.New("states: unknown state context")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("states: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("states: internal error")
)
