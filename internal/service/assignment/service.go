package assignment

import "errors"

var (
	// ErrBothServiceRefs возвращается, когда бронь ссылается и на рейс
	// маршрута, и на рейс тура одновременно
	ErrBothServiceRefs = errors.New("assignment: cannot reference both a route run and a tour run")

	// ErrNoServiceRef возвращается, когда бронь не ссылается ни на один рейс
	ErrNoServiceRef = errors.New("assignment: must reference either a route run or a tour run")
)

// Result результат проверки привязки брони к рейсу
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Validate проверяет инвариант исключительности: бронь ссылается ровно
// на один из рейсов (маршрут XOR тур). Проверка выполняется при каждом
// создании и изменении брони ДО проверок вместимости и состояния, потому
// что именно она определяет, какой валидатор вместимости применять
func Validate(hasRouteRun, hasTourRun bool) error {
	switch {
	case hasRouteRun && hasTourRun:
		return ErrBothServiceRefs
	case !hasRouteRun && !hasTourRun:
		return ErrNoServiceRef
	default:
		return nil
	}
}

// ValidateServiceAssignment обертка над Validate с результатом, пригодным
// для показа пользователю без дополнительной обработки
func ValidateServiceAssignment(hasRouteRun, hasTourRun bool) Result {
	switch err := Validate(hasRouteRun, hasTourRun); {
	case errors.Is(err, ErrBothServiceRefs):
		return Result{OK: false, Message: "cannot reference both a route run and a tour run"}
	case errors.Is(err, ErrNoServiceRef):
		return Result{OK: false, Message: "must reference either a route run or a tour run"}
	default:
		return Result{OK: true, Message: "service assignment is valid"}
	}
}
