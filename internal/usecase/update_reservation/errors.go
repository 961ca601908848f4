package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrReservationLocked возвращается, когда бронирование в финальном состоянии
	// и его данные больше не изменяются
	ErrReservationLocked = errors.New("update_reservation: reservation is locked for changes")

	// ErrRouteRunNotFound возвращается, когда рейс маршрута не найден
	ErrRouteRunNotFound = errors.New("update_reservation: route run not found")

	// ErrTourRunNotFound возвращается, когда выезд тура не найден
	ErrTourRunNotFound = errors.New("update_reservation: tour run not found")

	// ErrVehicleNotFound возвращается, когда назначенный на рейс транспорт не найден
	ErrVehicleNotFound = errors.New("update_reservation: vehicle not found")

	// ErrRunNotBookable возвращается, когда рейс не принимает бронирования
	ErrRunNotBookable = errors.New("update_reservation: run is not open for booking")

	// ErrCapacityExceeded возвращается, когда на рейсе не хватает мест
	ErrCapacityExceeded = errors.New("update_reservation: not enough seats available")

	// ErrBothServiceRefs возвращается, когда бронирование ссылается и на рейс, и на тур
	ErrBothServiceRefs = errors.New("update_reservation: reservation cannot reference both a route run and a tour run")

	// ErrNoServiceRef возвращается, когда бронирование не ссылается ни на рейс, ни на тур
	ErrNoServiceRef = errors.New("update_reservation: reservation must reference a route run or a tour run")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
