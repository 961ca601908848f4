package create_reservation

import "errors"

var (
	// ErrRouteRunNotFound возвращается, когда рейс маршрута не найден
	ErrRouteRunNotFound = errors.New("create_reservation: route run not found")

	// ErrTourRunNotFound возвращается, когда выезд тура не найден
	ErrTourRunNotFound = errors.New("create_reservation: tour run not found")

	// ErrVehicleNotFound возвращается, когда назначенный на рейс транспорт не найден
	ErrVehicleNotFound = errors.New("create_reservation: vehicle not found")

	// ErrRunNotBookable возвращается, когда рейс не принимает бронирования
	ErrRunNotBookable = errors.New("create_reservation: run is not open for booking")

	// ErrCapacityExceeded возвращается, когда на рейсе не хватает мест
	ErrCapacityExceeded = errors.New("create_reservation: not enough seats available")

	// ErrBothServiceRefs возвращается, когда бронирование ссылается и на рейс, и на тур
	ErrBothServiceRefs = errors.New("create_reservation: reservation cannot reference both a route run and a tour run")

	// ErrNoServiceRef возвращается, когда бронирование не ссылается ни на рейс, ни на тур
	ErrNoServiceRef = errors.New("create_reservation: reservation must reference a route run or a tour run")

	// ErrNoInitialState возвращается, когда в каталоге нет начального состояния бронирований
	ErrNoInitialState = errors.New("create_reservation: no initial reservation state configured")

	// ErrUnknownState возвращается, когда явно указанного состояния нет в каталоге
	ErrUnknownState = errors.New("create_reservation: unknown reservation state")

	// ErrStateNotInitial возвращается, когда явно указанное состояние не является начальным
	ErrStateNotInitial = errors.New("create_reservation: state is not an initial state")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
