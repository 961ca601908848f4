package routerun

import "errors"

var (
	// ErrRouteRunNotFound возвращается, когда рейс маршрута не найден
	ErrRouteRunNotFound = errors.New("routerun.repository: route run not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("routerun.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("routerun.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("routerun.repository: failed to scan row")
)
