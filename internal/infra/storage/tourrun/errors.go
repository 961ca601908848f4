package tourrun

import "errors"

var (
	// ErrTourRunNotFound возвращается, когда рейс тура не найден
	ErrTourRunNotFound = errors.New("tourrun.repository: tour run not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tourrun.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tourrun.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tourrun.repository: failed to scan row")
)
