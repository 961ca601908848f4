package capacity

import (
	"context"

	"github.com/Carbyfah/magic-sub006/internal/domain"
)

// RouteRunRepository интерфейс репозитория рейсов маршрутов
type RouteRunRepository interface {
	// GetByID возвращает рейс с денормализованной вместимостью транспорта
	GetByID(ctx context.Context, id int64) (*domain.RouteRun, error)
}

// TourRunRepository интерфейс репозитория рейсов туров
type TourRunRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TourRun, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ActiveOccupancy возвращает сумму пассажиров (взрослые + дети) по всем
	// активным броням рейса, исключая excludeID (если задан).
	// Конкурентный доступ сериализует блокировка строки рейса в GetByID
	ActiveOccupancy(ctx context.Context, routeRunID int64, excludeID *int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
