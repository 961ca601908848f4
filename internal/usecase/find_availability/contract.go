package find_availability

import (
	"context"
	"time"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	capacityModels "github.com/Carbyfah/magic-sub006/internal/service/capacity/models"
)

// RouteRunRepository интерфейс репозитория рейсов маршрутов
type RouteRunRepository interface {
	GetBookable(ctx context.Context, routeID int64, date time.Time) ([]*domain.RouteRun, error)
}

// TourRunRepository интерфейс репозитория выездов туров
type TourRunRepository interface {
	GetBookable(ctx context.Context, tourID int64, date time.Time) ([]*domain.TourRun, error)
}

// CapacityValidator интерфейс сервиса проверки вместимости
type CapacityValidator interface {
	ValidateRouteCapacity(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
