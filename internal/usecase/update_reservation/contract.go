package update_reservation

import (
	"context"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	capacityModels "github.com/Carbyfah/magic-sub006/internal/service/capacity/models"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
}

// RouteRunRepository интерфейс репозитория рейсов маршрутов
type RouteRunRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RouteRun, error)
}

// TourRunRepository интерфейс репозитория выездов туров
type TourRunRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TourRun, error)
}

// CapacityValidator интерфейс сервиса проверки вместимости
type CapacityValidator interface {
	ValidateRouteCapacity(ctx context.Context, routeRunID int64, incoming int, excludeReservationID *int64) (*capacityModels.Result, error)
	ValidateTourCapacity(ctx context.Context, tourRunID int64, incoming int) (*capacityModels.Result, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
