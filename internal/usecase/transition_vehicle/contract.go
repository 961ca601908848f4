package transition_vehicle

import (
	"context"

	"github.com/Carbyfah/magic-sub006/internal/domain"
)

// VehicleRepository интерфейс репозитория транспорта
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	UpdateState(ctx context.Context, id int64, stateID int64) error
}

// StateRepository интерфейс репозитория состояний
type StateRepository interface {
	GetByContextAndName(ctx context.Context, stateContext domain.StateContext, name string) (*domain.State, error)
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
