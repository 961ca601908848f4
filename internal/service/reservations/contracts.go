package reservations

import (
	"context"

	"github.com/Carbyfah/magic-sub006/internal/domain"
)

// ReservationRepository контракт репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter *domain.ReservationsFilter) ([]*domain.Reservation, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
