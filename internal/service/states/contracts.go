package states

import (
	"context"

	"github.com/Carbyfah/magic-sub006/internal/domain"
)

// StateRepository интерфейс репозитория состояний
type StateRepository interface {
	// GetByContext возвращает активные состояния контекста,
	// отсортированные по отображаемому имени
	GetByContext(ctx context.Context, stateContext domain.StateContext) ([]*domain.State, error)
	GetByID(ctx context.Context, id int64) (*domain.State, error)
	// GetCodesByContext возвращает все коды состояний контекста
	// (включая неактивные - коды не переиспользуются)
	GetCodesByContext(ctx context.Context, stateContext domain.StateContext) ([]string, error)
	Create(ctx context.Context, state *domain.State) (*domain.State, error)
	// CountReferences считает ссылки на состояние по всем таблицам сущностей
	CountReferences(ctx context.Context, stateID int64) (int64, error)
	SoftDelete(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
