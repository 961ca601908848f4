package list_states

import (
	"context"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/internal/service/states/models"
)

type StateService interface {
	StatesFor(ctx context.Context, stateContext domain.StateContext) (*models.StateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
