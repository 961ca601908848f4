package create_state

import (
	"context"

	"github.com/Carbyfah/magic-sub006/internal/service/states/models"
)

type StateService interface {
	Create(ctx context.Context, req *models.CreateStateRequest) (*models.StateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
