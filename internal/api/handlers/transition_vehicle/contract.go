package transition_vehicle

import (
	"context"

	transitionVehicle "github.com/Carbyfah/magic-sub006/internal/usecase/transition_vehicle"
)

type TransitionVehicleUseCase interface {
	Execute(ctx context.Context, req *transitionVehicle.Request) (*transitionVehicle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
