package deactivate_state

import "context"

type StateService interface {
	Deactivate(ctx context.Context, stateID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
