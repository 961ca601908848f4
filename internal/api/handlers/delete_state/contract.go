package delete_state

import "context"

type StateService interface {
	Delete(ctx context.Context, stateID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
