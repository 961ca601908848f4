package list_transitions

import (
	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/internal/service/states/models"
)

type StateService interface {
	Transitions(stateContext domain.StateContext) *models.TransitionsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
