package transition_vehicle

import (
	"time"

	transitionVehicle "github.com/Carbyfah/magic-sub006/internal/usecase/transition_vehicle"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	TargetState string `json:"targetState"` // Имя целевого состояния, например "Maintenance"
}

// TransitionResponse HTTP response model
type TransitionResponse struct {
	ID            int64  `json:"id"`
	PreviousState string `json:"previousState"`
	StateID       int64  `json:"stateId"`
	StateName     string `json:"stateName"`
	StateKind     string `json:"stateKind"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TransitionRequest) ToUseCaseRequest(vehicleID, actorID int64) *transitionVehicle.Request {
	return &transitionVehicle.Request{
		VehicleID:   vehicleID,
		TargetState: r.TargetState,
		ActorID:     actorID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *transitionVehicle.Response) *TransitionResponse {
	return &TransitionResponse{
		ID:            resp.ID,
		PreviousState: resp.PreviousState,
		StateID:       resp.StateID,
		StateName:     resp.StateName,
		StateKind:     resp.StateKind,
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
