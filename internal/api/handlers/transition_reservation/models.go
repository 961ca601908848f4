package transition_reservation

import (
	"time"

	transitionReservation "github.com/Carbyfah/magic-sub006/internal/usecase/transition_reservation"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	TargetState string  `json:"targetState"`      // Имя целевого состояния, например "Confirmed"
	Reason      *string `json:"reason,omitempty"` // Причина отмены (обязательна при отмене)
}

// TransitionResponse HTTP response model
type TransitionResponse struct {
	ID            int64  `json:"id"`
	PreviousState string `json:"previousState"`
	StateID       int64  `json:"stateId"`
	StateName     string `json:"stateName"`
	StateKind     string `json:"stateKind"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TransitionRequest) ToUseCaseRequest(reservationID, actorID int64) *transitionReservation.Request {
	return &transitionReservation.Request{
		ReservationID: reservationID,
		TargetState:   r.TargetState,
		Reason:        r.Reason,
		ActorID:       actorID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *transitionReservation.Response) *TransitionResponse {
	return &TransitionResponse{
		ID:                 resp.ID,
		PreviousState:      resp.PreviousState,
		StateID:            resp.StateID,
		StateName:          resp.StateName,
		StateKind:          resp.StateKind,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        resp.CancelledAt,
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
