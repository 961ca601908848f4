package create_reservation

import (
	"time"

	"github.com/shopspring/decimal"

	createReservation "github.com/Carbyfah/magic-sub006/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RouteRunID *int64  `json:"routeRunId,omitempty"`
	TourRunID  *int64  `json:"tourRunId,omitempty"`
	AgencyID   *int64  `json:"agencyId,omitempty"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	Amount     string  `json:"amount"` // "1250.00"
	State      *string `json:"state,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	RouteRunID *int64  `json:"routeRunId,omitempty"`
	TourRunID  *int64  `json:"tourRunId,omitempty"`
	AgencyID   *int64  `json:"agencyId,omitempty"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	Amount     string  `json:"amount"`
	StateID    int64   `json:"stateId"`
	StateName  string  `json:"stateName"`
	Notes      *string `json:"notes,omitempty"`
	CreatedBy  int64   `json:"createdBy"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(actorID int64) (*createReservation.Request, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RouteRunID: r.RouteRunID,
		TourRunID:  r.TourRunID,
		AgencyID:   r.AgencyID,
		Adults:     r.Adults,
		Children:   r.Children,
		Amount:     amount,
		State:      r.State,
		Notes:      r.Notes,
		ActorID:    actorID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		RouteRunID: resp.RouteRunID,
		TourRunID:  resp.TourRunID,
		AgencyID:   resp.AgencyID,
		Adults:     resp.Adults,
		Children:   resp.Children,
		Amount:     resp.Amount,
		StateID:    resp.StateID,
		StateName:  resp.StateName,
		Notes:      resp.Notes,
		CreatedBy:  resp.CreatedBy,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
