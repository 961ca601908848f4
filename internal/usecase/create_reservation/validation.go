package create_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/internal/service/assignment"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	// Ровно одна услуга: либо рейс маршрута, либо выезд тура
	if err := assignment.Validate(req.RouteRunID != nil, req.TourRunID != nil); err != nil {
		switch {
		case errors.Is(err, assignment.ErrBothServiceRefs):
			return ErrBothServiceRefs
		case errors.Is(err, assignment.ErrNoServiceRef):
			return ErrNoServiceRef
		default:
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if req.RouteRunID != nil && *req.RouteRunID <= 0 {
		return fmt.Errorf("%w: routeRunID must be positive", ErrInvalidInput)
	}

	if req.TourRunID != nil && *req.TourRunID <= 0 {
		return fmt.Errorf("%w: tourRunID must be positive", ErrInvalidInput)
	}

	if req.AgencyID != nil && *req.AgencyID <= 0 {
		return fmt.Errorf("%w: agencyID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if err := validatePassengers(req.Adults, req.Children); err != nil {
		return err
	}

	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	if req.State != nil && strings.TrimSpace(*req.State) == "" {
		return fmt.Errorf("%w: state must not be blank", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validatePassengers проверяет состав пассажиров
func validatePassengers(adults, children int) error {
	if adults < 0 || children < 0 {
		return fmt.Errorf("%w: passenger counts must not be negative", ErrInvalidInput)
	}

	total := adults + children
	if total < domain.MinPassengers {
		return fmt.Errorf("%w: at least %d passenger required", ErrInvalidInput, domain.MinPassengers)
	}
	if total > domain.MaxPassengers {
		return fmt.Errorf("%w: at most %d passengers allowed", ErrInvalidInput, domain.MaxPassengers)
	}

	return nil
}
