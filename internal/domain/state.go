package domain

import (
	"fmt"
	"time"
)

// StateContext identifies which entity family a state belongs to.
// Transition rules are defined per context: a "Pending" reservation and a
// "Pending" invoice are unrelated states with unrelated rules.
type StateContext string

const (
	ContextVehicle     StateContext = "vehicle"
	ContextReservation StateContext = "reservation"
	ContextRouteRun    StateContext = "route_run"
	ContextTourRun     StateContext = "tour_run"
	ContextInvoice     StateContext = "invoice"
)

// ParseStateContext парсит контекст из строки (например, из path-параметра)
func ParseStateContext(s string) (StateContext, error) {
	switch StateContext(s) {
	case ContextVehicle, ContextReservation, ContextRouteRun, ContextTourRun, ContextInvoice:
		return StateContext(s), nil
	default:
		return "", fmt.Errorf("unknown state context: %s", s)
	}
}

// StateKind is the canonical classification of a state, stored alongside the
// display name. All business checks (occupancy filtering, locked states,
// bookable runs) match on Kind exactly; Name is free-form display text.
type StateKind string

const (
	// Reservation / invoice kinds
	KindPending   StateKind = "pending"
	KindConfirmed StateKind = "confirmed"
	KindExecuted  StateKind = "executed"
	KindCancelled StateKind = "cancelled"
	KindInvoiced  StateKind = "invoiced"
	KindPaid      StateKind = "paid"

	// Run kinds
	KindScheduled StateKind = "scheduled"
	KindActivated StateKind = "activated"
	KindClosed    StateKind = "closed"

	// Vehicle kinds
	KindAvailable   StateKind = "available"
	KindInRoute     StateKind = "in_route"
	KindMaintenance StateKind = "maintenance"
	KindRetired     StateKind = "retired"

	// KindNone для состояний без особой семантики
	KindNone StateKind = "none"
)

// ParseStateKind парсит вид состояния из строки
// Пустая строка трактуется как KindNone
func ParseStateKind(s string) (StateKind, error) {
	switch StateKind(s) {
	case "":
		return KindNone, nil
	case KindPending, KindConfirmed, KindExecuted, KindCancelled, KindInvoiced, KindPaid,
		KindScheduled, KindActivated, KindClosed,
		KindAvailable, KindInRoute, KindMaintenance, KindRetired, KindNone:
		return StateKind(s), nil
	default:
		return "", fmt.Errorf("unknown state kind: %s", s)
	}
}

// State represents one catalog state within a context.
// States are shared reference data: entities point at them by id.
type State struct {
	ID        int64
	Context   StateContext
	Code      string // уникальный код, например "RES003"
	Name      string // отображаемое имя, например "Confirmed"
	Kind      StateKind
	SortOrder int
	Active    bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted returns true if the state has been soft-deleted.
func (s *State) IsDeleted() bool {
	return s.DeletedAt != nil
}

// IsUsable returns true if the state can be assigned to entities.
func (s *State) IsUsable() bool {
	return s.Active && !s.IsDeleted()
}

// lockedReservationKinds перечень видов состояний, в которых бронь нельзя изменять
var lockedReservationKinds = map[StateKind]bool{
	KindCancelled: true,
	KindInvoiced:  true,
	KindExecuted:  true,
}

// IsLockedReservationKind returns true for reservation state kinds that
// forbid further modification of the reservation's data.
func IsLockedReservationKind(kind StateKind) bool {
	return lockedReservationKinds[kind]
}
