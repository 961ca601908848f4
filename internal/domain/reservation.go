package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation represents a booking of seats on exactly one service run.
// The exclusivity invariant: RouteRunID and TourRunID are mutually
// exclusive - exactly one must be set, never both, never neither.
type Reservation struct {
	ID         int64
	RouteRunID *int64
	TourRunID  *int64
	AgencyID   *int64 // nil = прямая продажа без агентства
	Adults     int
	Children   int
	Amount     decimal.Decimal
	StateID    int64
	StateName  string    // denormalized from the states catalog
	StateKind  StateKind // denormalized from the states catalog
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedBy int64 // пользователь, создавший бронь (для аудита)
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Passengers returns the total seat count the reservation occupies.
func (r *Reservation) Passengers() int {
	return r.Adults + r.Children
}

// HasRouteRun returns true if the reservation is attached to a route run.
func (r *Reservation) HasRouteRun() bool {
	return r.RouteRunID != nil
}

// HasTourRun returns true if the reservation is attached to a tour run.
func (r *Reservation) HasTourRun() bool {
	return r.TourRunID != nil
}

// IsDirectSale returns true for reservations sold without an agency.
func (r *Reservation) IsDirectSale() bool {
	return r.AgencyID == nil
}

// IsActive returns true if the reservation counts toward occupancy:
// not cancelled and not soft-deleted.
func (r *Reservation) IsActive() bool {
	return r.StateKind != KindCancelled && r.DeletedAt == nil
}

// IsLocked returns true if the reservation's current state forbids
// modification of its data (only status history stays readable).
func (r *Reservation) IsLocked() bool {
	return IsLockedReservationKind(r.StateKind)
}

// IsInvoiceEligible returns true if the reservation may be invoiced.
// Eligibility is purely derived from the current state: nothing is mutated.
func (r *Reservation) IsInvoiceEligible() bool {
	return r.StateKind == KindConfirmed && r.DeletedAt == nil
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	AgencyID        *int64     // Фильтр по агентству (опционально)
	DirectOnly      bool       // Только прямые продажи (agency IS NULL)
	RouteRunID      *int64     // Фильтр по рейсу маршрута (опционально)
	TourRunID       *int64     // Фильтр по рейсу тура (опционально)
	StateID         *int64     // Фильтр по состоянию (опционально)
	StartDate       *time.Time // Начало периода по дате создания (опционально)
	EndDate         *time.Time // Конец периода по дате создания (опционально)
	IncludeInactive bool       // Включать ли отменённые бронирования
}
