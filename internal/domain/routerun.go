package domain

import (
	"time"

	"github.com/Carbyfah/magic-sub006/pkg/types"
)

// RouteRun is a route definition activated for a specific date and time,
// bound to at most one vehicle. Its effective capacity is the capacity of
// the assigned vehicle; no vehicle (or capacity zero) means unlimited.
type RouteRun struct {
	ID            int64
	RouteID       int64
	RunDate       time.Time
	DepartureTime types.TimeString
	VehicleID     *int64
	StateID       int64
	StateKind     StateKind // denormalized from the states catalog

	// VehicleCapacity денормализуется из назначенного транспорта при чтении
	// nil - транспорт не назначен
	VehicleCapacity *int

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveCapacity returns the seat limit for this run.
// Zero means "no limit" (no vehicle assigned, or capacity unset).
func (r *RouteRun) EffectiveCapacity() int {
	if r.VehicleID == nil || r.VehicleCapacity == nil || *r.VehicleCapacity <= 0 {
		return 0
	}
	return *r.VehicleCapacity
}

// IsBookable returns true if reservations may be attached to this run.
func (r *RouteRun) IsBookable() bool {
	return r.StateKind == KindActivated && r.DeletedAt == nil
}
