package domain

import "time"

// Vehicle represents a bus or van owned by the agency.
// Capacity is the number of passenger seats; a capacity of zero means the
// vehicle imposes no limit on route runs it is assigned to.
type Vehicle struct {
	ID           int64
	LicensePlate string
	Brand        *string
	Model        *string
	Capacity     int
	StateID      int64
	StateName    string    // denormalized from the states catalog
	StateKind    StateKind // denormalized from the states catalog
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCapacityLimit returns true if the vehicle enforces a seat limit.
func (v *Vehicle) HasCapacityLimit() bool {
	return v.Capacity > 0
}

// IsDeleted returns true if the vehicle has been soft-deleted.
func (v *Vehicle) IsDeleted() bool {
	return v.DeletedAt != nil
}
