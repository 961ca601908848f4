package domain

import (
	"time"

	"github.com/Carbyfah/magic-sub006/pkg/types"
)

// TourRun is a tour definition activated for a specific date and time.
// Tour runs carry no capacity ceiling by product design: groups are split
// across guides as needed, so any passenger count fits.
type TourRun struct {
	ID            int64
	TourID        int64
	RunDate       time.Time
	DepartureTime types.TimeString
	GuideID       *int64
	StateID       int64
	StateKind     StateKind // denormalized from the states catalog
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsBookable returns true if reservations may be attached to this run.
func (t *TourRun) IsBookable() bool {
	return t.StateKind == KindActivated && t.DeletedAt == nil
}
