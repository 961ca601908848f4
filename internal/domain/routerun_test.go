package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/pkg/ptr"
)

// TestRouteRun_EffectiveCapacity проверяет предел мест рейса: вместимость
// назначенного транспорта, ноль означает отсутствие предела.
func TestRouteRun_EffectiveCapacity(t *testing.T) {
	withVehicle := &domain.RouteRun{VehicleID: ptr.Ptr(int64(3)), VehicleCapacity: ptr.Ptr(40)}
	assert.Equal(t, 40, withVehicle.EffectiveCapacity())

	noVehicle := &domain.RouteRun{}
	assert.Equal(t, 0, noVehicle.EffectiveCapacity())

	zeroCapacity := &domain.RouteRun{VehicleID: ptr.Ptr(int64(3)), VehicleCapacity: ptr.Ptr(0)}
	assert.Equal(t, 0, zeroCapacity.EffectiveCapacity())
}

// TestRouteRun_IsBookable проверяет, что брони принимают только
// активированные неудаленные рейсы.
func TestRouteRun_IsBookable(t *testing.T) {
	now := time.Now()

	assert.True(t, (&domain.RouteRun{StateKind: domain.KindActivated}).IsBookable())
	assert.False(t, (&domain.RouteRun{StateKind: domain.KindScheduled}).IsBookable())
	assert.False(t, (&domain.RouteRun{StateKind: domain.KindClosed}).IsBookable())
	assert.False(t, (&domain.RouteRun{StateKind: domain.KindActivated, DeletedAt: &now}).IsBookable())
}

// TestTourRun_IsBookable проверяет ту же проверку для выездов туров.
func TestTourRun_IsBookable(t *testing.T) {
	assert.True(t, (&domain.TourRun{StateKind: domain.KindActivated}).IsBookable())
	assert.False(t, (&domain.TourRun{StateKind: domain.KindScheduled}).IsBookable())
}
