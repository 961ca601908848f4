package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/pkg/ptr"
)

// TestReservation_Passengers проверяет подсчет мест: взрослые плюс дети.
func TestReservation_Passengers(t *testing.T) {
	res := &domain.Reservation{Adults: 2, Children: 3}
	assert.Equal(t, 5, res.Passengers())
}

// TestReservation_IsActive проверяет учет брони в занятости: отмененные
// и удаленные брони мест не занимают.
func TestReservation_IsActive(t *testing.T) {
	now := time.Now()

	assert.True(t, (&domain.Reservation{StateKind: domain.KindPending}).IsActive())
	assert.True(t, (&domain.Reservation{StateKind: domain.KindConfirmed}).IsActive())
	assert.False(t, (&domain.Reservation{StateKind: domain.KindCancelled}).IsActive())
	assert.False(t, (&domain.Reservation{StateKind: domain.KindPending, DeletedAt: &now}).IsActive())
}

// TestReservation_IsLocked проверяет, какие виды состояний запрещают
// изменение данных брони.
func TestReservation_IsLocked(t *testing.T) {
	tests := []struct {
		kind   domain.StateKind
		locked bool
	}{
		{domain.KindPending, false},
		{domain.KindConfirmed, false},
		{domain.KindExecuted, true},
		{domain.KindCancelled, true},
		{domain.KindInvoiced, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			res := &domain.Reservation{StateKind: tt.kind}
			assert.Equal(t, tt.locked, res.IsLocked())
		})
	}
}

// TestReservation_IsInvoiceEligible проверяет готовность к выставлению счета:
// только подтвержденные неудаленные брони.
func TestReservation_IsInvoiceEligible(t *testing.T) {
	now := time.Now()

	assert.True(t, (&domain.Reservation{StateKind: domain.KindConfirmed}).IsInvoiceEligible())
	assert.False(t, (&domain.Reservation{StateKind: domain.KindPending}).IsInvoiceEligible())
	assert.False(t, (&domain.Reservation{StateKind: domain.KindConfirmed, DeletedAt: &now}).IsInvoiceEligible())
}

// TestReservation_serviceRefs проверяет признаки привязки к рейсу и прямой продажи.
func TestReservation_serviceRefs(t *testing.T) {
	direct := &domain.Reservation{RouteRunID: ptr.Ptr(int64(5))}
	assert.True(t, direct.HasRouteRun())
	assert.False(t, direct.HasTourRun())
	assert.True(t, direct.IsDirectSale())

	agency := &domain.Reservation{TourRunID: ptr.Ptr(int64(9)), AgencyID: ptr.Ptr(int64(3))}
	assert.True(t, agency.HasTourRun())
	assert.False(t, agency.IsDirectSale())
}
