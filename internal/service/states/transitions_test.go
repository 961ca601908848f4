package states_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carbyfah/magic-sub006/internal/domain"
	"github.com/Carbyfah/magic-sub006/internal/service/states"
)

// TestCanTransition_reservationGraph проверяет разрешённые переходы жизненного
// цикла брони: из Pending можно подтвердить или отменить, из Confirmed -
// выполнить, отменить или выставить счёт, из Executed - только выставить счёт.
func TestCanTransition_reservationGraph(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to confirmed", states.ReservationPending, states.ReservationConfirmed, true},
		{"pending to cancelled", states.ReservationPending, states.ReservationCancelled, true},
		{"pending to executed", states.ReservationPending, states.ReservationExecuted, false},
		{"pending to invoiced", states.ReservationPending, states.ReservationInvoiced, false},
		{"confirmed to executed", states.ReservationConfirmed, states.ReservationExecuted, true},
		{"confirmed to cancelled", states.ReservationConfirmed, states.ReservationCancelled, true},
		{"confirmed to invoiced", states.ReservationConfirmed, states.ReservationInvoiced, true},
		{"confirmed to pending", states.ReservationConfirmed, states.ReservationPending, false},
		{"executed to invoiced", states.ReservationExecuted, states.ReservationInvoiced, true},
		{"executed to cancelled", states.ReservationExecuted, states.ReservationCancelled, false},
		{"cancelled is terminal", states.ReservationCancelled, states.ReservationPending, false},
		{"invoiced is terminal", states.ReservationInvoiced, states.ReservationConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := states.CanTransition(domain.ContextReservation, tt.from, tt.to)
			assert.Equal(t, tt.allowed, got)
		})
	}
}

// TestCanTransition_failClosed проверяет, что неизвестные состояния и контексты
// не имеют разрешённых переходов ни в одну сторону.
func TestCanTransition_failClosed(t *testing.T) {
	assert.False(t, states.CanTransition(domain.ContextReservation, "Draft", states.ReservationConfirmed))
	assert.False(t, states.CanTransition(domain.ContextReservation, states.ReservationPending, "Archived"))
	assert.False(t, states.CanTransition(domain.StateContext("unknown"), states.ReservationPending, states.ReservationConfirmed))
}

// TestCanTransition_contextIsolation проверяет, что графы бронирований и счетов
// не смешиваются, хотя оба содержат состояние "Pending": Pending счёта
// переходит в Paid, Pending брони - нет.
func TestCanTransition_contextIsolation(t *testing.T) {
	assert.True(t, states.CanTransition(domain.ContextInvoice, states.InvoicePending, states.InvoicePaid))
	assert.False(t, states.CanTransition(domain.ContextReservation, states.ReservationPending, states.InvoicePaid))

	assert.True(t, states.CanTransition(domain.ContextReservation, states.ReservationPending, states.ReservationConfirmed))
	assert.False(t, states.CanTransition(domain.ContextInvoice, states.InvoicePending, states.ReservationConfirmed))
}

// TestTransitionsFor_returnsCopy проверяет, что изменение возвращённого графа
// не влияет на последующие вызовы.
func TestTransitionsFor_returnsCopy(t *testing.T) {
	first := states.TransitionsFor(domain.ContextReservation)
	require.NotEmpty(t, first)

	first[states.ReservationCancelled] = []string{states.ReservationPending}

	second := states.TransitionsFor(domain.ContextReservation)
	assert.Empty(t, second[states.ReservationCancelled])
}

// TestTransitionsFor_unknownContext проверяет, что для неизвестного контекста
// возвращается пустой граф, а не nil.
func TestTransitionsFor_unknownContext(t *testing.T) {
	graph := states.TransitionsFor(domain.StateContext("unknown"))
	require.NotNil(t, graph)
	assert.Empty(t, graph)
}

// TestIsTerminal проверяет определение терминальных состояний.
func TestIsTerminal(t *testing.T) {
	assert.True(t, states.IsTerminal(domain.ContextReservation, states.ReservationCancelled))
	assert.True(t, states.IsTerminal(domain.ContextReservation, states.ReservationInvoiced))
	assert.False(t, states.IsTerminal(domain.ContextReservation, states.ReservationPending))
	assert.False(t, states.IsTerminal(domain.ContextReservation, states.ReservationConfirmed))

	assert.True(t, states.IsTerminal(domain.ContextInvoice, states.InvoicePaid))

	// Неизвестное состояние не имеет переходов, но и терминальным не считается
	assert.False(t, states.IsTerminal(domain.ContextReservation, "Draft"))
}
