package states

import "github.com/Carbyfah/magic-sub006/internal/domain"

// Канонические имена состояний бронирования
// Графы переходов ключуются по отображаемым именам, поэтому имена
// зафиксированы константами, а не свободным текстом
const (
	ReservationPending   = "Pending"
	ReservationConfirmed = "Confirmed"
	ReservationExecuted  = "Executed"
	ReservationCancelled = "Cancelled"
	ReservationInvoiced  = "Invoiced"
)

// Канонические имена состояний счетов
// Имя "Pending" намеренно совпадает с именем состояния брони: графы разных
// контекстов хранятся раздельно и не перезаписывают друг друга
const (
	InvoicePending   = "Pending"
	InvoicePaid      = "Paid"
	InvoiceCancelled = "Cancelled"
)

// Канонические имена состояний транспорта
const (
	VehicleAvailable   = "Available"
	VehicleInRoute     = "In Route"
	VehicleMaintenance = "Maintenance"
	VehicleRetired     = "Retired"
)

// Канонические имена состояний рейсов (маршрутов и туров)
const (
	RunScheduled = "Scheduled"
	RunActivated = "Activated"
	RunClosed    = "Closed"
	RunCompleted = "Completed"
	RunCancelled = "Cancelled"
)

// transitionGraphs направленные графы переходов - по одному на контекст.
// Состояние с пустым списком назначений терминально.
// Неизвестное исходное состояние не имеет разрешённых переходов (fail closed)
var transitionGraphs = map[domain.StateContext]map[string][]string{
	domain.ContextReservation: {
		ReservationPending:   {ReservationConfirmed, ReservationCancelled},
		ReservationConfirmed: {ReservationExecuted, ReservationCancelled, ReservationInvoiced},
		ReservationExecuted:  {ReservationInvoiced},
		ReservationCancelled: {},
		ReservationInvoiced:  {},
	},
	domain.ContextInvoice: {
		InvoicePending:   {InvoicePaid, InvoiceCancelled},
		InvoicePaid:      {},
		InvoiceCancelled: {},
	},
	domain.ContextVehicle: {
		VehicleAvailable:   {VehicleInRoute, VehicleMaintenance, VehicleRetired},
		VehicleInRoute:     {VehicleAvailable, VehicleMaintenance},
		VehicleMaintenance: {VehicleAvailable, VehicleRetired},
		VehicleRetired:     {},
	},
	domain.ContextRouteRun: {
		RunScheduled: {RunActivated, RunCancelled},
		RunActivated: {RunClosed, RunCancelled},
		RunClosed:    {},
		RunCancelled: {},
	},
	domain.ContextTourRun: {
		RunScheduled: {RunActivated, RunCancelled},
		RunActivated: {RunCompleted, RunCancelled},
		RunCompleted: {},
		RunCancelled: {},
	},
}

// TransitionsFor возвращает копию графа переходов для контекста
// Для неизвестного контекста возвращает пустой граф
func TransitionsFor(context domain.StateContext) map[string][]string {
	graph, ok := transitionGraphs[context]
	if !ok {
		return map[string][]string{}
	}

	out := make(map[string][]string, len(graph))
	for from, targets := range graph {
		copied := make([]string, len(targets))
		copy(copied, targets)
		out[from] = copied
	}
	return out
}

// CanTransition проверяет, разрешён ли переход from -> to в контексте
// Неизвестное текущее состояние не имеет разрешённых переходов
func CanTransition(context domain.StateContext, from, to string) bool {
	graph, ok := transitionGraphs[context]
	if !ok {
		return false
	}

	targets, ok := graph[from]
	if !ok {
		return false
	}

	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// IsTerminal проверяет, что состояние терминально в своём контексте
// (известно графу и не имеет исходящих переходов)
func IsTerminal(context domain.StateContext, name string) bool {
	graph, ok := transitionGraphs[context]
	if !ok {
		return false
	}

	targets, ok := graph[name]
	return ok && len(targets) == 0
}
