package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Business validation constants
const (
	MinPassengers               = 1
	MaxPassengers               = 200 // верхняя граница разумности для одной брони
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxStateNameLength          = 100
)

// StateCodeSuffixWidth ширина числового суффикса кодов состояний ("001")
const StateCodeSuffixWidth = 3

// stateCodePrefixes префиксы кодов состояний по контекстам
var stateCodePrefixes = map[StateContext]string{
	ContextVehicle:     "VEH",
	ContextReservation: "RES",
	ContextRouteRun:    "RTR",
	ContextTourRun:     "TOR",
	ContextInvoice:     "INV",
}

// StateCodePrefix returns the code prefix used for auto-generated state
// codes in the given context (e.g. "RES" -> "RES001").
func StateCodePrefix(context StateContext) string {
	return stateCodePrefixes[context]
}

// InactiveReservationKinds виды состояний, не занимающие места
// Используется при подсчёте занятости рейса
var InactiveReservationKinds = []StateKind{
	KindCancelled,
}
