package transition_vehicle

import "time"

// Request модель запроса на перевод транспорта в новое состояние
type Request struct {
	VehicleID   int64  // ID транспорта
	TargetState string // Имя целевого состояния из каталога
	ActorID     int64  // ID сотрудника, выполняющего перевод
}

// Response модель ответа после перевода состояния
type Response struct {
	ID            int64  // ID транспорта
	PreviousState string // Имя состояния до перевода
	StateID       int64  // ID нового состояния
	StateName     string // Имя нового состояния
	StateKind     string // Вид нового состояния

	UpdatedAt time.Time // Время обновления
}
