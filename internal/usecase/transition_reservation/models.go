package transition_reservation

import "time"

// Request модель запроса на перевод бронирования в новое состояние
type Request struct {
	ReservationID int64   // ID бронирования
	TargetState   string  // Имя целевого состояния из каталога
	Reason        *string // Причина отмены (обязательна при переходе в отмененное состояние)
	ActorID       int64   // ID сотрудника, выполняющего перевод
}

// Response модель ответа после перевода состояния
type Response struct {
	ID            int64  // ID бронирования
	PreviousState string // Имя состояния до перевода
	StateID       int64  // ID нового состояния
	StateName     string // Имя нового состояния
	StateKind     string // Вид нового состояния

	CancellationReason *string // Причина отмены, если бронирование отменено
	CancelledAt        *string // Момент отмены в формате ISO 8601

	UpdatedAt time.Time // Время обновления
}
