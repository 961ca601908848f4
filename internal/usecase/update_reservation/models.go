package update_reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на изменение бронирования.
// Запрос описывает желаемое полное состояние изменяемых полей,
// а не разницу с текущим
type Request struct {
	ReservationID int64           // ID изменяемого бронирования
	RouteRunID    *int64          // ID рейса маршрута (взаимоисключающе с TourRunID)
	TourRunID     *int64          // ID выезда тура (взаимоисключающе с RouteRunID)
	AgencyID      *int64          // ID агентства-посредника (nil - прямая продажа)
	Adults        int             // Количество взрослых
	Children      int             // Количество детей
	Amount        decimal.Decimal // Сумма бронирования
	Notes         *string         // Дополнительные заметки (опционально)
	ActorID       int64           // ID сотрудника, вносящего изменения
}

// Response модель ответа с измененным бронированием
type Response struct {
	ID         int64   // ID бронирования
	RouteRunID *int64  // ID рейса маршрута
	TourRunID  *int64  // ID выезда тура
	AgencyID   *int64  // ID агентства
	Adults     int     // Количество взрослых
	Children   int     // Количество детей
	Amount     string  // Сумма строкой, без потери точности
	StateID    int64   // ID состояния
	StateName  string  // Имя состояния
	Notes      *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
