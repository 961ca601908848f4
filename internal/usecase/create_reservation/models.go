package create_reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на создание бронирования
type Request struct {
	RouteRunID *int64          // ID рейса маршрута (взаимоисключающе с TourRunID)
	TourRunID  *int64          // ID выезда тура (взаимоисключающе с RouteRunID)
	AgencyID   *int64          // ID агентства-посредника (nil - прямая продажа)
	Adults     int             // Количество взрослых
	Children   int             // Количество детей
	Amount     decimal.Decimal // Сумма бронирования
	State      *string         // Имя начального состояния (опционально, должно быть вида pending)
	Notes      *string         // Дополнительные заметки (опционально)
	ActorID    int64           // ID сотрудника, оформляющего бронирование
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64   // ID созданного бронирования
	RouteRunID *int64  // ID рейса маршрута
	TourRunID  *int64  // ID выезда тура
	AgencyID   *int64  // ID агентства
	Adults     int     // Количество взрослых
	Children   int     // Количество детей
	Amount     string  // Сумма строкой, без потери точности
	StateID    int64   // ID начального состояния
	StateName  string  // Имя начального состояния
	Notes      *string // Заметки
	CreatedBy  int64   // ID сотрудника

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
