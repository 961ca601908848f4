package find_availability

import (
	"time"

	"github.com/Carbyfah/magic-sub006/pkg/types"
)

// Вид найденной услуги
const (
	KindRouteRun = "route_run"
	KindTourRun  = "tour_run"
)

// Request модель запроса на поиск доступного рейса
type Request struct {
	ServiceID  int64     // ID маршрута или тура
	Date       time.Time // Дата поездки (без времени)
	Passengers int       // Количество пассажиров
}

// Response модель ответа поиска
// Found = false означает, что на дату нет подходящего рейса;
// решение, как сообщить об этом пользователю, принимает вызывающий слой
type Response struct {
	Found         bool             // Найден ли подходящий рейс
	ServiceKind   string           // Вид рейса: route_run или tour_run
	RunID         int64            // ID найденного рейса
	RunDate       time.Time        // Дата рейса
	DepartureTime types.TimeString // Время отправления
}
