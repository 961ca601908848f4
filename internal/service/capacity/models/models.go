package models

import "fmt"

// Значения поля Result.Missing
const (
	MissingRouteRun = "route run"
	MissingTourRun  = "tour run"
	MissingVehicle  = "vehicle"
)

// Result результат проверки вместимости
// Это локальный, ожидаемый результат, а не ошибка: сообщение пригодно
// для показа пользователю без дополнительной обработки
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	// Missing заполняется, когда отказ вызван отсутствием рейса или
	// транспорта, а не нехваткой мест
	Missing string `json:"missing,omitempty"`
	// Remaining число свободных мест; заполняется только когда отказ
	// вызван нехваткой мест
	Remaining *int `json:"remaining,omitempty"`
}

// Available результат "места есть"
func Available() *Result {
	return &Result{OK: true, Message: "capacity available"}
}

// Unlimited результат "без ограничения вместимости"
func Unlimited() *Result {
	return &Result{OK: true, Message: "no capacity limit"}
}

// Exceeded результат "мест не хватает" с числом оставшихся мест
func Exceeded(remaining int) *Result {
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		OK:        false,
		Message:   fmt.Sprintf("insufficient capacity, %d seats available", remaining),
		Remaining: &remaining,
	}
}

// NotFound результат "рейс или транспорт не найден"
// what должен быть одной из констант Missing*, чтобы вызывающие могли
// отличить этот отказ от нехватки мест
func NotFound(what string) *Result {
	return &Result{OK: false, Message: what + " not found", Missing: what}
}
