package get_available_spots

import "time"

// Request модель запроса доступных мест
type Request struct {
	StartDate    time.Time // Начало диапазона
	EndDate      time.Time // Конец диапазона (включительно)
	NeedsCharger bool      // Показывать только места с зарядкой
}

// AvailableSpot место, свободное на весь запрошенный диапазон
type AvailableSpot struct {
	ID         int64
	RowLabel   string
	Number     int
	HasCharger bool
}

// Response модель ответа со списком доступных мест
type Response struct {
	StartDate  time.Time
	EndDate    time.Time
	TotalSpots int // Всего активных мест в инвентаре
	Spots      []AvailableSpot
}
