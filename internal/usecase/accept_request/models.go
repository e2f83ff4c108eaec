package accept_request

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на принятие заявки
type Request struct {
	RequestID int64 // ID заявки, ожидающей распределения места
}

// Response модель ответа с созданной бронью
type Response struct {
	ID           int64     // ID созданной брони
	UserID       int64     // ID пользователя
	SpotID       int64     // ID выделенного места
	SpotLabel    string    // Позиция места, например "A-12"
	HasCharger   bool      // Есть ли зарядка у выделенного места
	NeedsCharger bool      // Требовалась ли зарядка в заявке
	StartDate    time.Time // Начало брони
	EndDate      time.Time // Конец брони (включительно)
	CreatedAt    time.Time // Время создания
	UpdatedAt    time.Time // Время обновления
}

// fromDomain конвертирует доменную бронь в ответ usecase
func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:           res.ID,
		UserID:       res.UserID,
		SpotID:       res.Spot.ID,
		SpotLabel:    res.Spot.Label(),
		HasCharger:   res.Spot.HasCharger,
		NeedsCharger: res.NeedsCharger,
		StartDate:    res.StartDate,
		EndDate:      res.EndDate,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
}
