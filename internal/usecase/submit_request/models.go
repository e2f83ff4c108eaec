package submit_request

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на подачу заявки
type Request struct {
	UserID       int64     // ID пользователя, подающего заявку
	StartDate    time.Time // Начало запрошенного диапазона
	EndDate      time.Time // Конец запрошенного диапазона (включительно)
	NeedsCharger bool      // Нужна ли зарядка для электромобиля
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID           int64
	UserID       int64
	StartDate    time.Time
	EndDate      time.Time
	NeedsCharger bool
	CreatedAt    time.Time
}

// fromDomain конвертирует доменную заявку в ответ usecase
func fromDomain(req *domain.PendingRequest) *Response {
	return &Response{
		ID:           req.ID,
		UserID:       req.UserID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		NeedsCharger: req.NeedsCharger,
		CreatedAt:    req.CreatedAt,
	}
}
