package refuse_request

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на отклонение заявки
type Request struct {
	RequestID    int64 // ID отклоняемой заявки
	CallerUserID int64 // ID пользователя, выполняющего отклонение
}

// Response модель ответа с удалённой заявкой
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
