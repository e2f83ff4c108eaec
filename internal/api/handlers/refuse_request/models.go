package refuse_request

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	refuseRequest "github.com/m04kA/SMC-ParkingService/internal/usecase/refuse_request"
)

// PendingRequestResponse HTTP response model: отклонённая (удалённая) заявка
type PendingRequestResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	NeedsCharger bool   `json:"needsCharger"`
	CreatedAt    string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *refuseRequest.Response) *PendingRequestResponse {
	return &PendingRequestResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		NeedsCharger: resp.NeedsCharger,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
