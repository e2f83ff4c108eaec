package submit_request

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	submitRequest "github.com/m04kA/SMC-ParkingService/internal/usecase/submit_request"
)

// SubmitRequestRequest HTTP request model
type SubmitRequestRequest struct {
	UserID       int64  `json:"userId"`
	StartDate    string `json:"startDate"` // "2025-06-01"
	EndDate      string `json:"endDate"`   // "2025-06-05"
	NeedsCharger bool   `json:"needsCharger"`
}

// PendingRequestResponse HTTP response model
type PendingRequestResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	NeedsCharger bool   `json:"needsCharger"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitRequestRequest) ToUseCaseRequest() (*submitRequest.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &submitRequest.Request{
		UserID:       r.UserID,
		StartDate:    startDate,
		EndDate:      endDate,
		NeedsCharger: r.NeedsCharger,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitRequest.Response) *PendingRequestResponse {
	return &PendingRequestResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		NeedsCharger: resp.NeedsCharger,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
