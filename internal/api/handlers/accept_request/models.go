package accept_request

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	acceptRequest "github.com/m04kA/SMC-ParkingService/internal/usecase/accept_request"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	SpotID       int64  `json:"spotId"`
	SpotLabel    string `json:"spotLabel"`
	HasCharger   bool   `json:"hasCharger"`
	NeedsCharger bool   `json:"needsCharger"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *acceptRequest.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		SpotID:       resp.SpotID,
		SpotLabel:    resp.SpotLabel,
		HasCharger:   resp.HasCharger,
		NeedsCharger: resp.NeedsCharger,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
