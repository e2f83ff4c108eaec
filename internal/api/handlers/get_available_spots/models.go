package get_available_spots

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getAvailableSpots "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_spots"
)

// SpotResponse HTTP модель доступного места
type SpotResponse struct {
	ID         int64  `json:"id"`
	RowLabel   string `json:"rowLabel"`
	Number     int    `json:"number"`
	HasCharger bool   `json:"hasCharger"`
}

// AvailableSpotsResponse HTTP response model
type AvailableSpotsResponse struct {
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	TotalSpots int            `json:"totalSpots"`
	Spots      []SpotResponse `json:"spots"`
}

// parseRequest читает параметры запроса из query string
func parseRequest(startDate, endDate string, needsCharger bool) (*getAvailableSpots.Request, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return nil, err
	}

	return &getAvailableSpots.Request{
		StartDate:    start,
		EndDate:      end,
		NeedsCharger: needsCharger,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSpots.Response) *AvailableSpotsResponse {
	out := &AvailableSpotsResponse{
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		TotalSpots: resp.TotalSpots,
		Spots:      make([]SpotResponse, len(resp.Spots)),
	}

	for i, s := range resp.Spots {
		out.Spots[i] = SpotResponse{
			ID:         s.ID,
			RowLabel:   s.RowLabel,
			Number:     s.Number,
			HasCharger: s.HasCharger,
		}
	}

	return out
}
