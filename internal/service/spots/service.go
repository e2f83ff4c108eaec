package spots

import (
	"context"
	"errors"
	"fmt"

	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
)

// SpotResponse данные парковочного места
type SpotResponse struct {
	ID          int64  `json:"id"`
	RowLabel    string `json:"rowLabel"`
	Number      int    `json:"number"`
	HasCharger  bool   `json:"hasCharger"`
	IsAvailable bool   `json:"isAvailable"`
}

// SpotListResponse ответ со списком мест
type SpotListResponse struct {
	Spots []SpotResponse `json:"spots"`
}

// Service сервис инвентаря парковочных мест (только чтение)
type Service struct {
	spotRepo SpotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса инвентаря
func NewService(spotRepo SpotRepository, logger Logger) *Service {
	return &Service{
		spotRepo: spotRepo,
		logger:   logger,
	}
}

// List возвращает весь инвентарь парковки
func (s *Service) List(ctx context.Context) (*SpotListResponse, error) {
	s.logger.Info("List: fetching spot inventory")

	spots, err := s.spotRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &SpotListResponse{Spots: make([]SpotResponse, len(spots))}
	for i, sp := range spots {
		resp.Spots[i] = SpotResponse{
			ID:          sp.ID,
			RowLabel:    sp.RowLabel,
			Number:      sp.Number,
			HasCharger:  sp.HasCharger,
			IsAvailable: sp.IsAvailable,
		}
	}

	s.logger.Info("List: fetched %d spots", len(resp.Spots))
	return resp, nil
}

// GetByID возвращает одно место по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*SpotResponse, error) {
	sp, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("GetByID: spot id=%d not found", id)
			return nil, ErrSpotNotFound
		}
		s.logger.Error("GetByID: repository error for spot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return &SpotResponse{
		ID:          sp.ID,
		RowLabel:    sp.RowLabel,
		Number:      sp.Number,
		HasCharger:  sp.HasCharger,
		IsAvailable: sp.IsAvailable,
	}, nil
}
