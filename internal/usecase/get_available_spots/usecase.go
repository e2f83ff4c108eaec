package get_available_spots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UseCase use case получения мест, свободных на весь диапазон дат.
// Доступность всегда считается по запрошенному диапазону, а не по
// сегодняшнему дню: место свободно, только если ни одна бронь
// не пересекает ни одного дня диапазона.
type UseCase struct {
	reservationRepo ReservationRepository
	spotRepo        SpotRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	spotRepo SpotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spotRepo:        spotRepo,
		logger:          logger,
	}
}

// Execute выполняет подбор свободных мест на диапазон дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSpots: range=%s..%s, charger=%t",
		req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat),
		req.NeedsCharger)

	// 1. Валидация диапазона
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSpots: validation failed: %v", err)
		return nil, err
	}

	// 2. Инвентарь мест
	spots, err := uc.spotRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSpots: failed to list spots: %v", err)
		return nil, fmt.Errorf("%w: failed to list spots: %v", ErrInternal, err)
	}

	// 3. Занятые места за диапазон
	overlapping, err := uc.reservationRepo.GetOverlapping(ctx, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetAvailableSpots: failed to get overlapping reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get overlapping reservations: %v", ErrInternal, err)
	}

	occupied := make(map[int64]struct{}, len(overlapping))
	for _, res := range overlapping {
		occupied[res.Spot.ID] = struct{}{}
	}

	// 4. Фильтруем инвентарь
	available := make([]AvailableSpot, 0, len(spots))
	for _, s := range spots {
		if !s.Satisfies(req.NeedsCharger) {
			continue
		}
		if _, taken := occupied[s.ID]; taken {
			continue
		}
		available = append(available, AvailableSpot{
			ID:         s.ID,
			RowLabel:   s.RowLabel,
			Number:     s.Number,
			HasCharger: s.HasCharger,
		})
	}

	uc.logger.Info("GetAvailableSpots: %d of %d spots available for %s..%s",
		len(available), len(spots),
		req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat))

	return &Response{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalSpots: len(spots),
		Spots:      available,
	}, nil
}

// validateRequest проверяет корректность диапазона дат
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return ErrInvalidDateFormat
	}
	if req.EndDate.Before(req.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}
