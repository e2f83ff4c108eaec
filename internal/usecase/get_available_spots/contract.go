package get_available_spots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
}

// SpotRepository интерфейс репозитория инвентаря мест
type SpotRepository interface {
	ListActive(ctx context.Context) ([]*domain.Spot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
