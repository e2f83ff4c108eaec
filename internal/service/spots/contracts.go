package spots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotRepository интерфейс репозитория инвентаря мест
type SpotRepository interface {
	ListAll(ctx context.Context) ([]*domain.Spot, error)
	GetByID(ctx context.Context, id int64) (*domain.Spot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
