package get_spots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

type SpotService interface {
	List(ctx context.Context) (*spots.SpotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
