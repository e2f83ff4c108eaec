package submit_request

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
)

// PendingRequestRepository интерфейс репозитория заявок
type PendingRequestRepository interface {
	Create(ctx context.Context, req *domain.PendingRequest) (*domain.PendingRequest, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	ResolveUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
