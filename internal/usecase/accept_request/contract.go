package accept_request

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
}

// PendingRequestRepository интерфейс репозитория заявок
type PendingRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PendingRequest, error)
	Delete(ctx context.Context, id int64) error
}

// SpotRepository интерфейс репозитория инвентаря мест
type SpotRepository interface {
	ListActive(ctx context.Context) ([]*domain.Spot, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	ResolveUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
