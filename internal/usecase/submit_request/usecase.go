package submit_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	userClient "github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
)

// UseCase use case подачи заявки на бронирование места
type UseCase struct {
	pendingRepo PendingRequestRepository
	userClient  UserServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pendingRepo PendingRequestRepository,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		pendingRepo: pendingRepo,
		userClient:  userClient,
		logger:      logger,
	}
}

// Execute выполняет подачу заявки.
// На этом этапе проверяются только обязательные поля и существование
// пользователя — политика длительности применяется при принятии заявки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitRequest: user=%d, range=%s..%s, charger=%t",
		req.UserID,
		req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat),
		req.NeedsCharger)

	// 1. Обязательные поля
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Пользователь должен существовать
	if _, err := uc.userClient.ResolveUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("SubmitRequest: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("SubmitRequest: failed to resolve user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
	}

	// 3. Создаем заявку без привязки к месту
	pending := &domain.PendingRequest{
		UserID:       req.UserID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		NeedsCharger: req.NeedsCharger,
	}

	created, err := uc.pendingRepo.Create(ctx, pending)
	if err != nil {
		uc.logger.Error("SubmitRequest: failed to create pending request: %v", err)
		return nil, fmt.Errorf("%w: failed to create pending request: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitRequest: created pending request id=%d for user=%d", created.ID, created.UserID)

	return fromDomain(created), nil
}

// validateRequest проверяет наличие обязательных полей заявки
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return ErrMissingFields
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return ErrMissingFields
	}
	if req.StartDate.Year() <= 1 || req.EndDate.Year() <= 1 {
		return ErrInvalidDateFormat
	}
	return nil
}
