package refuse_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	pendingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pendingrequest"
	userClient "github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
)

// UseCase use case отклонения заявки секретарём
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

// Execute выполняет отклонение заявки.
// Отклонять заявки может только секретарь; заявка удаляется и возвращается вызывающему.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RefuseRequest: request=%d, caller=%d", req.RequestID, req.CallerUserID)

	// 1. Проверяем роль вызывающего
	caller, err := uc.userClient.ResolveUser(ctx, req.CallerUserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("RefuseRequest: caller id=%d not found", req.CallerUserID)
			return nil, ErrCallerNotFound
		}
		uc.logger.Error("RefuseRequest: failed to resolve caller id=%d: %v", req.CallerUserID, err)
		return nil, fmt.Errorf("%w: failed to resolve caller: %v", ErrInternal, err)
	}

	role, err := domain.ParseRole(caller.Role)
	if err != nil || !role.CanRefuseRequests() {
		uc.logger.Warn("RefuseRequest: access denied for caller id=%d, role=%s", req.CallerUserID, caller.Role)
		return nil, ErrAccessDenied
	}

	// 2. Загружаем заявку
	pending, err := uc.pendingRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, pendingRepo.ErrRequestNotFound) {
			uc.logger.Warn("RefuseRequest: request id=%d not found", req.RequestID)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("RefuseRequest: failed to get request id=%d: %v", req.RequestID, err)
		return nil, fmt.Errorf("%w: failed to get pending request: %v", ErrInternal, err)
	}

	// 3. Удаляем заявку
	if err := uc.pendingRepo.Delete(ctx, pending.ID); err != nil {
		if errors.Is(err, pendingRepo.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("RefuseRequest: failed to delete request id=%d: %v", pending.ID, err)
		return nil, fmt.Errorf("%w: failed to delete pending request: %v", ErrInternal, err)
	}

	uc.logger.Info("RefuseRequest: request id=%d refused by secretary id=%d", pending.ID, req.CallerUserID)

	return fromDomain(pending), nil
}
