package accept_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	pendingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pendingrequest"
	userClient "github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
)

// UseCase use case принятия заявки: заявка превращается в подтверждённую бронь
// с выделенным местом, либо остаётся в ожидании при любой ошибке
type UseCase struct {
	reservationRepo ReservationRepository
	pendingRepo     PendingRequestRepository
	spotRepo        SpotRepository
	userClient      UserServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	pendingRepo PendingRequestRepository,
	spotRepo SpotRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		pendingRepo:     pendingRepo,
		spotRepo:        spotRepo,
		userClient:      userClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет принятие заявки.
// Выделение места и создание брони идут в одной сериализуемой транзакции
// с блокировкой пересекающихся броней — два конкурентных принятия не могут
// получить одно и то же место на пересекающиеся даты.
// При любой ошибке транзакция откатывается и заявка остаётся в ожидании.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcceptRequest: request=%d", req.RequestID)

	// 1. Загружаем заявку
	pending, err := uc.pendingRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, pendingRepo.ErrRequestNotFound) {
			uc.logger.Warn("AcceptRequest: request id=%d not found", req.RequestID)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("AcceptRequest: failed to get request id=%d: %v", req.RequestID, err)
		return nil, fmt.Errorf("%w: failed to get pending request: %v", ErrInternal, err)
	}

	// 2. Получаем пользователя с ролью для проверки политики
	user, err := uc.userClient.ResolveUser(ctx, pending.UserID)
	if err != nil && !errors.Is(err, userClient.ErrUserNotFound) {
		uc.logger.Error("AcceptRequest: failed to resolve user id=%d: %v", pending.UserID, err)
		return nil, fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 3. Выделение места и подтверждение — в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Инвентарь мест в детерминированном порядке обхода
		spots, err := uc.spotRepo.ListActive(txCtx)
		if err != nil {
			uc.logger.Error("AcceptRequest: failed to list spots: %v", err)
			return fmt.Errorf("%w: failed to list spots: %v", ErrInternal, err)
		}

		// 3.2. Пересекающиеся брони за диапазон, с блокировкой строк (FOR UPDATE)
		overlapping, err := uc.reservationRepo.GetOverlapping(txCtx, pending.StartDate, pending.EndDate)
		if err != nil {
			uc.logger.Error("AcceptRequest: failed to get overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to get overlapping reservations: %v", ErrInternal, err)
		}

		// 3.3. Первое свободное место, удовлетворяющее требованию зарядки
		spot := allocateSpot(spots, overlapping, pending.NeedsCharger)
		if spot == nil {
			uc.logger.Warn("AcceptRequest: no spot available for request id=%d (%s..%s, charger=%t)",
				pending.ID,
				pending.StartDate.Format(domain.DateFormat),
				pending.EndDate.Format(domain.DateFormat),
				pending.NeedsCharger)
			return ErrNoSpotAvailable
		}

		// 3.4. Кандидат брони из заявки и выделенного места
		candidate := &domain.Reservation{
			UserID:        pending.UserID,
			Spot:          *spot,
			NeedsCharger:  pending.NeedsCharger,
			StartDate:     pending.StartDate,
			EndDate:       pending.EndDate,
			StatusChecked: false,
		}

		// 3.5. Проверка политики: поля, даты, роль, лимит длительности
		if err := evaluatePolicy(candidate, user); err != nil {
			uc.logger.Warn("AcceptRequest: policy rejected request id=%d: %v", pending.ID, err)
			return err
		}

		// 3.6. Сохраняем бронь
		created, err := uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("AcceptRequest: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 3.7. Заявка выполнена — удаляем её в той же транзакции
		if err := uc.pendingRepo.Delete(txCtx, pending.ID); err != nil {
			uc.logger.Error("AcceptRequest: failed to delete pending request id=%d: %v", pending.ID, err)
			return fmt.Errorf("%w: failed to delete pending request: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AcceptRequest: request id=%d accepted, reservation id=%d, spot=%s",
		req.RequestID, result.ID, result.Spot.Label())

	return fromDomain(result), nil
}
