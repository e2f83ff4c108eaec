package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	pendingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pendingrequest"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations/models"
)

// Service сервис одиночных операций над бронями: получение, список,
// дневной check-in и отмена
type Service struct {
	reservationRepo ReservationRepository
	pendingRepo     PendingRequestRepository
	userClient      UserServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	pendingRepo PendingRequestRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		pendingRepo:     pendingRepo,
		userClient:      userClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронь по ID.
// Пользователь видит только свою бронь; секретарь — любую.
func (s *Service) GetByID(ctx context.Context, id int64, callerUserID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, callerUserID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerAccess(ctx, res.UserID, callerUserID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", callerUserID, id)
		return nil, err
	}

	return models.FromDomainReservation(res), nil
}

// GetUserReservations получает список броней пользователя
func (s *Service) GetUserReservations(ctx context.Context, userID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d", userID)

	reservations, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%d", len(reservations), userID)
	return models.FromDomainReservationList(reservations), nil
}

// CheckIn выполняет дневной check-in по месту: бронь ищется по ID места,
// ограниченному текущей датой. Повторный check-in отклоняется.
func (s *Service) CheckIn(ctx context.Context, spotID int64) (*models.ReservationResponse, error) {
	s.logger.Info("CheckIn: spot=%d", spotID)

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	res, err := s.reservationRepo.GetBySpotAndDate(ctx, spotID, today)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("CheckIn: no reservation for spot=%d on %s", spotID, today.Format(domain.DateFormat))
			return nil, ErrReservationNotFound
		}
		s.logger.Error("CheckIn: repository error for spot=%d: %v", spotID, err)
		return nil, fmt.Errorf("%w: CheckIn - repository error: %v", ErrInternal, err)
	}

	if !res.CanCheckIn() {
		s.logger.Warn("CheckIn: reservation id=%d already checked in", res.ID)
		return nil, ErrAlreadyCheckedIn
	}

	// Условное обновление: status_checked=false в WHERE защищает от гонки
	// двух одновременных check-in по одной броне
	if err := s.reservationRepo.SetCheckedIn(ctx, res.ID, now); err != nil {
		if errors.Is(err, reservationRepo.ErrAlreadyCheckedIn) {
			s.logger.Warn("CheckIn: reservation id=%d already checked in (concurrent)", res.ID)
			return nil, ErrAlreadyCheckedIn
		}
		s.logger.Error("CheckIn: repository error for reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: CheckIn - repository error: %v", ErrInternal, err)
	}

	res.StatusChecked = true
	res.CheckInTime = &now

	s.logger.Info("CheckIn: reservation id=%d checked in at %s", res.ID, now.Format(time.RFC3339))
	return models.FromDomainReservation(res), nil
}

// Cancel удаляет бронь или заявку по ID и возвращает удалённую запись.
// Сначала ищется подтверждённая бронь, затем заявка в ожидании.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: id=%d", id)

	// Пробуем подтверждённую бронь
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err == nil {
		if err := s.reservationRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return nil, ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Cancel: reservation id=%d cancelled", id)
		return &models.CancelResponse{Reservation: models.FromDomainReservation(res)}, nil
	}
	if !errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Брони нет — пробуем заявку в ожидании
	pending, err := s.pendingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pendingRepo.ErrRequestNotFound) {
			s.logger.Warn("Cancel: id=%d matches neither reservation nor pending request", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for pending request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.pendingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pendingRepo.ErrRequestNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for pending request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: pending request id=%d cancelled", id)
	return &models.CancelResponse{PendingRequest: models.FromDomainPendingRequest(pending)}, nil
}

// checkOwnerAccess проверяет, что вызывающий — владелец брони или секретарь
func (s *Service) checkOwnerAccess(ctx context.Context, ownerID, callerUserID int64) error {
	if ownerID == callerUserID {
		return nil
	}

	caller, err := s.userClient.ResolveUser(ctx, callerUserID)
	if err != nil {
		return ErrAccessDenied
	}

	role, err := domain.ParseRole(caller.Role)
	if err != nil || role != domain.RoleSecretary {
		return ErrAccessDenied
	}

	return nil
}
