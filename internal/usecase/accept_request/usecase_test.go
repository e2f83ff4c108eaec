package accept_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	pendingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pendingrequest"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
)

// --- Фейки зависимостей ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	nextID       int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.reservations = append(f.reservations, res)
	return res, nil
}

func (f *fakeReservationRepo) GetOverlapping(_ context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, res := range f.reservations {
		if res.Overlaps(start, end) {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakePendingRepo struct {
	requests map[int64]*domain.PendingRequest
	deleted  []int64
}

func (f *fakePendingRepo) GetByID(_ context.Context, id int64) (*domain.PendingRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, pendingRepo.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakePendingRepo) Delete(_ context.Context, id int64) error {
	delete(f.requests, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSpotRepo struct {
	spots []*domain.Spot
}

func (f *fakeSpotRepo) ListActive(_ context.Context) ([]*domain.Spot, error) {
	return f.spots, nil
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (f *fakeUserClient) ResolveUser(_ context.Context, userID int64) (*userservice.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return u, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Окружение теста ---

type env struct {
	uc           *UseCase
	reservations *fakeReservationRepo
	pending      *fakePendingRepo
	spots        *fakeSpotRepo
	users        *fakeUserClient
}

func newEnv(spots []*domain.Spot) *env {
	e := &env{
		reservations: &fakeReservationRepo{},
		pending:      &fakePendingRepo{requests: map[int64]*domain.PendingRequest{}},
		spots:        &fakeSpotRepo{spots: spots},
		users: &fakeUserClient{users: map[int64]*userservice.User{
			1: {ID: 1, Name: "Alice", Role: "user"},
			2: {ID: 2, Name: "Bob", Role: "manager"},
		}},
	}
	e.uc = NewUseCase(e.reservations, e.pending, e.spots, e.users, fakeTxManager{}, nopLogger{})
	return e
}

func (e *env) addRequest(id, userID int64, start, end time.Time, needsCharger bool) {
	e.pending.requests[id] = &domain.PendingRequest{
		ID:           id,
		UserID:       userID,
		StartDate:    start,
		EndDate:      end,
		NeedsCharger: needsCharger,
	}
}

// --- Тесты ---

func TestExecute_AcceptCreatesReservationAndConsumesRequest(t *testing.T) {
	e := newEnv(inventory())
	e.addRequest(10, 1, day(1), day(3), false)

	resp, err := e.uc.Execute(context.Background(), &Request{RequestID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, int64(1), resp.SpotID)
	assert.Equal(t, "A-1", resp.SpotLabel)
	assert.Equal(t, day(1), resp.StartDate)
	assert.Equal(t, day(3), resp.EndDate)

	// Заявка удалена, бронь сохранена
	assert.Empty(t, e.pending.requests)
	assert.Len(t, e.reservations.reservations, 1)
}

func TestExecute_RequestNotFound(t *testing.T) {
	e := newEnv(inventory())

	_, err := e.uc.Execute(context.Background(), &Request{RequestID: 99})

	require.ErrorIs(t, err, ErrRequestNotFound)
	assert.Equal(t, "Reservation not found", ErrRequestNotFound.Error())
}

func TestExecute_TwoChargerRequestsOneChargerSpot(t *testing.T) {
	// Одно место с зарядкой, две пересекающиеся заявки с зарядкой:
	// первая получает место, вторая остаётся в ожидании
	spots := []*domain.Spot{
		{ID: 1, RowLabel: "A", Number: 1, HasCharger: true, IsAvailable: true},
		{ID: 2, RowLabel: "B", Number: 1, HasCharger: false, IsAvailable: true},
	}
	e := newEnv(spots)
	e.addRequest(10, 1, day(1), day(3), true)
	e.addRequest(11, 2, day(2), day(4), true)

	first, err := e.uc.Execute(context.Background(), &Request{RequestID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.SpotID)

	_, err = e.uc.Execute(context.Background(), &Request{RequestID: 11})
	require.ErrorIs(t, err, ErrNoSpotAvailable)

	// Отклонённая заявка не удалена и может быть принята позже
	assert.Contains(t, e.pending.requests, int64(11))
	assert.Len(t, e.reservations.reservations, 1)
}

func TestExecute_ChargerFreesUpAfterRange(t *testing.T) {
	spots := []*domain.Spot{
		{ID: 1, RowLabel: "A", Number: 1, HasCharger: true, IsAvailable: true},
	}
	e := newEnv(spots)
	e.addRequest(10, 1, day(1), day(3), true)
	e.addRequest(11, 2, day(4), day(6), true)

	_, err := e.uc.Execute(context.Background(), &Request{RequestID: 10})
	require.NoError(t, err)

	// Диапазоны не пересекаются — то же место выделяется второй заявке
	second, err := e.uc.Execute(context.Background(), &Request{RequestID: 11})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.SpotID)
}

func TestExecute_UserDurationCapRejected(t *testing.T) {
	e := newEnv(inventory())
	e.addRequest(10, 1, day(1), day(6), false) // user, 6 дней при лимите 5

	_, err := e.uc.Execute(context.Background(), &Request{RequestID: 10})

	require.ErrorIs(t, err, ErrDurationExceeded)
	assert.Contains(t, err.Error(), "at most 5 days, requested 6")

	// Заявка остаётся в ожидании
	assert.Contains(t, e.pending.requests, int64(10))
	assert.Empty(t, e.reservations.reservations)
}

func TestExecute_ManagerLongerCapAllowed(t *testing.T) {
	e := newEnv(inventory())
	e.addRequest(10, 2, day(1), day(10), false) // manager, 10 дней при лимите 30

	resp, err := e.uc.Execute(context.Background(), &Request{RequestID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.UserID)
}

func TestExecute_UnknownUserRejected(t *testing.T) {
	e := newEnv(inventory())
	e.addRequest(10, 77, day(1), day(3), false) // пользователя 77 нет в UserService

	_, err := e.uc.Execute(context.Background(), &Request{RequestID: 10})

	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, e.pending.requests, int64(10))
}

func TestExecute_EndBeforeStartRejected(t *testing.T) {
	e := newEnv(inventory())
	e.addRequest(10, 1, day(5), day(1), false)

	_, err := e.uc.Execute(context.Background(), &Request{RequestID: 10})

	require.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestExecute_PlainRequestLeavesChargerSpotWhenPossible(t *testing.T) {
	// Порядок инвентаря детерминирован: обычная заявка берёт первое
	// подходящее место, даже если оно с зарядкой
	e := newEnv(inventory())
	e.addRequest(10, 1, day(1), day(2), false)

	resp, err := e.uc.Execute(context.Background(), &Request{RequestID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.SpotID)
	assert.True(t, resp.HasCharger)
	assert.False(t, resp.NeedsCharger)
}
