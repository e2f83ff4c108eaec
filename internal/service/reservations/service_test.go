package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	pendingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pendingrequest"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/userservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, res := range f.reservations {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) GetBySpotAndDate(_ context.Context, spotID int64, date time.Time) (*domain.Reservation, error) {
	for _, res := range f.reservations {
		if res.Spot.ID == spotID && res.CoversDate(date) {
			return res, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) SetCheckedIn(_ context.Context, id int64, checkInTime time.Time) error {
	res, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if res.StatusChecked {
		return reservationRepo.ErrAlreadyCheckedIn
	}
	res.StatusChecked = true
	res.CheckInTime = &checkInTime
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.reservations, id)
	return nil
}

type fakePendingRepo struct {
	requests map[int64]*domain.PendingRequest
}

func (f *fakePendingRepo) GetByID(_ context.Context, id int64) (*domain.PendingRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, pendingRepo.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakePendingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.requests[id]; !ok {
		return pendingRepo.ErrRequestNotFound
	}
	delete(f.requests, id)
	return nil
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

type env struct {
	svc          *Service
	reservations *fakeReservationRepo
	pending      *fakePendingRepo
	clock        *fixedTimeProvider
}

func newEnv() *env {
	e := &env{
		reservations: &fakeReservationRepo{reservations: map[int64]*domain.Reservation{}},
		pending:      &fakePendingRepo{requests: map[int64]*domain.PendingRequest{}},
		clock:        &fixedTimeProvider{now: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)},
	}
	users := &fakeUserClient{users: map[int64]*userservice.User{
		1: {ID: 1, Name: "Alice", Role: "user"},
		3: {ID: 3, Name: "Carol", Role: "secretary"},
	}}
	e.svc = NewService(e.reservations, e.pending, users, nopLogger{})
	e.svc.timeProvider = e.clock
	return e
}

func (e *env) addReservation(id, userID, spotID int64, start, end time.Time) *domain.Reservation {
	res := &domain.Reservation{
		ID:        id,
		UserID:    userID,
		Spot:      domain.Spot{ID: spotID, RowLabel: "A", Number: int(spotID), IsAvailable: true},
		StartDate: start,
		EndDate:   end,
	}
	e.reservations.reservations[id] = res
	return res
}

func TestGetByID_OwnerSeesOwnReservation(t *testing.T) {
	e := newEnv()
	e.addReservation(10, 1, 1, day(1), day(3))

	resp, err := e.svc.GetByID(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestGetByID_SecretarySeesAnyReservation(t *testing.T) {
	e := newEnv()
	e.addReservation(10, 1, 1, day(1), day(3))

	_, err := e.svc.GetByID(context.Background(), 10, 3)

	assert.NoError(t, err)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	e := newEnv()
	e.addReservation(10, 1, 1, day(1), day(3))

	_, err := e.svc.GetByID(context.Background(), 10, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	e := newEnv()

	_, err := e.svc.GetByID(context.Background(), 404, 1)

	require.ErrorIs(t, err, ErrReservationNotFound)
	assert.Equal(t, "Reservation not found", ErrReservationNotFound.Error())
}

func TestCheckIn_MarksReservationOnce(t *testing.T) {
	e := newEnv()
	e.addReservation(10, 1, 5, day(1), day(3)) // clock: 2 июня, внутри диапазона

	resp, err := e.svc.CheckIn(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, resp.StatusChecked)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, e.clock.now.Format(time.RFC3339), *resp.CheckInTime)
}

func TestCheckIn_SecondAttemptRejected(t *testing.T) {
	e := newEnv()
	e.addReservation(10, 1, 5, day(1), day(3))

	_, err := e.svc.CheckIn(context.Background(), 5)
	require.NoError(t, err)

	_, err = e.svc.CheckIn(context.Background(), 5)
	require.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.Equal(t, "Reservation already checked in", ErrAlreadyCheckedIn.Error())

	// Время первого check-in не перезаписано
	assert.Equal(t, e.clock.now, *e.reservations.reservations[10].CheckInTime)
}

func TestCheckIn_NoReservationToday(t *testing.T) {
	e := newEnv()
	e.addReservation(10, 1, 5, day(10), day(12)) // диапазон не покрывает 2 июня

	_, err := e.svc.CheckIn(context.Background(), 5)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCheckIn_UnknownSpot(t *testing.T) {
	e := newEnv()

	_, err := e.svc.CheckIn(context.Background(), 77)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_ConfirmedReservation(t *testing.T) {
	e := newEnv()
	e.addReservation(10, 1, 1, day(1), day(3))

	resp, err := e.svc.Cancel(context.Background(), 10)

	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)
	assert.Nil(t, resp.PendingRequest)
	assert.Equal(t, int64(10), resp.Reservation.ID)
	assert.Empty(t, e.reservations.reservations)
}

func TestCancel_FallsBackToPendingRequest(t *testing.T) {
	e := newEnv()
	e.pending.requests[20] = &domain.PendingRequest{
		ID:        20,
		UserID:    1,
		StartDate: day(1),
		EndDate:   day(3),
	}

	resp, err := e.svc.Cancel(context.Background(), 20)

	require.NoError(t, err)
	require.NotNil(t, resp.PendingRequest)
	assert.Nil(t, resp.Reservation)
	assert.Equal(t, int64(20), resp.PendingRequest.ID)
	assert.Empty(t, e.pending.requests)
}

func TestCancel_NotFoundAnywhere(t *testing.T) {
	e := newEnv()

	_, err := e.svc.Cancel(context.Background(), 404)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations(t *testing.T) {
	e := newEnv()
	e.addReservation(10, 1, 1, day(1), day(3))
	e.addReservation(11, 1, 2, day(5), day(6))
	e.addReservation(12, 2, 3, day(1), day(3))

	resp, err := e.svc.GetUserReservations(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)
}
