package accept_request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func inventory() []*domain.Spot {
	return []*domain.Spot{
		{ID: 1, RowLabel: "A", Number: 1, HasCharger: true, IsAvailable: true},
		{ID: 2, RowLabel: "A", Number: 2, HasCharger: false, IsAvailable: true},
		{ID: 3, RowLabel: "B", Number: 1, HasCharger: false, IsAvailable: true},
	}
}

func reservedOn(spotID int64) *domain.Reservation {
	return &domain.Reservation{
		Spot:      domain.Spot{ID: spotID},
		StartDate: day(1),
		EndDate:   day(5),
	}
}

func TestAllocateSpot_PicksFirstFreeInInventoryOrder(t *testing.T) {
	spot := allocateSpot(inventory(), nil, false)

	require.NotNil(t, spot)
	assert.Equal(t, int64(1), spot.ID)
}

func TestAllocateSpot_SkipsOccupiedSpots(t *testing.T) {
	overlapping := []*domain.Reservation{reservedOn(1), reservedOn(2)}

	spot := allocateSpot(inventory(), overlapping, false)

	require.NotNil(t, spot)
	assert.Equal(t, int64(3), spot.ID)
}

func TestAllocateSpot_ChargerRequestOnlyTakesChargerSpots(t *testing.T) {
	spot := allocateSpot(inventory(), nil, true)

	require.NotNil(t, spot)
	assert.Equal(t, int64(1), spot.ID)
	assert.True(t, spot.HasCharger)
}

func TestAllocateSpot_ChargerRequestFailsWhenChargerSpotTaken(t *testing.T) {
	overlapping := []*domain.Reservation{reservedOn(1)}

	spot := allocateSpot(inventory(), overlapping, true)

	assert.Nil(t, spot)
}

func TestAllocateSpot_PlainRequestMayTakeChargerSpot(t *testing.T) {
	overlapping := []*domain.Reservation{reservedOn(2), reservedOn(3)}

	spot := allocateSpot(inventory(), overlapping, false)

	require.NotNil(t, spot)
	assert.Equal(t, int64(1), spot.ID)
}

func TestAllocateSpot_NilWhenInventoryExhausted(t *testing.T) {
	overlapping := []*domain.Reservation{reservedOn(1), reservedOn(2), reservedOn(3)}

	spot := allocateSpot(inventory(), overlapping, false)

	assert.Nil(t, spot)
}

func TestAllocateSpot_EmptyInventory(t *testing.T) {
	assert.Nil(t, allocateSpot(nil, nil, false))
}
