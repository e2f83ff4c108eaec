package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			name:   "identical ranges",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 5),
			bStart: date(2025, 6, 1), bEnd: date(2025, 6, 5),
			want: true,
		},
		{
			name:   "touching boundary overlaps",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 5),
			bStart: date(2025, 6, 5), bEnd: date(2025, 6, 10),
			want: true,
		},
		{
			name:   "adjacent days do not overlap",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 5),
			bStart: date(2025, 6, 6), bEnd: date(2025, 6, 10),
			want: false,
		},
		{
			name:   "one range inside another",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 10),
			bStart: date(2025, 6, 3), bEnd: date(2025, 6, 4),
			want: true,
		},
		{
			name:   "disjoint ranges",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 2),
			bStart: date(2025, 7, 1), bEnd: date(2025, 7, 2),
			want: false,
		},
		{
			name:   "single day vs single day",
			aStart: date(2025, 6, 3), aEnd: date(2025, 6, 3),
			bStart: date(2025, 6, 3), bEnd: date(2025, 6, 3),
			want: true,
		},
		{
			name:   "time of day is ignored",
			aStart: time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC), aEnd: time.Date(2025, 6, 5, 0, 1, 0, 0, time.UTC),
			bStart: time.Date(2025, 6, 5, 18, 0, 0, 0, time.UTC), bEnd: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			assert.Equal(t, tt.want, RangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{name: "single day", start: date(2025, 6, 1), end: date(2025, 6, 1), want: 1},
		{name: "five days", start: date(2025, 6, 1), end: date(2025, 6, 5), want: 5},
		{name: "across month boundary", start: date(2025, 6, 28), end: date(2025, 7, 3), want: 6},
		{name: "thirty days", start: date(2025, 6, 1), end: date(2025, 6, 30), want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InclusiveDays(tt.start, tt.end))
		})
	}
}

func TestReservation_Overlaps(t *testing.T) {
	res := &Reservation{
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 5),
	}

	assert.True(t, res.Overlaps(date(2025, 6, 5), date(2025, 6, 10)))
	assert.False(t, res.Overlaps(date(2025, 6, 6), date(2025, 6, 10)))
}

func TestReservation_CoversDate(t *testing.T) {
	res := &Reservation{
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 5),
	}

	assert.True(t, res.CoversDate(date(2025, 6, 1)))
	assert.True(t, res.CoversDate(date(2025, 6, 5)))
	assert.False(t, res.CoversDate(date(2025, 6, 6)))
	assert.False(t, res.CoversDate(date(2025, 5, 31)))
}

func TestReservation_CanCheckIn(t *testing.T) {
	res := &Reservation{StatusChecked: false}
	assert.True(t, res.CanCheckIn())

	res.StatusChecked = true
	assert.False(t, res.CanCheckIn())
}
