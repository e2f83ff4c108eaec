package domain

import "time"

// Reservation represents a confirmed, spot-assigned parking reservation.
// Reservations are created only by accepting a pending request, never directly.
type Reservation struct {
	ID           int64
	UserID       int64
	Spot         Spot
	NeedsCharger bool
	StartDate    time.Time
	EndDate      time.Time

	// StatusChecked и CheckInTime описывают дневной check-in.
	// CheckInTime выставляется ровно один раз, только пока StatusChecked=false.
	StatusChecked bool
	CheckInTime   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationDays returns the inclusive day count of the reservation
func (r *Reservation) DurationDays() int {
	return InclusiveDays(r.StartDate, r.EndDate)
}

// Overlaps reports whether the reservation intersects the given date range.
// Boundaries are inclusive: a reservation ending on the range's start day overlaps it.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return RangesOverlap(r.StartDate, r.EndDate, start, end)
}

// CoversDate reports whether the given calendar date falls inside the reservation
func (r *Reservation) CoversDate(date time.Time) bool {
	return RangesOverlap(r.StartDate, r.EndDate, date, date)
}

// CanCheckIn returns true if the reservation has not been checked in yet
func (r *Reservation) CanCheckIn() bool {
	return !r.StatusChecked
}

// InclusiveDays возвращает длительность диапазона в днях, включая обе границы
func InclusiveDays(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	return int(e.Sub(s).Hours()/24) + 1
}

// RangesOverlap проверяет пересечение двух диапазонов дат с включёнными границами:
// a.start <= b.end && b.start <= a.end
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	as, ae := truncateToDay(aStart), truncateToDay(aEnd)
	bs, be := truncateToDay(bStart), truncateToDay(bEnd)
	return !as.After(be) && !bs.After(ae)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
